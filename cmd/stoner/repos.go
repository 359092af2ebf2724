package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stoner-cli/stoner/internal/report"
)

var reposFlags struct {
	Output string
}

var reposCmd = &cobra.Command{
	Use:   "repos [query]",
	Short: "List the repositories you can report on",
	Long: `List the repositories you can report on: your own and those of every
organization you belong to, sorted by name.

With a query, only the repositories whose name contains the query's characters
in order (ignoring case) are listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, _, err := newSession(ctx)
		if err != nil {
			return err
		}

		var names []string
		if len(args) == 0 {
			names, err = s.Repositories(ctx)
		} else {
			names, err = s.Search(ctx, args[0])
		}
		if err != nil {
			return err
		}
		return printList(cmd, reposFlags.Output, names)
	},
}

func init() {
	reposCmd.Flags().StringVarP(
		&reposFlags.Output, "output", "o", "text",
		"output format: text, json or yaml",
	)
}

func printList(cmd *cobra.Command, output string, items []string) error {
	if output != "text" {
		return report.Encode(cmd.OutOrStdout(), output, items)
	}
	for _, item := range items {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), item); err != nil {
			return err
		}
	}
	return nil
}
