package main

import (
	"github.com/spf13/cobra"
)

var milestonesFlags struct {
	Output string
}

var milestonesCmd = &cobra.Command{
	Use:   "milestones <repo>",
	Short: "List the milestones of a repository",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, client, err := newSession(ctx)
		if err != nil {
			return err
		}
		titles, err := useRepository(ctx, s, client, args[0])
		if err != nil {
			return err
		}
		return printList(cmd, milestonesFlags.Output, titles)
	},
}

func init() {
	milestonesCmd.Flags().StringVarP(
		&milestonesFlags.Output, "output", "o", "text",
		"output format: text, json or yaml",
	)
}
