package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/stoner-cli/stoner/internal/report"
)

var reportCmdFlags struct {
	Output string
	reportFlags
}

var reportCmd = &cobra.Command{
	Use:   "report <repo> <milestone>",
	Short: "Print the report of a milestone without prompting",
	Long: strings.TrimSpace(`
Print the report of a milestone without prompting.

<repo> is either a repository name from "stoner repos" or <owner>/<repo>.
Issues are grouped by their k.bug, k.feature and k.upkeep labels; an issue with
several of these labels appears in each group.

With --output json or yaml the report data is printed instead of the rendered
report.
`),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, client, err := newSession(ctx)
		if err != nil {
			return err
		}
		if _, err := useRepository(ctx, s, client, args[0]); err != nil {
			return err
		}
		data, err := s.BuildReport(ctx, args[1])
		if err != nil {
			return err
		}
		if reportCmdFlags.Output != "" {
			return report.Encode(cmd.OutOrStdout(), reportCmdFlags.Output, data)
		}
		return writeReport(ctx, cmd.OutOrStdout(), data, reportCmdFlags.reportFlags)
	},
}

func init() {
	reportCmd.Flags().StringVarP(
		&reportCmdFlags.Output, "output", "o", "",
		"print the report data as json or yaml",
	)
	addReportFlags(reportCmd.Flags(), &reportCmdFlags.reportFlags)
}
