package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/stoner-cli/stoner/internal/gh"
	"github.com/stoner-cli/stoner/internal/utils/colors"
	"github.com/stoner-cli/stoner/internal/utils/errutils"
)

var authStatusCmd = &cobra.Command{
	Use:          "status",
	Short:        "check auth status",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, err := getGitHubClient(ctx)
		if err != nil {
			return err
		}

		viewer, err := client.Viewer(ctx)
		if gh.IsHTTPUnauthorized(err) {
			_, _ = fmt.Fprint(
				os.Stderr,
				colors.Failure(
					"You are not logged in. Please verify that your GitHub token is correct.\n",
				),
			)
			return errutils.ErrExitSilently{Status: 1}
		} else if err != nil {
			return err
		}

		name := viewer.Login
		if viewer.Name != "" {
			name = fmt.Sprintf("%s (%s)", viewer.Login, viewer.Name)
		}
		_, _ = fmt.Fprint(os.Stderr, "Logged in as ", colors.UserInput(name), ".\n")
		return nil
	},
}
