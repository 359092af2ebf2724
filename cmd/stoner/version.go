package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stoner-cli/stoner/internal/config"
	"github.com/stoner-cli/stoner/internal/utils/colors"
)

var versionFlags struct {
	Check bool
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), config.Version)
		if !versionFlags.Check {
			return nil
		}

		latest, err := config.FetchLatestVersion(cmd.Context(), http.DefaultClient, "")
		if err != nil {
			logrus.WithError(err).Debug("failed to check for a newer version")
			_, _ = fmt.Fprintln(os.Stderr, colors.Warning("Could not check for a newer version."))
			return nil
		}
		if config.IsNewerVersion(config.Version, latest) {
			_, _ = fmt.Fprint(os.Stderr,
				"A new version of stoner is available: ", colors.UserInput(latest), "\n",
			)
		} else {
			_, _ = fmt.Fprintln(os.Stderr, colors.Success("stoner is up to date."))
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVar(
		&versionFlags.Check, "check", false,
		"check whether a newer release is available",
	)
}
