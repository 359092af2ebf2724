package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"emperror.dev/errors"
	"github.com/kr/text"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stoner-cli/stoner/internal/config"
	"github.com/stoner-cli/stoner/internal/utils/colors"
	"github.com/stoner-cli/stoner/internal/utils/errutils"
	"github.com/stoner-cli/stoner/internal/utils/uiutils"
)

var rootFlags struct {
	Debug     bool
	TokenFile string
}

var RootCmd = &cobra.Command{
	Use:   "stoner",
	Short: "Report on the issues of a GitHub milestone",
	Long: strings.TrimSpace(`
Report on the issues of a GitHub milestone.

stoner lists every repository you can access (your own and those of your
organizations), lets you pick one with fuzzy search, asks for one of its
milestones and prints a markdown report of the milestone's issues grouped by
their k.bug, k.feature and k.upkeep labels.
`),

	// Don't automatically print errors or usage information (we handle that ourselves).
	// Cobra still prints usage if you return cmd.Usage() from RunE.
	SilenceErrors: true,
	SilenceUsage:  true,

	// Don't show "completion" command in help menu
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},

	Args: cobra.NoArgs,
	RunE: runInteractive,

	// Run setup before invoking any child commands.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if rootFlags.Debug {
			logrus.SetLevel(logrus.DebugLevel)
			logrus.WithField("stoner_version", config.Version).Debug("enabled debug logging")
		}
		colors.SetupBackgroundColorTypeFromEnv()

		// Note: this only returns an error if config exists and it can't be
		// read/parsed. It doesn't return an error if no config file exists.
		didLoadConfig, err := config.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}
		if didLoadConfig {
			logrus.Debug("loaded configuration")
		} else {
			logrus.Debug("no configuration found")
		}
		if rootFlags.TokenFile != "" {
			config.Stoner.GitHub.TokenFile = rootFlags.TokenFile
		}
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(
		&rootFlags.Debug, "debug", false,
		"enable verbose debug logging",
	)
	RootCmd.PersistentFlags().StringVar(
		&rootFlags.TokenFile, "token-file", "",
		"file to read the GitHub token from (default \".github-token\")",
	)
	RootCmd.AddCommand(
		authCmd,
		milestonesCmd,
		reportCmd,
		reposCmd,
		versionCmd,
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := RootCmd.ExecuteContext(ctx)
	interrupted := ctx.Err() != nil
	stop()
	if err == nil {
		return
	}
	if interrupted {
		os.Exit(errutils.ExitCode(uiutils.ErrCancelled))
	}

	_, silent := errutils.As[errutils.ErrExitSilently](err)
	if !silent && !errors.Is(err, uiutils.ErrCancelled) {
		_, _ = fmt.Fprint(os.Stderr, uiutils.RenderError(err))
		// In debug mode, show more detailed information about the error
		// (including the stack trace).
		if rootFlags.Debug {
			stackTrace := fmt.Sprintf("%+v", err)
			_, _ = fmt.Fprintln(os.Stderr, text.Indent(stackTrace, "\t"))
		}
	}
	os.Exit(errutils.ExitCode(err))
}
