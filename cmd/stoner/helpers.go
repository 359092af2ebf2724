package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/stoner-cli/stoner/internal/config"
	"github.com/stoner-cli/stoner/internal/credential"
	"github.com/stoner-cli/stoner/internal/gh"
	"github.com/stoner-cli/stoner/internal/git"
	"github.com/stoner-cli/stoner/internal/report"
	"github.com/stoner-cli/stoner/internal/search"
	"github.com/stoner-cli/stoner/internal/session"
	"github.com/stoner-cli/stoner/internal/utils/browser"
	"github.com/stoner-cli/stoner/internal/utils/colors"
)

// getGitHubClient reads the token before anything talks to GitHub, so a
// missing token fails fast.
func getGitHubClient(ctx context.Context) (*gh.Client, error) {
	token, err := credential.Load(credential.Source{
		Token: config.Stoner.GitHub.Token,
		File:  config.Stoner.GitHub.TokenFile,
	})
	if err != nil {
		return nil, err
	}
	return gh.NewClient(ctx, token, config.Stoner.GitHub.BaseUrl)
}

func newSession(ctx context.Context) (*session.Session, *gh.Client, error) {
	client, err := getGitHubClient(ctx)
	if err != nil {
		return nil, nil, err
	}
	return session.New(client, search.New(config.Stoner.Search.MaxDelay)), client, nil
}

// useRepository selects repo in the session. An <owner>/<repo> slug is used
// as is; a bare name must be in the repository index.
func useRepository(ctx context.Context, s *session.Session, client *gh.Client, repo string) ([]string, error) {
	if strings.Contains(repo, "/") {
		locator, err := client.RepositoryLocatorBySlug(repo)
		if err != nil {
			return nil, err
		}
		return s.UseRepositoryLocator(ctx, repo, locator)
	}
	return s.SelectRepository(ctx, repo)
}

func repositoryFromGit() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return git.OriginSlug(dir)
}

type reportFlags struct {
	Format string
	Open   bool
}

func addReportFlags(fs *pflag.FlagSet, flags *reportFlags) {
	fs.StringVar(
		&flags.Format, "format", "",
		"report format: markdown, html or terminal (default from config, markdown)",
	)
	fs.BoolVar(
		&flags.Open, "open", false,
		"open the milestone in a browser",
	)
}

func writeReport(ctx context.Context, w io.Writer, data *report.Data, flags reportFlags) error {
	formatName := flags.Format
	if formatName == "" {
		formatName = config.Stoner.Report.Format
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}
	out, err := report.Render(data, format)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, out); err != nil {
		return err
	}

	if flags.Open || config.Stoner.Report.OpenBrowser {
		if err := browser.Open(ctx, data.Milestone.Locator); err != nil {
			_, _ = fmt.Fprint(os.Stderr,
				colors.Warning("Could not open the milestone in a browser: "), err, "\n",
			)
		}
	}
	return nil
}
