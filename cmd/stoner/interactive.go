package main

import (
	"context"

	"emperror.dev/errors"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stoner-cli/stoner/internal/config"
	"github.com/stoner-cli/stoner/internal/gh"
	"github.com/stoner-cli/stoner/internal/report"
	"github.com/stoner-cli/stoner/internal/session"
	"github.com/stoner-cli/stoner/internal/utils/uiutils"
)

var interactiveFlags struct {
	Repo    string
	FromGit bool
	reportFlags
}

func init() {
	RootCmd.Flags().StringVar(
		&interactiveFlags.Repo, "repo", "",
		"repository to report on (a name from the index or <owner>/<repo>); skips the repository prompt",
	)
	RootCmd.Flags().BoolVar(
		&interactiveFlags.FromGit, "from-git", false,
		"report on the repository of the origin remote of the current git checkout",
	)
	RootCmd.MarkFlagsMutuallyExclusive("repo", "from-git")
	addReportFlags(RootCmd.Flags(), &interactiveFlags.reportFlags)
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s, client, err := newSession(ctx)
	if err != nil {
		return err
	}

	repo := interactiveFlags.Repo
	if interactiveFlags.FromGit {
		repo, err = repositoryFromGit()
		if err != nil {
			return errors.WrapIf(err, "failed to determine the repository of the current directory")
		}
		logrus.WithField("repo", repo).Debug("using repository from git remote")
	}

	vm := &interactiveViewModel{
		ctx:     ctx,
		session: s,
		client:  client,
		repo:    repo,
	}
	if err := uiutils.RunBubbleTea(vm); err != nil {
		return err
	}
	return writeReport(ctx, cmd.OutOrStdout(), vm.report, interactiveFlags.reportFlags)
}

type milestonesLoadedMsg struct {
	titles []string
}

type reportBuiltMsg struct {
	data *report.Data
}

// interactiveViewModel asks for a repository (unless one was given), then for
// one of its milestones, and builds the report of that milestone.
type interactiveViewModel struct {
	ctx     context.Context
	session *session.Session
	client  *gh.Client
	repo    string

	report *report.Data

	uiutils.BaseStackedView
}

func (vm *interactiveViewModel) Init() tea.Cmd {
	if vm.repo != "" {
		return vm.loadMilestones(vm.repo)
	}
	return vm.AddView(uiutils.NewRepositorySearchModel(
		vm.ctx,
		"Repository",
		vm.session.Search,
		config.Stoner.Search.PageSize,
		vm.loadMilestones,
	))
}

func (vm *interactiveViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case milestonesLoadedMsg:
		return vm, vm.AddView(uiutils.NewPromptModel(
			"Milestone",
			msg.titles,
			config.Stoner.Search.PageSize,
			vm.buildReport,
		))
	case reportBuiltMsg:
		vm.report = msg.data
		return vm, tea.Quit
	}
	return vm, vm.BaseStackedView.Update(msg)
}

func (vm *interactiveViewModel) loadMilestones(repo string) tea.Cmd {
	return vm.AddView(uiutils.NewProgressModel("Fetching milestones of "+repo, func() (tea.Msg, error) {
		titles, err := useRepository(vm.ctx, vm.session, vm.client, repo)
		if err != nil {
			return nil, err
		}
		if len(titles) == 0 {
			return nil, errors.Errorf("repository %s has no milestones", repo)
		}
		return milestonesLoadedMsg{titles}, nil
	}))
}

func (vm *interactiveViewModel) buildReport(title string) tea.Cmd {
	return vm.AddView(uiutils.NewProgressModel("Fetching issues of "+title, func() (tea.Msg, error) {
		data, err := vm.session.BuildReport(vm.ctx, title)
		if err != nil {
			return nil, err
		}
		return reportBuiltMsg{data}, nil
	}))
}
