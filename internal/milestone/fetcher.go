package milestone

import (
	"context"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
	"github.com/stoner-cli/stoner/internal/gh"
)

// Client is the subset of the GitHub client used to read milestones.
type Client interface {
	Milestones(ctx context.Context, repoLocator string) ([]gh.MilestoneRef, error)
	Milestone(ctx context.Context, milestoneLocator string) (*gh.MilestoneInfo, error)
	MilestoneIssues(ctx context.Context, repoLocator string, number int) ([]gh.Issue, error)
}

type Fetcher struct {
	client Client
}

func NewFetcher(client Client) *Fetcher {
	return &Fetcher{client}
}

// Titles lists the milestones of a repository in the order GitHub returns them.
func (f *Fetcher) Titles(ctx context.Context, repoLocator string) ([]gh.MilestoneRef, error) {
	refs, err := f.client.Milestones(ctx, repoLocator)
	if err != nil {
		return nil, errors.WrapIff(err, "failed to list milestones of %s", repoLocator)
	}
	return refs, nil
}

// Info fetches the metadata of a milestone.
func (f *Fetcher) Info(ctx context.Context, milestoneLocator string) (*gh.MilestoneInfo, error) {
	info, err := f.client.Milestone(ctx, milestoneLocator)
	if err != nil {
		return nil, errors.WrapIff(err, "failed to fetch milestone %s", milestoneLocator)
	}
	return info, nil
}

// Issues fetches every issue of the milestone with the given number and
// categorizes them.
func (f *Fetcher) Issues(ctx context.Context, repoLocator string, number int) (*CategorizedIssues, error) {
	issues, err := f.client.MilestoneIssues(ctx, repoLocator, number)
	if err != nil {
		return nil, errors.WrapIff(err, "failed to list issues of milestone #%d", number)
	}
	c := Categorize(issues)
	logrus.WithFields(logrus.Fields{
		"milestone": number,
		"issues":    len(issues),
		"bug":       len(c.Bug),
		"feature":   len(c.Feature),
		"upkeep":    len(c.Upkeep),
	}).Debug("categorized milestone issues")
	return c, nil
}
