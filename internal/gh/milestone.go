package gh

import (
	"context"
	"time"

	"github.com/google/go-github/v63/github"
)

// MilestoneRef pairs a milestone title with its API URL.
type MilestoneRef struct {
	Title   string
	Locator string
}

// MilestoneInfo is a snapshot of a milestone's metadata. Locator is the
// milestone's web page. Optional timestamps are zero when unset.
type MilestoneInfo struct {
	Description      string
	Locator          string
	Title            string
	Number           int
	CreatorLogin     string
	OpenIssueCount   int
	ClosedIssueCount int
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DueAt            time.Time
	ClosedAt         time.Time
}

// Milestones lists the milestones of a repository (GET {repo}/milestones).
func (c *Client) Milestones(ctx context.Context, repoLocator string) ([]MilestoneRef, error) {
	var milestones []*github.Milestone
	if err := c.restGet(ctx, repoLocator+"/milestones", &milestones); err != nil {
		return nil, err
	}
	refs := make([]MilestoneRef, 0, len(milestones))
	for _, m := range milestones {
		refs = append(refs, MilestoneRef{Title: m.GetTitle(), Locator: m.GetURL()})
	}
	return refs, nil
}

// Milestone fetches a single milestone by its API URL.
func (c *Client) Milestone(ctx context.Context, milestoneLocator string) (*MilestoneInfo, error) {
	var m github.Milestone
	if err := c.restGet(ctx, milestoneLocator, &m); err != nil {
		return nil, err
	}
	return &MilestoneInfo{
		Description:      m.GetDescription(),
		Locator:          m.GetHTMLURL(),
		Title:            m.GetTitle(),
		Number:           m.GetNumber(),
		CreatorLogin:     m.GetCreator().GetLogin(),
		OpenIssueCount:   m.GetOpenIssues(),
		ClosedIssueCount: m.GetClosedIssues(),
		CreatedAt:        m.GetCreatedAt().Time,
		UpdatedAt:        m.GetUpdatedAt().Time,
		DueAt:            m.GetDueOn().Time,
		ClosedAt:         m.GetClosedAt().Time,
	}, nil
}
