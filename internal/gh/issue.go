package gh

import (
	"context"
	"time"

	"emperror.dev/errors"
	"github.com/google/go-github/v63/github"
	"github.com/google/go-querystring/query"
)

// Issue is an issue of a milestone. Locator is the issue's web page.
type Issue struct {
	Number       int
	Locator      string
	Title        string
	CreatorLogin string
	Labels       []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ClosedAt     time.Time
}

type milestoneIssuesOptions struct {
	State     string `url:"state"`
	Milestone int    `url:"milestone"`
}

// MilestoneIssues lists every issue (open and closed) of a repository that
// belongs to the milestone with the given number
// (GET {repo}/issues?state=all&milestone={n}).
func (c *Client) MilestoneIssues(ctx context.Context, repoLocator string, number int) ([]Issue, error) {
	qs, err := query.Values(milestoneIssuesOptions{State: "all", Milestone: number})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode issue query")
	}
	var issues []*github.Issue
	if err := c.restGet(ctx, repoLocator+"/issues?"+qs.Encode(), &issues); err != nil {
		return nil, err
	}
	ret := make([]Issue, 0, len(issues))
	for _, i := range issues {
		labels := make([]string, 0, len(i.Labels))
		for _, l := range i.Labels {
			labels = append(labels, l.GetName())
		}
		ret = append(ret, Issue{
			Number:       i.GetNumber(),
			Locator:      i.GetHTMLURL(),
			Title:        i.GetTitle(),
			CreatorLogin: i.GetUser().GetLogin(),
			Labels:       labels,
			CreatedAt:    i.GetCreatedAt().Time,
			UpdatedAt:    i.GetUpdatedAt().Time,
			ClosedAt:     i.GetClosedAt().Time,
		})
	}
	return ret, nil
}
