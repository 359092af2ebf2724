package milestone_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stoner-cli/stoner/internal/gh"
	"github.com/stoner-cli/stoner/internal/gh/ghtest"
	"github.com/stoner-cli/stoner/internal/milestone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issue(number int, labels ...string) map[string]any {
	ls := []any{}
	for _, l := range labels {
		ls = append(ls, map[string]any{"name": l})
	}
	return map[string]any{"number": number, "title": "issue", "labels": ls}
}

func TestFetcher_Issues(t *testing.T) {
	srv := ghtest.RunMockGitHubServer(t)
	srv.Handle("repos/me/alpha/issues?milestone=3&state=all", []any{
		issue(1, "k.bug"),
		issue(2, "k.feature", "k.upkeep"),
		issue(3, "x.firebase"),
	})
	client, err := gh.NewClient(context.Background(), "t", srv.Root())
	require.NoError(t, err)

	f := milestone.NewFetcher(client)
	c, err := f.Issues(context.Background(), srv.Locator("repos/me/alpha"), 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, numbers(c.Bug))
	assert.Equal(t, []int{2}, numbers(c.Feature))
	assert.Equal(t, []int{2}, numbers(c.Upkeep))
}

func TestFetcher_TitlesUpstreamError(t *testing.T) {
	srv := ghtest.RunMockGitHubServer(t)
	srv.HandleResponse("repos/me/alpha/milestones", ghtest.Response{
		Status: http.StatusInternalServerError,
		Body:   map[string]any{"message": "Server Error"},
	})
	client, err := gh.NewClient(context.Background(), "t", srv.Root())
	require.NoError(t, err)

	f := milestone.NewFetcher(client)
	refs, err := f.Titles(context.Background(), srv.Locator("repos/me/alpha"))
	assert.Nil(t, refs)
	assert.ErrorContains(t, err, "Server Error")
}

func TestFetcher_Info(t *testing.T) {
	srv := ghtest.RunMockGitHubServer(t)
	srv.Handle("repos/me/alpha/milestones/1", map[string]any{"title": "v1", "number": 1})
	client, err := gh.NewClient(context.Background(), "t", srv.Root())
	require.NoError(t, err)

	info, err := milestone.NewFetcher(client).Info(context.Background(), srv.Locator("repos/me/alpha/milestones/1"))
	require.NoError(t, err)
	assert.Equal(t, "v1", info.Title)
}
