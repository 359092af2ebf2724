package gh_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stoner-cli/stoner/internal/gh"
	"github.com/stoner-cli/stoner/internal/gh/ghtest"
	"github.com/stoner-cli/stoner/internal/utils/errutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, srv *ghtest.Server) *gh.Client {
	t.Helper()
	client, err := gh.NewClient(context.Background(), "t0ken", srv.Root())
	require.NoError(t, err)
	return client
}

func TestNewClient_NoToken(t *testing.T) {
	_, err := gh.NewClient(context.Background(), "", "https://api.github.com/")
	assert.Error(t, err)
}

func TestClient_RequestHeaders(t *testing.T) {
	srv := ghtest.RunMockGitHubServer(t)
	srv.Handle("user/repos", srv.Repos("me", "alpha"))
	client := newClient(t, srv)

	_, err := client.OwnedRepositories(context.Background())
	require.NoError(t, err)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "token t0ken", reqs[0].Header.Get("Authorization"))
	assert.Equal(t, "application/json", reqs[0].Header.Get("Content-Type"))
}

func TestClient_OwnedRepositories(t *testing.T) {
	srv := ghtest.RunMockGitHubServer(t)
	srv.Handle("user/repos", srv.Repos("me", "alpha", "beta"))
	client := newClient(t, srv)

	refs, err := client.OwnedRepositories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []gh.RepositoryRef{
		{Name: "alpha", Locator: srv.Locator("repos/me/alpha")},
		{Name: "beta", Locator: srv.Locator("repos/me/beta")},
	}, refs)
}

func TestClient_OrganizationRepositoryLocators(t *testing.T) {
	srv := ghtest.RunMockGitHubServer(t)
	srv.Handle("user/orgs", []any{srv.Org("acme"), srv.Org("initech")})
	client := newClient(t, srv)

	locators, err := client.OrganizationRepositoryLocators(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{
		srv.Locator("orgs/acme/repos"),
		srv.Locator("orgs/initech/repos"),
	}, locators)
}

func TestClient_UpstreamError(t *testing.T) {
	srv := ghtest.RunMockGitHubServer(t)
	srv.HandleResponse("user/orgs", ghtest.Response{
		Status: http.StatusNotFound,
		Body:   map[string]any{"message": "Not Found"},
	})
	client := newClient(t, srv)

	locators, err := client.OrganizationRepositoryLocators(context.Background())
	require.Error(t, err)
	assert.Nil(t, locators)
	uerr, ok := errutils.As[*gh.UpstreamError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, uerr.StatusCode)
	assert.Equal(t, "Not Found", uerr.Message)
	assert.Equal(t, srv.Locator("user/orgs"), uerr.Endpoint)
	assert.Contains(t, err.Error(), "Not Found")
}

func TestClient_NonOKSuccessIsUpstreamError(t *testing.T) {
	srv := ghtest.RunMockGitHubServer(t)
	srv.HandleResponse("user/repos", ghtest.Response{Status: http.StatusNoContent})
	client := newClient(t, srv)

	_, err := client.OwnedRepositories(context.Background())
	uerr, ok := errutils.As[*gh.UpstreamError](err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNoContent, uerr.StatusCode)
}

func TestIsHTTPUnauthorized(t *testing.T) {
	srv := ghtest.RunMockGitHubServer(t)
	srv.HandleResponse("user/repos", ghtest.Response{
		Status: http.StatusUnauthorized,
		Body:   map[string]any{"message": "Bad credentials"},
	})
	client := newClient(t, srv)

	_, err := client.OwnedRepositories(context.Background())
	require.Error(t, err)
	assert.True(t, gh.IsHTTPUnauthorized(err))
	assert.Contains(t, err.Error(), "Bad credentials")
}

func TestClient_Milestones(t *testing.T) {
	srv := ghtest.RunMockGitHubServer(t)
	repo := srv.Locator("repos/me/alpha")
	srv.Handle("repos/me/alpha/milestones", []any{
		map[string]any{"title": "v1", "url": repo + "/milestones/1", "number": 1},
		map[string]any{"title": "v2", "url": repo + "/milestones/2", "number": 2},
	})
	srv.Handle("repos/me/alpha/milestones/2", map[string]any{
		"title":         "v2",
		"number":        2,
		"description":   "second release",
		"html_url":      "https://github.com/me/alpha/milestone/2",
		"creator":       map[string]any{"login": "octocat"},
		"open_issues":   3,
		"closed_issues": 4,
		"created_at":    "2024-01-02T03:04:05Z",
		"updated_at":    "2024-02-02T03:04:05Z",
		"due_on":        "2024-03-01T00:00:00Z",
	})
	client := newClient(t, srv)

	refs, err := client.Milestones(context.Background(), repo)
	require.NoError(t, err)
	assert.Equal(t, []gh.MilestoneRef{
		{Title: "v1", Locator: repo + "/milestones/1"},
		{Title: "v2", Locator: repo + "/milestones/2"},
	}, refs)

	info, err := client.Milestone(context.Background(), refs[1].Locator)
	require.NoError(t, err)
	assert.Equal(t, "v2", info.Title)
	assert.Equal(t, 2, info.Number)
	assert.Equal(t, "second release", info.Description)
	assert.Equal(t, "https://github.com/me/alpha/milestone/2", info.Locator)
	assert.Equal(t, "octocat", info.CreatorLogin)
	assert.Equal(t, 3, info.OpenIssueCount)
	assert.Equal(t, 4, info.ClosedIssueCount)
	assert.Equal(t, 2024, info.CreatedAt.Year())
	assert.Equal(t, 3, int(info.DueAt.Month()))
	assert.True(t, info.ClosedAt.IsZero())
}

func TestClient_MilestoneIssues(t *testing.T) {
	srv := ghtest.RunMockGitHubServer(t)
	repo := srv.Locator("repos/me/alpha")
	srv.Handle("repos/me/alpha/issues?milestone=7&state=all", []any{
		map[string]any{
			"number":     1,
			"title":      "crash on start",
			"html_url":   "https://github.com/me/alpha/issues/1",
			"user":       map[string]any{"login": "octocat"},
			"labels":     []any{map[string]any{"name": "k.bug"}, map[string]any{"name": "p1"}},
			"created_at": "2024-01-02T03:04:05Z",
			"closed_at":  "2024-01-03T03:04:05Z",
		},
	})
	client := newClient(t, srv)

	issues, err := client.MilestoneIssues(context.Background(), repo, 7)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, 1, issues[0].Number)
	assert.Equal(t, "crash on start", issues[0].Title)
	assert.Equal(t, "octocat", issues[0].CreatorLogin)
	assert.Equal(t, []string{"k.bug", "p1"}, issues[0].Labels)
	assert.False(t, issues[0].ClosedAt.IsZero())
}

func TestClient_RepositoryLocatorBySlug(t *testing.T) {
	client, err := gh.NewClient(context.Background(), "t", "https://api.github.com")
	require.NoError(t, err)

	loc, err := client.RepositoryLocatorBySlug("acme/gamma")
	require.NoError(t, err)
	assert.Equal(t, "https://api.github.com/repos/acme/gamma", loc)

	for _, bad := range []string{"gamma", "/gamma", "acme/", "a/b/c"} {
		_, err := client.RepositoryLocatorBySlug(bad)
		assert.Error(t, err, bad)
	}
}
