package e2e_tests

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/stoner-cli/stoner/internal/gh/ghtest"
)

var ghtestNotFound = ghtest.Response{
	Status: http.StatusNotFound,
	Body:   map[string]any{"message": "Not Found"},
}

// RunMockGitHub serves a user "me" with repositories alpha and beta who belongs
// to organization acme with repository gamma. gamma has milestones v1 and v2;
// v2 has a bug, a feature/upkeep issue and an unlabelled issue.
func RunMockGitHub(t *testing.T) *ghtest.Server {
	t.Helper()
	srv := ghtest.RunMockGitHubServer(t)
	srv.Handle("user/repos", srv.Repos("me", "beta", "alpha"))
	srv.Handle("user/orgs", []any{srv.Org("acme")})
	srv.Handle("orgs/acme/repos", srv.Repos("acme", "gamma"))
	srv.Handle("repos/acme/gamma/milestones", []any{
		map[string]any{"title": "v1", "number": 1, "url": srv.Locator("repos/acme/gamma/milestones/1")},
		map[string]any{"title": "v2", "number": 2, "url": srv.Locator("repos/acme/gamma/milestones/2")},
	})
	srv.Handle("repos/acme/gamma/milestones/2", map[string]any{
		"title":         "v2",
		"number":        2,
		"description":   "Spring release",
		"html_url":      "https://github.com/acme/gamma/milestone/2",
		"creator":       map[string]any{"login": "carol"},
		"open_issues":   2,
		"closed_issues": 1,
		"created_at":    "2024-03-01T12:00:00Z",
		"updated_at":    "2024-03-02T12:00:00Z",
		"due_on":        "2024-04-01T07:00:00Z",
	})
	srv.Handle("repos/acme/gamma/issues?milestone=2&state=all", []any{
		ghIssue(1, "Crash on start", "k.bug", "x.firebase"),
		ghIssue(2, "Dark mode", "k.feature", "k.upkeep"),
		ghIssue(3, "Question", "question"),
	})
	return srv
}

func ghIssue(number int, title string, labels ...string) map[string]any {
	ls := []any{}
	for _, l := range labels {
		ls = append(ls, map[string]any{"name": l})
	}
	return map[string]any{
		"number":   number,
		"title":    title,
		"html_url": "https://github.com/acme/gamma/issues/" + strconv.Itoa(number),
		"user":     map[string]any{"login": "alice"},
		"labels":   ls,
	}
}
