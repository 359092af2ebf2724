package gh

import (
	"context"
	"strings"

	"emperror.dev/errors"
	"github.com/google/go-github/v63/github"
)

// RepositoryRef pairs a repository name with its API URL.
type RepositoryRef struct {
	Name    string
	Locator string
}

// OwnedRepositories lists the repositories of the authenticated user
// (GET user/repos).
func (c *Client) OwnedRepositories(ctx context.Context) ([]RepositoryRef, error) {
	return c.RepositoriesAt(ctx, c.Locator("user/repos"))
}

// OrganizationRepositoryLocators lists the organizations of the authenticated
// user (GET user/orgs) and returns the repository-listing URL of each one, in
// the order they were returned.
func (c *Client) OrganizationRepositoryLocators(ctx context.Context) ([]string, error) {
	var orgs []*github.Organization
	if err := c.restGet(ctx, c.Locator("user/orgs"), &orgs); err != nil {
		return nil, err
	}
	locators := make([]string, 0, len(orgs))
	for _, org := range orgs {
		if org.GetReposURL() == "" {
			continue
		}
		locators = append(locators, org.GetReposURL())
	}
	return locators, nil
}

// RepositoriesAt lists the repositories at a repository-listing URL (for
// example an organization's repos_url).
func (c *Client) RepositoriesAt(ctx context.Context, locator string) ([]RepositoryRef, error) {
	var repos []*github.Repository
	if err := c.restGet(ctx, locator, &repos); err != nil {
		return nil, err
	}
	refs := make([]RepositoryRef, 0, len(repos))
	for _, repo := range repos {
		refs = append(refs, RepositoryRef{Name: repo.GetName(), Locator: repo.GetURL()})
	}
	return refs, nil
}

// RepositoryLocatorBySlug returns the API URL of an <owner>/<repo> slug
// without contacting GitHub.
func (c *Client) RepositoryLocatorBySlug(slug string) (string, error) {
	owner, name, ok := strings.Cut(slug, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", errors.Errorf(
			"unable to parse repository slug (expected <owner>/<repo>): %q",
			slug,
		)
	}
	return c.Locator("repos/" + owner + "/" + name), nil
}
