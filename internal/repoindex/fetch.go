package repoindex

import (
	"context"
	"slices"
	"time"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
	"github.com/stoner-cli/stoner/internal/gh"
	"golang.org/x/sync/errgroup"
)

// Source is the subset of the GitHub client the index is built from.
type Source interface {
	OwnedRepositories(ctx context.Context) ([]gh.RepositoryRef, error)
	OrganizationRepositoryLocators(ctx context.Context) ([]string, error)
	RepositoriesAt(ctx context.Context, locator string) ([]gh.RepositoryRef, error)
}

// Fetch lists the user's own repositories, then the repositories of each of
// the user's organizations (concurrently), and merges them into an Index.
//
// Each organization listing writes only to its own slot and the slots are
// merged after every listing has finished, so the result does not depend on
// the order in which the listings complete. If any request fails, Fetch fails
// as a whole.
func Fetch(ctx context.Context, src Source) (*Index, error) {
	startTime := time.Now()

	owned, err := src.OwnedRepositories(ctx)
	if err != nil {
		return nil, errors.WrapIf(err, "failed to list owned repositories")
	}
	orgLocators, err := src.OrganizationRepositoryLocators(ctx)
	if err != nil {
		return nil, errors.WrapIf(err, "failed to list organizations")
	}

	orgRepos := make([][]gh.RepositoryRef, len(orgLocators))
	g, gctx := errgroup.WithContext(ctx)
	for i, locator := range orgLocators {
		g.Go(func() error {
			refs, err := src.RepositoriesAt(gctx, locator)
			if err != nil {
				return errors.WrapIff(err, "failed to list repositories at %s", locator)
			}
			orgRepos[i] = refs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	idx := NewIndex(slices.Concat(append([][]gh.RepositoryRef{owned}, orgRepos...)...))
	logrus.WithFields(logrus.Fields{
		"owned":         len(owned),
		"organizations": len(orgLocators),
		"repositories":  idx.Len(),
		"elapsed":       time.Since(startTime),
	}).Debug("built repository index")
	return idx, nil
}
