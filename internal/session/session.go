// Package session holds the state of one run through the repository, milestone
// and report pipeline.
package session

import (
	"context"
	"sync"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
	"github.com/stoner-cli/stoner/internal/milestone"
	"github.com/stoner-cli/stoner/internal/repoindex"
	"github.com/stoner-cli/stoner/internal/report"
	"github.com/stoner-cli/stoner/internal/search"
)

var (
	ErrUnknownRepository = errors.Sentinel("unknown repository")
	ErrUnknownMilestone  = errors.Sentinel("unknown milestone")
	ErrNoRepository      = errors.Sentinel("no repository selected")
)

// Client is everything a session needs from GitHub.
type Client interface {
	repoindex.Source
	milestone.Client
}

type Session struct {
	loader   *repoindex.Loader
	searcher *search.Searcher
	fetcher  *milestone.Fetcher

	mu          sync.Mutex
	repoName    string
	repoLocator string
	milestones  map[string]string
}

func New(client Client, searcher *search.Searcher) *Session {
	return &Session{
		loader:   repoindex.NewLoader(client),
		searcher: searcher,
		fetcher:  milestone.NewFetcher(client),
	}
}

// Repositories returns the names of every repository in the index, loading
// the index if needed.
func (s *Session) Repositories(ctx context.Context) ([]string, error) {
	idx, err := s.loader.Index(ctx)
	if err != nil {
		return nil, err
	}
	return idx.Names(), nil
}

// Search returns the repository names matching query. It is safe to call
// concurrently.
func (s *Session) Search(ctx context.Context, query string) ([]string, error) {
	names, err := s.Repositories(ctx)
	if err != nil {
		return nil, err
	}
	return s.searcher.Search(ctx, query, names)
}

// SelectRepository makes the named repository from the index the current one
// and returns the titles of its milestones.
func (s *Session) SelectRepository(ctx context.Context, name string) ([]string, error) {
	idx, err := s.loader.Index(ctx)
	if err != nil {
		return nil, err
	}
	locator, ok := idx.Locator(name)
	if !ok {
		return nil, errors.Errorf("%w: %q", ErrUnknownRepository, name)
	}
	return s.UseRepositoryLocator(ctx, name, locator)
}

// UseRepositoryLocator makes the repository at locator the current one without
// consulting the index and returns the titles of its milestones.
func (s *Session) UseRepositoryLocator(ctx context.Context, name string, locator string) ([]string, error) {
	refs, err := s.fetcher.Titles(ctx, locator)
	if err != nil {
		return nil, err
	}

	milestones := make(map[string]string, len(refs))
	titles := make([]string, 0, len(refs))
	for _, ref := range refs {
		if _, ok := milestones[ref.Title]; !ok {
			titles = append(titles, ref.Title)
		}
		milestones[ref.Title] = ref.Locator
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.repoName = name
	s.repoLocator = locator
	s.milestones = milestones
	logrus.WithFields(logrus.Fields{
		"repository": name,
		"milestones": len(titles),
	}).Debug("selected repository")
	return titles, nil
}

// Repository returns the name of the current repository, if any.
func (s *Session) Repository() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repoName
}

// Milestone returns the locator of the milestone with the given title in the
// current repository.
func (s *Session) Milestone(title string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.repoLocator == "" {
		return "", ErrNoRepository
	}
	locator, ok := s.milestones[title]
	if !ok {
		return "", errors.Errorf("%w: %q in %s", ErrUnknownMilestone, title, s.repoName)
	}
	return locator, nil
}

// BuildReport fetches the milestone with the given title and its categorized
// issues.
func (s *Session) BuildReport(ctx context.Context, title string) (*report.Data, error) {
	locator, err := s.Milestone(title)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	repoName, repoLocator := s.repoName, s.repoLocator
	s.mu.Unlock()

	info, err := s.fetcher.Info(ctx, locator)
	if err != nil {
		return nil, err
	}
	issues, err := s.fetcher.Issues(ctx, repoLocator, info.Number)
	if err != nil {
		return nil, err
	}
	return &report.Data{
		Repository: repoName,
		Milestone:  *info,
		Issues:     *issues,
	}, nil
}
