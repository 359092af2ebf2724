// Package search implements the fuzzy repository name search that feeds the
// autocomplete prompt.
package search

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"
	"unicode/utf8"
)

// Searcher filters names with a subsequence match and answers after a random
// delay in [0, MaxDelay). The delay keeps prompt redraws from being driven
// synchronously by every keystroke.
type Searcher struct {
	MaxDelay time.Duration
	// Delay picks the delay for one call; it defaults to a uniform random
	// duration below MaxDelay.
	Delay func(max time.Duration) time.Duration
}

func New(maxDelay time.Duration) *Searcher {
	return &Searcher{MaxDelay: maxDelay}
}

// Search returns the names that match query, in index order, after
// the response delay has elapsed. It only fails if ctx is done first.
// The delay is local to the call, so concurrent searches don't wait on each
// other.
func (s *Searcher) Search(ctx context.Context, query string, names []string) ([]string, error) {
	if d := s.delay(); d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return Filter(query, names), nil
}

func (s *Searcher) delay() time.Duration {
	if s.MaxDelay <= 0 {
		return 0
	}
	if s.Delay != nil {
		return s.Delay(s.MaxDelay)
	}
	return rand.N(s.MaxDelay)
}

// Filter returns the names that contain query as a case-insensitive
// subsequence, preserving their order. An empty query matches everything.
// The result is never nil.
func Filter(query string, names []string) []string {
	ret := make([]string, 0, len(names))
	if query == "" {
		return append(ret, names...)
	}
	q := strings.ToLower(query)
	for _, name := range names {
		if matchLower(q, strings.ToLower(name)) {
			ret = append(ret, name)
		}
	}
	return ret
}

// Match reports whether query is a case-insensitive subsequence of name.
func Match(query, name string) bool {
	return matchLower(strings.ToLower(query), strings.ToLower(name))
}

func matchLower(q, name string) bool {
	for _, r := range name {
		if q == "" {
			return true
		}
		qr, size := utf8.DecodeRuneInString(q)
		if r == qr {
			q = q[size:]
		}
	}
	return q == ""
}
