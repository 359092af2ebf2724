package repoindex

import (
	"context"
	"sync"
)

// Loader builds the index on first use and returns the same result (index or
// error) for every later call. It is safe for concurrent use; concurrent
// callers wait for the single in-flight fetch.
type Loader struct {
	src Source

	mu    sync.Mutex
	done  bool
	index *Index
	err   error
}

func NewLoader(src Source) *Loader {
	return &Loader{src: src}
}

// Index returns the repository index, fetching it if this is the first call.
// The context of the first call is the one used for the fetch.
func (l *Loader) Index(ctx context.Context) (*Index, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.done {
		l.index, l.err = Fetch(ctx, l.src)
		l.done = true
	}
	return l.index, l.err
}
