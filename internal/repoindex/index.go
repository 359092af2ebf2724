// Package repoindex builds the searchable index of every repository the
// authenticated user can access, directly or through an organization.
package repoindex

import (
	"slices"

	"github.com/stoner-cli/stoner/internal/gh"
)

// Index is an immutable, lexicographically sorted set of repository names
// together with the API URL of each one.
type Index struct {
	names    []string
	locators map[string]string
}

// NewIndex merges refs into an index. When two refs share a name, the later
// one wins.
func NewIndex(refs []gh.RepositoryRef) *Index {
	idx := &Index{locators: make(map[string]string, len(refs))}
	for _, ref := range refs {
		if _, ok := idx.locators[ref.Name]; !ok {
			idx.names = append(idx.names, ref.Name)
		}
		idx.locators[ref.Name] = ref.Locator
	}
	slices.Sort(idx.names)
	return idx
}

// Names returns the sorted repository names. The caller must not modify the
// returned slice.
func (idx *Index) Names() []string {
	return idx.names
}

// Locator returns the API URL of the named repository.
func (idx *Index) Locator(name string) (string, bool) {
	loc, ok := idx.locators[name]
	return loc, ok
}

func (idx *Index) Len() int {
	return len(idx.names)
}
