package repoindex_test

import (
	"testing"

	"github.com/stoner-cli/stoner/internal/gh"
	"github.com/stoner-cli/stoner/internal/repoindex"
	"github.com/stretchr/testify/assert"
)

func TestNewIndex_SortsAndDeduplicates(t *testing.T) {
	idx := repoindex.NewIndex([]gh.RepositoryRef{
		{Name: "zeta", Locator: "me/zeta"},
		{Name: "alpha", Locator: "me/alpha"},
		{Name: "alpha", Locator: "acme/alpha"},
	})
	assert.Equal(t, []string{"alpha", "zeta"}, idx.Names())
	assert.Equal(t, 2, idx.Len())

	// Collisions keep the last locator seen.
	loc, ok := idx.Locator("alpha")
	assert.True(t, ok)
	assert.Equal(t, "acme/alpha", loc)

	_, ok = idx.Locator("missing")
	assert.False(t, ok)
}

func TestNewIndex_Empty(t *testing.T) {
	idx := repoindex.NewIndex(nil)
	assert.Empty(t, idx.Names())
	assert.Equal(t, 0, idx.Len())
}
