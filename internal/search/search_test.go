package search_test

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stoner-cli/stoner/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var index = []string{"alpha", "beta", "gamma", "stoner", "stoner-web", "Zeta"}

func TestFilter(t *testing.T) {
	for _, tt := range []struct {
		query string
		want  []string
	}{
		{"", index},
		{"ga", []string{"gamma"}},
		{"a", []string{"alpha", "beta", "gamma", "Zeta"}},
		{"stn", []string{"stoner", "stoner-web"}},
		{"snw", []string{"stoner-web"}},
		{"ZETA", []string{"Zeta"}},
		{"xyz", []string{}},
		{"ammag", []string{}},
	} {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, search.Filter(tt.query, index))
		})
	}
}

func TestFilter_NeverNil(t *testing.T) {
	assert.NotNil(t, search.Filter("q", nil))
	assert.NotNil(t, search.Filter("", nil))
}

func TestFilter_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	const alphabet = "abcde-"
	word := func(n int) string {
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteByte(alphabet[rng.IntN(len(alphabet))])
		}
		return sb.String()
	}
	for iter := 0; iter < 200; iter++ {
		var names []string
		numNames := rng.IntN(10)
		for i := 0; i < numNames; i++ {
			names = append(names, word(1+rng.IntN(8)))
		}
		query := word(rng.IntN(3))
		got := search.Filter(query, names)

		// Results come from the index, in index order.
		j := 0
		for _, g := range got {
			for j < len(names) && names[j] != g {
				j++
			}
			require.Less(t, j, len(names), "result %q not in index order", g)
			j++
		}
		// Every subsequence match is present.
		var want []string
		for _, n := range names {
			if search.Match(query, n) {
				want = append(want, n)
			}
		}
		assert.Equal(t, len(want), len(got))
	}
}

func TestMatch(t *testing.T) {
	assert.True(t, search.Match("", "anything"))
	assert.True(t, search.Match("ac", "abc"))
	assert.False(t, search.Match("ca", "abc"))
	assert.True(t, search.Match("é", "café"))
	assert.False(t, search.Match("abcd", "abc"))
}

func TestSearcher_Search(t *testing.T) {
	s := search.New(0)
	got, err := s.Search(context.Background(), "ga", index)
	require.NoError(t, err)
	assert.Equal(t, []string{"gamma"}, got)

	got, err = s.Search(context.Background(), "", index)
	require.NoError(t, err)
	assert.Equal(t, index, got)
}

func TestSearcher_DelayBounds(t *testing.T) {
	s := search.New(300 * time.Millisecond)
	var mu sync.Mutex
	var delays []time.Duration
	s.Delay = func(max time.Duration) time.Duration {
		d := rand.N(max)
		mu.Lock()
		delays = append(delays, d)
		mu.Unlock()
		return time.Millisecond
	}
	for i := 0; i < 20; i++ {
		_, err := s.Search(context.Background(), "a", index)
		require.NoError(t, err)
	}
	for _, d := range delays {
		assert.GreaterOrEqual(t, d, time.Duration(0))
		assert.Less(t, d, 300*time.Millisecond)
	}
}

func TestSearcher_ConcurrentCallsDontSerialize(t *testing.T) {
	s := search.New(time.Second)
	s.Delay = func(time.Duration) time.Duration { return 100 * time.Millisecond }

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Search(context.Background(), "a", index)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	// Ten serialized calls would take at least a second.
	assert.Less(t, time.Since(start), 900*time.Millisecond)
}

func TestSearcher_Cancelled(t *testing.T) {
	s := search.New(time.Hour)
	s.Delay = func(max time.Duration) time.Duration { return max }
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Search(ctx, "a", index)
	assert.ErrorIs(t, err, context.Canceled)
}
