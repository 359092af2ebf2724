package timeutils_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stoner-cli/stoner/internal/utils/timeutils"
	"github.com/stretchr/testify/assert"
)

func TestZero(t *testing.T) {
	assert.Equal(t, "n/a", timeutils.FormatLocal(time.Time{}))
	assert.Equal(t, "n/a", timeutils.FormatRelative(time.Time{}))
	assert.Equal(t, "n/a", timeutils.FormatDate(time.Time{}))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-01", timeutils.FormatDate(ts))
}

func TestFormatRelative(t *testing.T) {
	out := timeutils.FormatRelative(time.Now().Add(-72 * time.Hour))
	assert.True(t, strings.HasSuffix(out, "ago"), out)
}

func TestFormatLocal(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Contains(t, timeutils.FormatLocal(ts), "2024")
}
