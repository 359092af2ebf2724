package uiutils

import (
	"testing"

	"emperror.dev/errors"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressModel(t *testing.T) {
	m := NewProgressModel("Fetching milestones", func() (tea.Msg, error) {
		return "loaded", nil
	})
	assert.Contains(t, m.View(), "Fetching milestones...")

	_, cmd := m.Update(m.start())
	require.NotNil(t, cmd)
	assert.Equal(t, "loaded", cmd())
	assert.Contains(t, m.View(), "✓ Fetching milestones")
}

func TestProgressModel_Failure(t *testing.T) {
	boom := errors.New("boom")
	m := NewProgressModel("Fetching milestones", func() (tea.Msg, error) {
		return nil, boom
	})

	_, cmd := m.Update(m.start())
	require.NotNil(t, cmd)
	assert.Equal(t, boom, cmd())
	assert.Contains(t, m.View(), "✗ Fetching milestones")
}
