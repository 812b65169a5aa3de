package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestView_RendersPanels(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 140, Height: 60})

	view := m.View()

	assert.Contains(t, view, "gridcraft")
	assert.Contains(t, view, "Container")
	assert.Contains(t, view, "justify-items")
	assert.Contains(t, view, "Shuffle")
	assert.Contains(t, view, "display: grid;")
}

func TestView_ShowsInputWhileEditing(t *testing.T) {
	m := newTestModel(t, nil)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Contains(t, m.View(), "> 4")
}

func TestView_ShowsErrorStatus(t *testing.T) {
	m := newTestModel(t, nil)
	m.setError("Copy failed: boom")

	assert.Contains(t, m.View(), "Copy failed: boom")
}

func TestCycle(t *testing.T) {
	opts := []string{"a", "b", "c"}

	assert.Equal(t, "b", cycle(opts, "a", 1))
	assert.Equal(t, "c", cycle(opts, "a", -1))
	assert.Equal(t, "a", cycle(opts, "zzz", 1))
	assert.Equal(t, "x", cycle(nil, "x", 1))
}
