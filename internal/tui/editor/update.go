package editor

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizePreview()
		m.syncPreview()
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKeyPress(msg)

	case CopiedMsg:
		m.setStatus(fmt.Sprintf("Copied %d bytes of CSS", msg.Bytes))
		return m, nil

	case CopyFailedMsg:
		m.setError(fmt.Sprintf("Copy failed: %v", msg.Err))
		m.log.Warn(context.Background(), "clipboard write failed", "error", msg.Err)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	m.statusErr = false

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)

	case key.Matches(msg, m.keys.Decrease):
		m.step(m.focused(), -1)

	case key.Matches(msg, m.keys.Increase):
		m.step(m.focused(), 1)

	case key.Matches(msg, m.keys.Toggle):
		m.activate(m.focused())

	case key.Matches(msg, m.keys.Edit):
		c := m.focused()
		if c.editable() {
			return m, m.beginEdit(c)
		}
		m.activate(c)

	case key.Matches(msg, m.keys.PrevItem):
		m.selectRelative(-1)

	case key.Matches(msg, m.keys.NextItem):
		m.selectRelative(1)

	case key.Matches(msg, m.keys.Shuffle):
		m.press(control{id: CtrlShuffle})

	case key.Matches(msg, m.keys.Reset):
		m.press(control{id: CtrlReset})

	case key.Matches(msg, m.keys.Copy):
		return m, copyCmd(m.clipboard, m.ctrl.PreviewText())

	case key.Matches(msg, m.keys.ScrollUp):
		m.preview.SetYOffset(m.preview.YOffset - max(1, m.preview.Height/2))
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.preview.SetYOffset(m.preview.YOffset + max(1, m.preview.Height/2))
		return m, nil

	default:
		return m, nil
	}

	m.syncPreview()
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit):
		c := m.focused()
		m.commit(c, m.input.Value())
		m.endEdit()
		m.setStatus(fmt.Sprintf("%s set to %s", c.label, m.value(c)))
		m.syncPreview()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.endEdit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// activate handles space and enter on controls without a text field.
func (m *Model) activate(c control) {
	switch c.kind {
	case KindToggle, KindButton:
		m.press(c)
	case KindChoice:
		m.step(c, 1)
	}
}

func (m *Model) beginEdit(c control) tea.Cmd {
	m.editing = true
	current := m.value(c)
	if c.id == CtrlSelectedItem {
		if idx, ok := m.ctrl.Selected(); ok {
			current = fmt.Sprint(idx + 1)
		} else {
			current = ""
		}
	}
	m.input.SetValue(current)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) endEdit() {
	m.editing = false
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) selectRelative(delta int) {
	idx, ok := m.ctrl.Selected()
	if !ok {
		return
	}
	m.ctrl.Select(idx + delta)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}
