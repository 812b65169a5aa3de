package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

// copyCmd writes the preview text to the clipboard asynchronously.
func copyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return CopyFailedMsg{Err: err}
		}
		return CopiedMsg{Bytes: len(text)}
	}
}
