package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/alexisbeaulieu97/gridcraft/internal/surface"
)

const (
	panelWidth       = 36
	minPreviewHeight = 6
)

var sectionTitles = map[scope]string{
	scopeContainer: "Container",
	scopeItem:      "Item",
	scopeAction:    "Actions",
}

// View renders the editor
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("gridcraft"))
	b.WriteString("\n")

	controls := m.renderControls()
	canvas := m.renderCanvas()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, controls, " ", canvas))
	b.WriteString("\n")

	b.WriteString(panelStyle.Render(m.preview.View()))
	b.WriteString("\n")

	if m.status != "" {
		style := statusStyle
		if m.statusErr {
			style = errorStatusStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderControls() string {
	var b strings.Builder
	current := scope(-1)

	for i, c := range m.controls {
		if c.scope != current {
			current = c.scope
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(sectionStyle.Render(sectionTitles[c.scope]))
			b.WriteString("\n")
		}

		focused := i == m.focus
		if c.kind == KindButton {
			style := buttonStyle
			if focused {
				style = focusedButtonStyle
			}
			b.WriteString(style.Render(c.label))
			b.WriteString("\n")
			continue
		}

		label, value := labelStyle, valueStyle
		if focused {
			label, value = focusedLabelStyle, focusedValueStyle
		}
		b.WriteString(label.Render(c.label))
		if focused && m.editing {
			b.WriteString(m.input.View())
		} else {
			b.WriteString(value.Render(m.value(c)))
		}
		b.WriteString("\n")
	}

	return focusedPanelStyle.Width(panelWidth).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderCanvas() string {
	selected := -1
	if idx, ok := m.ctrl.Selected(); ok {
		selected = idx
	}
	width := max(20, m.width-panelWidth-8)
	out := m.canvas.Draw(surface.CanvasOptions{
		Width:    width,
		Selected: selected,
		ASCII:    m.ascii,
	})
	return panelStyle.Render(out)
}

func (m *Model) resizePreview() {
	m.preview.Width = max(20, m.width-4)
	m.preview.Height = max(minPreviewHeight, m.height/3)
}

// syncPreview rewrites the CSS viewport, highlighting lines that changed in
// the last refresh.
func (m *Model) syncPreview() {
	changed := m.ctrl.ChangedLines()
	lines := strings.Split(m.ctrl.PreviewText(), "\n")
	wrap := max(10, m.preview.Width-2)

	for i, line := range lines {
		line = wordwrap.String(line, wrap)
		if changed[i] {
			line = changedLineStyle.Render(line)
		}
		lines[i] = line
	}
	m.preview.SetContent(strings.Join(lines, "\n"))
}
