package editor

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	appeditor "github.com/alexisbeaulieu97/gridcraft/internal/app/editor"
	"github.com/alexisbeaulieu97/gridcraft/internal/logger"
	"github.com/alexisbeaulieu97/gridcraft/internal/ports"
	"github.com/alexisbeaulieu97/gridcraft/internal/surface"
)

// Canvas draws the current state of the surface.
type Canvas interface {
	Draw(opts surface.CanvasOptions) string
}

// Options configures the editor model.
type Options struct {
	MaxColumns int
	MaxItems   int
	ASCII      bool
	Logger     ports.Logger
	// Clipboard writes text to the system clipboard. Defaults to
	// clipboard.WriteAll.
	Clipboard func(string) error
}

// Model is the editor screen.
type Model struct {
	// Core data
	ctrl   *appeditor.Controller
	canvas Canvas

	// UI state
	controls []control
	focus    int
	editing  bool
	input    textinput.Model
	preview  viewport.Model
	help     help.Model
	keys     keyMap
	showHelp bool

	// Status line
	status    string
	statusErr bool

	// Dimensions
	width  int
	height int

	// Configuration
	ascii     bool
	clipboard func(string) error
	log       ports.Logger
}

// NewModel creates a new editor model bound to a controller.
func NewModel(ctrl *appeditor.Controller, canvas Canvas, opts Options) Model {
	if opts.MaxColumns <= 0 {
		opts.MaxColumns = 12
	}
	if opts.MaxItems <= 0 {
		opts.MaxItems = 40
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	in := textinput.New()
	in.CharLimit = 32
	in.Width = 16
	in.Prompt = "› "
	if opts.ASCII {
		in.Prompt = "> "
	}

	m := Model{
		ctrl:      ctrl,
		canvas:    canvas,
		controls:  newControls(opts.MaxColumns, opts.MaxItems),
		input:     in,
		preview:   viewport.New(40, 12),
		help:      help.New(),
		keys:      defaultKeyMap(),
		width:     120,
		height:    36,
		ascii:     opts.ASCII,
		clipboard: opts.Clipboard,
		log:       opts.Logger,
	}
	m.syncPreview()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Focused returns the id of the focused control.
func (m Model) Focused() ControlID {
	return m.controls[m.focus].id
}

// Editing reports whether a text field is open.
func (m Model) Editing() bool {
	return m.editing
}

// Status returns the current status line.
func (m Model) Status() string {
	return m.status
}

func (m Model) focused() control {
	return m.controls[m.focus]
}

// focusControl moves focus to the control with the given id.
func (m *Model) focusControl(id ControlID) bool {
	for i, c := range m.controls {
		if c.id == id {
			m.focus = i
			return true
		}
	}
	return false
}

func (m *Model) moveFocus(delta int) {
	n := len(m.controls)
	m.focus = ((m.focus+delta)%n + n) % n
}
