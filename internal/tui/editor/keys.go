package editor

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Decrease   key.Binding
	Increase   key.Binding
	Toggle     key.Binding
	Edit       key.Binding
	Cancel     key.Binding
	PrevItem   key.Binding
	NextItem   key.Binding
	Shuffle    key.Binding
	Reset      key.Binding
	Copy       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous control")),
		Down:       key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "next control")),
		Decrease:   key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/h", "decrease")),
		Increase:   key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("→/l", "increase")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle/press")),
		Edit:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit/press")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		PrevItem:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous item")),
		NextItem:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next item")),
		Shuffle:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shuffle")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy css")),
		ScrollUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll css")),
		ScrollDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll css")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Increase, k.Edit, k.Shuffle, k.Reset, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Decrease, k.Increase},
		{k.Toggle, k.Edit, k.Cancel, k.PrevItem, k.NextItem},
		{k.Shuffle, k.Reset, k.Copy, k.ScrollUp, k.ScrollDown},
		{k.Help, k.Quit},
	}
}
