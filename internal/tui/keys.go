package tui

import "github.com/charmbracelet/bubbles/key"

// GlobalKeys are always active.
type GlobalKeys struct {
	Quit    key.Binding
	Help    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Send    key.Binding
	Clear   key.Binding
	Toggle  key.Binding
	Connect key.Binding
}

var globalKeys = GlobalKeys{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+q", "ctrl+c"),
		key.WithHelp("Ctrl+q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("ctrl+h", "f1"),
		key.WithHelp("Ctrl+h", "help"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("Shift+Tab", "previous field"),
	),
	Send: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("Ctrl+s", "send"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("Ctrl+l", "clear"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("Ctrl+t", "send immediately"),
	),
	Connect: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("Ctrl+u", "update connection"),
	),
}

// FieldKeys act on the focused field.
type FieldKeys struct {
	Activate key.Binding
	Toggle   key.Binding
}

var fieldKeys = FieldKeys{
	Activate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "activate"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("Space", "toggle"),
	),
}

// OverlayKeys are active when an overlay is shown.
type OverlayKeys struct {
	Close key.Binding
}

var overlayKeys = OverlayKeys{
	Close: key.NewBinding(
		key.WithKeys("esc", "enter"),
		key.WithHelp("Esc", "close"),
	),
}
