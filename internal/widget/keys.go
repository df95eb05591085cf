package widget

import "github.com/charmbracelet/bubbles/key"

// ButtonKeyMap binds the menu button's trigger and dismissal keys.
type ButtonKeyMap struct {
	Activate key.Binding
	Toggle   key.Binding
	Dismiss  key.Binding
}

// DefaultButtonKeys opens on enter/space, toggles on ctrl+p, closes on esc.
func DefaultButtonKeys() ButtonKeyMap {
	return ButtonKeyMap{
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Toggle:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "toggle")),
		Dismiss:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// ListKeyMap binds action list navigation.
type ListKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Home        key.Binding
	End         key.Binding
	Select      key.Binding
	Backspace   key.Binding
	ClearFilter key.Binding
}

// DefaultListKeys returns the arrow/enter bindings used by every backend list.
func DefaultListKeys() ListKeyMap {
	return ListKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "ctrl+k"), key.WithHelp("↑", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "ctrl+j"), key.WithHelp("↓", "down")),
		Home:        key.NewBinding(key.WithKeys("home")),
		End:         key.NewBinding(key.WithKeys("end")),
		Select:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Backspace:   key.NewBinding(key.WithKeys("backspace")),
		ClearFilter: key.NewBinding(key.WithKeys("ctrl+u")),
	}
}
