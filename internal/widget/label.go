package widget

import (
	"github.com/atomicstack/tmux-power-menu/internal/markup"
	tea "github.com/charmbracelet/bubbletea"
)

// Label displays a line or two of markup.
type Label struct {
	markup string
}

// NewLabel returns an empty label.
func NewLabel() *Label { return &Label{} }

// SetMarkup replaces the label content.
func (l *Label) SetMarkup(m string) { l.markup = m }

// Markup returns the raw markup.
func (l *Label) Markup() string { return l.markup }

// Update is a no-op; labels are static.
func (l *Label) Update(tea.Msg) tea.Cmd { return nil }

// View renders the markup.
func (l *Label) View() string {
	if l.markup == "" {
		return ""
	}
	return markup.MustRender(l.markup)
}
