// Package heading builds the two-line title shown at the top of every power
// menu backend.
package heading

import (
	"fmt"

	"github.com/atomicstack/tmux-power-menu/internal/i18n"
	"github.com/atomicstack/tmux-power-menu/internal/markup"
	"github.com/atomicstack/tmux-power-menu/internal/widget"
	"github.com/charmbracelet/x/ansi"
)

// Markup returns a bold title line and a subtitle naming the backend. Both
// values are escaped, and terminal escape sequences are stripped, so neither
// can change the structure of the label.
func Markup(title, backend string) string {
	return fmt.Sprintf("<big><b>%s</b></big>\n<small>Backend: %s</small>", sanitize(title), sanitize(backend))
}

func sanitize(s string) string {
	return markup.Escape(ansi.Strip(s))
}

// Label returns a label titled with the localised power menu tooltip.
func Label(backend string) *widget.Label {
	l := widget.NewLabel()
	l.SetMarkup(Markup(i18n.T("power-menu-tooltip"), backend))
	return l
}
