package ui

import (
	"strings"

	"github.com/atomicstack/tmux-power-menu/internal/i18n"
	"github.com/atomicstack/tmux-power-menu/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View renders the bar, the open popover and the footer.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	lines := []string{m.barView()}
	if panel := m.menu.PanelView(); panel != "" {
		if m.width > 0 {
			panel = lipgloss.PlaceHorizontal(m.width, lipgloss.Right, panel)
		}
		lines = append(lines, panel)
	}
	if m.showFooter {
		lines = append(lines, m.footerView())
	}
	return limitHeight(strings.Join(lines, "\n"), m.height)
}

// barView fills the width exactly when it is known. Without room for both,
// the title is shortened first and then the trigger tooltip.
func (m *Model) barView() string {
	text := " " + i18n.T("shell-title") + " "
	trigger := m.menu.TriggerView()
	if m.width <= 0 {
		return theme.Render(styles.BarTitle, text) + theme.Render(styles.Bar, " ") + trigger
	}
	room := m.width - lipgloss.Width(trigger) - 1
	switch {
	case room >= lipgloss.Width(text):
	case room > 0:
		text = ansi.Truncate(text, room, "…")
	default:
		text = ""
		trigger = m.menu.FitTriggerView(m.width)
	}
	title := ""
	if text != "" {
		title = theme.Render(styles.BarTitle, text)
	}
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(trigger)
	if gap < 0 {
		gap = 0
	}
	return title + theme.Render(styles.Bar, strings.Repeat(" ", gap)) + trigger
}

func (m *Model) footerView() string {
	return theme.Render(styles.Footer, i18n.T("shell-hints"))
}

// limitHeight keeps the first height lines; the bar always survives.
func limitHeight(view string, height int) string {
	if height <= 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	if len(lines) <= height {
		return view
	}
	return strings.Join(lines[:height], "\n")
}
