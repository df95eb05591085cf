package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Bar             *lipgloss.Style
	BarTitle        *lipgloss.Style
	Trigger         *lipgloss.Style
	TriggerExpanded *lipgloss.Style
	Tooltip         *lipgloss.Style
	Popover         *lipgloss.Style
	Loading         *lipgloss.Style
	Item            *lipgloss.Style
	ItemIndicator   *lipgloss.Style
	SelectedItem    *lipgloss.Style
	DisabledItem    *lipgloss.Style
	Error           *lipgloss.Style
	Info            *lipgloss.Style
	Filter          *lipgloss.Style
	FilterPrompt    *lipgloss.Style
	Footer          *lipgloss.Style

	// Markup styles, keyed by the tag they render.
	Bold  *lipgloss.Style
	Big   *lipgloss.Style
	Small *lipgloss.Style
	Em    *lipgloss.Style
}

var defaultStyles = Styles{
	Bar: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
	),
	BarTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("236")).Bold(true),
	),
	Trigger: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Background(lipgloss.Color("236")).Padding(0, 1),
	),
	TriggerExpanded: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("196")).Bold(true).Padding(0, 1),
	),
	Tooltip: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Background(lipgloss.Color("236")).Italic(true),
	),
	Popover: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	DisabledItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Bold: ptr(
		lipgloss.NewStyle().Bold(true),
	),
	Big: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Small: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true),
	),
	Em: ptr(
		lipgloss.NewStyle().Italic(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Render applies style to text, tolerating a nil style.
func Render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
