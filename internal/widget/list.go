package widget

import (
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-power-menu/internal/i18n"
	"github.com/atomicstack/tmux-power-menu/internal/logging/events"
	"github.com/atomicstack/tmux-power-menu/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Entry is one selectable action.
type Entry struct {
	ID       string
	Label    string
	Icon     string
	Disabled bool
	Note     string
}

// SelectFunc runs when an enabled entry is chosen.
type SelectFunc func(Entry) tea.Cmd

// ActionList is a filterable, cursor-driven list of entries.
type ActionList struct {
	owner    string
	full     []Entry
	items    []Entry
	cursor   int
	filter   string
	keys     ListKeyMap
	onSelect SelectFunc
}

// NewActionList builds a list. owner names the backend in trace logs.
func NewActionList(owner string, entries []Entry, onSelect SelectFunc) *ActionList {
	l := &ActionList{owner: owner, keys: DefaultListKeys(), onSelect: onSelect}
	l.SetEntries(entries)
	return l
}

// SetEntries replaces the entries, keeping the filter.
func (l *ActionList) SetEntries(entries []Entry) {
	l.full = cloneEntries(entries)
	l.applyFilter()
}

// Entries returns all entries, ignoring the filter.
func (l *ActionList) Entries() []Entry { return cloneEntries(l.full) }

// Visible returns the entries that pass the filter.
func (l *ActionList) Visible() []Entry { return cloneEntries(l.items) }

// Cursor returns the index of the highlighted visible entry.
func (l *ActionList) Cursor() int { return l.cursor }

// Filter returns the current query.
func (l *ActionList) Filter() string { return l.filter }

// Current returns the highlighted entry.
func (l *ActionList) Current() (Entry, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return Entry{}, false
	}
	return l.items[l.cursor], true
}

// SetFilter replaces the query and moves the cursor to the best match.
func (l *ActionList) SetFilter(query string) {
	l.filter = query
	l.applyFilter()
	if idx := BestMatchIndex(l.items, query); idx >= 0 {
		l.cursor = idx
	}
	events.Menu.Filter(l.owner, query)
}

func (l *ActionList) applyFilter() {
	l.items = FilterEntries(l.full, l.filter)
	if len(l.items) == 0 {
		l.cursor = 0
		return
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}
}

// MoveCursor shifts the cursor by delta, clamped to the visible entries.
func (l *ActionList) MoveCursor(delta int) bool {
	if len(l.items) == 0 {
		l.cursor = 0
		return false
	}
	old := l.cursor
	l.cursor += delta
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}
	if l.cursor != old {
		events.Menu.Cursor(l.owner, l.cursor)
	}
	return l.cursor != old
}

// Update handles navigation, filtering and selection keys.
func (l *ActionList) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, l.keys.Up):
		l.MoveCursor(-1)
	case key.Matches(keyMsg, l.keys.Down):
		l.MoveCursor(1)
	case key.Matches(keyMsg, l.keys.Home):
		l.MoveCursor(-len(l.items))
	case key.Matches(keyMsg, l.keys.End):
		l.MoveCursor(len(l.items))
	case key.Matches(keyMsg, l.keys.Select):
		return l.selectCurrent()
	case key.Matches(keyMsg, l.keys.Backspace):
		if runes := []rune(l.filter); len(runes) > 0 {
			l.SetFilter(string(runes[:len(runes)-1]))
		}
	case key.Matches(keyMsg, l.keys.ClearFilter):
		if l.filter != "" {
			l.SetFilter("")
		}
	case keyMsg.Type == tea.KeyRunes || keyMsg.Type == tea.KeySpace:
		l.SetFilter(l.filter + string(keyMsg.Runes))
	}
	return nil
}

func (l *ActionList) selectCurrent() tea.Cmd {
	entry, ok := l.Current()
	if !ok || entry.Disabled || l.onSelect == nil {
		return nil
	}
	events.Menu.Select(l.owner, entry.ID, entry.Label)
	return l.onSelect(entry)
}

// View renders the entries with the cursor indicator and filter prompt.
func (l *ActionList) View() string {
	styles := theme.Default()
	lines := make([]string, 0, len(l.items)+1)
	if len(l.full) == 0 {
		return theme.Render(styles.Info, i18n.T("power-menu-empty"))
	}
	if len(l.items) == 0 {
		lines = append(lines, theme.Render(styles.Info, i18n.TF("power-menu-no-matches", map[string]interface{}{"Filter": fmt.Sprintf("%q", l.filter)})))
	}
	for i, e := range l.items {
		text := e.Label
		if e.Icon != "" {
			text = e.Icon + " " + text
		}
		if e.Note != "" {
			text += " (" + e.Note + ")"
		}
		indicator := "  "
		style := styles.Item
		switch {
		case e.Disabled:
			style = styles.DisabledItem
		case i == l.cursor:
			style = styles.SelectedItem
		}
		if i == l.cursor {
			indicator = theme.Render(styles.ItemIndicator, "▌ ")
		}
		lines = append(lines, indicator+theme.Render(style, text))
	}
	if l.filter != "" {
		lines = append(lines, theme.Render(styles.FilterPrompt, "» ")+theme.Render(styles.Filter, l.filter))
	}
	return strings.Join(lines, "\n")
}
