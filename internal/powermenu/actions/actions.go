// Package actions is the menu body shared by the power menu backends: a
// heading, a filterable list of actions and a status line.
package actions

import (
	"context"
	"strings"

	"github.com/atomicstack/tmux-power-menu/internal/i18n"
	"github.com/atomicstack/tmux-power-menu/internal/icons"
	"github.com/atomicstack/tmux-power-menu/internal/logging/events"
	"github.com/atomicstack/tmux-power-menu/internal/powermenu/heading"
	"github.com/atomicstack/tmux-power-menu/internal/theme"
	"github.com/atomicstack/tmux-power-menu/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
)

// RunFunc performs an action. It runs inside a tea.Cmd, never on the UI loop.
type RunFunc func(ctx context.Context) error

// Action is one list entry and the routine behind it.
type Action struct {
	widget.Entry
	Run RunFunc
}

// ResultMsg reports a finished action back to the menu that started it.
type ResultMsg struct {
	Backend string
	ID      string
	Label   string
	Err     error
}

// Menu is the view a backend hands to the power menu.
type Menu struct {
	backend string
	ctx     context.Context

	heading *widget.Label
	list    *widget.ActionList
	runs    map[string]RunFunc

	running   string
	status    string
	statusErr bool
}

// NewMenu builds a menu for backend. ctx bounds every action it starts. Entry
// icons are resolved through icons.Get.
func NewMenu(ctx context.Context, backend string, items []Action) *Menu {
	m := &Menu{
		backend: backend,
		ctx:     ctx,
		heading: heading.Label(backend),
		runs:    make(map[string]RunFunc, len(items)),
	}
	entries := make([]widget.Entry, 0, len(items))
	for _, item := range items {
		item.Icon = icons.Get(item.Icon)
		entries = append(entries, item.Entry)
		m.runs[item.ID] = item.Run
	}
	m.list = widget.NewActionList(backend, entries, m.start)
	return m
}

// Backend names the backend the menu belongs to.
func (m *Menu) Backend() string { return m.backend }

// Heading returns the menu title label.
func (m *Menu) Heading() *widget.Label { return m.heading }

// List returns the action list.
func (m *Menu) List() *widget.ActionList { return m.list }

// Entries returns the entries in display order.
func (m *Menu) Entries() []widget.Entry { return m.list.Entries() }

// Running reports the id of the action in flight, if any.
func (m *Menu) Running() string { return m.running }

// Status returns the status line text and whether it reports an error.
func (m *Menu) Status() (string, bool) { return m.status, m.statusErr }

func (m *Menu) start(entry widget.Entry) tea.Cmd {
	if m.running != "" {
		return nil
	}
	run := m.runs[entry.ID]
	if run == nil {
		return nil
	}
	m.running = entry.ID
	m.status = i18n.TF("power-menu-running", map[string]interface{}{"Action": entry.Label})
	m.statusErr = false

	ctx, backend := m.ctx, m.backend
	return func() tea.Msg {
		err := run(ctx)
		return ResultMsg{Backend: backend, ID: entry.ID, Label: entry.Label, Err: err}
	}
}

// Update consumes results addressed to this menu and hands everything else
// to the action list.
func (m *Menu) Update(msg tea.Msg) tea.Cmd {
	if res, ok := msg.(ResultMsg); ok && res.Backend == m.backend {
		if res.ID == m.running {
			m.running = ""
		}
		if res.Err != nil {
			events.Action.Error(m.backend, res.ID, res.Err)
			m.status = res.Err.Error()
			m.statusErr = true
			return nil
		}
		events.Action.Success(m.backend, res.ID, res.Label)
		m.status = i18n.TF("power-menu-done", map[string]interface{}{"Action": res.Label})
		m.statusErr = false
		return nil
	}
	return m.list.Update(msg)
}

// View stacks heading, list and status.
func (m *Menu) View() string {
	styles := theme.Default()
	parts := []string{m.heading.View(), "", m.list.View()}
	if m.status != "" {
		style := styles.Info
		if m.statusErr {
			style = styles.Error
		}
		parts = append(parts, "", theme.Render(style, m.status))
	}
	return strings.Join(parts, "\n")
}
