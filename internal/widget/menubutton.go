package widget

import (
	"github.com/atomicstack/tmux-power-menu/internal/logging/events"
	"github.com/atomicstack/tmux-power-menu/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// MenuButton is an always-visible trigger that reveals a popover. It is either
// collapsed (the default) or expanded.
type MenuButton struct {
	icon     string
	tooltip  string
	popover  *Popover
	expanded bool
	keys     ButtonKeyMap
}

// NewMenuButton builds a collapsed button.
func NewMenuButton(icon, tooltip string) *MenuButton {
	return &MenuButton{icon: icon, tooltip: tooltip, keys: DefaultButtonKeys()}
}

// SetPopover attaches the panel revealed on activation.
func (b *MenuButton) SetPopover(p *Popover) { b.popover = p }

// Popover returns the attached panel.
func (b *MenuButton) Popover() *Popover { return b.popover }

// SetKeys overrides the default key bindings.
func (b *MenuButton) SetKeys(keys ButtonKeyMap) { b.keys = keys }

// Icon returns the trigger glyph.
func (b *MenuButton) Icon() string { return b.icon }

// Tooltip returns the trigger's tooltip text.
func (b *MenuButton) Tooltip() string { return b.tooltip }

// Expanded reports whether the popover is visible.
func (b *MenuButton) Expanded() bool { return b.expanded }

// Init mounts the popover body.
func (b *MenuButton) Init() tea.Cmd {
	if b.popover == nil {
		return nil
	}
	return b.popover.Init()
}

// Update owns the collapsed/expanded transitions. Keys reach the popover body
// only while expanded; every other message reaches it in either state.
func (b *MenuButton) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.Toggle):
			b.setExpanded(!b.expanded, "toggle")
			return nil
		case !b.expanded && key.Matches(msg, b.keys.Activate):
			b.setExpanded(true, "activate")
			return nil
		case b.expanded && key.Matches(msg, b.keys.Dismiss):
			b.setExpanded(false, "dismiss")
			return nil
		}
		if !b.expanded {
			return nil
		}
		return b.forward(msg)
	case tea.BlurMsg:
		if b.expanded {
			b.setExpanded(false, "blur")
		}
	}
	return b.forward(msg)
}

func (b *MenuButton) forward(msg tea.Msg) tea.Cmd {
	if b.popover == nil {
		return nil
	}
	return b.popover.Update(msg)
}

func (b *MenuButton) setExpanded(expanded bool, reason string) {
	if b.expanded == expanded {
		return
	}
	b.expanded = expanded
	events.Menu.Toggle(expanded, reason)
}

// TriggerView renders the button itself.
func (b *MenuButton) TriggerView() string {
	styles := theme.Default()
	style := styles.Trigger
	if b.expanded {
		style = styles.TriggerExpanded
	}
	trigger := theme.Render(style, b.icon)
	if b.expanded || b.tooltip == "" {
		return trigger
	}
	return theme.Render(styles.Tooltip, b.tooltip+" ") + trigger
}

// FitTriggerView renders the trigger within width columns. The tooltip is
// shortened or dropped first; the icon is always kept.
func (b *MenuButton) FitTriggerView(width int) string {
	full := b.TriggerView()
	if width <= 0 || lipgloss.Width(full) <= width {
		return full
	}
	styles := theme.Default()
	style := styles.Trigger
	if b.expanded {
		style = styles.TriggerExpanded
	}
	trigger := theme.Render(style, b.icon)
	room := width - lipgloss.Width(trigger) - 1
	if b.expanded || b.tooltip == "" || room < 1 {
		return trigger
	}
	return theme.Render(styles.Tooltip, ansi.Truncate(b.tooltip, room, "…")+" ") + trigger
}

// PanelView renders the popover, or nothing while collapsed.
func (b *MenuButton) PanelView() string {
	if !b.expanded || b.popover == nil {
		return ""
	}
	return b.popover.View()
}

// View stacks the panel under the trigger, right-aligned.
func (b *MenuButton) View() string {
	panel := b.PanelView()
	if panel == "" {
		return b.TriggerView()
	}
	return lipgloss.JoinVertical(lipgloss.Right, b.TriggerView(), panel)
}
