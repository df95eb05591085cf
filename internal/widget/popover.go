package widget

import (
	"strings"

	"github.com/atomicstack/tmux-power-menu/internal/component"
	"github.com/atomicstack/tmux-power-menu/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
)

// Popover frames a single child widget. The child is embedded as-is; every
// message the popover receives is handed to it unchanged.
type Popover struct {
	child    component.Widget
	maxWidth int
}

// NewPopover wraps child.
func NewPopover(child component.Widget) *Popover {
	return &Popover{child: child}
}

// Child returns the embedded widget.
func (p *Popover) Child() component.Widget { return p.child }

// SetMaxWidth bounds the rendered width of each body line. Zero disables the
// limit.
func (p *Popover) SetMaxWidth(width int) {
	if width < 0 {
		width = 0
	}
	p.maxWidth = width
}

// Init mounts the child when it needs a start-up command.
func (p *Popover) Init() tea.Cmd {
	if init, ok := p.child.(component.Initializer); ok {
		return init.Init()
	}
	return nil
}

// Update forwards msg to the child.
func (p *Popover) Update(msg tea.Msg) tea.Cmd {
	if p.child == nil {
		return nil
	}
	return p.child.Update(msg)
}

// View renders the framed child.
func (p *Popover) View() string {
	if p.child == nil {
		return ""
	}
	body := p.child.View()
	if p.maxWidth > 0 {
		// Border and padding take four columns.
		inner := p.maxWidth - 4
		if inner < 1 {
			inner = 1
		}
		lines := strings.Split(body, "\n")
		for i, line := range lines {
			lines[i] = truncate.StringWithTail(line, uint(inner), "…")
		}
		body = strings.Join(lines, "\n")
	}
	return theme.Render(theme.Default().Popover, body)
}
