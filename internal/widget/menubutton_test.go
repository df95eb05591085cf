package widget

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type recorder struct {
	msgs []tea.Msg
	view string
}

func (r *recorder) Update(msg tea.Msg) tea.Cmd {
	r.msgs = append(r.msgs, msg)
	return nil
}

func (r *recorder) View() string { return r.view }

type tickMsg struct{}

func newButton() (*MenuButton, *recorder) {
	body := &recorder{view: "body"}
	b := NewMenuButton("P", "Power menu")
	b.SetPopover(NewPopover(body))
	return b, body
}

func TestMenuButtonStartsCollapsed(t *testing.T) {
	b, _ := newButton()
	if b.Expanded() {
		t.Fatalf("expected collapsed button")
	}
	if b.PanelView() != "" {
		t.Fatalf("expected no panel while collapsed")
	}
	if view := ansi.Strip(b.View()); !strings.Contains(view, "Power menu") || !strings.Contains(view, "P") {
		t.Fatalf("expected tooltip and icon in trigger, got %q", view)
	}
}

func TestMenuButtonTransitions(t *testing.T) {
	b, _ := newButton()
	b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !b.Expanded() {
		t.Fatalf("expected enter to expand")
	}
	if !strings.Contains(ansi.Strip(b.View()), "body") {
		t.Fatalf("expected body in expanded view")
	}
	b.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if b.Expanded() {
		t.Fatalf("expected esc to collapse")
	}
	b.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if !b.Expanded() {
		t.Fatalf("expected ctrl+p to expand")
	}
	b.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if b.Expanded() {
		t.Fatalf("expected ctrl+p again to collapse")
	}
	b.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	b.Update(tea.BlurMsg{})
	if b.Expanded() {
		t.Fatalf("expected blur to dismiss")
	}
}

func TestMenuButtonForwardsBlurAfterCollapsing(t *testing.T) {
	b, body := newButton()
	b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	b.Update(tea.BlurMsg{})
	if b.Expanded() {
		t.Fatalf("expected blur to dismiss")
	}
	if len(body.msgs) != 1 {
		t.Fatalf("expected blur to reach the body, got %#v", body.msgs)
	}
	if _, ok := body.msgs[0].(tea.BlurMsg); !ok {
		t.Fatalf("expected BlurMsg, got %T", body.msgs[0])
	}
}

func TestMenuButtonRoutesKeysOnlyWhenExpanded(t *testing.T) {
	b, body := newButton()
	b.Update(tea.KeyMsg{Type: tea.KeyDown})
	b.Update(tickMsg{})
	if len(body.msgs) != 1 {
		t.Fatalf("expected only the non-key message while collapsed, got %#v", body.msgs)
	}
	if _, ok := body.msgs[0].(tickMsg); !ok {
		t.Fatalf("expected tick to reach body, got %T", body.msgs[0])
	}

	b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(body.msgs) != 2 {
		t.Fatalf("expected second enter to reach body, got %#v", body.msgs)
	}
	if km, ok := body.msgs[1].(tea.KeyMsg); !ok || km.Type != tea.KeyEnter {
		t.Fatalf("expected enter forwarded, got %#v", body.msgs[1])
	}
}

func TestPopoverEmbedsChildUnchanged(t *testing.T) {
	body := &recorder{view: "a very long line that needs clipping"}
	p := NewPopover(body)
	if p.Child() != body {
		t.Fatalf("expected popover child to be the same widget")
	}
	p.SetMaxWidth(12)
	for _, line := range strings.Split(ansi.Strip(p.View()), "\n") {
		if w := ansi.StringWidth(line); w > 12 {
			t.Fatalf("line %q exceeds width: %d", line, w)
		}
	}
}

func TestFitTriggerViewKeepsIcon(t *testing.T) {
	b, _ := newButton()
	full := b.TriggerView()
	if got := b.FitTriggerView(0); got != full {
		t.Fatalf("expected unbounded fit to match full trigger")
	}
	if got := b.FitTriggerView(lipgloss.Width(full)); got != full {
		t.Fatalf("expected full trigger when it fits")
	}
	short := ansi.Strip(b.FitTriggerView(8))
	if lipgloss.Width(short) != 8 || !strings.HasSuffix(short, "P ") || !strings.Contains(short, "…") {
		t.Fatalf("expected shortened tooltip and icon in 8 columns, got %q", short)
	}
	if got := ansi.Strip(b.FitTriggerView(3)); got != " P " {
		t.Fatalf("expected icon only, got %q", got)
	}
}
