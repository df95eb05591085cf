package heading

import (
	"strings"
	"testing"

	"github.com/atomicstack/tmux-power-menu/internal/markup"
	"github.com/charmbracelet/x/ansi"
)

func TestMarkupEscapesTitle(t *testing.T) {
	got := Markup("Power <b>& co", "systemd")
	want := "<big><b>Power &lt;b&gt;&amp; co</b></big>\n<small>Backend: systemd</small>"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	rendered, err := markup.Render(got)
	if err != nil {
		t.Fatalf("escaped markup should render: %v", err)
	}
	if plain := ansi.Strip(rendered); plain != "Power <b>& co\nBackend: systemd" {
		t.Fatalf("unexpected rendered text %q", plain)
	}
}

func TestMarkupEmptyTitleKeepsTwoLines(t *testing.T) {
	got := Markup("", "custom")
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %d: %q", len(lines), got)
	}
	if lines[0] != "<big><b></b></big>" {
		t.Fatalf("unexpected title line %q", lines[0])
	}
	if _, err := markup.Render(got); err != nil {
		t.Fatalf("expected well-formed markup: %v", err)
	}
}

func TestMarkupIsIdempotent(t *testing.T) {
	if Markup("a&b", "unix") != Markup("a&b", "unix") {
		t.Fatalf("expected identical output for identical input")
	}
}

func TestMarkupStripsTerminalEscapes(t *testing.T) {
	got := Markup("\x1b[31mred\x1b[0m", "unix")
	if strings.Contains(got, "\x1b") {
		t.Fatalf("expected escape sequences removed, got %q", got)
	}
	if !strings.Contains(got, "<b>red</b>") {
		t.Fatalf("expected text kept, got %q", got)
	}
}

func TestLabelUsesTooltip(t *testing.T) {
	l := Label("unix")
	if !strings.Contains(ansi.Strip(l.View()), "Power menu") {
		t.Fatalf("expected tooltip title, got %q", l.View())
	}
}
