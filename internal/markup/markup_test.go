package markup

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderKeepsTextAndLines(t *testing.T) {
	out, err := Render("<big><b>Power</b></big>\n<small>Backend: unix</small>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ansi.Strip(out); got != "Power\nBackend: unix" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestRenderDecodesEntities(t *testing.T) {
	out, err := Render("<b>a &lt;b&gt; &amp; c</b>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ansi.Strip(out); got != "a <b> & c" {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestRenderRejectsUnbalancedTags(t *testing.T) {
	if _, err := Render("<b>open"); err == nil {
		t.Fatalf("expected error for unclosed tag")
	}
	if _, err := Render("text</b>"); err == nil {
		t.Fatalf("expected error for stray closing tag")
	}
}

func TestEscapeRoundTripsThroughRender(t *testing.T) {
	raw := `<i>&"'`
	out, err := Render("<b>" + Escape(raw) + "</b>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ansi.Strip(out); got != raw {
		t.Fatalf("expected %q, got %q", raw, got)
	}
}

func TestMustRenderFallsBackToPlain(t *testing.T) {
	if got := ansi.Strip(MustRender("<b>broken")); got != "broken" {
		t.Fatalf("expected plain fallback, got %q", got)
	}
}
