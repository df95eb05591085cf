// Package markup renders a small Pango-like markup dialect to styled terminal
// text. Supported tags are b, i, big and small; character entities are decoded.
// Anything else inside angle brackets is dropped and only its text is kept.
package markup

import (
	"fmt"
	"io"
	"strings"

	"github.com/atomicstack/tmux-power-menu/internal/theme"
	"github.com/charmbracelet/lipgloss"
	xhtml "golang.org/x/net/html"
)

// Escape neutralises characters that would otherwise be read as markup.
func Escape(text string) string {
	return xhtml.EscapeString(text)
}

type span struct {
	tag string
}

// Render converts markup into lipgloss-styled text. Unbalanced closing tags are
// reported as errors so callers notice broken templates.
func Render(markup string) (string, error) {
	styles := theme.Default()
	z := xhtml.NewTokenizer(strings.NewReader(markup))
	var (
		out   strings.Builder
		stack []span
	)
	for {
		tt := z.Next()
		switch tt {
		case xhtml.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return "", err
			}
			if len(stack) > 0 {
				return "", fmt.Errorf("markup: unclosed <%s>", stack[len(stack)-1].tag)
			}
			return out.String(), nil
		case xhtml.TextToken:
			text := string(z.Text())
			out.WriteString(styleFor(styles, stack).Render(text))
		case xhtml.StartTagToken:
			name, _ := z.TagName()
			stack = append(stack, span{tag: string(name)})
		case xhtml.EndTagToken:
			name, _ := z.TagName()
			if len(stack) == 0 || stack[len(stack)-1].tag != string(name) {
				return "", fmt.Errorf("markup: unexpected </%s>", name)
			}
			stack = stack[:len(stack)-1]
		case xhtml.SelfClosingTagToken, xhtml.CommentToken, xhtml.DoctypeToken:
		}
	}
}

// MustRender is Render for markup built by this program; on error the raw text
// content is returned instead.
func MustRender(markup string) string {
	out, err := Render(markup)
	if err != nil {
		return Plain(markup)
	}
	return out
}

// Plain strips tags and decodes entities.
func Plain(markup string) string {
	z := xhtml.NewTokenizer(strings.NewReader(markup))
	var out strings.Builder
	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			return out.String()
		case xhtml.TextToken:
			out.Write(z.Text())
		}
	}
}

// styleFor folds the open spans into one style. Multi-line text is rendered
// per line by lipgloss so newline structure survives.
func styleFor(styles *theme.Styles, stack []span) lipgloss.Style {
	style := lipgloss.NewStyle()
	for _, s := range stack {
		var layer *lipgloss.Style
		switch s.tag {
		case "b":
			layer = styles.Bold
		case "big":
			layer = styles.Big
		case "small":
			layer = styles.Small
		case "i":
			layer = styles.Em
		}
		if layer != nil {
			style = style.Inherit(*layer)
			// Inherit never overrides set values; bold has to be forced.
			if s.tag == "b" {
				style = style.Bold(true)
			}
		}
	}
	return style
}
