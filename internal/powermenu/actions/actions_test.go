package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/atomicstack/tmux-power-menu/internal/icons"
	"github.com/atomicstack/tmux-power-menu/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func TestMenuRunsSelectedAction(t *testing.T) {
	var ran []string
	m := NewMenu(context.Background(), "custom", []Action{
		{Entry: widget.Entry{ID: "a", Label: "first"}, Run: func(context.Context) error {
			ran = append(ran, "a")
			return nil
		}},
		{Entry: widget.Entry{ID: "b", Label: "second"}, Run: func(context.Context) error {
			ran = append(ran, "b")
			return nil
		}},
	})

	cmd := m.Update(enter)
	require.NotNil(t, cmd)
	assert.Equal(t, "a", m.Running())

	// A second select while the first is in flight is ignored.
	assert.Nil(t, m.Update(enter))

	msg := cmd()
	assert.Equal(t, []string{"a"}, ran)
	assert.Nil(t, m.Update(msg))
	assert.Empty(t, m.Running())

	status, isErr := m.Status()
	assert.Equal(t, "Requested first", status)
	assert.False(t, isErr)
	assert.Contains(t, ansi.Strip(m.View()), "Requested first")
}

func TestMenuShowsActionErrors(t *testing.T) {
	m := NewMenu(context.Background(), "unix", []Action{
		{Entry: widget.Entry{ID: "reboot", Label: "Reboot"}, Run: func(context.Context) error {
			return errors.New("permission denied")
		}},
	})
	cmd := m.Update(enter)
	require.NotNil(t, cmd)
	m.Update(cmd())

	status, isErr := m.Status()
	assert.Equal(t, "permission denied", status)
	assert.True(t, isErr)
}

func TestMenuIgnoresOtherBackendsResults(t *testing.T) {
	m := NewMenu(context.Background(), "unix", []Action{
		{Entry: widget.Entry{ID: "x", Label: "x"}, Run: func(context.Context) error { return nil }},
	})
	m.Update(ResultMsg{Backend: "systemd", ID: "x", Label: "x"})
	status, _ := m.Status()
	assert.Empty(t, status)
}

func TestMenuViewHasHeading(t *testing.T) {
	m := NewMenu(context.Background(), "systemd", nil)
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Power menu")
	assert.Contains(t, view, "Backend: systemd")
	assert.Contains(t, view, "(no actions configured)")
}

func TestMenuSkipsDisabledEntries(t *testing.T) {
	m := NewMenu(context.Background(), "systemd", []Action{
		{Entry: widget.Entry{ID: "hibernate", Label: "Hibernate", Disabled: true}, Run: func(context.Context) error { return nil }},
	})
	assert.Nil(t, m.Update(enter))
	assert.Empty(t, m.Running())
}

func TestMenuResolvesEntryIcons(t *testing.T) {
	t.Cleanup(func() { icons.SetASCII(false) })
	items := []Action{{Entry: widget.Entry{ID: "reboot", Label: "Reboot", Icon: icons.Reboot}}}

	glyph := NewMenu(context.Background(), "unix", items)
	assert.Equal(t, icons.Reboot, glyph.Entries()[0].Icon)

	icons.SetASCII(true)
	plain := NewMenu(context.Background(), "unix", items)
	assert.Equal(t, "[R]", plain.Entries()[0].Icon)
	assert.Contains(t, ansi.Strip(plain.View()), "[R]")
	assert.Equal(t, icons.Reboot, items[0].Icon, "caller entries are not modified")
}
