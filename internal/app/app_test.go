package app

import (
	"strings"
	"testing"

	"github.com/atomicstack/tmux-power-menu/internal/icons"
	"github.com/atomicstack/tmux-power-menu/internal/powermenu"
	"github.com/atomicstack/tmux-power-menu/internal/powermenu/actions"
	"github.com/atomicstack/tmux-power-menu/internal/powermenu/custom"
	"github.com/atomicstack/tmux-power-menu/internal/powermenu/systemd"
	"github.com/atomicstack/tmux-power-menu/internal/powermenu/unix"
	"github.com/charmbracelet/x/ansi"
	"vawter.tech/stopper"
)

func stubBackends(launched *string) powermenu.Backends {
	return powermenu.Backends{
		Systemd: func(ctx *stopper.Context, _ systemd.Config) (*actions.Menu, error) {
			*launched = systemd.Name
			return actions.NewMenu(ctx, systemd.Name, nil), nil
		},
		Unix: func(ctx *stopper.Context, _ unix.Config) (*actions.Menu, error) {
			*launched = unix.Name
			return actions.NewMenu(ctx, unix.Name, nil), nil
		},
		Custom: func(ctx *stopper.Context, _ custom.Config) (*actions.Menu, error) {
			*launched = custom.Name
			return actions.NewMenu(ctx, custom.Name, nil), nil
		},
	}
}

func TestNewModelDefaultsToServiceManager(t *testing.T) {
	var launched string
	m := NewModel(Config{}, powermenu.WithBackends(stubBackends(&launched)))
	defer func() { _ = m.Close() }()
	<-readyOf(m.Menu())
	if launched != systemd.Name {
		t.Fatalf("expected systemd backend, got %q", launched)
	}
}

func TestNewModelUsesASCIIIcon(t *testing.T) {
	t.Cleanup(func() { icons.SetASCII(false) })
	var launched string
	m := NewModel(Config{ASCIIIcons: true, PowerMenu: powermenu.CustomConfig{}}, powermenu.WithBackends(stubBackends(&launched)))
	defer func() { _ = m.Close() }()
	<-readyOf(m.Menu())
	if launched != custom.Name {
		t.Fatalf("expected custom backend, got %q", launched)
	}
	if view := ansi.Strip(m.View()); !strings.Contains(view, "[P]") {
		t.Fatalf("expected ascii trigger, got %q", view)
	}
	if !icons.ASCII() {
		t.Fatalf("expected --ascii-icons to reach the backends")
	}
}

func readyOf(pm *powermenu.PowerMenu) <-chan struct{} {
	switch inst := pm.Instance().(type) {
	case powermenu.SystemdInstance:
		return inst.Ready()
	case powermenu.UnixInstance:
		return inst.Ready()
	case powermenu.CustomInstance:
		return inst.Ready()
	}
	panic("unknown instance")
}
