// Package unix is the power menu backend that runs the operating system's own
// binaries directly.
package unix

import (
	"context"
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-power-menu/internal/i18n"
	"github.com/atomicstack/tmux-power-menu/internal/icons"
	"github.com/atomicstack/tmux-power-menu/internal/logging"
	"github.com/atomicstack/tmux-power-menu/internal/powermenu/actions"
	"github.com/atomicstack/tmux-power-menu/internal/process"
	"github.com/atomicstack/tmux-power-menu/internal/tmux"
	"github.com/atomicstack/tmux-power-menu/internal/widget"
	"vawter.tech/stopper"
)

// Name is the backend label shown in the heading.
const Name = "unix"

// Config holds an argv per action. An empty argv hides the action, except for
// Logout, where it means detaching the clients of the tmux server.
type Config struct {
	Shutdown   []string `mapstructure:"shutdown"`
	Reboot     []string `mapstructure:"reboot"`
	Suspend    []string `mapstructure:"suspend"`
	Logout     []string `mapstructure:"logout"`
	TmuxSocket string   `mapstructure:"tmux_socket"`
}

// DefaultConfig uses shutdown(8) and tmux detach.
func DefaultConfig() Config {
	return Config{
		Shutdown: []string{"shutdown", "-h", "now"},
		Reboot:   []string{"shutdown", "-r", "now"},
	}
}

// Deps are the side effects the backend relies on.
type Deps struct {
	Runner   process.Runner
	LookPath func(string) (string, error)
	// Detach detaches the tmux clients on socket.
	Detach func(socket string) (int, error)
	// Socket resolves the tmux socket from the configured value.
	Socket func(flagValue string) (string, error)
}

// DefaultDeps runs real binaries and talks to the real tmux server.
func DefaultDeps() Deps {
	return Deps{
		Runner:   process.Exec{},
		LookPath: process.LookPath,
		Detach:   tmux.DetachClients,
		Socket:   tmux.ResolveSocketPath,
	}
}

// Init builds the menu with DefaultDeps.
func Init(ctx *stopper.Context, cfg Config) (*actions.Menu, error) {
	return Start(ctx, cfg, DefaultDeps())
}

// Start resolves every configured binary and builds the menu. Missing
// binaries leave their entry visible but disabled.
func Start(ctx context.Context, cfg Config, deps Deps) (*actions.Menu, error) {
	var items []actions.Action
	add := func(id, msgID, icon string, argv []string) {
		if len(argv) == 0 {
			return
		}
		items = append(items, commandAction(deps, id, i18n.T(msgID), icon, argv))
	}
	add("poweroff", "power-menu-poweroff", icons.PowerOff, cfg.Shutdown)
	add("reboot", "power-menu-reboot", icons.Reboot, cfg.Reboot)
	add("suspend", "power-menu-suspend", icons.Suspend, cfg.Suspend)
	if len(cfg.Logout) > 0 {
		add("logout", "power-menu-logout", icons.Logout, cfg.Logout)
	} else {
		items = append(items, detachAction(deps, cfg.TmuxSocket))
	}
	return actions.NewMenu(ctx, Name, items), nil
}

func commandAction(deps Deps, id, label, icon string, argv []string) actions.Action {
	item := actions.Action{Entry: widget.Entry{ID: id, Label: label, Icon: icon}}
	bin, err := deps.LookPath(argv[0])
	if err != nil {
		logging.Errorf(Name, "%s: %v", id, err)
		item.Disabled = true
		item.Note = i18n.TF("power-menu-unavailable", map[string]interface{}{"Action": argv[0]})
		return item
	}
	args := append([]string(nil), argv[1:]...)
	item.Run = func(ctx context.Context) error {
		return deps.Runner.Run(ctx, bin, args...)
	}
	return item
}

func detachAction(deps Deps, configured string) actions.Action {
	item := actions.Action{Entry: widget.Entry{ID: "logout", Label: i18n.T("power-menu-logout"), Icon: icons.Logout}}
	socket, err := deps.Socket(strings.TrimSpace(configured))
	if err != nil {
		logging.Errorf(Name, "tmux socket: %v", err)
		item.Disabled = true
		item.Note = i18n.TF("power-menu-unavailable", map[string]interface{}{"Action": "tmux"})
		return item
	}
	item.Run = func(context.Context) error {
		n, err := deps.Detach(socket)
		if err != nil {
			return fmt.Errorf("detach tmux clients: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("detach tmux clients: no attached clients on %s", socket)
		}
		return nil
	}
	return item
}
