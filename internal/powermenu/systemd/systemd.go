// Package systemd is the power menu backend that asks systemd-logind to
// perform power actions over the system bus.
package systemd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atomicstack/tmux-power-menu/internal/i18n"
	"github.com/atomicstack/tmux-power-menu/internal/icons"
	"github.com/atomicstack/tmux-power-menu/internal/logging"
	"github.com/atomicstack/tmux-power-menu/internal/powermenu/actions"
	"github.com/atomicstack/tmux-power-menu/internal/widget"
	"github.com/coreos/go-systemd/v22/util"
	"vawter.tech/stopper"
)

// Name is the backend label shown in the heading.
const Name = "systemd"

// ErrNotRunning is returned when the host was not booted with systemd.
var ErrNotRunning = errors.New("systemd is not running on this host")

// Action is a logind power action.
type Action string

const (
	PowerOff  Action = "poweroff"
	Reboot    Action = "reboot"
	Suspend   Action = "suspend"
	Hibernate Action = "hibernate"
	Logout    Action = "logout"
)

func (a Action) method() string {
	switch a {
	case PowerOff:
		return "PowerOff"
	case Reboot:
		return "Reboot"
	case Suspend:
		return "Suspend"
	case Hibernate:
		return "Hibernate"
	}
	return ""
}

func (a Action) canMethod() string {
	if m := a.method(); m != "" {
		return "Can" + m
	}
	return ""
}

func (a Action) messageID() string {
	return "power-menu-" + string(a)
}

func (a Action) icon() string {
	switch a {
	case PowerOff:
		return icons.PowerOff
	case Reboot:
		return icons.Reboot
	case Suspend:
		return icons.Suspend
	case Hibernate:
		return icons.Hibernate
	case Logout:
		return icons.Logout
	}
	return ""
}

// ParseAction accepts the action names used in configuration.
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case PowerOff, Reboot, Suspend, Hibernate, Logout:
		return a, nil
	case "shutdown":
		return PowerOff, nil
	}
	return "", fmt.Errorf("systemd: unknown action %q", s)
}

// CapabilityError reports an answer from logind the backend does not know.
type CapabilityError struct {
	Action Action
	Answer string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("logind: unexpected answer %q for %s", e.Answer, e.Action)
}

// Config selects the offered actions.
type Config struct {
	Actions []string `mapstructure:"actions"`
	// Interactive lets polkit prompt for authentication.
	Interactive bool   `mapstructure:"interactive"`
	SessionID   string `mapstructure:"session_id"`
}

// DefaultConfig offers poweroff, reboot, suspend and logout for the current
// session.
func DefaultConfig() Config {
	session := os.Getenv("XDG_SESSION_ID")
	if session == "" {
		session = "auto"
	}
	return Config{
		Actions:     []string{string(PowerOff), string(Reboot), string(Suspend), string(Logout)},
		Interactive: true,
		SessionID:   session,
	}
}

// Deps are the side effects the backend relies on.
type Deps struct {
	Running func() bool
	Connect func(ctx context.Context) (Manager, error)
}

// DefaultDeps detects systemd with go-systemd and dials logind.
func DefaultDeps() Deps {
	return Deps{Running: util.IsRunningSystemd, Connect: ConnectLogind}
}

// Init builds the menu with DefaultDeps.
func Init(ctx *stopper.Context, cfg Config) (*actions.Menu, error) {
	return Start(ctx, cfg, DefaultDeps())
}

// Start connects to logind, probes each configured action and builds the
// menu. The connection is closed when ctx stops.
func Start(ctx *stopper.Context, cfg Config, deps Deps) (*actions.Menu, error) {
	wanted := make([]Action, 0, len(cfg.Actions))
	for _, raw := range cfg.Actions {
		a, err := ParseAction(raw)
		if err != nil {
			return nil, err
		}
		wanted = append(wanted, a)
	}
	if !deps.Running() {
		return nil, ErrNotRunning
	}
	manager, err := deps.Connect(ctx)
	if err != nil {
		return nil, err
	}
	ctx.Defer(func() {
		if err := manager.Close(); err != nil {
			logging.Errorf(Name, "close logind connection: %v", err)
		}
	})

	items := make([]actions.Action, 0, len(wanted))
	for _, a := range wanted {
		answer, err := manager.Can(ctx, a)
		if err != nil {
			return nil, err
		}
		item, ok := actionFor(manager, cfg, a, answer)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return actions.NewMenu(ctx, Name, items), nil
}

func actionFor(manager Manager, cfg Config, a Action, answer string) (actions.Action, bool) {
	item := actions.Action{Entry: widget.Entry{ID: string(a), Label: i18n.T(a.messageID()), Icon: a.icon()}}
	switch answer {
	case "na":
		return item, false
	case "yes", "challenge":
	case "no":
		item.Disabled = true
		item.Note = i18n.TF("power-menu-unavailable", map[string]interface{}{"Action": item.Label})
		return item, true
	default:
		logging.Error(&CapabilityError{Action: a, Answer: answer})
		item.Disabled = true
		return item, true
	}
	if a == Logout {
		session := cfg.SessionID
		item.Run = func(ctx context.Context) error { return manager.Terminate(ctx, session) }
	} else {
		interactive := cfg.Interactive
		item.Run = func(ctx context.Context) error { return manager.Do(ctx, a, interactive) }
	}
	return item, true
}
