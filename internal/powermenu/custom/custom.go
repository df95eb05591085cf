// Package custom is the power menu backend that lists user-supplied shell
// commands.
package custom

import (
	"context"
	"fmt"
	"strings"

	"github.com/atomicstack/tmux-power-menu/internal/icons"
	"github.com/atomicstack/tmux-power-menu/internal/powermenu/actions"
	"github.com/atomicstack/tmux-power-menu/internal/process"
	"github.com/atomicstack/tmux-power-menu/internal/widget"
	"vawter.tech/stopper"
)

// Name is the backend label shown in the heading.
const Name = "custom"

// Config lists the commands to offer.
type Config struct {
	// CommandList holds shell command lines, shown in this order.
	CommandList []string `mapstructure:"command_list"`
	// Shell runs each command as `Shell -c command`.
	Shell string `mapstructure:"shell"`
}

// DefaultConfig has no commands and uses /bin/sh.
func DefaultConfig() Config {
	return Config{Shell: "/bin/sh"}
}

// Init builds the menu with the os/exec runner.
func Init(ctx *stopper.Context, cfg Config) (*actions.Menu, error) {
	return Start(ctx, cfg, process.Exec{})
}

// Start builds the menu, running commands through runner.
func Start(ctx context.Context, cfg Config, runner process.Runner) (*actions.Menu, error) {
	shell := strings.TrimSpace(cfg.Shell)
	if shell == "" {
		shell = DefaultConfig().Shell
	}
	items := make([]actions.Action, 0, len(cfg.CommandList))
	for i, command := range cfg.CommandList {
		command := command
		item := actions.Action{
			Entry: widget.Entry{
				ID:    fmt.Sprintf("command-%d", i),
				Label: command,
				Icon:  icons.Command,
			},
			Run: func(ctx context.Context) error {
				return runner.Run(ctx, shell, "-c", command)
			},
		}
		if strings.TrimSpace(command) == "" {
			item.Disabled = true
		}
		items = append(items, item)
	}
	return actions.NewMenu(ctx, Name, items), nil
}
