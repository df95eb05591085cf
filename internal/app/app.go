package app

import (
	"errors"

	"github.com/atomicstack/tmux-power-menu/internal/component"
	"github.com/atomicstack/tmux-power-menu/internal/icons"
	"github.com/atomicstack/tmux-power-menu/internal/logging"
	"github.com/atomicstack/tmux-power-menu/internal/logging/events"
	"github.com/atomicstack/tmux-power-menu/internal/powermenu"
	"github.com/atomicstack/tmux-power-menu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	ASCIIIcons bool
	PowerMenu  powermenu.Config
}

// NewModel builds the shell around a freshly launched power menu.
func NewModel(cfg Config, opts ...powermenu.Option) *ui.Model {
	menuCfg := cfg.PowerMenu
	if menuCfg == nil {
		menuCfg = powermenu.DefaultConfig()
	}
	icons.SetASCII(cfg.ASCIIIcons)
	opts = append([]powermenu.Option{powermenu.WithIcon(icons.Get(icons.PowerMenu))}, opts...)
	pm := powermenu.New(menuCfg, opts...)
	return ui.NewModel(pm, cfg.Width, cfg.Height, cfg.ShowFooter)
}

// Run bootstraps and executes the Bubble Tea program. The power menu is shut
// down when the program exits, however it exits.
func Run(cfg Config) (err error) {
	model := NewModel(cfg)
	defer func() {
		if closeErr := model.Close(); closeErr != nil && !errors.Is(closeErr, component.ErrShutdown) {
			logging.Error(closeErr)
		}
		events.App.Exit(err)
	}()
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
