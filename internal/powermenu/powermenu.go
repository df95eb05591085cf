// Package powermenu is a power menu widget whose backend is chosen once, at
// construction, from a Config.
//
// New launches exactly one backend sub-component and keeps only the handle to
// it. The backend initialises off the UI loop; until it is ready the popover
// shows a loading indicator, and a backend that fails to start shows its error
// there instead. The power menu never sends messages to the backend and never
// reacts to anything the backend does: the trigger and popover chrome forward
// input to the backend's view and that is the only coupling.
package powermenu

import (
	"fmt"
	"sync"

	"github.com/atomicstack/tmux-power-menu/internal/component"
	"github.com/atomicstack/tmux-power-menu/internal/i18n"
	"github.com/atomicstack/tmux-power-menu/internal/icons"
	"github.com/atomicstack/tmux-power-menu/internal/powermenu/actions"
	"github.com/atomicstack/tmux-power-menu/internal/powermenu/custom"
	"github.com/atomicstack/tmux-power-menu/internal/powermenu/systemd"
	"github.com/atomicstack/tmux-power-menu/internal/powermenu/unix"
	"github.com/atomicstack/tmux-power-menu/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
)

// Backends holds the start routine of each backend.
type Backends struct {
	Systemd component.InitFunc[systemd.Config, *actions.Menu]
	Unix    component.InitFunc[unix.Config, *actions.Menu]
	Custom  component.InitFunc[custom.Config, *actions.Menu]
}

// DefaultBackends returns the real backends.
func DefaultBackends() Backends {
	return Backends{
		Systemd: systemd.Init,
		Unix:    unix.Init,
		Custom:  custom.Init,
	}
}

// Instance is the handle on the running backend. Like Config it is sealed:
// SystemdInstance, UnixInstance and CustomInstance are the only cases.
type Instance interface {
	isInstance()
}

// SystemdInstance holds a running service-manager backend.
type SystemdInstance struct {
	*component.Controller[*actions.Menu]
}

// UnixInstance holds a running direct-OS backend.
type UnixInstance struct {
	*component.Controller[*actions.Menu]
}

// CustomInstance holds a running custom-command backend.
type CustomInstance struct {
	*component.Controller[*actions.Menu]
}

func (SystemdInstance) isInstance() {}
func (UnixInstance) isInstance()    {}
func (CustomInstance) isInstance()  {}

// Option customises New.
type Option func(*options)

type options struct {
	backends Backends
	tooltip  string
	icon     string
}

// WithBackends replaces the backend start routines.
func WithBackends(b Backends) Option {
	return func(o *options) { o.backends = b }
}

// WithTooltip overrides the trigger tooltip.
func WithTooltip(tooltip string) Option {
	return func(o *options) { o.tooltip = tooltip }
}

// WithIcon overrides the trigger glyph.
func WithIcon(icon string) Option {
	return func(o *options) { o.icon = icon }
}

// PowerMenu is the composed widget: a trigger button whose popover body is the
// backend's view.
type PowerMenu struct {
	instance Instance
	button   *widget.MenuButton

	mu     sync.Mutex
	closed bool
}

// New launches the backend selected by cfg and builds the widget around it.
// It returns without waiting for the backend.
func New(cfg Config, opts ...Option) *PowerMenu {
	o := options{
		backends: DefaultBackends(),
		tooltip:  i18n.T("power-menu-tooltip"),
		icon:     icons.PowerMenu,
	}
	for _, opt := range opts {
		opt(&o)
	}

	var instance Instance
	switch c := cfg.(type) {
	case SystemdConfig:
		instance = SystemdInstance{component.Launch(systemd.Name, c.Config, o.backends.Systemd)}
	case UnixConfig:
		instance = UnixInstance{component.Launch(unix.Name, c.Config, o.backends.Unix)}
	case CustomConfig:
		instance = CustomInstance{component.Launch(custom.Name, c.Config, o.backends.Custom)}
	default:
		panic(fmt.Sprintf("powermenu: unknown config case %T", cfg))
	}

	p := &PowerMenu{instance: instance}
	p.button = widget.NewMenuButton(o.icon, o.tooltip)
	p.button.SetPopover(widget.NewPopover(p.Widget()))
	return p
}

func controller(instance Instance) *component.Controller[*actions.Menu] {
	switch i := instance.(type) {
	case SystemdInstance:
		return i.Controller
	case UnixInstance:
		return i.Controller
	case CustomInstance:
		return i.Controller
	}
	panic(fmt.Sprintf("powermenu: unknown instance case %T", instance))
}

// Instance returns the handle on the running backend.
func (p *PowerMenu) Instance() Instance { return p.instance }

// Backend names the running backend.
func (p *PowerMenu) Backend() string {
	switch p.instance.(type) {
	case SystemdInstance:
		return systemd.Name
	case UnixInstance:
		return unix.Name
	case CustomInstance:
		return custom.Name
	}
	panic(fmt.Sprintf("powermenu: unknown instance case %T", p.instance))
}

// Widget returns the backend's current root view. The same value is returned
// for the lifetime of the power menu.
func (p *PowerMenu) Widget() *component.Root {
	return controller(p.instance).Widget()
}

// Button returns the trigger chrome.
func (p *PowerMenu) Button() *widget.MenuButton { return p.button }

// Expanded reports whether the popover is open.
func (p *PowerMenu) Expanded() bool { return p.button.Expanded() }

// SetMaxWidth bounds the popover width.
func (p *PowerMenu) SetMaxWidth(width int) { p.button.Popover().SetMaxWidth(width) }

// Init starts the backend's view.
func (p *PowerMenu) Init() tea.Cmd { return p.button.Init() }

// Update hands msg to the chrome.
func (p *PowerMenu) Update(msg tea.Msg) tea.Cmd { return p.button.Update(msg) }

// View renders trigger and, when open, the popover.
func (p *PowerMenu) View() string { return p.button.View() }

// TriggerView renders only the trigger.
func (p *PowerMenu) TriggerView() string { return p.button.TriggerView() }

// FitTriggerView renders the trigger within width columns.
func (p *PowerMenu) FitTriggerView(width int) string { return p.button.FitTriggerView(width) }

// PanelView renders only the popover, or nothing while collapsed.
func (p *PowerMenu) PanelView() string { return p.button.PanelView() }

// Close shuts the backend down. It may be called once; later calls return
// component.ErrShutdown.
func (p *PowerMenu) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return component.ErrShutdown
	}
	p.closed = true
	p.mu.Unlock()
	return controller(p.instance).Shutdown()
}
