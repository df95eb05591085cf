package component

import (
	"sync"

	"github.com/atomicstack/tmux-power-menu/internal/i18n"
	"github.com/atomicstack/tmux-power-menu/internal/theme"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type rootState int

const (
	rootLoading rootState = iota
	rootReady
	rootFailed
	rootDetached
)

// ReadyMsg tells a Root that its child finished initialising.
type ReadyMsg struct {
	ID string
}

// Root is the stable widget a Controller hands to its parent.
type Root struct {
	id    string
	ready <-chan struct{}

	mu      sync.Mutex
	state   rootState
	child   Widget
	err     error
	shown   bool
	spinner spinner.Model
}

func newRoot(id string, ready <-chan struct{}) *Root {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	if st := theme.Default().Loading; st != nil {
		s.Style = *st
	}
	return &Root{id: id, ready: ready, spinner: s}
}

// ID matches the owning controller's ID.
func (r *Root) ID() string { return r.id }

// Init starts the loading spinner and waits for the child off the UI loop.
func (r *Root) Init() tea.Cmd {
	id, ready := r.id, r.ready
	wait := func() tea.Msg {
		<-ready
		return ReadyMsg{ID: id}
	}
	return tea.Batch(r.spinner.Tick, wait)
}

// Ready reports whether the child is mounted and has been shown.
func (r *Root) Ready() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == rootReady && r.shown
}

// Err returns the child's init error, if any.
func (r *Root) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Update routes msg to the child once it is ready. Spinner ticks are consumed
// while loading.
func (r *Root) Update(msg tea.Msg) tea.Cmd {
	r.mu.Lock()
	if ready, ok := msg.(ReadyMsg); ok {
		if ready.ID != r.id {
			r.mu.Unlock()
			return r.forward(msg)
		}
		r.shown = true
		child := r.child
		state := r.state
		r.mu.Unlock()
		if state == rootReady {
			if init, ok := child.(Initializer); ok {
				return init.Init()
			}
		}
		return nil
	}
	if _, ok := msg.(spinner.TickMsg); ok && r.state == rootLoading {
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		r.mu.Unlock()
		return cmd
	}
	r.mu.Unlock()
	return r.forward(msg)
}

func (r *Root) forward(msg tea.Msg) tea.Cmd {
	r.mu.Lock()
	child, visible := r.child, r.state == rootReady && r.shown
	r.mu.Unlock()
	if !visible {
		return nil
	}
	return child.Update(msg)
}

// View renders the current state.
func (r *Root) View() string {
	r.mu.Lock()
	state, shown, child, err := r.state, r.shown, r.child, r.err
	spin := r.spinner.View()
	r.mu.Unlock()
	switch {
	case state == rootDetached:
		return ""
	case state == rootLoading || !shown:
		return spin + " " + theme.Render(theme.Default().Loading, i18n.T("power-menu-loading"))
	case state == rootFailed:
		return theme.Render(theme.Default().Error, i18n.TF("power-menu-failed", map[string]interface{}{"Error": err.Error()}))
	default:
		return child.View()
	}
}

func (r *Root) mount(w Widget) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != rootLoading {
		return
	}
	r.child = w
	r.state = rootReady
}

func (r *Root) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != rootLoading {
		return
	}
	r.err = err
	r.state = rootFailed
}

func (r *Root) detach() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = rootDetached
	r.child = nil
}
