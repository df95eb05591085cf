// Package component runs UI sub-components whose initialisation happens off
// the Bubble Tea event loop.
//
// A parent launches a child with Launch and keeps only the returned Controller.
// The controller's Root is a stable widget that can be embedded immediately: it
// shows a spinner until the child's init routine returns, the child's own view
// afterwards, or the init error if the child failed to start. The parent never
// exchanges messages with the child; whatever chrome hosts the Root forwards
// input to it and the Root hands that input to the child.
//
// Lifecycle:
//   - Launch starts the init routine on a stopper-managed goroutine.
//   - Root.Init returns a command that waits for readiness and then delivers a
//     ReadyMsg, so the first real view is only rendered after the child signals
//     it is ready.
//   - Shutdown stops the stopper context. Pending init is cancelled, cleanups
//     registered with ctx.Defer run, and the Root is detached. Shutdown may be
//     called exactly once.
package component

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/atomicstack/tmux-power-menu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"vawter.tech/stopper"
)

// ShutdownGrace bounds how long Shutdown waits for a child to wind down before
// its context is cancelled outright.
var ShutdownGrace = 250 * time.Millisecond

// ErrShutdown is returned by Shutdown when the controller is already down.
var ErrShutdown = errors.New("component: already shut down")

// Widget is an embeddable view fragment that handles its own input.
type Widget interface {
	Update(tea.Msg) tea.Cmd
	View() string
}

// Initializer is implemented by widgets that need a command once they are
// mounted.
type Initializer interface {
	Init() tea.Cmd
}

// InitFunc builds a child widget from its init value. It runs off the UI loop
// and may block; ctx is stopped when the child is shut down, and cleanups for
// anything the child acquires belong in ctx.Defer.
type InitFunc[C any, W Widget] func(ctx *stopper.Context, init C) (W, error)

// Controller is the parent's handle on a launched child.
type Controller[W Widget] struct {
	id   string
	name string

	sctx   *stopper.Context
	cancel context.CancelFunc

	root  *Root
	ready chan struct{}

	mu     sync.Mutex
	widget W
	err    error
	down   bool
}

// Launch starts fn with init and returns without waiting for it.
func Launch[C any, W Widget](name string, init C, fn InitFunc[C, W]) *Controller[W] {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller[W]{
		id:     uuid.NewString(),
		name:   name,
		sctx:   stopper.WithContext(ctx),
		cancel: cancel,
		ready:  make(chan struct{}),
	}
	c.root = newRoot(c.id, c.ready)
	events.Component.Launch(c.id, name)

	started := time.Now()
	c.sctx.Go(func(sctx *stopper.Context) error {
		defer close(c.ready)
		w, err := fn(sctx, init)
		c.mu.Lock()
		c.widget, c.err = w, err
		c.mu.Unlock()
		if err != nil {
			events.Component.Failed(c.id, name, err)
			c.root.fail(err)
			return nil
		}
		events.Component.Ready(c.id, name, time.Since(started))
		c.root.mount(w)
		return nil
	})
	return c
}

// ID identifies the controller in trace logs.
func (c *Controller[W]) ID() string { return c.id }

// Name is the label the child was launched with.
func (c *Controller[W]) Name() string { return c.name }

// Widget returns the child's root view. The reference stays valid for the
// lifetime of the controller.
func (c *Controller[W]) Widget() *Root { return c.root }

// Ready is closed once the init routine has returned.
func (c *Controller[W]) Ready() <-chan struct{} { return c.ready }

// Err reports the init error, if init has finished and failed.
func (c *Controller[W]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Model returns the child widget once init has succeeded.
func (c *Controller[W]) Model() (W, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero W
	select {
	case <-c.ready:
	default:
		return zero, false
	}
	if c.err != nil {
		return zero, false
	}
	return c.widget, true
}

// Shutdown stops the child and releases everything it registered. It blocks
// until the child's goroutines have exited.
func (c *Controller[W]) Shutdown() error {
	c.mu.Lock()
	if c.down {
		c.mu.Unlock()
		return ErrShutdown
	}
	c.down = true
	c.mu.Unlock()

	c.root.detach()
	c.sctx.Stop(ShutdownGrace)
	err := c.sctx.Wait()
	c.cancel()
	events.Component.Shutdown(c.id, c.name)
	return err
}
