package ui

import (
	"reflect"

	"github.com/atomicstack/tmux-power-menu/internal/powermenu"
	"github.com/atomicstack/tmux-power-menu/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

type keyMap struct {
	ForceQuit key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Quit:      key.NewBinding(key.WithKeys("q")),
	}
}

// Model implements the Bubble Tea model for the power menu shell.
type Model struct {
	menu *powermenu.PowerMenu

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	quitting    bool

	keys     keyMap
	handlers map[reflect.Type]msgHandler
}

// NewModel wraps menu. A positive width or height pins that dimension;
// otherwise it follows the terminal.
func NewModel(menu *powermenu.PowerMenu, width, height int, showFooter bool) *Model {
	m := &Model{
		menu:       menu,
		showFooter: showFooter,
		keys:       defaultKeys(),
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
		menu.SetMaxWidth(width)
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.menu.Init()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, m.menu.Update(msg)
}

// Menu exposes the hosted power menu.
func (m *Model) Menu() *powermenu.PowerMenu { return m.menu }

// Quitting reports whether the user asked to leave.
func (m *Model) Quitting() bool { return m.quitting }

// Close shuts the power menu down.
func (m *Model) Close() error { return m.menu.Close() }

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	switch {
	case key.Matches(keyMsg, m.keys.ForceQuit):
		m.quitting = true
		return tea.Quit
	case !m.menu.Expanded() && key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	}
	return m.menu.Update(msg)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = resize.Width
		m.menu.SetMaxWidth(resize.Width)
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return m.menu.Update(msg)
}
