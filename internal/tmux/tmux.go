// Package tmux is the small slice of tmux control the power menu needs: finding
// the server socket and detaching the clients attached to it.
package tmux

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

type tmuxClient interface {
	ListSessions() ([]*gotmux.Session, error)
	ListClients() ([]*gotmux.Client, error)
	Close() error
}

type sessionHandle interface {
	Detach() error
}

type realSessionHandle struct {
	session *gotmux.Session
}

func (r *realSessionHandle) Detach() error { return r.session.Detach() }

var (
	newTmux = func(socketPath string) (tmuxClient, error) {
		if socketPath != "" {
			return gotmux.NewTmux(socketPath)
		}
		return gotmux.DefaultTmux()
	}

	newSessionHandle = func(s *gotmux.Session) sessionHandle {
		if s == nil {
			return nil
		}
		return &realSessionHandle{session: s}
	}
)

// ResolveSocketPath picks the tmux socket: the explicit value, then
// $TMUX_POWER_MENU_SOCKET, then the socket of the enclosing tmux, then the
// default socket for the current user.
func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("TMUX_POWER_MENU_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}

// DetachClients detaches every session that has a terminal client attached and
// returns how many were detached. The control-mode connection used to talk to
// tmux does not count as a client.
func DetachClients(socketPath string) (int, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return 0, err
	}
	defer client.Close()

	sessions, err := client.ListSessions()
	if err != nil {
		return 0, err
	}
	attached, err := attachedSessions(client)
	if err != nil {
		return 0, err
	}
	detached := 0
	for _, s := range sessions {
		if s == nil {
			continue
		}
		if !attached[s.Name] {
			continue
		}
		handle := newSessionHandle(s)
		if handle == nil {
			continue
		}
		if err := handle.Detach(); err != nil {
			return detached, fmt.Errorf("detach %s: %w", s.Name, err)
		}
		detached++
	}
	return detached, nil
}

func attachedSessions(client tmuxClient) (map[string]bool, error) {
	clients, err := client.ListClients()
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(clients))
	for _, c := range clients {
		if c == nil || c.ControlMode {
			continue
		}
		if name := strings.TrimSpace(c.Session); name != "" {
			out[name] = true
		}
	}
	return out, nil
}
