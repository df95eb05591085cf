package systemd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	logindDest      = "org.freedesktop.login1"
	logindPath      = dbus.ObjectPath("/org/freedesktop/login1")
	logindInterface = "org.freedesktop.login1.Manager"
)

// CallTimeout bounds every logind call.
var CallTimeout = 5 * time.Second

// Manager is the subset of logind the backend uses.
type Manager interface {
	// Can reports logind's answer for action: yes, no, challenge or na.
	Can(ctx context.Context, action Action) (string, error)
	// Do requests action.
	Do(ctx context.Context, action Action, interactive bool) error
	// Terminate ends the login session id.
	Terminate(ctx context.Context, sessionID string) error
	Close() error
}

// TimeoutError reports a logind call that did not answer in time.
type TimeoutError struct {
	Method string
	After  time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("logind %s: no reply after %s", e.Method, e.After)
}

func (e *TimeoutError) Unwrap() error { return context.DeadlineExceeded }

type logind struct {
	conn *dbus.Conn
	obj  dbus.BusObject
}

// ConnectLogind dials the system bus. Cancelling ctx aborts a stalled
// handshake and closes the connection.
func ConnectLogind(ctx context.Context) (Manager, error) {
	conn, err := dbus.ConnectSystemBus(dbus.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("connect system bus: %w", err)
	}
	return &logind{conn: conn, obj: conn.Object(logindDest, logindPath)}, nil
}

func (l *logind) call(ctx context.Context, method string, out interface{}, args ...interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, CallTimeout)
	defer cancel()
	call := l.obj.CallWithContext(ctx, logindInterface+"."+method, 0, args...)
	if call.Err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return &TimeoutError{Method: method, After: CallTimeout}
		}
		return fmt.Errorf("logind %s: %w", method, call.Err)
	}
	if out == nil {
		return nil
	}
	return call.Store(out)
}

func (l *logind) Can(ctx context.Context, action Action) (string, error) {
	method := action.canMethod()
	if method == "" {
		return "yes", nil
	}
	var answer string
	if err := l.call(ctx, method, &answer); err != nil {
		return "", err
	}
	return answer, nil
}

func (l *logind) Do(ctx context.Context, action Action, interactive bool) error {
	method := action.method()
	if method == "" {
		return fmt.Errorf("logind: %s has no manager method", action)
	}
	return l.call(ctx, method, nil, interactive)
}

func (l *logind) Terminate(ctx context.Context, sessionID string) error {
	return l.call(ctx, "TerminateSession", nil, sessionID)
}

func (l *logind) Close() error { return l.conn.Close() }
