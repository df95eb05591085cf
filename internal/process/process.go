// Package process runs external commands for the backends that perform power
// actions by executing programs.
package process

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a command and waits for it.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExitError reports a command that could not be run or exited non-zero.
type ExitError struct {
	Command string
	Output  string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("%s failed: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s failed: %v (output: %s)", e.Command, e.Err, e.Output)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Exec runs commands with os/exec.
type Exec struct {
	// Env is appended to the inherited environment.
	Env []string
}

// Run executes name with args and captures combined output for error reports.
func (x Exec) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if len(x.Env) > 0 {
		cmd.Env = append(cmd.Environ(), x.Env...)
	}
	output, err := cmd.CombinedOutput()
	if err != nil {
		return &ExitError{
			Command: strings.TrimSpace(name + " " + strings.Join(args, " ")),
			Output:  strings.TrimSpace(string(output)),
			Err:     err,
		}
	}
	return nil
}

// LookPath resolves a program name. Tests replace it.
var LookPath = exec.LookPath
