package process

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestExecRunReportsOutputOnFailure(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	err := Exec{}.Run(context.Background(), "sh", "-c", "echo nope >&2; exit 3")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %T: %v", err, err)
	}
	if exitErr.Output != "nope" {
		t.Fatalf("expected captured output, got %q", exitErr.Output)
	}
	if !strings.Contains(err.Error(), "(output: nope)") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestExecRunSucceeds(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	if err := (Exec{Env: []string{"POWER_MENU_TEST=1"}}).Run(context.Background(), "sh", "-c", `test "$POWER_MENU_TEST" = 1`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExitErrorWithoutOutput(t *testing.T) {
	err := &ExitError{Command: "reboot", Err: errors.New("exit status 1")}
	if err.Error() != "reboot failed: exit status 1" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
