package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readEntries(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var e map[string]interface{}
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		out = append(out, e)
	}
	return out
}

func TestTraceSkippedWhenDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	defer Configure("")
	SetTraceEnabled(false)

	Trace("menu.toggle", map[string]interface{}{"expanded": true})

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file, got err=%v", err)
	}
}

func TestTraceAndErrorShareLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	defer Configure("")
	SetTraceEnabled(true)
	defer SetTraceEnabled(false)

	Trace("component.ready", map[string]interface{}{"name": "custom"})
	Error(errors.New("boom"))
	Errorf("systemd", "dial failed: %d", 3)
	Error(nil)

	entries := readEntries(t, path)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0]["event"] != "component.ready" {
		t.Fatalf("expected trace event, got %v", entries[0]["event"])
	}
	if entries[1]["message"] != "boom" {
		t.Fatalf("expected error message boom, got %v", entries[1]["message"])
	}
	if entries[2]["message"] != "[systemd] dial failed: 3" {
		t.Fatalf("unexpected formatted message %v", entries[2]["message"])
	}
}

func TestConfigureEmptyFallsBackToDefault(t *testing.T) {
	Configure("  ")
	if got := Path(); got != defaultLogFile {
		t.Fatalf("expected %q, got %q", defaultLogFile, got)
	}
}
