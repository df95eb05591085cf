package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/tmux-power-menu/internal/powermenu"
	"github.com/atomicstack/tmux-power-menu/internal/powermenu/systemd"
	"github.com/atomicstack/tmux-power-menu/internal/powermenu/unix"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

// isolated keeps the search away from the real user and system config.
func isolated(t *testing.T) []string {
	return []string{"XDG_CONFIG_HOME=" + t.TempDir()}
}

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, isolated(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected zero dimensions, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer enabled by default")
	}
	if _, ok := cfg.App.PowerMenu.(powermenu.SystemdConfig); !ok {
		t.Fatalf("expected service-manager default, got %T", cfg.App.PowerMenu)
	}
	if cfg.File != "" {
		t.Fatalf("expected no config file, got %s", cfg.File)
	}
	if cfg.Flags["backend"] != "systemd" {
		t.Fatalf("expected backend flag systemd, got %s", cfg.Flags["backend"])
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := append(isolated(t), envWidth+"=50", envHeight+"=10", envTrace+"=true", envLang+"=de")
	cfg, err := LoadArgs([]string{"--width", "80", "--lang", "fr"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("expected flag width 80, got %d", cfg.App.Width)
	}
	if cfg.App.Height != 10 {
		t.Fatalf("expected env height 10, got %d", cfg.App.Height)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace from env")
	}
	if cfg.Language != "fr" {
		t.Fatalf("expected flag language fr, got %s", cfg.Language)
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, isolated(t)); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"--height", "-3"}, isolated(t)); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsReadsExplicitTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "menu.toml", `
width = 72
ascii_icons = true

[power_menu]
case = "custom"
command_list = ["shutdown now", "reboot"]
`)
	cfg, err := LoadArgs([]string{"--config", path}, isolated(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.File != path {
		t.Fatalf("expected file %s, got %s", path, cfg.File)
	}
	if cfg.App.Width != 72 || !cfg.App.ASCIIIcons {
		t.Fatalf("expected file settings, got %+v", cfg.App)
	}
	custom, ok := cfg.App.PowerMenu.(powermenu.CustomConfig)
	if !ok {
		t.Fatalf("expected custom case, got %T", cfg.App.PowerMenu)
	}
	if len(custom.CommandList) != 2 || custom.CommandList[0] != "shutdown now" || custom.CommandList[1] != "reboot" {
		t.Fatalf("unexpected command list %v", custom.CommandList)
	}
}

func TestLoadArgsSearchesXDGConfigHome(t *testing.T) {
	xdg := t.TempDir()
	writeFile(t, xdg, filepath.Join(appName, "config.yaml"), `
power_menu:
  direct-os:
    reboot: ["systemctl", "reboot"]
`)
	cfg, err := LoadArgs(nil, []string{"XDG_CONFIG_HOME=" + xdg})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, ok := cfg.App.PowerMenu.(powermenu.UnixConfig)
	if !ok {
		t.Fatalf("expected unix case, got %T", cfg.App.PowerMenu)
	}
	if got := u.Reboot; len(got) != 2 || got[0] != "systemctl" {
		t.Fatalf("unexpected reboot argv %v", got)
	}
	if got, want := u.Shutdown, unix.DefaultConfig().Shutdown; len(got) != len(want) {
		t.Fatalf("expected default shutdown argv, got %v", got)
	}
}

func TestLoadArgsServiceManagerCaseUsesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "menu.json", `{"power_menu": {"case": "service-manager"}}`)
	cfg, err := LoadArgs([]string{"--config", path}, isolated(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sd, ok := cfg.App.PowerMenu.(powermenu.SystemdConfig)
	if !ok {
		t.Fatalf("expected systemd case, got %T", cfg.App.PowerMenu)
	}
	want := systemd.DefaultConfig()
	if sd.Interactive != want.Interactive || len(sd.Actions) != len(want.Actions) {
		t.Fatalf("expected defaults, got %+v", sd.Config)
	}
}

func TestLoadArgsReportsDecodeErrors(t *testing.T) {
	path := writeFile(t, t.TempDir(), "menu.toml", "power_menu = \"launchd\"\n")
	_, err := LoadArgs([]string{"--config", path}, isolated(t))
	if !errors.Is(err, powermenu.ErrUnknownBackend) {
		t.Fatalf("expected unknown backend error, got %v", err)
	}
}

func TestLoadArgsMissingExplicitFile(t *testing.T) {
	_, err := LoadArgs([]string{"--config", filepath.Join(t.TempDir(), "absent.toml")}, isolated(t))
	if err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestEnvBeatsFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "menu.toml", "width = 72\n")
	cfg, err := LoadArgs([]string{"--config", path}, append(isolated(t), envWidth+"=30"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 30 {
		t.Fatalf("expected env width 30, got %d", cfg.App.Width)
	}
}

func TestSearchPathsFallsBackToHome(t *testing.T) {
	paths := SearchPaths(map[string]string{"HOME": "/home/me"})
	if len(paths) != 2 || paths[0] != "/home/me/.config/tmux-power-menu" || paths[1] != "/etc/tmux-power-menu" {
		t.Fatalf("unexpected search paths %v", paths)
	}
}
