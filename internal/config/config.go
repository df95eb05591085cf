package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/tmux-power-menu/internal/app"
	"github.com/atomicstack/tmux-power-menu/internal/powermenu"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Language string
	// File is the configuration file that was read, if any.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	appName = "tmux-power-menu"

	// powerMenuKey holds the backend selection in the configuration file.
	powerMenuKey = "power_menu"

	envConfig     = "TMUX_POWER_MENU_CONFIG"
	envWidth      = "TMUX_POWER_MENU_WIDTH"
	envHeight     = "TMUX_POWER_MENU_HEIGHT"
	envShowFooter = "TMUX_POWER_MENU_FOOTER"
	envTrace      = "TMUX_POWER_MENU_TRACE"
	envLogFile    = "TMUX_POWER_MENU_LOG_FILE"
	envLang       = "TMUX_POWER_MENU_LANG"
	envASCIIIcons = "TMUX_POWER_MENU_ASCII_ICONS"
)

// Load parses configuration from CLI arguments, environment variables and the
// configuration file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// flags, then environment, then the file, then defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configPath := fs.String("config", envOrDefault(env, envConfig, ""), "path to the configuration file")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key hint row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	lang := fs.String("lang", envOrDefault(env, envLang, ""), "UI language (default: detected from the environment)")
	asciiIcons := fs.Bool("ascii-icons", envOrBool(env, envASCIIIcons, false), "use ASCII instead of symbol glyphs")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v, used, err := readFile(*configPath, env)
	if err != nil {
		return Config{}, err
	}

	// Settings given neither as a flag nor in the environment fall back to
	// the file.
	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	fromFile := func(name, envKey, fileKey string) bool {
		if explicit[name] {
			return false
		}
		if val, ok := env[envKey]; ok && strings.TrimSpace(val) != "" {
			return false
		}
		return v.IsSet(fileKey)
	}
	if fromFile("width", envWidth, "width") {
		*width = v.GetInt("width")
	}
	if fromFile("height", envHeight, "height") {
		*height = v.GetInt("height")
	}
	if fromFile("footer", envShowFooter, "footer") {
		*footer = v.GetBool("footer")
	}
	if fromFile("lang", envLang, "lang") {
		*lang = v.GetString("lang")
	}
	if fromFile("ascii-icons", envASCIIIcons, "ascii_icons") {
		*asciiIcons = v.GetBool("ascii_icons")
	}
	if fromFile("log-file", envLogFile, "log_file") {
		*logFile = v.GetString("log_file")
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	menuCfg, err := powermenu.Decode(v.Get(powerMenuKey))
	if err != nil {
		if used != "" {
			return Config{}, fmt.Errorf("%s: %w", used, err)
		}
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			ASCIIIcons: *asciiIcons,
			PowerMenu:  menuCfg,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Language: *lang,
		File:     used,
		Flags: map[string]string{
			"config":     *configPath,
			"width":      strconv.Itoa(*width),
			"height":     strconv.Itoa(*height),
			"footer":     strconv.FormatBool(*footer),
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
			"lang":       *lang,
			"asciiIcons": strconv.FormatBool(*asciiIcons),
			"backend":    menuCfg.Tag(),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// SearchPaths lists the directories searched for config.{toml,yaml,json}
// when no file is named explicitly.
func SearchPaths(env map[string]string) []string {
	paths := make([]string, 0, 2)
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		paths = append(paths, filepath.Join(xdg, appName))
	} else if home := env["HOME"]; home != "" {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}
	return append(paths, filepath.Join("/etc", appName))
}

// readFile loads path, or searches SearchPaths when path is empty. A missing
// file is only an error when it was named explicitly.
func readFile(path string, env map[string]string) (*viper.Viper, string, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		for _, dir := range SearchPaths(env) {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return v, "", nil
		}
		return nil, "", fmt.Errorf("read config: %w", err)
	}
	return v, v.ConfigFileUsed(), nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits with status 2.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
