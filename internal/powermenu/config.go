package powermenu

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/atomicstack/tmux-power-menu/internal/powermenu/custom"
	"github.com/atomicstack/tmux-power-menu/internal/powermenu/systemd"
	"github.com/atomicstack/tmux-power-menu/internal/powermenu/unix"
	"github.com/go-viper/mapstructure/v2"
)

// Config selects a backend and carries that backend's own settings. It is
// sealed: the only implementations are SystemdConfig, UnixConfig and
// CustomConfig.
type Config interface {
	// Tag is the canonical name of the case.
	Tag() string
	isConfig()
}

// SystemdConfig selects the service-manager backend.
type SystemdConfig struct {
	systemd.Config
}

// UnixConfig selects the direct-OS backend.
type UnixConfig struct {
	unix.Config
}

// CustomConfig selects the custom-command backend.
type CustomConfig struct {
	custom.Config
}

func (SystemdConfig) Tag() string { return TagSystemd }
func (UnixConfig) Tag() string    { return TagUnix }
func (CustomConfig) Tag() string  { return TagCustom }

func (SystemdConfig) isConfig() {}
func (UnixConfig) isConfig()    {}
func (CustomConfig) isConfig()  {}

const (
	TagSystemd = "systemd"
	TagUnix    = "unix"
	TagCustom  = "custom"

	// caseKey names the case when the nested fields are written inline.
	caseKey = "case"
)

var tagAliases = map[string]string{
	TagSystemd:        TagSystemd,
	"service-manager": TagSystemd,
	"service_manager": TagSystemd,
	TagUnix:           TagUnix,
	"direct-os":       TagUnix,
	"direct_os":       TagUnix,
	TagCustom:         TagCustom,
}

// ErrUnknownBackend is wrapped by decode errors naming a case that does not
// exist.
var ErrUnknownBackend = errors.New("unknown power menu backend")

// DecodeError reports configuration that could not be turned into a Config.
type DecodeError struct {
	// Tag is the case being decoded, if it was identified.
	Tag string
	Err error
}

func (e *DecodeError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("power menu config: %v", e.Err)
	}
	return fmt.Sprintf("power menu config (%s): %v", e.Tag, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DefaultConfig is the service-manager case with its default settings.
func DefaultConfig() Config {
	return SystemdConfig{systemd.DefaultConfig()}
}

// Tags lists the canonical case names and their aliases.
func Tags() []string {
	out := make([]string, 0, len(tagAliases))
	for tag := range tagAliases {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// Decode builds a Config from loosely typed configuration data, as produced
// by viper or a YAML/TOML/JSON decoder. Accepted shapes:
//
//	nil                                     -> DefaultConfig()
//	"unix"                                  -> that case with defaults
//	{"custom": {"command_list": [...]}}     -> that case, fields nested
//	{"case": "custom", "command_list": ...} -> that case, fields inline
//
// Fields not given keep the case's defaults. Unknown fields are errors.
func Decode(raw any) (Config, error) {
	switch v := raw.(type) {
	case nil:
		return DefaultConfig(), nil
	case Config:
		return v, nil
	case string:
		return decodeCase(v, nil)
	}
	fields, err := stringMap(raw)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if len(fields) == 0 {
		return DefaultConfig(), nil
	}
	if tag, ok := fields[caseKey]; ok {
		name, ok := tag.(string)
		if !ok {
			return nil, &DecodeError{Err: fmt.Errorf("%q must be a string, got %T", caseKey, tag)}
		}
		inline := make(map[string]any, len(fields)-1)
		for k, v := range fields {
			if k != caseKey {
				inline[k] = v
			}
		}
		return decodeCase(name, inline)
	}
	if len(fields) != 1 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return nil, &DecodeError{Err: fmt.Errorf("expected exactly one backend, got %s", strings.Join(keys, ", "))}
	}
	for tag, nested := range fields {
		return decodeCase(tag, nested)
	}
	panic("unreachable")
}

func decodeCase(tag string, nested any) (Config, error) {
	name, ok := tagAliases[strings.ToLower(strings.TrimSpace(tag))]
	if !ok {
		return nil, &DecodeError{Err: fmt.Errorf("%w %q", ErrUnknownBackend, tag)}
	}
	var (
		cfg Config
		err error
	)
	switch name {
	case TagSystemd:
		c := systemd.DefaultConfig()
		err = decodeFields(nested, &c)
		cfg = SystemdConfig{c}
	case TagUnix:
		c := unix.DefaultConfig()
		err = decodeFields(nested, &c)
		cfg = UnixConfig{c}
	case TagCustom:
		c := custom.DefaultConfig()
		err = decodeFields(nested, &c)
		cfg = CustomConfig{c}
	}
	if err != nil {
		return nil, &DecodeError{Tag: name, Err: err}
	}
	return cfg, nil
}

// decodeFields overlays nested onto out. Slices are replaced, not merged.
func decodeFields(nested any, out any) error {
	if nested == nil {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
		ZeroFields:  true,
		TagName:     "mapstructure",
	})
	if err != nil {
		return err
	}
	return dec.Decode(nested)
}

func stringMap(raw any) (map[string]any, error) {
	switch v := raw.(type) {
	case map[string]any:
		return v, nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key %v", k)
			}
			out[key] = val
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected a backend name or a table, got %T", raw)
}
