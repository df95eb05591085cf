// Package icons names the glyphs the shell draws. Values are Nerd Font / Unicode
// code points so they render in any reasonably modern terminal font.
package icons

import "sync/atomic"

const (
	PowerMenu = "⏻"
	PowerOff  = "⏻"
	Reboot    = "↻"
	Suspend   = "⏾"
	Hibernate = "❄"
	Logout    = "⇥"
	Command   = "›"
)

// ASCII fallbacks, used when --ascii-icons is set.
var ascii = map[string]string{
	PowerMenu: "[P]",
	Reboot:    "[R]",
	Suspend:   "[S]",
	Hibernate: "[H]",
	Logout:    "[L]",
	Command:   ">",
}

var plain atomic.Bool

// SetASCII switches Get to the ASCII fallbacks for the whole process.
func SetASCII(enabled bool) { plain.Store(enabled) }

// ASCII reports whether Get returns fallbacks.
func ASCII() bool { return plain.Load() }

// Get resolves icon against the process-wide ASCII setting.
func Get(icon string) string { return Resolve(icon, plain.Load()) }

// Resolve returns icon, or its ASCII fallback when plain is true.
func Resolve(icon string, plain bool) string {
	if !plain {
		return icon
	}
	if fallback, ok := ascii[icon]; ok {
		return fallback
	}
	return icon
}
