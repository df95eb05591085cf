// Package i18n looks up localised UI strings from the embedded TOML
// catalogues.
package i18n

import (
	"embed"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	locale "github.com/jeandeaual/go-locale"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var catalogues embed.FS

var (
	mu        sync.RWMutex
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
)

func init() {
	b, err := newBundle()
	if err != nil {
		// The catalogues are embedded; failing here means the build is broken.
		panic(err)
	}
	bundle = b
	localizer = goi18n.NewLocalizer(b, language.English.String())
}

func newBundle() (*goi18n.Bundle, error) {
	b := goi18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	entries, err := catalogues.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		if _, err := b.LoadMessageFileFS(catalogues, "locales/"+entry.Name()); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// SetLanguage selects the catalogue used by T. An empty lang detects the user
// locale from the environment. English is always the final fallback.
func SetLanguage(lang string) {
	langs := []string{}
	if trimmed := strings.TrimSpace(lang); trimmed != "" {
		langs = append(langs, trimmed)
	} else if detected, err := locale.GetLocales(); err == nil {
		langs = append(langs, detected...)
	}
	langs = append(langs, language.English.String())
	mu.Lock()
	localizer = goi18n.NewLocalizer(bundle, langs...)
	mu.Unlock()
}

// Languages lists the languages that have a catalogue.
func Languages() []string {
	tags := bundle.LanguageTags()
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tag.String())
	}
	return out
}

// T returns the message for id, or id itself when no catalogue defines it.
func T(id string) string {
	return TF(id, nil)
}

// TF is T with template data.
func TF(id string, data map[string]interface{}) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()
	msg, err := l.Localize(&goi18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil || msg == "" {
		return id
	}
	return msg
}
