// Package i18n owns the flash message key catalog and the locale files the
// client downloads. Resolution order: requested locale, then the default
// locale, then the compiled-in English fallback, then the key itself so
// nothing is silently swallowed.
package i18n

import (
	"fmt"
	"sync"
)

const DefaultLocale = "en"

// Catalog maps dotted message keys to translated strings for one locale.
type Catalog map[string]string

// Translator resolves message keys across the loaded locale catalogs.
// Catalogs may be swapped at runtime by the file watcher.
type Translator struct {
	mu            sync.RWMutex
	defaultLocale string
	catalogs      map[string]Catalog
}

func NewTranslator(defaultLocale string) *Translator {
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}
	return &Translator{
		defaultLocale: defaultLocale,
		catalogs:      make(map[string]Catalog),
	}
}

// SetCatalog installs or replaces the catalog for a locale.
func (t *Translator) SetCatalog(locale string, catalog Catalog) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.catalogs[locale] = catalog
}

// Resolved returns the full catalog for a locale with every known key
// present, filling gaps from the default catalog and the compiled-in
// fallbacks. This is what the client downloads.
func (t *Translator) Resolved(locale string) Catalog {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(Catalog, len(fallbacks))
	for key, msg := range fallbacks {
		out[key] = msg
	}
	if catalog, ok := t.catalogs[t.defaultLocale]; ok {
		for key, msg := range catalog {
			out[key] = msg
		}
	}
	if catalog, ok := t.catalogs[locale]; ok {
		for key, msg := range catalog {
			out[key] = msg
		}
	}
	return out
}

// Has reports whether a catalog is loaded for the locale.
func (t *Translator) Has(locale string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.catalogs[locale]
	return ok
}

// Locales lists locales with a loaded catalog.
func (t *Translator) Locales() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.catalogs))
	for locale := range t.catalogs {
		out = append(out, locale)
	}
	return out
}

// T renders the message for key in locale. Extra args are passed to
// fmt.Sprintf when the translation contains format verbs.
func (t *Translator) T(locale, key string, args ...any) string {
	tmpl := t.lookup(locale, key)
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

func (t *Translator) lookup(locale, key string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if locale != "" {
		if catalog, ok := t.catalogs[locale]; ok {
			if msg, ok := catalog[key]; ok {
				return msg
			}
		}
	}
	if catalog, ok := t.catalogs[t.defaultLocale]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if msg, ok := fallbacks[key]; ok {
		return msg
	}
	return key
}
