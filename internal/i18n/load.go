package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Manifest lists the locales the platform serves. One <locale>.yml catalog
// must exist next to it for every entry.
type Manifest struct {
	Default string   `yaml:"default"`
	Locales []string `yaml:"locales"`
}

// LoadDir reads the manifest and every listed catalog from dir, shape-checks
// the non-default catalogs, and returns a ready Translator.
func LoadDir(dir string) (*Translator, error) {
	manifest, err := loadManifest(dir)
	if err != nil {
		return nil, err
	}

	translator := NewTranslator(manifest.Default)
	reference, err := LoadCatalog(filepath.Join(dir, manifest.Default+".yml"))
	if err != nil {
		return nil, fmt.Errorf("default locale %q: %w", manifest.Default, err)
	}
	translator.SetCatalog(manifest.Default, reference)

	for _, locale := range manifest.Locales {
		if locale == manifest.Default {
			continue
		}
		catalog, err := LoadCatalog(filepath.Join(dir, locale+".yml"))
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale, err)
		}
		if err := ValidateShape(reference, catalog); err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale, err)
		}
		translator.SetCatalog(locale, catalog)
	}
	return translator, nil
}

func loadManifest(dir string) (*Manifest, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "manifest.yml"))
	if err != nil {
		return nil, fmt.Errorf("read locale manifest: %w", err)
	}
	var manifest Manifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("parse locale manifest: %w", err)
	}
	if manifest.Default == "" {
		manifest.Default = DefaultLocale
	}
	return &manifest, nil
}

// LoadCatalog reads one locale catalog file (flat key/value YAML).
func LoadCatalog(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var catalog Catalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return catalog, nil
}

// ValidateShape checks a translated catalog against the reference one.
// Unknown keys are rejected outright; missing keys are reported together so
// translators see the full gap, not one key at a time.
func ValidateShape(reference, candidate Catalog) error {
	var unknown, missing []string
	for key := range candidate {
		if _, ok := reference[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	for key := range reference {
		if _, ok := candidate[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(unknown) == 0 && len(missing) == 0 {
		return nil
	}
	sort.Strings(unknown)
	sort.Strings(missing)
	return fmt.Errorf("catalog shape mismatch: unknown keys %v, missing keys %v", unknown, missing)
}
