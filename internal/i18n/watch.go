package i18n

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/tiyodv/freeCodeCamp/internal/platform/metrics"
)

// Watch reloads a locale catalog whenever its file changes, so translators
// can iterate without restarting the server. A catalog that fails the shape
// check is rejected and the previous one stays in place.
func Watch(ctx context.Context, dir string, translator *Translator, logger *slog.Logger, m *metrics.Metrics) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if filepath.Ext(event.Name) != ".yml" || filepath.Base(event.Name) == "manifest.yml" {
					continue
				}
				reload(event.Name, translator, logger, m)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("locale watcher error", "error", err)
			}
		}
	}()
	return nil
}

func reload(path string, translator *Translator, logger *slog.Logger, m *metrics.Metrics) {
	locale := strings.TrimSuffix(filepath.Base(path), ".yml")

	catalog, err := LoadCatalog(path)
	if err != nil {
		logger.Warn("locale reload failed", "locale", locale, "error", err)
		return
	}

	if locale != DefaultLocale {
		reference, err := LoadCatalog(filepath.Join(filepath.Dir(path), DefaultLocale+".yml"))
		if err == nil {
			if err := ValidateShape(reference, catalog); err != nil {
				logger.Warn("locale rejected by shape check", "locale", locale, "error", err)
				if m != nil {
					m.LocaleShapeFails.Inc()
				}
				return
			}
		}
	}

	translator.SetCatalog(locale, catalog)
	if m != nil {
		m.LocaleReloads.Inc()
	}
	logger.Info("locale catalog reloaded", "locale", locale, "keys", len(catalog))
}
