package handler

import (
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tiyodv/freeCodeCamp/internal/i18n"
	"github.com/tiyodv/freeCodeCamp/internal/platform/metrics"
	"github.com/tiyodv/freeCodeCamp/internal/platform/middleware"
	"github.com/tiyodv/freeCodeCamp/internal/transport/http/shared"
	dErrors "github.com/tiyodv/freeCodeCamp/pkg/domain-errors"
)

// Handler serves the locale catalogs the client resolves flash keys
// against. Public, read-only.
type Handler struct {
	logger     *slog.Logger
	translator *i18n.Translator
	metrics    *metrics.Metrics
}

func NewHandler(logger *slog.Logger, translator *i18n.Translator, m *metrics.Metrics) *Handler {
	return &Handler{
		logger:     logger,
		translator: translator,
		metrics:    m,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Recovery(h.logger))
		r.Use(middleware.RequestID)
		r.Use(middleware.Logger(h.logger))
		r.Use(middleware.Timeout(5 * time.Second))
		if h.metrics != nil {
			r.Use(middleware.LatencyMiddleware(h.metrics))
		}

		r.Get("/locales", h.listLocales)
		r.Get("/locales/{locale}", h.catalog)
	})
}

func (h *Handler) listLocales(w http.ResponseWriter, r *http.Request) {
	locales := h.translator.Locales()
	sort.Strings(locales)
	shared.WriteJSON(w, http.StatusOK, map[string][]string{"locales": locales})
}

func (h *Handler) catalog(w http.ResponseWriter, r *http.Request) {
	locale := chi.URLParam(r, "locale")
	if !h.translator.Has(locale) && locale != i18n.DefaultLocale {
		shared.WriteError(w, dErrors.New(dErrors.CodeNotFound, "unknown locale"))
		return
	}
	shared.WriteJSON(w, http.StatusOK, h.translator.Resolved(locale))
}
