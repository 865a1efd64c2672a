package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tiyodv/freeCodeCamp/internal/curriculum/models"
	"github.com/tiyodv/freeCodeCamp/internal/platform/metrics"
	"github.com/tiyodv/freeCodeCamp/internal/platform/middleware"
	"github.com/tiyodv/freeCodeCamp/internal/transport/http/shared"
	dErrors "github.com/tiyodv/freeCodeCamp/pkg/domain-errors"
)

// Service is the curriculum surface the handler depends on.
type Service interface {
	Map(ctx context.Context) ([]models.Superblock, error)
	Challenge(ctx context.Context, id string) (models.Challenge, error)
}

// Handler serves the public curriculum endpoints. No auth: the curriculum
// is world-readable.
type Handler struct {
	logger     *slog.Logger
	curriculum Service
	metrics    *metrics.Metrics
}

func NewHandler(logger *slog.Logger, curriculum Service, m *metrics.Metrics) *Handler {
	return &Handler{
		logger:     logger,
		curriculum: curriculum,
		metrics:    m,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Recovery(h.logger))
		r.Use(middleware.RequestID)
		r.Use(middleware.Logger(h.logger))
		r.Use(middleware.Timeout(10 * time.Second))
		if h.metrics != nil {
			r.Use(middleware.LatencyMiddleware(h.metrics))
		}

		r.Get("/curriculum", h.curriculumMap)
		r.Get("/challenges/{id}", h.challenge)
	})
}

func (h *Handler) curriculumMap(w http.ResponseWriter, r *http.Request) {
	superblocks, err := h.curriculum.Map(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "curriculum map", "error", err)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, superblocks)
}

func (h *Handler) challenge(w http.ResponseWriter, r *http.Request) {
	challenge, err := h.curriculum.Challenge(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(r.Context(), "get challenge", "error", err)
		}
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, challenge)
}
