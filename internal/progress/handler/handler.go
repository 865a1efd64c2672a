package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tiyodv/freeCodeCamp/internal/platform/metrics"
	"github.com/tiyodv/freeCodeCamp/internal/platform/middleware"
	"github.com/tiyodv/freeCodeCamp/internal/progress/models"
	"github.com/tiyodv/freeCodeCamp/internal/transport/http/shared"
	dErrors "github.com/tiyodv/freeCodeCamp/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/progress_mocks.go -package=mocks

// Service is the progress surface the handler depends on.
type Service interface {
	CompleteChallenge(ctx context.Context, userID, challengeID, solution string) (models.CompleteResult, error)
	Overview(ctx context.Context, userID string) (models.Overview, error)
}

type Handler struct {
	logger       *slog.Logger
	progress     Service
	metrics      *metrics.Metrics
	jwtValidator middleware.JWTValidator
}

func NewHandler(logger *slog.Logger, progress Service, m *metrics.Metrics, jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		progress:     progress,
		metrics:      m,
		jwtValidator: jwtValidator,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Recovery(h.logger))
		r.Use(middleware.RequestID)
		r.Use(middleware.Logger(h.logger))
		r.Use(middleware.Timeout(10 * time.Second))
		r.Use(middleware.ContentTypeJSON)
		if h.metrics != nil {
			r.Use(middleware.LatencyMiddleware(h.metrics))
		}
		r.Use(middleware.RequireAuth(h.jwtValidator, h.logger))

		r.Post("/modern-challenge-completed", h.completeChallenge)
		r.Get("/progress", h.overview)
	})
}

type completeRequest struct {
	ID       string `json:"id"`
	Solution string `json:"solution,omitempty"`
}

func (h *Handler) completeChallenge(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing auth context"))
		return
	}

	var req completeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.Wrap(dErrors.CodeBadRequest, "invalid request body", err))
		return
	}

	result, err := h.progress.CompleteChallenge(r.Context(), userID, req.ID, req.Solution)
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(r.Context(), "complete challenge", "error", err)
		}
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing auth context"))
		return
	}

	overview, err := h.progress.Overview(r.Context(), userID)
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(r.Context(), "progress overview", "error", err)
		}
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, overview)
}
