package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tiyodv/freeCodeCamp/internal/i18n"
	"github.com/tiyodv/freeCodeCamp/internal/platform/metrics"
	"github.com/tiyodv/freeCodeCamp/internal/platform/middleware"
	"github.com/tiyodv/freeCodeCamp/internal/profile/models"
	smodels "github.com/tiyodv/freeCodeCamp/internal/settings/models"
	"github.com/tiyodv/freeCodeCamp/internal/transport/http/shared"
	dErrors "github.com/tiyodv/freeCodeCamp/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/profile_mocks.go -package=mocks

// Service is the profile surface the handler depends on.
type Service interface {
	GetSessionUser(ctx context.Context, userID string) (models.SessionUser, error)
	GetPublicProfile(ctx context.Context, username string) (models.PublicProfile, error)
	DeleteAccount(ctx context.Context, userID string) error
}

// ProgressResetter clears a user's progress without touching the account.
type ProgressResetter interface {
	Reset(ctx context.Context, userID string) error
}

type Handler struct {
	logger       *slog.Logger
	profile      Service
	progress     ProgressResetter
	metrics      *metrics.Metrics
	jwtValidator middleware.JWTValidator
}

func NewHandler(logger *slog.Logger, profile Service, progress ProgressResetter, m *metrics.Metrics, jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		profile:      profile,
		progress:     progress,
		metrics:      m,
		jwtValidator: jwtValidator,
	}
}

func (h *Handler) Register(r chi.Router) {
	// Public profile lookups need no session.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Recovery(h.logger))
		r.Use(middleware.RequestID)
		r.Use(middleware.Logger(h.logger))
		r.Use(middleware.Timeout(10 * time.Second))
		if h.metrics != nil {
			r.Use(middleware.LatencyMiddleware(h.metrics))
		}

		r.Get("/users/{username}/profile", h.publicProfile)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Recovery(h.logger))
		r.Use(middleware.RequestID)
		r.Use(middleware.Logger(h.logger))
		r.Use(middleware.Timeout(10 * time.Second))
		if h.metrics != nil {
			r.Use(middleware.LatencyMiddleware(h.metrics))
		}
		r.Use(middleware.RequireAuth(h.jwtValidator, h.logger))

		r.Get("/user/get-session-user", h.sessionUser)
		r.Delete("/account", h.deleteAccount)
		r.Post("/reset-my-progress", h.resetProgress)
	})
}

func (h *Handler) sessionUser(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing auth context"))
		return
	}

	user, err := h.profile.GetSessionUser(r.Context(), userID)
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(r.Context(), "get session user", "error", err)
		}
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) publicProfile(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	profile, err := h.profile.GetPublicProfile(r.Context(), username)
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(r.Context(), "get public profile", "error", err)
		}
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing auth context"))
		return
	}

	if err := h.profile.DeleteAccount(r.Context(), userID); err != nil {
		h.fail(w, r, "delete account", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, smodels.Success(i18n.KeyAccountDeleted))
}

func (h *Handler) resetProgress(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "missing auth context"))
		return
	}

	if err := h.progress.Reset(r.Context(), userID); err != nil {
		h.fail(w, r, "reset progress", err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, smodels.Success(i18n.KeyProgressReset))
}

// fail mirrors the settings contract: infrastructure failures become a 500
// carrying a danger flash, anything else keeps its error envelope.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(r.Context(), op, "error", err)
		shared.WriteJSON(w, http.StatusInternalServerError, smodels.Danger(i18n.KeyWrongUpdating))
		return
	}
	shared.WriteError(w, err)
}
