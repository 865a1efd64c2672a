package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tiyodv/freeCodeCamp/internal/i18n"
	"github.com/tiyodv/freeCodeCamp/internal/platform/metrics"
	"github.com/tiyodv/freeCodeCamp/internal/platform/middleware"
	settingsModel "github.com/tiyodv/freeCodeCamp/internal/settings/models"
	"github.com/tiyodv/freeCodeCamp/internal/transport/http/shared"
	usermodels "github.com/tiyodv/freeCodeCamp/internal/user/models"
	dErrors "github.com/tiyodv/freeCodeCamp/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/settings_mocks.go -package=mocks

// Service defines the interface for settings operations.
type Service interface {
	UpdateEmail(ctx context.Context, userID, email string) (settingsModel.Flash, error)
	UpdateUsername(ctx context.Context, userID, username string) (settingsModel.Flash, error)
	UpdateAbout(ctx context.Context, userID string, req settingsModel.UpdateAboutRequest) (settingsModel.Flash, error)
	UpdateProfileUI(ctx context.Context, userID string, flags usermodels.ProfileUI) (settingsModel.Flash, error)
	UpdatePortfolio(ctx context.Context, userID string, items []usermodels.PortfolioItem) (settingsModel.Flash, error)
	UpdateSocials(ctx context.Context, userID string, req settingsModel.UpdateSocialsRequest) (settingsModel.Flash, error)
	UpdateTheme(ctx context.Context, userID, theme string) (settingsModel.Flash, error)
	UpdateSound(ctx context.Context, userID string, enabled bool) (settingsModel.Flash, error)
	UpdateKeyboardShortcuts(ctx context.Context, userID string, enabled bool) (settingsModel.Flash, error)
	AcceptHonesty(ctx context.Context, userID string) (settingsModel.Flash, error)
	UpdateQuincyEmail(ctx context.Context, userID string, subscribe bool) (settingsModel.Flash, error)
}

// Handler handles the settings endpoints.
type Handler struct {
	logger       *slog.Logger
	settings     Service
	metrics      *metrics.Metrics
	jwtValidator middleware.JWTValidator
}

// New creates a new settings Handler.
func New(settings Service, logger *slog.Logger, m *metrics.Metrics, jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		settings:     settings,
		metrics:      m,
		jwtValidator: jwtValidator,
	}
}

// Register registers the settings routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Recovery(h.logger))
		r.Use(middleware.RequestID)
		r.Use(middleware.Logger(h.logger))
		r.Use(middleware.Timeout(30 * time.Second))
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.LatencyMiddleware(h.metrics))
		r.Use(middleware.RequireAuth(h.jwtValidator, h.logger))

		r.Put("/update-my-email", h.handleUpdateEmail)
		r.Put("/update-my-username", h.handleUpdateUsername)
		r.Put("/update-my-about", h.handleUpdateAbout)
		r.Put("/update-my-profileui", h.handleUpdateProfileUI)
		r.Put("/update-my-portfolio", h.handleUpdatePortfolio)
		r.Put("/update-my-socials", h.handleUpdateSocials)
		r.Put("/update-my-theme", h.handleUpdateTheme)
		r.Put("/update-my-sound", h.handleUpdateSound)
		r.Put("/update-my-keyboard-shortcuts", h.handleUpdateKeyboardShortcuts)
		r.Put("/update-my-honesty", h.handleUpdateHonesty)
		r.Put("/update-my-quincy-email", h.handleUpdateQuincyEmail)
	})
}

func (h *Handler) handleUpdateEmail(w http.ResponseWriter, r *http.Request) {
	var req settingsModel.UpdateEmailRequest
	userID, ok := h.decode(w, r, &req)
	if !ok {
		return
	}
	h.respond(w, r, func(ctx context.Context) (settingsModel.Flash, error) {
		return h.settings.UpdateEmail(ctx, userID, req.Email)
	})
}

func (h *Handler) handleUpdateUsername(w http.ResponseWriter, r *http.Request) {
	var req settingsModel.UpdateUsernameRequest
	userID, ok := h.decode(w, r, &req)
	if !ok {
		return
	}
	h.respond(w, r, func(ctx context.Context) (settingsModel.Flash, error) {
		return h.settings.UpdateUsername(ctx, userID, req.Username)
	})
}

func (h *Handler) handleUpdateAbout(w http.ResponseWriter, r *http.Request) {
	var req settingsModel.UpdateAboutRequest
	userID, ok := h.decode(w, r, &req)
	if !ok {
		return
	}
	h.respond(w, r, func(ctx context.Context) (settingsModel.Flash, error) {
		return h.settings.UpdateAbout(ctx, userID, req)
	})
}

func (h *Handler) handleUpdateProfileUI(w http.ResponseWriter, r *http.Request) {
	var req settingsModel.UpdateProfileUIRequest
	userID, ok := h.decode(w, r, &req)
	if !ok {
		return
	}
	h.respond(w, r, func(ctx context.Context) (settingsModel.Flash, error) {
		return h.settings.UpdateProfileUI(ctx, userID, req.ProfileUI)
	})
}

func (h *Handler) handleUpdatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req settingsModel.UpdatePortfolioRequest
	userID, ok := h.decode(w, r, &req)
	if !ok {
		return
	}
	h.respond(w, r, func(ctx context.Context) (settingsModel.Flash, error) {
		return h.settings.UpdatePortfolio(ctx, userID, req.Portfolio)
	})
}

func (h *Handler) handleUpdateSocials(w http.ResponseWriter, r *http.Request) {
	var req settingsModel.UpdateSocialsRequest
	userID, ok := h.decode(w, r, &req)
	if !ok {
		return
	}
	h.respond(w, r, func(ctx context.Context) (settingsModel.Flash, error) {
		return h.settings.UpdateSocials(ctx, userID, req)
	})
}

func (h *Handler) handleUpdateTheme(w http.ResponseWriter, r *http.Request) {
	var req settingsModel.UpdateThemeRequest
	userID, ok := h.decode(w, r, &req)
	if !ok {
		return
	}
	h.respond(w, r, func(ctx context.Context) (settingsModel.Flash, error) {
		return h.settings.UpdateTheme(ctx, userID, req.Theme)
	})
}

func (h *Handler) handleUpdateSound(w http.ResponseWriter, r *http.Request) {
	var req settingsModel.UpdateSoundRequest
	userID, ok := h.decode(w, r, &req)
	if !ok {
		return
	}
	h.respond(w, r, func(ctx context.Context) (settingsModel.Flash, error) {
		return h.settings.UpdateSound(ctx, userID, req.Sound)
	})
}

func (h *Handler) handleUpdateKeyboardShortcuts(w http.ResponseWriter, r *http.Request) {
	var req settingsModel.UpdateKeyboardShortcutsRequest
	userID, ok := h.decode(w, r, &req)
	if !ok {
		return
	}
	h.respond(w, r, func(ctx context.Context) (settingsModel.Flash, error) {
		return h.settings.UpdateKeyboardShortcuts(ctx, userID, req.KeyboardShortcuts)
	})
}

func (h *Handler) handleUpdateHonesty(w http.ResponseWriter, r *http.Request) {
	var req settingsModel.UpdateHonestyRequest
	userID, ok := h.decode(w, r, &req)
	if !ok {
		return
	}
	if !req.IsHonest {
		// The policy can only be accepted, never un-accepted.
		shared.WriteJSON(w, http.StatusOK, settingsModel.Danger(i18n.KeyWrongUpdating))
		return
	}
	h.respond(w, r, func(ctx context.Context) (settingsModel.Flash, error) {
		return h.settings.AcceptHonesty(ctx, userID)
	})
}

func (h *Handler) handleUpdateQuincyEmail(w http.ResponseWriter, r *http.Request) {
	var req settingsModel.UpdateQuincyEmailRequest
	userID, ok := h.decode(w, r, &req)
	if !ok {
		return
	}
	h.respond(w, r, func(ctx context.Context) (settingsModel.Flash, error) {
		return h.settings.UpdateQuincyEmail(ctx, userID, req.SendQuincyEmail)
	})
}

// decode pulls the authenticated user from context and unmarshals the body.
// It writes the error response itself and reports success via ok.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) (string, bool) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		// Should never happen behind RequireAuth.
		h.logger.ErrorContext(ctx, "userID missing from context despite auth middleware",
			"request_id", middleware.GetRequestID(ctx),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return "", false
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.WarnContext(ctx, "invalid settings request body",
			"request_id", middleware.GetRequestID(ctx),
			"path", r.URL.Path,
			"error", err.Error(),
		)
		shared.WriteJSON(w, http.StatusBadRequest, settingsModel.Danger(i18n.KeyWrongUpdating))
		return "", false
	}
	return userID, true
}

// respond runs the service call and maps its outcome onto the wire: a flash
// payload on success or validation failure, the error envelope otherwise.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context) (settingsModel.Flash, error)) {
	ctx := r.Context()
	flash, err := fn(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "settings update failed",
			"request_id", middleware.GetRequestID(ctx),
			"path", r.URL.Path,
			"error", err.Error(),
		)
		if dErrors.Is(err, dErrors.CodeNotFound) {
			shared.WriteError(w, err)
			return
		}
		shared.WriteJSON(w, http.StatusInternalServerError, settingsModel.Danger(i18n.KeyWrongUpdating))
		return
	}
	shared.WriteJSON(w, http.StatusOK, flash)
}
