package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	authModel "github.com/tiyodv/freeCodeCamp/internal/auth/models"
	"github.com/tiyodv/freeCodeCamp/internal/platform/metrics"
	"github.com/tiyodv/freeCodeCamp/internal/platform/middleware"
	"github.com/tiyodv/freeCodeCamp/internal/transport/http/shared"
	usermodels "github.com/tiyodv/freeCodeCamp/internal/user/models"
	dErrors "github.com/tiyodv/freeCodeCamp/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/auth_mocks.go -package=mocks

// Service defines the interface for auth operations.
type Service interface {
	Signup(ctx context.Context, email, password string) (*usermodels.User, error)
	Signin(ctx context.Context, email, password, userAgent string) (authModel.SigninResponse, error)
	Signout(ctx context.Context, sessionID string) error
}

// Handler handles the auth endpoints.
type Handler struct {
	logger       *slog.Logger
	auth         Service
	metrics      *metrics.Metrics
	jwtValidator middleware.JWTValidator
	limiter      *middleware.IPRateLimiter
}

// New creates a new auth Handler.
func New(auth Service, logger *slog.Logger, m *metrics.Metrics, jwtValidator middleware.JWTValidator, limiter *middleware.IPRateLimiter) *Handler {
	return &Handler{
		logger:       logger,
		auth:         auth,
		metrics:      m,
		jwtValidator: jwtValidator,
		limiter:      limiter,
	}
}

// Register registers the auth routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(public chi.Router) {
		public.Use(middleware.Recovery(h.logger))
		public.Use(middleware.RequestID)
		public.Use(middleware.Logger(h.logger))
		public.Use(middleware.Timeout(15 * time.Second))
		public.Use(middleware.ContentTypeJSON)
		public.Use(middleware.LatencyMiddleware(h.metrics))
		if h.limiter != nil {
			public.Use(middleware.RateLimit(h.limiter))
		}
		public.Post("/signup", h.handleSignup)
		public.Post("/signin", h.handleSignin)
	})

	r.Group(func(private chi.Router) {
		private.Use(middleware.Recovery(h.logger))
		private.Use(middleware.RequestID)
		private.Use(middleware.Logger(h.logger))
		private.Use(middleware.Timeout(15 * time.Second))
		private.Use(middleware.ContentTypeJSON)
		private.Use(middleware.LatencyMiddleware(h.metrics))
		private.Use(middleware.RequireAuth(h.jwtValidator, h.logger))
		private.Post("/signout", h.handleSignout)
	})
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req authModel.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	user, err := h.auth.Signup(ctx, req.Email, req.Password)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeInternal) {
			h.logger.ErrorContext(ctx, "signup failed",
				"request_id", middleware.GetRequestID(ctx),
				"error", err.Error(),
			)
		}
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, map[string]string{
		"user_id":  user.ID,
		"username": user.Username,
	})
}

func (h *Handler) handleSignin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req authModel.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	res, err := h.auth.Signin(ctx, req.Email, req.Password, r.UserAgent())
	if err != nil {
		if dErrors.Is(err, dErrors.CodeInternal) {
			h.logger.ErrorContext(ctx, "signin failed",
				"request_id", middleware.GetRequestID(ctx),
				"error", err.Error(),
			)
		}
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleSignout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := middleware.GetSessionID(ctx)
	if sessionID == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}

	if err := h.auth.Signout(ctx, sessionID); err != nil {
		h.logger.ErrorContext(ctx, "signout failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
