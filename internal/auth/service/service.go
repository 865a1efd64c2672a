package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tiyodv/freeCodeCamp/internal/auth/device"
	"github.com/tiyodv/freeCodeCamp/internal/auth/models"
	"github.com/tiyodv/freeCodeCamp/internal/auth/store/session"
	"github.com/tiyodv/freeCodeCamp/internal/events"
	jwttoken "github.com/tiyodv/freeCodeCamp/internal/jwt_token"
	"github.com/tiyodv/freeCodeCamp/internal/platform/metrics"
	usermodels "github.com/tiyodv/freeCodeCamp/internal/user/models"
	userstore "github.com/tiyodv/freeCodeCamp/internal/user/store"
	dErrors "github.com/tiyodv/freeCodeCamp/pkg/domain-errors"
	pkgemail "github.com/tiyodv/freeCodeCamp/pkg/email"
)

const minPasswordLen = 8

// Service owns account creation and the session lifecycle.
type Service struct {
	users    userstore.Store
	sessions session.Store
	jwt      *jwttoken.JWTService
	emitter  events.Emitter
	metrics  *metrics.Metrics

	sessionTTL time.Duration
	accessTTL  time.Duration
	clock      func() time.Time
}

// Option configures a Service instance.
type Option func(*Service)

// WithClock sets the clock function for testability.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func NewService(
	users userstore.Store,
	sessions session.Store,
	jwt *jwttoken.JWTService,
	emitter events.Emitter,
	m *metrics.Metrics,
	sessionTTL, accessTTL time.Duration,
	opts ...Option,
) *Service {
	s := &Service{
		users:      users,
		sessions:   sessions,
		jwt:        jwt,
		emitter:    emitter,
		metrics:    m,
		sessionTTL: sessionTTL,
		accessTTL:  accessTTL,
		clock:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Signup creates an account. The initial username is a generated handle the
// user is expected to change in settings; the display name is derived from
// the email local part.
func (s *Service) Signup(ctx context.Context, email, password string) (*usermodels.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, dErrors.New(dErrors.CodeBadRequest, "invalid email")
	}
	if len(password) < minPasswordLen {
		return nil, dErrors.New(dErrors.CodeBadRequest, "password too short")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, dErrors.New(dErrors.CodeConflict, "email already registered")
	} else if !errors.Is(err, userstore.ErrNotFound) {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "lookup email", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "hash password", err)
	}

	first, last := pkgemail.DeriveNameFromEmail(email)
	now := s.clock()
	user := &usermodels.User{
		ID:              uuid.NewString(),
		Email:           email,
		EmailVerified:   false,
		Username:        generatedUsername(),
		Name:            first + " " + last,
		Theme:           usermodels.ThemeDefault,
		SoundEnabled:    false,
		SendQuincyEmail: false,
		ProfileUI: usermodels.ProfileUI{
			// New profiles start locked; users opt in to being public.
			IsLocked: true,
		},
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Save(ctx, user); err != nil {
		if errors.Is(err, userstore.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "email already registered")
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "save user", err)
	}

	if s.metrics != nil {
		s.metrics.UsersCreated.Inc()
	}
	s.emit(user.ID, events.ActionUserCreated, nil)
	return user, nil
}

// Signin verifies credentials, opens a session labeled with the device and
// returns a signed access token.
func (s *Service) Signin(ctx context.Context, email, password, userAgent string) (models.SigninResponse, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			// Same answer as a bad password so accounts are not enumerable.
			return models.SigninResponse{}, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
		}
		return models.SigninResponse{}, dErrors.Wrap(dErrors.CodeInternal, "lookup email", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.SigninResponse{}, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
	}

	now := s.clock()
	sess := models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Device:    device.ParseUserAgent(userAgent),
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return models.SigninResponse{}, dErrors.Wrap(dErrors.CodeInternal, "save session", err)
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, sess.ID, s.accessTTL)
	if err != nil {
		return models.SigninResponse{}, dErrors.Wrap(dErrors.CodeInternal, "sign token", err)
	}

	return models.SigninResponse{
		AccessToken: token,
		UserID:      user.ID,
		Username:    user.Username,
	}, nil
}

// Signout revokes the current session.
func (s *Service) Signout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			// Already gone; signout is idempotent.
			return nil
		}
		return dErrors.Wrap(dErrors.CodeInternal, "delete session", err)
	}
	return nil
}

func (s *Service) emit(userID, action string, detail map[string]string) {
	if s.emitter == nil {
		return
	}
	s.emitter.Emit(events.Event{
		ID:        uuid.NewString(),
		Timestamp: s.clock(),
		UserID:    userID,
		Action:    action,
		Detail:    detail,
	})
}

// generatedUsername mirrors the platform convention of handing out a
// placeholder handle at signup.
func generatedUsername() string {
	return "fcc" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
