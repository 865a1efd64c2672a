package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/tiyodv/freeCodeCamp/internal/events"
	"github.com/tiyodv/freeCodeCamp/internal/i18n"
	"github.com/tiyodv/freeCodeCamp/internal/platform/metrics"
	"github.com/tiyodv/freeCodeCamp/internal/settings/models"
	usermodels "github.com/tiyodv/freeCodeCamp/internal/user/models"
	userstore "github.com/tiyodv/freeCodeCamp/internal/user/store"
	dErrors "github.com/tiyodv/freeCodeCamp/pkg/domain-errors"
)

// Service implements the settings update rules. Every operation follows the
// same contract: validation failures return a danger flash and leave stored
// state untouched; only infrastructure problems surface as errors.
type Service struct {
	store   userstore.Store
	emitter events.Emitter
	metrics *metrics.Metrics
	tracer  trace.Tracer
	clock   func() time.Time
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

func NewService(store userstore.Store, emitter events.Emitter, m *metrics.Metrics, opts ...Option) *Service {
	s := &Service{
		store:   store,
		emitter: emitter,
		metrics: m,
		tracer:  otel.Tracer("settings"),
		clock:   time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// UpdateEmail records a pending email change. The new address must differ
// from the current one and is held unverified until confirmed.
func (s *Service) UpdateEmail(ctx context.Context, userID, email string) (models.Flash, error) {
	ctx, span := s.tracer.Start(ctx, "settings.UpdateEmail")
	defer span.End()

	email = strings.TrimSpace(strings.ToLower(email))
	if !validEmail(email) {
		return s.danger("email", i18n.KeyEmailInvalid), nil
	}

	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return models.Flash{}, s.internal("email", err)
	}
	if strings.EqualFold(user.Email, email) || strings.EqualFold(user.NewEmail, email) {
		return s.danger("email", i18n.KeyEmailSame), nil
	}

	now := s.clock()
	user.NewEmail = email
	user.EmailVerified = false
	user.EmailRequestedAt = &now
	if err := s.persist(ctx, user); err != nil {
		return models.Flash{}, s.internal("email", err)
	}

	s.emit(userID, "email")
	return s.success("email", i18n.KeyUpdatedEmail), nil
}

// UpdateUsername changes the public handle. Uniqueness is checked case
// insensitively and re-enforced by the store's constraint.
func (s *Service) UpdateUsername(ctx context.Context, userID, username string) (models.Flash, error) {
	ctx, span := s.tracer.Start(ctx, "settings.UpdateUsername")
	defer span.End()

	username = strings.TrimSpace(strings.ToLower(username))
	if !validUsername(username) {
		return s.danger("username", i18n.KeyUsernameInvalid), nil
	}

	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return models.Flash{}, s.internal("username", err)
	}
	if user.Username == username {
		// No-op rename still reads as a success to the client.
		return s.success("username", i18n.KeyUsernameUpdated), nil
	}

	taken, err := s.store.UsernameExists(ctx, username)
	if err != nil {
		return models.Flash{}, s.internal("username", err)
	}
	if taken {
		return s.danger("username", i18n.KeyUsernameTaken), nil
	}

	user.Username = username
	if err := s.persist(ctx, user); err != nil {
		if errors.Is(err, userstore.ErrConflict) {
			// Lost the race against a concurrent rename.
			return s.danger("username", i18n.KeyUsernameTaken), nil
		}
		return models.Flash{}, s.internal("username", err)
	}

	s.emit(userID, "username")
	return s.success("username", i18n.KeyUsernameUpdated), nil
}

// UpdateAbout replaces the free-text identity fields.
func (s *Service) UpdateAbout(ctx context.Context, userID string, req models.UpdateAboutRequest) (models.Flash, error) {
	ctx, span := s.tracer.Start(ctx, "settings.UpdateAbout")
	defer span.End()

	if len(req.About) > maxAboutLen || len(req.Name) > maxNameLen || len(req.Location) > maxLocationLen {
		return s.danger("about", i18n.KeyWrongUpdating), nil
	}
	if !optionalHTTPURL(req.Picture) {
		return s.danger("about", i18n.KeyWrongUpdating), nil
	}

	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return models.Flash{}, s.internal("about", err)
	}

	user.About = strings.TrimSpace(req.About)
	user.Name = strings.TrimSpace(req.Name)
	user.Location = strings.TrimSpace(req.Location)
	user.Picture = strings.TrimSpace(req.Picture)
	if err := s.persist(ctx, user); err != nil {
		return models.Flash{}, s.internal("about", err)
	}

	s.emit(userID, "about")
	return s.success("about", i18n.KeyUpdatedAboutMe), nil
}

// UpdateProfileUI replaces the visibility flags as a whole.
func (s *Service) UpdateProfileUI(ctx context.Context, userID string, flags usermodels.ProfileUI) (models.Flash, error) {
	ctx, span := s.tracer.Start(ctx, "settings.UpdateProfileUI")
	defer span.End()

	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return models.Flash{}, s.internal("profileui", err)
	}

	user.ProfileUI = flags
	if err := s.persist(ctx, user); err != nil {
		return models.Flash{}, s.internal("profileui", err)
	}

	s.emit(userID, "profileui")
	return s.success("profileui", i18n.KeyUpdatedPrivacy), nil
}

// UpdatePortfolio replaces the portfolio list. Item IDs are preserved so the
// client can track rows across saves; missing IDs get fresh ones.
func (s *Service) UpdatePortfolio(ctx context.Context, userID string, items []usermodels.PortfolioItem) (models.Flash, error) {
	ctx, span := s.tracer.Start(ctx, "settings.UpdatePortfolio")
	defer span.End()

	if len(items) > maxPortfolio {
		return s.danger("portfolio", i18n.KeyWrongUpdating), nil
	}
	for i := range items {
		if len(items[i].Title) > maxTitleLen || len(items[i].Description) > maxAboutLen {
			return s.danger("portfolio", i18n.KeyWrongUpdating), nil
		}
		if !optionalHTTPURL(items[i].URL) || !optionalHTTPURL(items[i].Image) {
			return s.danger("portfolio", i18n.KeyWrongUpdating), nil
		}
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
	}

	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return models.Flash{}, s.internal("portfolio", err)
	}

	user.Portfolio = items
	if err := s.persist(ctx, user); err != nil {
		return models.Flash{}, s.internal("portfolio", err)
	}

	s.emit(userID, "portfolio")
	return s.success("portfolio", i18n.KeyUpdatedPortfolio), nil
}

// UpdateSocials replaces the external profile links.
func (s *Service) UpdateSocials(ctx context.Context, userID string, req models.UpdateSocialsRequest) (models.Flash, error) {
	ctx, span := s.tracer.Start(ctx, "settings.UpdateSocials")
	defer span.End()

	links := usermodels.SocialLinks{
		GitHub:   strings.TrimSpace(req.GitHub),
		LinkedIn: strings.TrimSpace(req.LinkedIn),
		Twitter:  strings.TrimSpace(req.Twitter),
		Website:  strings.TrimSpace(req.Website),
	}
	for _, link := range []string{links.GitHub, links.LinkedIn, links.Twitter, links.Website} {
		if !optionalHTTPURL(link) {
			return s.danger("socials", i18n.KeyWrongUpdating), nil
		}
	}

	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return models.Flash{}, s.internal("socials", err)
	}

	user.Socials = links
	if err := s.persist(ctx, user); err != nil {
		return models.Flash{}, s.internal("socials", err)
	}

	s.emit(userID, "socials")
	return s.success("socials", i18n.KeyUpdatedSocials), nil
}

// UpdateTheme switches the client color scheme.
func (s *Service) UpdateTheme(ctx context.Context, userID, theme string) (models.Flash, error) {
	ctx, span := s.tracer.Start(ctx, "settings.UpdateTheme")
	defer span.End()

	t := usermodels.Theme(theme)
	if !t.Valid() {
		return s.danger("theme", i18n.KeyWrongUpdating), nil
	}

	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return models.Flash{}, s.internal("theme", err)
	}

	user.Theme = t
	if err := s.persist(ctx, user); err != nil {
		return models.Flash{}, s.internal("theme", err)
	}

	s.emit(userID, "theme")
	return s.success("theme", i18n.KeyUpdatedPreferences), nil
}

// UpdateSound toggles the challenge completion sound.
func (s *Service) UpdateSound(ctx context.Context, userID string, enabled bool) (models.Flash, error) {
	return s.updateBool(ctx, "settings.UpdateSound", "sound", userID, i18n.KeyUpdatedPreferences, func(u *usermodels.User) {
		u.SoundEnabled = enabled
	})
}

// UpdateKeyboardShortcuts toggles editor shortcuts.
func (s *Service) UpdateKeyboardShortcuts(ctx context.Context, userID string, enabled bool) (models.Flash, error) {
	return s.updateBool(ctx, "settings.UpdateKeyboardShortcuts", "keyboard_shortcuts", userID, i18n.KeyUpdatedPreferences, func(u *usermodels.User) {
		u.KeyboardShortcuts = enabled
	})
}

// AcceptHonesty records acceptance of the Academic Honesty Policy. The flag
// only moves one way; the handler rejects a false body before we get here.
func (s *Service) AcceptHonesty(ctx context.Context, userID string) (models.Flash, error) {
	return s.updateBool(ctx, "settings.AcceptHonesty", "honesty", userID, i18n.KeyHonestyAccepted, func(u *usermodels.User) {
		u.IsHonest = true
	})
}

// UpdateQuincyEmail toggles the weekly newsletter subscription.
func (s *Service) UpdateQuincyEmail(ctx context.Context, userID string, subscribe bool) (models.Flash, error) {
	key := i18n.KeySubscribed
	if !subscribe {
		key = i18n.KeyUnsubscribed
	}
	return s.updateBool(ctx, "settings.UpdateQuincyEmail", "quincy_email", userID, key, func(u *usermodels.User) {
		u.SendQuincyEmail = subscribe
	})
}

func (s *Service) updateBool(ctx context.Context, span, field, userID, successKey string, mutate func(*usermodels.User)) (models.Flash, error) {
	ctx, sp := s.tracer.Start(ctx, span)
	defer sp.End()

	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return models.Flash{}, s.internal(field, err)
	}

	mutate(user)
	if err := s.persist(ctx, user); err != nil {
		return models.Flash{}, s.internal(field, err)
	}

	s.emit(userID, field)
	return s.success(field, successKey), nil
}

func (s *Service) persist(ctx context.Context, user *usermodels.User) error {
	user.UpdatedAt = s.clock()
	return s.store.Update(ctx, user)
}

func (s *Service) emit(userID, field string) {
	if s.emitter == nil {
		return
	}
	s.emitter.Emit(events.Event{
		ID:        uuid.NewString(),
		Timestamp: s.clock(),
		UserID:    userID,
		Action:    events.ActionSettingsUpdated,
		Detail:    map[string]string{"field": field},
	})
}

func (s *Service) success(field, key string) models.Flash {
	if s.metrics != nil {
		s.metrics.RecordSettingsUpdate(field, true)
	}
	return models.Success(key)
}

func (s *Service) danger(field, key string) models.Flash {
	if s.metrics != nil {
		s.metrics.RecordSettingsUpdate(field, false)
	}
	return models.Danger(key)
}

func (s *Service) internal(field string, err error) error {
	if s.metrics != nil {
		s.metrics.RecordSettingsUpdate(field, false)
	}
	if errors.Is(err, userstore.ErrNotFound) {
		return dErrors.Wrap(dErrors.CodeNotFound, "user not found", err)
	}
	return dErrors.Wrap(dErrors.CodeInternal, "failed to update settings", err)
}
