package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	sessionstore "github.com/tiyodv/freeCodeCamp/internal/auth/store/session"
	"github.com/tiyodv/freeCodeCamp/internal/events"
	"github.com/tiyodv/freeCodeCamp/internal/profile/models"
	progressservice "github.com/tiyodv/freeCodeCamp/internal/progress/service"
	progressstore "github.com/tiyodv/freeCodeCamp/internal/progress/store"
	userstore "github.com/tiyodv/freeCodeCamp/internal/user/store"
	dErrors "github.com/tiyodv/freeCodeCamp/pkg/domain-errors"
)

// timelineLimit caps how many completions a public profile shows.
const timelineLimit = 100

// Service assembles account views and handles account-level destructive
// operations.
type Service struct {
	users    userstore.Store
	sessions sessionstore.Store
	progress progressstore.Store
	emitter  events.Emitter
	tracer   trace.Tracer
	clock    func() time.Time
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

func NewService(users userstore.Store, sessions sessionstore.Store, progress progressstore.Store, emitter events.Emitter, opts ...Option) *Service {
	s := &Service{
		users:    users,
		sessions: sessions,
		progress: progress,
		emitter:  emitter,
		tracer:   otel.Tracer("profile"),
		clock:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// GetSessionUser returns the owner's full account view.
func (s *Service) GetSessionUser(ctx context.Context, userID string) (models.SessionUser, error) {
	ctx, span := s.tracer.Start(ctx, "profile.GetSessionUser")
	defer span.End()

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return models.SessionUser{}, dErrors.Wrap(dErrors.CodeNotFound, "user not found", err)
		}
		return models.SessionUser{}, dErrors.Wrap(dErrors.CodeInternal, "lookup user", err)
	}

	completions, err := s.progress.ListByUser(ctx, user.ID)
	if err != nil {
		return models.SessionUser{}, dErrors.Wrap(dErrors.CodeInternal, "list completions", err)
	}
	current, longest := progressservice.Streaks(progressservice.ActivityDays(completions), s.clock().UTC())

	return models.SessionUser{
		ID:                user.ID,
		Email:             user.Email,
		EmailVerified:     user.EmailVerified,
		Username:          user.Username,
		Name:              user.Name,
		About:             user.About,
		Location:          user.Location,
		Picture:           user.Picture,
		Theme:             user.Theme,
		SoundEnabled:      user.SoundEnabled,
		KeyboardShortcuts: user.KeyboardShortcuts,
		IsHonest:          user.IsHonest,
		SendQuincyEmail:   user.SendQuincyEmail,
		Socials:           user.Socials,
		ProfileUI:         user.ProfileUI,
		Portfolio:         user.Portfolio,
		Points:            user.Points,
		CompletedCount:    len(completions),
		CurrentStreak:     current,
		LongestStreak:     longest,
		JoinDate:          user.CreatedAt,
	}, nil
}

// GetPublicProfile returns the visitor view of a profile, filtered by the
// owner's visibility flags. A locked profile exposes only the lock and the
// username, regardless of the other flags.
func (s *Service) GetPublicProfile(ctx context.Context, username string) (models.PublicProfile, error) {
	ctx, span := s.tracer.Start(ctx, "profile.GetPublicProfile")
	defer span.End()

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return models.PublicProfile{}, dErrors.Wrap(dErrors.CodeNotFound, "profile not found", err)
		}
		return models.PublicProfile{}, dErrors.Wrap(dErrors.CodeInternal, "lookup profile", err)
	}

	profile := models.PublicProfile{
		IsLocked: user.ProfileUI.IsLocked,
		Username: user.Username,
	}
	if user.ProfileUI.IsLocked {
		return profile, nil
	}

	ui := user.ProfileUI
	joinDate := user.CreatedAt
	profile.JoinDate = &joinDate
	if ui.ShowName {
		profile.Name = &user.Name
	}
	if ui.ShowAbout {
		profile.About = &user.About
		profile.Picture = &user.Picture
		socials := user.Socials
		profile.Socials = &socials
	}
	if ui.ShowLocation {
		profile.Location = &user.Location
	}
	if ui.ShowPoints {
		profile.Points = &user.Points
	}
	if ui.ShowPortfolio {
		profile.Portfolio = user.Portfolio
	}
	if ui.ShowTimeLine || ui.ShowHeatMap {
		timeline, err := s.timeline(ctx, user.ID)
		if err != nil {
			return models.PublicProfile{}, err
		}
		profile.Timeline = timeline
	}
	return profile, nil
}

func (s *Service) timeline(ctx context.Context, userID string) ([]models.CompletedChallengeSummary, error) {
	completions, err := s.progress.ListByUser(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "list completions", err)
	}
	if len(completions) > timelineLimit {
		completions = completions[len(completions)-timelineLimit:]
	}
	timeline := make([]models.CompletedChallengeSummary, 0, len(completions))
	for _, c := range completions {
		timeline = append(timeline, models.CompletedChallengeSummary{
			ChallengeID: c.ChallengeID,
			CompletedAt: c.CompletedAt,
		})
	}
	return timeline, nil
}

// DeleteAccount removes the account and everything attached to it. The user
// row goes last so a partial failure leaves the account signed out but
// recoverable.
func (s *Service) DeleteAccount(ctx context.Context, userID string) error {
	ctx, span := s.tracer.Start(ctx, "profile.DeleteAccount")
	defer span.End()

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return dErrors.Wrap(dErrors.CodeNotFound, "user not found", err)
		}
		return dErrors.Wrap(dErrors.CodeInternal, "lookup user", err)
	}

	if err := s.sessions.DeleteByUser(ctx, userID); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "delete sessions", err)
	}
	if err := s.progress.DeleteByUser(ctx, userID); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "delete completions", err)
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "delete user", err)
	}

	if s.emitter != nil {
		s.emitter.Emit(events.Event{
			ID:        uuid.NewString(),
			Timestamp: s.clock(),
			UserID:    userID,
			Action:    events.ActionUserDeleted,
		})
	}
	return nil
}
