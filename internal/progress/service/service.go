package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/tiyodv/freeCodeCamp/internal/events"
	"github.com/tiyodv/freeCodeCamp/internal/platform/metrics"
	"github.com/tiyodv/freeCodeCamp/internal/progress/models"
	"github.com/tiyodv/freeCodeCamp/internal/progress/store"
	userstore "github.com/tiyodv/freeCodeCamp/internal/user/store"
	dErrors "github.com/tiyodv/freeCodeCamp/pkg/domain-errors"
)

// Service records challenge completions and computes the dashboard summary.
type Service struct {
	completions store.Store
	users       userstore.Store
	emitter     events.Emitter
	metrics     *metrics.Metrics
	tracer      trace.Tracer
	clock       func() time.Time
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

func NewService(completions store.Store, users userstore.Store, emitter events.Emitter, m *metrics.Metrics, opts ...Option) *Service {
	s := &Service{
		completions: completions,
		users:       users,
		emitter:     emitter,
		metrics:     m,
		tracer:      otel.Tracer("progress"),
		clock:       time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// CompleteChallenge records a completion and awards a point the first time a
// challenge is solved. Re-solving refreshes the stored solution only.
func (s *Service) CompleteChallenge(ctx context.Context, userID, challengeID, solution string) (models.CompleteResult, error) {
	ctx, span := s.tracer.Start(ctx, "progress.CompleteChallenge")
	defer span.End()

	if challengeID == "" {
		return models.CompleteResult{}, dErrors.New(dErrors.CodeBadRequest, "challenge id is required")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return models.CompleteResult{}, dErrors.Wrap(dErrors.CodeNotFound, "user not found", err)
		}
		return models.CompleteResult{}, dErrors.Wrap(dErrors.CodeInternal, "lookup user", err)
	}

	already, err := s.completions.Upsert(ctx, userID, models.CompletedChallenge{
		ChallengeID: challengeID,
		CompletedAt: s.clock(),
		Solution:    solution,
	})
	if err != nil {
		return models.CompleteResult{}, dErrors.Wrap(dErrors.CodeInternal, "record completion", err)
	}

	if !already {
		user.Points++
		user.UpdatedAt = s.clock()
		if err := s.users.Update(ctx, user); err != nil {
			return models.CompleteResult{}, dErrors.Wrap(dErrors.CodeInternal, "award point", err)
		}
		if s.metrics != nil {
			s.metrics.ChallengesDone.Inc()
		}
		s.emit(userID, events.ActionChallengeCompleted, map[string]string{"challenge_id": challengeID})
	}

	return models.CompleteResult{AlreadyCompleted: already, Points: user.Points}, nil
}

// Overview summarizes points, completion count and streaks.
func (s *Service) Overview(ctx context.Context, userID string) (models.Overview, error) {
	ctx, span := s.tracer.Start(ctx, "progress.Overview")
	defer span.End()

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return models.Overview{}, dErrors.Wrap(dErrors.CodeNotFound, "user not found", err)
		}
		return models.Overview{}, dErrors.Wrap(dErrors.CodeInternal, "lookup user", err)
	}

	completions, err := s.completions.ListByUser(ctx, userID)
	if err != nil {
		return models.Overview{}, dErrors.Wrap(dErrors.CodeInternal, "list completions", err)
	}

	current, longest := Streaks(ActivityDays(completions), s.clock().UTC())
	return models.Overview{
		Points:         user.Points,
		CompletedCount: len(completions),
		CurrentStreak:  current,
		LongestStreak:  longest,
	}, nil
}

// Reset clears completions and points but keeps the account.
func (s *Service) Reset(ctx context.Context, userID string) error {
	ctx, span := s.tracer.Start(ctx, "progress.Reset")
	defer span.End()

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			return dErrors.Wrap(dErrors.CodeNotFound, "user not found", err)
		}
		return dErrors.Wrap(dErrors.CodeInternal, "lookup user", err)
	}

	if err := s.completions.DeleteByUser(ctx, userID); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "clear completions", err)
	}

	user.Points = 0
	user.UpdatedAt = s.clock()
	if err := s.users.Update(ctx, user); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "reset points", err)
	}

	s.emit(userID, events.ActionProgressReset, nil)
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

// ActivityDays reduces completions to their distinct UTC days.
func ActivityDays(completions []models.CompletedChallenge) []time.Time {
	seen := make(map[time.Time]bool, len(completions))
	for _, c := range completions {
		day := c.CompletedAt.UTC().Truncate(24 * time.Hour)
		seen[day] = true
	}
	days := make([]time.Time, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// Streaks computes the current and longest run of consecutive activity days.
// The current streak survives until a full day without activity has passed,
// so solving nothing so far today does not zero it.
func Streaks(days []time.Time, now time.Time) (current, longest int) {
	if len(days) == 0 {
		return 0, 0
	}

	run := 1
	longest = 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	today := now.Truncate(24 * time.Hour)
	last := days[len(days)-1]
	if last.Equal(today) || last.Equal(today.Add(-24*time.Hour)) {
		current = run
	}
	return current, longest
}
