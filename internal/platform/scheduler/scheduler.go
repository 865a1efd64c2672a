package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	sessionstore "github.com/tiyodv/freeCodeCamp/internal/auth/store/session"
	"github.com/tiyodv/freeCodeCamp/internal/platform/metrics"
)

const jobTimeout = 5 * time.Minute

// Scheduler runs the nightly maintenance jobs: sweeping expired sessions
// out of the memory store and anything else registered on it.
type Scheduler struct {
	logger    *slog.Logger
	sessions  sessionstore.Store
	metrics   *metrics.Metrics
	scheduler *gocron.Scheduler
}

func New(logger *slog.Logger, sessions sessionstore.Store, m *metrics.Metrics) *Scheduler {
	return &Scheduler{
		logger:    logger,
		sessions:  sessions,
		metrics:   m,
		scheduler: gocron.NewScheduler(time.UTC),
	}
}

// Start registers the jobs and runs them in the background until Stop.
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(1).Day().At("03:00").Do(s.sweepSessions); err != nil {
		return err
	}
	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) sweepSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	swept, err := s.sessions.SweepExpired(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "session sweep", "error", err)
		return
	}
	if s.metrics != nil {
		s.metrics.SessionsSwept.Add(float64(swept))
	}
	s.logger.InfoContext(ctx, "session sweep done", "swept", swept)
}
