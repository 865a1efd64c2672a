package session

import (
	"context"

	"github.com/tiyodv/freeCodeCamp/internal/auth/models"
	"github.com/tiyodv/freeCodeCamp/pkg/platform/sentinel"
)

// Store is the persistence contract for sessions.
type Store interface {
	Save(ctx context.Context, session models.Session) error
	FindByID(ctx context.Context, id string) (models.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
	// SweepExpired removes expired sessions and returns how many went away.
	// The Redis store is a no-op here since keys carry their own TTL.
	SweepExpired(ctx context.Context) (int, error)
}

var (
	ErrNotFound = sentinel.ErrNotFound
	ErrExpired  = sentinel.ErrExpired
)
