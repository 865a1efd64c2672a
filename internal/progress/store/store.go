package store

import (
	"context"

	"github.com/tiyodv/freeCodeCamp/internal/progress/models"
	"github.com/tiyodv/freeCodeCamp/pkg/platform/sentinel"
)

// Store persists challenge completions.
type Store interface {
	// Upsert records a completion and reports whether this challenge was
	// already completed by the user.
	Upsert(ctx context.Context, userID string, completion models.CompletedChallenge) (alreadyCompleted bool, err error)
	ListByUser(ctx context.Context, userID string) ([]models.CompletedChallenge, error)
	DeleteByUser(ctx context.Context, userID string) error
}

var ErrNotFound = sentinel.ErrNotFound
