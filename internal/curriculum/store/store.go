package store

import (
	"context"

	"github.com/tiyodv/freeCodeCamp/internal/curriculum/models"
	"github.com/tiyodv/freeCodeCamp/pkg/platform/sentinel"
)

// Store reads the curriculum map. The curriculum is edited out of band, so
// this surface is read-only.
type Store interface {
	// ListSuperblocks returns every superblock with its blocks and the
	// challenge ids inside each block, ordered by position.
	ListSuperblocks(ctx context.Context) ([]models.Superblock, error)
	FindChallenge(ctx context.Context, id string) (models.Challenge, error)
}

var ErrNotFound = sentinel.ErrNotFound
