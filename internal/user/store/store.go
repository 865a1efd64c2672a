package store

import (
	"context"

	"github.com/tiyodv/freeCodeCamp/internal/user/models"
	"github.com/tiyodv/freeCodeCamp/pkg/platform/sentinel"
)

// Store is the persistence contract for user accounts. Both the in-memory
// and PostgreSQL implementations satisfy it; services depend on this
// interface only.
type Store interface {
	Save(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// ErrNotFound keeps store-level 404s consistent across implementations.
var ErrNotFound = sentinel.ErrNotFound

// ErrConflict is returned when a unique constraint (email, username) would
// be violated.
var ErrConflict = sentinel.ErrConflict
