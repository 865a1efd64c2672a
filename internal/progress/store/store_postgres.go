package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tiyodv/freeCodeCamp/internal/progress/models"
)

// PostgresStore persists completions through a pgx pool. This store was
// written against pgx directly rather than database/sql; the user store
// predates the migration.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Upsert(ctx context.Context, userID string, completion models.CompletedChallenge) (bool, error) {
	// xmax = 0 distinguishes a fresh insert from a conflict-update.
	var inserted bool
	err := s.pool.QueryRow(ctx, `
		INSERT INTO completed_challenges (user_id, challenge_id, completed_at, solution)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, challenge_id) DO UPDATE SET
			completed_at = EXCLUDED.completed_at,
			solution = EXCLUDED.solution
		RETURNING (xmax = 0)
	`, userID, completion.ChallengeID, completion.CompletedAt, completion.Solution).Scan(&inserted)
	if err != nil {
		return false, fmt.Errorf("upsert completion: %w", err)
	}
	return !inserted, nil
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID string) ([]models.CompletedChallenge, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT challenge_id, completed_at, solution
		FROM completed_challenges
		WHERE user_id = $1
		ORDER BY completed_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}
	defer rows.Close()

	completions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CompletedChallenge, error) {
		var c models.CompletedChallenge
		err := row.Scan(&c.ChallengeID, &c.CompletedAt, &c.Solution)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan completions: %w", err)
	}
	return completions, nil
}

func (s *PostgresStore) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM completed_challenges WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete completions: %w", err)
	}
	return nil
}
