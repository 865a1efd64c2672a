//go:build integration

package store_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/tiyodv/freeCodeCamp/internal/progress/models"
	"github.com/tiyodv/freeCodeCamp/internal/progress/store"
	"github.com/tiyodv/freeCodeCamp/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	pool     *pgxpool.Pool
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	schema, err := os.ReadFile("../../../db/migrations/001_init.sql")
	s.Require().NoError(err)
	s.postgres = containers.NewPostgresContainer(s.T(), string(schema))

	s.pool, err = pgxpool.New(context.Background(), s.postgres.DSN)
	s.Require().NoError(err)
	s.T().Cleanup(s.pool.Close)

	s.store = store.NewPostgresStore(s.pool)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "users")
	s.Require().NoError(err)
}

// insertUser satisfies the completed_challenges foreign key.
func (s *PostgresStoreSuite) insertUser() string {
	userID := uuid.NewString()
	_, err := s.postgres.DB.Exec(`
		INSERT INTO users (id, email, username, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, 'hash', now(), now())
	`, userID, userID+"@example.com", "camper-"+userID[:8])
	s.Require().NoError(err)
	return userID
}

func (s *PostgresStoreSuite) TestUpsertReportsRepeatCompletion() {
	ctx := context.Background()
	userID := s.insertUser()
	first := models.CompletedChallenge{
		ChallengeID: "basic-html",
		CompletedAt: time.Now().UTC().Truncate(time.Microsecond),
		Solution:    "<h1>Hello</h1>",
	}

	already, err := s.store.Upsert(ctx, userID, first)
	s.Require().NoError(err)
	s.False(already)

	repeat := first
	repeat.CompletedAt = first.CompletedAt.Add(time.Hour)
	repeat.Solution = "<h1>Hello again</h1>"

	already, err = s.store.Upsert(ctx, userID, repeat)
	s.Require().NoError(err)
	s.True(already)

	completions, err := s.store.ListByUser(ctx, userID)
	s.Require().NoError(err)
	s.Require().Len(completions, 1)
	s.Equal(repeat.Solution, completions[0].Solution)
	s.True(repeat.CompletedAt.Equal(completions[0].CompletedAt))
}

func (s *PostgresStoreSuite) TestListByUserOrdersByCompletionTime() {
	ctx := context.Background()
	userID := s.insertUser()
	base := time.Now().UTC().Truncate(time.Microsecond)

	newer := models.CompletedChallenge{ChallengeID: "newer", CompletedAt: base}
	older := models.CompletedChallenge{ChallengeID: "older", CompletedAt: base.Add(-48 * time.Hour)}
	for _, c := range []models.CompletedChallenge{newer, older} {
		_, err := s.store.Upsert(ctx, userID, c)
		s.Require().NoError(err)
	}

	completions, err := s.store.ListByUser(ctx, userID)
	s.Require().NoError(err)
	s.Require().Len(completions, 2)
	s.Equal("older", completions[0].ChallengeID)
	s.Equal("newer", completions[1].ChallengeID)
}

func (s *PostgresStoreSuite) TestDeleteByUser() {
	ctx := context.Background()
	userID := s.insertUser()
	otherID := s.insertUser()

	_, err := s.store.Upsert(ctx, userID, models.CompletedChallenge{ChallengeID: "ch", CompletedAt: time.Now()})
	s.Require().NoError(err)
	_, err = s.store.Upsert(ctx, otherID, models.CompletedChallenge{ChallengeID: "ch", CompletedAt: time.Now()})
	s.Require().NoError(err)

	s.Require().NoError(s.store.DeleteByUser(ctx, userID))

	completions, err := s.store.ListByUser(ctx, userID)
	s.Require().NoError(err)
	s.Empty(completions)

	kept, err := s.store.ListByUser(ctx, otherID)
	s.Require().NoError(err)
	s.Len(kept, 1)
}
