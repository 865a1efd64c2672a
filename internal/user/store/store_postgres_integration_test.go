//go:build integration

package store_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/tiyodv/freeCodeCamp/internal/user/models"
	"github.com/tiyodv/freeCodeCamp/internal/user/store"
	"github.com/tiyodv/freeCodeCamp/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
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
	s.store = store.NewPostgresStore(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "users")
	s.Require().NoError(err)
}

func newTestUser(email, username string) *models.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		Theme:        models.ThemeDefault,
		ProfileUI:    models.ProfileUI{IsLocked: true},
		PasswordHash: "$2a$10$notarealhash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (s *PostgresStoreSuite) TestSaveAndFindRoundTrip() {
	ctx := context.Background()
	user := newTestUser("quincy@freecodecamp.org", "quincy")
	user.Name = "Quincy Larson"
	user.Socials.GitHub = "https://github.com/quincy"
	user.Portfolio = []models.PortfolioItem{
		{ID: uuid.NewString(), Title: "First", URL: "https://example.com/1"},
		{ID: uuid.NewString(), Title: "Second", URL: "https://example.com/2", Description: "demo"},
	}

	s.Require().NoError(s.store.Save(ctx, user))

	found, err := s.store.FindByID(ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(user.Email, found.Email)
	s.Equal(user.Name, found.Name)
	s.Equal(user.Socials, found.Socials)
	s.Equal(user.ProfileUI, found.ProfileUI)
	s.Equal(user.Portfolio, found.Portfolio)
	s.True(user.CreatedAt.Equal(found.CreatedAt))

	byEmail, err := s.store.FindByEmail(ctx, "QUINCY@freecodecamp.org")
	s.Require().NoError(err)
	s.Equal(user.ID, byEmail.ID)

	byUsername, err := s.store.FindByUsername(ctx, "Quincy")
	s.Require().NoError(err)
	s.Equal(user.ID, byUsername.ID)
}

func (s *PostgresStoreSuite) TestSaveRejectsDuplicateEmailCaseInsensitive() {
	ctx := context.Background()
	s.Require().NoError(s.store.Save(ctx, newTestUser("dup@example.com", "first")))

	err := s.store.Save(ctx, newTestUser("DUP@example.com", "second"))
	s.ErrorIs(err, store.ErrConflict)
}

func (s *PostgresStoreSuite) TestUpdateRejectsTakenUsername() {
	ctx := context.Background()
	taken := newTestUser("taken@example.com", "taken")
	s.Require().NoError(s.store.Save(ctx, taken))

	user := newTestUser("user@example.com", "original")
	s.Require().NoError(s.store.Save(ctx, user))

	user.Username = "TAKEN"
	err := s.store.Update(ctx, user)
	s.ErrorIs(err, store.ErrConflict)
}

func (s *PostgresStoreSuite) TestUpdateReplacesPortfolio() {
	ctx := context.Background()
	user := newTestUser("portfolio@example.com", "portfolio")
	user.Portfolio = []models.PortfolioItem{
		{ID: uuid.NewString(), Title: "Old one", URL: "https://example.com/old1"},
		{ID: uuid.NewString(), Title: "Old two", URL: "https://example.com/old2"},
	}
	s.Require().NoError(s.store.Save(ctx, user))

	user.Portfolio = []models.PortfolioItem{
		{ID: uuid.NewString(), Title: "New", URL: "https://example.com/new"},
	}
	s.Require().NoError(s.store.Update(ctx, user))

	found, err := s.store.FindByID(ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(user.Portfolio, found.Portfolio)
}

func (s *PostgresStoreSuite) TestUpdateUnknownUser() {
	err := s.store.Update(context.Background(), newTestUser("ghost@example.com", "ghost"))
	s.ErrorIs(err, store.ErrNotFound)
}

func (s *PostgresStoreSuite) TestUsernameExists() {
	ctx := context.Background()
	s.Require().NoError(s.store.Save(ctx, newTestUser("exists@example.com", "CamperOne")))

	exists, err := s.store.UsernameExists(ctx, "camperone")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.store.UsernameExists(ctx, "campertwo")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *PostgresStoreSuite) TestDeleteRemovesUserAndPortfolio() {
	ctx := context.Background()
	user := newTestUser("gone@example.com", "gone")
	user.Portfolio = []models.PortfolioItem{
		{ID: uuid.NewString(), Title: "Item", URL: "https://example.com"},
	}
	s.Require().NoError(s.store.Save(ctx, user))

	s.Require().NoError(s.store.Delete(ctx, user.ID))

	_, err := s.store.FindByID(ctx, user.ID)
	s.ErrorIs(err, store.ErrNotFound)

	var count int
	err = s.postgres.DB.QueryRowContext(ctx,
		`SELECT count(*) FROM portfolio_items WHERE user_id = $1`, user.ID,
	).Scan(&count)
	s.Require().NoError(err)
	s.Zero(count)

	s.ErrorIs(s.store.Delete(ctx, user.ID), store.ErrNotFound)
}
