package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/tiyodv/freeCodeCamp/internal/user/models"
	txctx "github.com/tiyodv/freeCodeCamp/pkg/platform/tx"
)

// PostgresStore persists accounts in PostgreSQL. Profile visibility flags
// are stored as one jsonb column since the settings endpoint replaces them
// as a whole; portfolio items live in their own table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// querier abstracts *sql.DB and *sql.Tx so methods run inside a caller
// transaction when one is present in context.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *PostgresStore) q(ctx context.Context) querier {
	if tx, ok := txctx.From(ctx); ok {
		return tx
	}
	return s.db
}

// inTx runs fn inside the caller's transaction when one is in context,
// otherwise begins its own so the user row and portfolio rows move together.
func (s *PostgresStore) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txctx.From(ctx); ok {
		return fn(ctx)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(txctx.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

const userColumns = `id, email, new_email, email_verified, email_requested_at,
	username, name, about, location, picture,
	theme, sound_enabled, keyboard_shortcuts, is_honest, send_quincy_email,
	github, linkedin, twitter, website,
	profile_ui, points, password_hash, created_at, updated_at`

func (s *PostgresStore) Save(ctx context.Context, user *models.User) error {
	return s.inTx(ctx, func(ctx context.Context) error {
		return s.save(ctx, user)
	})
}

func (s *PostgresStore) save(ctx context.Context, user *models.User) error {
	profileUI, err := json.Marshal(user.ProfileUI)
	if err != nil {
		return fmt.Errorf("marshal profile ui: %w", err)
	}
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24)
	`
	_, err = s.q(ctx).ExecContext(ctx, query,
		user.ID, user.Email, user.NewEmail, user.EmailVerified, user.EmailRequestedAt,
		user.Username, user.Name, user.About, user.Location, user.Picture,
		string(user.Theme), user.SoundEnabled, user.KeyboardShortcuts, user.IsHonest, user.SendQuincyEmail,
		user.Socials.GitHub, user.Socials.LinkedIn, user.Socials.Twitter, user.Socials.Website,
		profileUI, user.Points, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("insert user: %w", err)
	}
	if err := s.replacePortfolio(ctx, user); err != nil {
		return err
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, user *models.User) error {
	return s.inTx(ctx, func(ctx context.Context) error {
		return s.update(ctx, user)
	})
}

func (s *PostgresStore) update(ctx context.Context, user *models.User) error {
	profileUI, err := json.Marshal(user.ProfileUI)
	if err != nil {
		return fmt.Errorf("marshal profile ui: %w", err)
	}
	query := `
		UPDATE users SET
			email = $2, new_email = $3, email_verified = $4, email_requested_at = $5,
			username = $6, name = $7, about = $8, location = $9, picture = $10,
			theme = $11, sound_enabled = $12, keyboard_shortcuts = $13, is_honest = $14,
			send_quincy_email = $15,
			github = $16, linkedin = $17, twitter = $18, website = $19,
			profile_ui = $20, points = $21, updated_at = $22
		WHERE id = $1
	`
	res, err := s.q(ctx).ExecContext(ctx, query,
		user.ID,
		user.Email, user.NewEmail, user.EmailVerified, user.EmailRequestedAt,
		user.Username, user.Name, user.About, user.Location, user.Picture,
		string(user.Theme), user.SoundEnabled, user.KeyboardShortcuts, user.IsHonest,
		user.SendQuincyEmail,
		user.Socials.GitHub, user.Socials.LinkedIn, user.Socials.Twitter, user.Socials.Website,
		profileUI, user.Points, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("update user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return s.replacePortfolio(ctx, user)
}

func (s *PostgresStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	return s.findBy(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findBy(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
}

func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findBy(ctx, `SELECT `+userColumns+` FROM users WHERE lower(username) = lower($1)`, username)
}

func (s *PostgresStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := s.q(ctx).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE lower(username) = lower($1))`, username,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("username exists: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	return s.inTx(ctx, func(ctx context.Context) error {
		return s.delete(ctx, id)
	})
}

func (s *PostgresStore) delete(ctx context.Context, id string) error {
	q := s.q(ctx)
	if _, err := q.ExecContext(ctx, `DELETE FROM portfolio_items WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("delete portfolio: %w", err)
	}
	res, err := q.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) findBy(ctx context.Context, query string, arg any) (*models.User, error) {
	var (
		user      models.User
		theme     string
		profileUI []byte
	)
	err := s.q(ctx).QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Email, &user.NewEmail, &user.EmailVerified, &user.EmailRequestedAt,
		&user.Username, &user.Name, &user.About, &user.Location, &user.Picture,
		&theme, &user.SoundEnabled, &user.KeyboardShortcuts, &user.IsHonest, &user.SendQuincyEmail,
		&user.Socials.GitHub, &user.Socials.LinkedIn, &user.Socials.Twitter, &user.Socials.Website,
		&profileUI, &user.Points, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	user.Theme = models.Theme(theme)
	if err := json.Unmarshal(profileUI, &user.ProfileUI); err != nil {
		return nil, fmt.Errorf("unmarshal profile ui: %w", err)
	}
	if err := s.loadPortfolio(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *PostgresStore) loadPortfolio(ctx context.Context, user *models.User) error {
	rows, err := s.q(ctx).QueryContext(ctx, `
		SELECT id, title, url, image, description
		FROM portfolio_items
		WHERE user_id = $1
		ORDER BY position
	`, user.ID)
	if err != nil {
		return fmt.Errorf("load portfolio: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.PortfolioItem
		if err := rows.Scan(&item.ID, &item.Title, &item.URL, &item.Image, &item.Description); err != nil {
			return fmt.Errorf("scan portfolio item: %w", err)
		}
		user.Portfolio = append(user.Portfolio, item)
	}
	return rows.Err()
}

// replacePortfolio deletes and re-inserts the user's portfolio rows. A batch
// INSERT with unnest keeps round trips constant regardless of item count.
func (s *PostgresStore) replacePortfolio(ctx context.Context, user *models.User) error {
	q := s.q(ctx)
	if _, err := q.ExecContext(ctx, `DELETE FROM portfolio_items WHERE user_id = $1`, user.ID); err != nil {
		return fmt.Errorf("clear portfolio: %w", err)
	}
	if len(user.Portfolio) == 0 {
		return nil
	}

	ids := make([]string, len(user.Portfolio))
	titles := make([]string, len(user.Portfolio))
	urls := make([]string, len(user.Portfolio))
	images := make([]string, len(user.Portfolio))
	descriptions := make([]string, len(user.Portfolio))
	positions := make([]int64, len(user.Portfolio))
	for i, item := range user.Portfolio {
		ids[i] = item.ID
		titles[i] = item.Title
		urls[i] = item.URL
		images[i] = item.Image
		descriptions[i] = item.Description
		positions[i] = int64(i)
	}

	query := `
		INSERT INTO portfolio_items (id, user_id, position, title, url, image, description)
		SELECT unnest($2::uuid[]), $1, unnest($3::bigint[]),
			unnest($4::text[]), unnest($5::text[]), unnest($6::text[]), unnest($7::text[])
	`
	_, err := q.ExecContext(ctx, query, user.ID,
		pq.Array(ids), pq.Array(positions),
		pq.Array(titles), pq.Array(urls), pq.Array(images), pq.Array(descriptions),
	)
	if err != nil {
		return fmt.Errorf("insert portfolio batch: %w", err)
	}
	return nil
}

// isUniqueViolation matches PostgreSQL error code 23505.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
