package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tiyodv/freeCodeCamp/internal/curriculum/models"
)

// SQLStore reads the curriculum tables through sqlx. The schema lives in
// db/migrations and is loaded by an out-of-band import job.
type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) ListSuperblocks(ctx context.Context) ([]models.Superblock, error) {
	var superblocks []models.Superblock
	err := s.db.SelectContext(ctx, &superblocks,
		`SELECT slug, title, position FROM superblocks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("select superblocks: %w", err)
	}

	var blocks []models.Block
	err = s.db.SelectContext(ctx, &blocks,
		`SELECT slug, superblock_slug, title, position FROM blocks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("select blocks: %w", err)
	}

	type challengeRef struct {
		ID        string `db:"id"`
		BlockSlug string `db:"block_slug"`
	}
	var refs []challengeRef
	err = s.db.SelectContext(ctx, &refs,
		`SELECT id, block_slug FROM challenges ORDER BY block_slug, position`)
	if err != nil {
		return nil, fmt.Errorf("select challenge ids: %w", err)
	}

	idsByBlock := make(map[string][]string, len(blocks))
	for _, ref := range refs {
		idsByBlock[ref.BlockSlug] = append(idsByBlock[ref.BlockSlug], ref.ID)
	}
	blocksBySuperblock := make(map[string][]models.Block, len(superblocks))
	for _, b := range blocks {
		b.ChallengeIDs = idsByBlock[b.Slug]
		blocksBySuperblock[b.SuperblockSlug] = append(blocksBySuperblock[b.SuperblockSlug], b)
	}
	for i := range superblocks {
		superblocks[i].Blocks = blocksBySuperblock[superblocks[i].Slug]
	}
	return superblocks, nil
}

func (s *SQLStore) FindChallenge(ctx context.Context, id string) (models.Challenge, error) {
	var challenge models.Challenge
	err := s.db.GetContext(ctx, &challenge,
		`SELECT id, block_slug, title, position, instructions FROM challenges WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Challenge{}, ErrNotFound
	}
	if err != nil {
		return models.Challenge{}, fmt.Errorf("select challenge: %w", err)
	}
	return challenge, nil
}
