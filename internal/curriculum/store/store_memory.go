package store

import (
	"context"
	"sort"
	"sync"

	"github.com/tiyodv/freeCodeCamp/internal/curriculum/models"
)

// MemoryStore serves a fixed curriculum from memory. Handy for tests and
// for running without a database.
type MemoryStore struct {
	mu          sync.RWMutex
	superblocks map[string]models.Superblock
	blocks      map[string]models.Block
	challenges  map[string]models.Challenge
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		superblocks: make(map[string]models.Superblock),
		blocks:      make(map[string]models.Block),
		challenges:  make(map[string]models.Challenge),
	}
}

// Seed loads a superblock tree, replacing any previous entry with the same
// slug.
func (s *MemoryStore) Seed(superblocks ...models.Superblock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sb := range superblocks {
		blocks := sb.Blocks
		sb.Blocks = nil
		s.superblocks[sb.Slug] = sb
		for _, b := range blocks {
			b.SuperblockSlug = sb.Slug
			s.blocks[b.Slug] = b
		}
	}
}

// SeedChallenges loads challenges and attaches them to their blocks.
func (s *MemoryStore) SeedChallenges(challenges ...models.Challenge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range challenges {
		s.challenges[c.ID] = c
	}
}

func (s *MemoryStore) ListSuperblocks(ctx context.Context) ([]models.Superblock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	challengesByBlock := make(map[string][]models.Challenge)
	for _, c := range s.challenges {
		challengesByBlock[c.BlockSlug] = append(challengesByBlock[c.BlockSlug], c)
	}

	blocksBySuperblock := make(map[string][]models.Block)
	for _, b := range s.blocks {
		challenges := challengesByBlock[b.Slug]
		sort.Slice(challenges, func(i, j int) bool { return challenges[i].Order < challenges[j].Order })
		b.ChallengeIDs = make([]string, 0, len(challenges))
		for _, c := range challenges {
			b.ChallengeIDs = append(b.ChallengeIDs, c.ID)
		}
		blocksBySuperblock[b.SuperblockSlug] = append(blocksBySuperblock[b.SuperblockSlug], b)
	}

	out := make([]models.Superblock, 0, len(s.superblocks))
	for _, sb := range s.superblocks {
		blocks := blocksBySuperblock[sb.Slug]
		sort.Slice(blocks, func(i, j int) bool { return blocks[i].Order < blocks[j].Order })
		sb.Blocks = blocks
		out = append(out, sb)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (s *MemoryStore) FindChallenge(ctx context.Context, id string) (models.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.challenges[id]
	if !ok {
		return models.Challenge{}, ErrNotFound
	}
	return c, nil
}
