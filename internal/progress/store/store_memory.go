package store

import (
	"context"
	"sort"
	"sync"

	"github.com/tiyodv/freeCodeCamp/internal/progress/models"
)

// MemoryStore keeps completions per user in a mutex-guarded map.
type MemoryStore struct {
	mu          sync.RWMutex
	completions map[string]map[string]models.CompletedChallenge // userID -> challengeID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{completions: make(map[string]map[string]models.CompletedChallenge)}
}

func (s *MemoryStore) Upsert(_ context.Context, userID string, completion models.CompletedChallenge) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byChallenge, ok := s.completions[userID]
	if !ok {
		byChallenge = make(map[string]models.CompletedChallenge)
		s.completions[userID] = byChallenge
	}
	_, already := byChallenge[completion.ChallengeID]
	byChallenge[completion.ChallengeID] = completion
	return already, nil
}

func (s *MemoryStore) ListByUser(_ context.Context, userID string) ([]models.CompletedChallenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byChallenge := s.completions[userID]
	out := make([]models.CompletedChallenge, 0, len(byChallenge))
	for _, completion := range byChallenge {
		out = append(out, completion)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CompletedAt.Before(out[j].CompletedAt)
	})
	return out, nil
}

func (s *MemoryStore) DeleteByUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.completions, userID)
	return nil
}
