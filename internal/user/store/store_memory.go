package store

import (
	"context"
	"strings"
	"sync"

	"github.com/tiyodv/freeCodeCamp/internal/user/models"
)

// MemoryStore keeps accounts in a mutex-guarded map. It backs tests and
// local development; it intentionally favors clarity over performance.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]models.User)}
}

func (s *MemoryStore) Save(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) || strings.EqualFold(u.Username, user.Username) {
			return ErrConflict
		}
	}
	s.users[user.ID] = cloneUser(user)
	return nil
}

func (s *MemoryStore) Update(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return ErrNotFound
	}
	for id, u := range s.users {
		if id != user.ID && strings.EqualFold(u.Username, user.Username) {
			return ErrConflict
		}
	}
	s.users[user.ID] = cloneUser(user)
	return nil
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[id]; ok {
		return cloneUserPtr(user), nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			return cloneUserPtr(user), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if strings.EqualFold(user.Username, username) {
			return cloneUserPtr(user), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UsernameExists(_ context.Context, username string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.users {
		if strings.EqualFold(user.Username, username) {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	return nil
}

// cloneUser copies the portfolio slice so callers cannot mutate stored state.
func cloneUser(u *models.User) models.User {
	out := *u
	out.Portfolio = append([]models.PortfolioItem(nil), u.Portfolio...)
	return out
}

func cloneUserPtr(u models.User) *models.User {
	out := u
	out.Portfolio = append([]models.PortfolioItem(nil), u.Portfolio...)
	return &out
}
