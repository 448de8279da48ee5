package user

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store used in tests and local development.
// The mutex makes the duplicate check and the insert one atomic unit, the
// same guarantee the Postgres unique index gives.
type MemoryStore struct {
	mu    sync.Mutex
	users map[string]*User // keyed by lowercased email
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users: make(map[string]*User),
	}
}

func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}

	out := *u
	return &out, nil
}

func (s *MemoryStore) Insert(ctx context.Context, nu NewUser) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(nu.Email)
	if _, exists := s.users[key]; exists {
		return "", ErrDuplicateEmail
	}

	u := &User{
		ID:           uuid.NewString(),
		FirstName:    nu.FirstName,
		LastName:     nu.LastName,
		Gender:       nu.Gender,
		Email:        nu.Email,
		PasswordHash: nu.PasswordHash,
		CreatedAt:    time.Now(),
	}
	s.users[key] = u

	return u.ID, nil
}
