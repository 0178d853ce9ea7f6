package memory

import (
	"slices"
	"sync"
	"sync/atomic"

	domain "student-registration-service/internal/domain/user"
)

// UserStore keeps registered users in insertion order for the lifetime of the process.
// It is safe for concurrent use.
type UserStore struct {
	mu     sync.Mutex
	users  []domain.User
	lastID atomic.Int64
}

// NewUserStore creates an empty store. The first registered user gets ID 1.
func NewUserStore() *UserStore {
	return &UserStore{users: make([]domain.User, 0)}
}

// Register assigns the next ID to the candidate, appends it and returns the stored record.
// Any ID already set on the candidate is overwritten.
func (s *UserStore) Register(candidate domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	// IDs are drawn under the lock so listing order always matches ID order.
	stored := candidate.Clone()
	stored.ID = s.lastID.Add(1)
	s.users = append(s.users, stored)

	return stored.Clone()
}

// ListAll returns a snapshot of all users in insertion order.
func (s *UserStore) ListAll() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]domain.User, len(s.users))
	for i, u := range s.users {
		snapshot[i] = u.Clone()
	}
	return snapshot
}

// DeleteByID removes the first user with the given ID.
// It reports false when no such user exists; the store is left untouched in that case.
func (s *UserStore) DeleteByID(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			s.users = slices.Delete(s.users, i, i+1)
			return true
		}
	}
	return false
}

// Len returns the number of users currently held.
func (s *UserStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}
