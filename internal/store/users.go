package store

import (
	"strings"
	"sync"
	"time"

	"dashboard-services/internal/entities"
)

type UserStore struct {
	mu    sync.RWMutex
	users map[string]*entities.User
	ids   []string // insertion order
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*entities.User)}
}

func (s *UserStore) List() []entities.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.User, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.users[id].Clone())
	}
	return out
}

func (s *UserStore) Get(id string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return entities.User{}, entities.ErrUserNotFound
	}
	return u.Clone(), nil
}

func (s *UserStore) Insert(user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(user.Email, "") {
		return entities.ErrEmailTaken
	}
	cp := user.Clone()
	s.users[user.ID] = &cp
	s.ids = append(s.ids, user.ID)
	return nil
}

// Update applies mutate under the write lock, re-checks email uniqueness
// against the mutated record and stamps UpdatedAt.
func (s *UserStore) Update(id string, mutate func(*entities.User)) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return entities.User{}, entities.ErrUserNotFound
	}

	updated := u.Clone()
	mutate(&updated)
	if s.emailTaken(updated.Email, id) {
		return entities.User{}, entities.ErrEmailTaken
	}
	now := time.Now().UTC()
	updated.UpdatedAt = &now
	*u = updated

	return u.Clone(), nil
}

func (s *UserStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return entities.ErrUserNotFound
	}
	delete(s.users, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return nil
}

// emailTaken must be called with the lock held.
func (s *UserStore) emailTaken(email, excludeID string) bool {
	for id, u := range s.users {
		if id != excludeID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}
