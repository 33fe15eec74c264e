// Package store owns the volatile record sets for the process lifetime.
// Stores are the sole owners of their records: every read hands out a copy
// and every mutation happens under the store's lock, so concurrent requests
// never observe a half-written record.
package store

import (
	"sync"
	"time"

	"dashboard-services/internal/entities"
)

type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]*entities.Order
	ids    []string // insertion order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[string]*entities.Order)}
}

// List returns orders in insertion order. A non-empty userID keeps only
// orders whose UserID matches it exactly.
func (s *OrderStore) List(userID string) []entities.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Order, 0, len(s.ids))
	for _, id := range s.ids {
		o := s.orders[id]
		if userID != "" && o.UserID != userID {
			continue
		}
		out = append(out, o.Clone())
	}
	return out
}

func (s *OrderStore) Get(id string) (entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return o.Clone(), nil
}

func (s *OrderStore) Insert(order entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[order.ID]; ok {
		return entities.ErrOrderExists
	}
	cp := order.Clone()
	s.orders[order.ID] = &cp
	s.ids = append(s.ids, order.ID)
	return nil
}

// Update applies mutate to the identified order while holding the write
// lock and stamps UpdatedAt. If mutate returns an error the order is left
// untouched. The updated copy is returned.
func (s *OrderStore) Update(id string, mutate func(*entities.Order) error) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	updated := o.Clone()
	if err := mutate(&updated); err != nil {
		return entities.Order{}, err
	}
	now := time.Now().UTC()
	updated.UpdatedAt = &now
	*o = updated

	return o.Clone(), nil
}

func (s *OrderStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}
