package entities

import (
	"errors"
	"time"
)

// Status is the lifecycle state of an order. Transitions are monotonic:
// pending -> processing -> completed, with cancellation allowed from any
// non-terminal state. Once an order reaches a terminal state it never
// changes again.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether next is reachable from s. Same-state
// transitions are allowed so repeated updates stay idempotent; everything
// else follows the adjacency table, so pending can never be reintroduced
// and completed orders cannot be cancelled.
func (s Status) CanTransitionTo(next Status) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusCancelled
	case StatusProcessing:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

// LineItem is a value embedded in an order. Items are set at creation and
// never mutated afterwards.
type LineItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Items     []LineItem `json:"items"`
	Total     float64    `json:"total"`
	Status    Status     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Clone returns a deep copy so callers never share item slices with the
// store's records.
func (o Order) Clone() Order {
	cp := o
	cp.Items = append([]LineItem(nil), o.Items...)
	if o.UpdatedAt != nil {
		t := *o.UpdatedAt
		cp.UpdatedAt = &t
	}
	return cp
}

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderExists       = errors.New("order already exists")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidUserRef    = errors.New("invalid user reference")
)
