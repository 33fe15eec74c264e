package entities

import (
	"errors"
	"time"
)

type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Clone returns a copy sharing no pointers with the receiver.
func (u User) Clone() User {
	cp := u
	if u.UpdatedAt != nil {
		t := *u.UpdatedAt
		cp.UpdatedAt = &t
	}
	return cp
}

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already exists")
)
