package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"dashboard-services/internal/entities"
)

func TestUser_Clone(t *testing.T) {
	updated := time.Now().UTC()
	user := entities.User{
		ID:        "u1",
		Name:      "Alice",
		Email:     "alice@example.com",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: &updated,
	}

	clone := user.Clone()
	assert.Equal(t, user, clone)

	*clone.UpdatedAt = clone.UpdatedAt.Add(time.Hour)
	assert.Equal(t, updated, *user.UpdatedAt)

	assert.Nil(t, entities.User{}.Clone().UpdatedAt)
}
