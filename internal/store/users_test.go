package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard-services/internal/entities"
	"dashboard-services/internal/store"
)

func seedUser(id, name, email string) entities.User {
	return entities.User{ID: id, Name: name, Email: email}
}

func TestUserStore_Insert(t *testing.T) {
	s := store.NewUserStore()
	require.NoError(t, s.Insert(seedUser("u1", "Alice", "alice@example.com")))

	t.Run("rejects a duplicate email", func(t *testing.T) {
		err := s.Insert(seedUser("u2", "Other Alice", "alice@example.com"))
		assert.ErrorIs(t, err, entities.ErrEmailTaken)
	})

	t.Run("email comparison is case insensitive", func(t *testing.T) {
		err := s.Insert(seedUser("u3", "Shouting Alice", "ALICE@EXAMPLE.COM"))
		assert.ErrorIs(t, err, entities.ErrEmailTaken)
	})
}

func TestUserStore_Update(t *testing.T) {
	s := store.NewUserStore()
	require.NoError(t, s.Insert(seedUser("u1", "Alice", "alice@example.com")))
	require.NoError(t, s.Insert(seedUser("u2", "Bob", "bob@example.com")))

	t.Run("applies the mutation and stamps UpdatedAt", func(t *testing.T) {
		user, err := s.Update("u1", func(u *entities.User) {
			u.Name = "Alice Cooper"
		})
		require.NoError(t, err)
		assert.Equal(t, "Alice Cooper", user.Name)
		require.NotNil(t, user.UpdatedAt)
	})

	t.Run("rejects taking another user's email", func(t *testing.T) {
		_, err := s.Update("u1", func(u *entities.User) {
			u.Email = "bob@example.com"
		})
		assert.ErrorIs(t, err, entities.ErrEmailTaken)
	})

	t.Run("keeping one's own email is fine", func(t *testing.T) {
		_, err := s.Update("u1", func(u *entities.User) {
			u.Email = "alice@example.com"
		})
		assert.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := s.Update("missing", func(u *entities.User) {})
		assert.ErrorIs(t, err, entities.ErrUserNotFound)
	})

	t.Run("returned users do not alias store state", func(t *testing.T) {
		user, err := s.Update("u2", func(u *entities.User) {
			u.Name = "Bobby"
		})
		require.NoError(t, err)
		require.NotNil(t, user.UpdatedAt)

		stamped := *user.UpdatedAt
		*user.UpdatedAt = user.UpdatedAt.Add(time.Hour)

		stored, err := s.Get("u2")
		require.NoError(t, err)
		require.NotNil(t, stored.UpdatedAt)
		assert.Equal(t, stamped, *stored.UpdatedAt)

		*stored.UpdatedAt = stored.UpdatedAt.Add(time.Hour)
		again, err := s.Get("u2")
		require.NoError(t, err)
		assert.Equal(t, stamped, *again.UpdatedAt)
	})
}

func TestUserStore_Delete(t *testing.T) {
	s := store.NewUserStore()
	require.NoError(t, s.Insert(seedUser("u1", "Alice", "alice@example.com")))
	require.NoError(t, s.Insert(seedUser("u2", "Bob", "bob@example.com")))
	require.NoError(t, s.Insert(seedUser("u3", "Carol", "carol@example.com")))

	require.NoError(t, s.Delete("u2"))

	_, err := s.Get("u2")
	assert.ErrorIs(t, err, entities.ErrUserNotFound)

	users := s.List()
	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, "u3", users[1].ID)

	t.Run("deleted email becomes available again", func(t *testing.T) {
		assert.NoError(t, s.Insert(seedUser("u4", "New Bob", "bob@example.com")))
	})

	t.Run("unknown user", func(t *testing.T) {
		assert.ErrorIs(t, s.Delete("missing"), entities.ErrUserNotFound)
	})
}
