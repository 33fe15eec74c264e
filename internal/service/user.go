package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"dashboard-services/internal/entities"
)

// UserStore is the ownership boundary for user records.
type UserStore interface {
	List() []entities.User
	Get(id string) (entities.User, error)
	Insert(user entities.User) error
	Update(id string, mutate func(*entities.User)) (entities.User, error)
	Delete(id string) error
}

type UserService struct {
	logger *slog.Logger
	store  UserStore
}

func NewUserService(logger *slog.Logger, store UserStore) *UserService {
	return &UserService{
		logger: logger.With(slog.String("service", "user")),
		store:  store,
	}
}

func (s *UserService) ListUsers(ctx context.Context) []entities.User {
	return s.store.List()
}

func (s *UserService) GetUser(ctx context.Context, id string) (entities.User, error) {
	return s.store.Get(id)
}

func (s *UserService) CreateUser(ctx context.Context, name, email string) (entities.User, error) {
	user := entities.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Insert(user); err != nil {
		return entities.User{}, err
	}

	s.logger.DebugContext(ctx, "user created", slog.String("user_id", user.ID))
	return user, nil
}

// UpdateUser applies the provided fields; nil means "leave unchanged".
func (s *UserService) UpdateUser(ctx context.Context, id string, name, email *string) (entities.User, error) {
	user, err := s.store.Update(id, func(u *entities.User) {
		if name != nil {
			u.Name = *name
		}
		if email != nil {
			u.Email = *email
		}
	})
	if err != nil {
		return entities.User{}, err
	}

	s.logger.DebugContext(ctx, "user updated", slog.String("user_id", id))
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.logger.DebugContext(ctx, "user deleted", slog.String("user_id", id))
	return nil
}
