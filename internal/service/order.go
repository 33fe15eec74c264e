package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"dashboard-services/internal/entities"
)

// OrderStore is the ownership boundary for order records. Implementations
// must serialize mutations against each other and against reads, and must
// only ever hand out copies.
type OrderStore interface {
	List(userID string) []entities.Order
	Get(id string) (entities.Order, error)
	Insert(order entities.Order) error
	Update(id string, mutate func(*entities.Order) error) (entities.Order, error)
}

// UserDirectory confirms that a user id refers to an existing user.
type UserDirectory interface {
	UserExists(ctx context.Context, id string) (bool, error)
}

type OrderService struct {
	logger *slog.Logger
	store  OrderStore
	users  UserDirectory
}

func NewOrderService(logger *slog.Logger, store OrderStore, users UserDirectory) *OrderService {
	return &OrderService{
		logger: logger.With(slog.String("service", "order")),
		store:  store,
		users:  users,
	}
}

// CreateOrder verifies the user reference, computes the total and inserts
// the order in one step. Nothing is persisted when any step fails. A
// directory failure is collapsed into an unknown user: the reference could
// not be verified, so the order is rejected (fail closed).
func (s *OrderService) CreateOrder(ctx context.Context, userID string, items []entities.LineItem) (entities.Order, error) {
	ok, err := s.users.UserExists(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "user lookup failed",
			slog.String("user_id", userID), slog.Any("error", err))
		ok = false
	}
	if !ok {
		return entities.Order{}, entities.ErrInvalidUserRef
	}

	order := entities.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     items,
		Total:     OrderTotal(items),
		Status:    entities.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Insert(order); err != nil {
		return entities.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	s.logger.DebugContext(ctx, "order created",
		slog.String("order_id", order.ID), slog.String("user_id", userID))
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID string) []entities.Order {
	return s.store.List(userID)
}

func (s *OrderService) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	return s.store.Get(id)
}

// UpdateStatus moves the order to next if the transition policy allows it.
// The policy check runs inside the store's locked update so concurrent
// updates cannot both pass it against the same prior state.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, next entities.Status) (entities.Order, error) {
	order, err := s.store.Update(id, func(o *entities.Order) error {
		if !o.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s to %s", entities.ErrInvalidTransition, o.Status, next)
		}
		o.Status = next
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.DebugContext(ctx, "order status updated",
		slog.String("order_id", id), slog.String("status", string(next)))
	return order, nil
}

// CancelOrder marks the order cancelled. Records are never removed: the
// cancelled order stays in the store for the lifetime of the process.
func (s *OrderService) CancelOrder(ctx context.Context, id string) (entities.Order, error) {
	return s.UpdateStatus(ctx, id, entities.StatusCancelled)
}
