package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"dashboard-services/internal/entities"
	"dashboard-services/pkg/httpx"
)

type OrderService interface {
	ListOrders(ctx context.Context, userID string) []entities.Order
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	CreateOrder(ctx context.Context, userID string, items []entities.LineItem) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, next entities.Status) (entities.Order, error)
	CancelOrder(ctx context.Context, id string) (entities.Order, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: newValidator(),
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Cancel)
	})
}

// List returns every order, optionally filtered by the userId query
// parameter (exact match), in insertion order.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders := h.svc.ListOrders(r.Context(), r.URL.Query().Get("userId"))
	httpx.WriteList(w, orders, len(orders))
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, entities.ErrOrderNotFound) {
		httpx.WriteError(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.internalError(w, r, "failed to get order", err)
		return
	}
	httpx.WriteSuccess(w, order, http.StatusOK)
}

// Create validates the payload, then hands off to the lifecycle controller:
// user existence check, total computation and the store insert. A failed
// existence check is reported distinctly from a validation failure.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := httpx.DecodeBody(r, &req); err != nil {
		httpx.WriteError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		ordersRejectedValidation.Inc()
		httpx.WriteValidationError(w, validationDetails(err))
		return
	}

	order, err := h.svc.CreateOrder(ctx, req.UserID, lineItemsToEntities(req.Items))
	if errors.Is(err, entities.ErrInvalidUserRef) {
		ordersRejectedUser.Inc()
		httpx.WriteError(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.internalError(w, r, "failed to create order", err)
		return
	}

	ordersCreated.Inc()
	httpx.WriteSuccess(w, order, http.StatusCreated)
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateOrderRequest
	if err := httpx.DecodeBody(r, &req); err != nil {
		httpx.WriteError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.WriteValidationError(w, validationDetails(err))
		return
	}

	order, err := h.svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), entities.Status(*req.Status))
	if err != nil {
		h.writeTransitionError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, order, http.StatusOK)
}

// Cancel handles DELETE. Orders are never removed; the record is marked
// cancelled and kept for the lifetime of the process.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.CancelOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeTransitionError(w, r, err)
		return
	}
	ordersCancelled.Inc()
	httpx.WriteSuccess(w, order, http.StatusOK)
}

func (h *OrderHandler) writeTransitionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		httpx.WriteError(w, "Order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidTransition):
		httpx.WriteError(w, "Invalid status transition", http.StatusConflict)
	default:
		h.internalError(w, r, "failed to update order", err)
	}
}

func (h *OrderHandler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
	httpx.WriteError(w, "internal server error", http.StatusInternalServerError)
}
