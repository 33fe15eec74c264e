package handler

import "dashboard-services/internal/entities"

// CreateOrderRequest is the creation payload. Missing or malformed fields
// are all reported together in the validation details.
type CreateOrderRequest struct {
	UserID string            `json:"userId" validate:"required"`
	Items  []LineItemRequest `json:"items" validate:"required,min=1,dive"`
}

// LineItemRequest decodes quantity as a float so a fractional value is a
// reported validation failure, not a decode error.
type LineItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Quantity  float64 `json:"quantity" validate:"integer,min=1"`
	Price     float64 `json:"price" validate:"gt=0"`
}

// UpdateOrderRequest carries the only mutable order field. Status must be
// present: an empty update is a validation error, not a no-op.
type UpdateOrderRequest struct {
	Status *string `json:"status" validate:"required,oneof=pending processing completed cancelled"`
}

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email *string `json:"email" validate:"omitempty,email"`
}

func lineItemsToEntities(items []LineItemRequest) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.LineItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  int(it.Quantity),
			Price:     it.Price,
		})
	}
	return out
}
