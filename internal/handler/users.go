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

type UserService interface {
	ListUsers(ctx context.Context) []entities.User
	GetUser(ctx context.Context, id string) (entities.User, error)
	CreateUser(ctx context.Context, name, email string) (entities.User, error)
	UpdateUser(ctx context.Context, id string, name, email *string) (entities.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type UserHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      UserService
}

func NewUserHandler(logger *slog.Logger, svc UserService) *UserHandler {
	return &UserHandler{
		logger:   logger.With(slog.String("handler", "users")),
		validate: newValidator(),
		svc:      svc,
	}
}

func (h *UserHandler) Init(r chi.Router) {
	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users := h.svc.ListUsers(r.Context())
	httpx.WriteList(w, users, len(users))
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.GetUser(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, entities.ErrUserNotFound) {
		httpx.WriteError(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.internalError(w, r, "failed to get user", err)
		return
	}
	httpx.WriteSuccess(w, user, http.StatusOK)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := httpx.DecodeBody(r, &req); err != nil {
		httpx.WriteError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.WriteValidationError(w, validationDetails(err))
		return
	}

	user, err := h.svc.CreateUser(r.Context(), req.Name, req.Email)
	if errors.Is(err, entities.ErrEmailTaken) {
		httpx.WriteError(w, "Email already exists", http.StatusConflict)
		return
	}
	if err != nil {
		h.internalError(w, r, "failed to create user", err)
		return
	}

	usersCreated.Inc()
	httpx.WriteSuccess(w, user, http.StatusCreated)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if err := httpx.DecodeBody(r, &req); err != nil {
		httpx.WriteError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.Name == nil && req.Email == nil {
		httpx.WriteValidationError(w, []string{"at least one field must be provided"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.WriteValidationError(w, validationDetails(err))
		return
	}

	user, err := h.svc.UpdateUser(r.Context(), chi.URLParam(r, "id"), req.Name, req.Email)
	switch {
	case errors.Is(err, entities.ErrUserNotFound):
		httpx.WriteError(w, "User not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrEmailTaken):
		httpx.WriteError(w, "Email already exists", http.StatusConflict)
	case err != nil:
		h.internalError(w, r, "failed to update user", err)
	default:
		httpx.WriteSuccess(w, user, http.StatusOK)
	}
}

// Delete removes the user record for good. Unlike orders, user deletion is
// a true delete.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, entities.ErrUserNotFound) {
		httpx.WriteError(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.internalError(w, r, "failed to delete user", err)
		return
	}
	usersDeleted.Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
	httpx.WriteError(w, "internal server error", http.StatusInternalServerError)
}
