package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"dashboard-services/pkg/httpx"
)

type HealthHandler struct {
	service string
	started time.Time
}

func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service, started: time.Now()}
}

func (h *HealthHandler) Init(r chi.Router) {
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.Health)
		r.Get("/ready", h.Ready)
		r.Get("/live", h.Live)
	})
}

type healthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    float64   `json:"uptime,omitempty"`
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, healthResponse{
		Status:    "healthy",
		Service:   h.service,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.started).Seconds(),
	}, http.StatusOK)
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, healthResponse{
		Status:    "ready",
		Service:   h.service,
		Timestamp: time.Now().UTC(),
	}, http.StatusOK)
}

func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, healthResponse{
		Status:    "alive",
		Service:   h.service,
		Timestamp: time.Now().UTC(),
	}, http.StatusOK)
}
