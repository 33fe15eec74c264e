package httpx

import (
	"encoding/json"
	"net/http"
	"time"
)

// Response is the envelope every endpoint answers with. The dashboard
// relies on success, data/error and timestamp; count accompanies lists and
// details carries one message per violated constraint.
type Response struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Count     *int      `json:"count,omitempty"`
	Error     string    `json:"error,omitempty"`
	Details   []string  `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func WriteSuccess(w http.ResponseWriter, data any, code int) error {
	return WriteJSON(w, Response{Success: true, Data: data, Timestamp: now()}, code)
}

func WriteList(w http.ResponseWriter, data any, count int) error {
	return WriteJSON(w, Response{Success: true, Data: data, Count: &count, Timestamp: now()}, http.StatusOK)
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, Response{Success: false, Error: message, Timestamp: now()}, code)
}

// WriteValidationError reports every violated constraint in one response,
// not just the first failure.
func WriteValidationError(w http.ResponseWriter, details []string) error {
	return WriteJSON(w, Response{
		Success:   false,
		Error:     "Validation error",
		Details:   details,
		Timestamp: now(),
	}, http.StatusBadRequest)
}

func DecodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func now() time.Time { return time.Now().UTC() }
