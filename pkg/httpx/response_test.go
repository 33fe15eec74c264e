package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard-services/pkg/httpx"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, httpx.WriteSuccess(rec, map[string]string{"id": "o1"}, http.StatusCreated))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]any{"id": "o1"}, body["data"])
	assert.NotContains(t, body, "error")
	assert.NotContains(t, body, "count")
	assert.Contains(t, body, "timestamp")
}

func TestWriteList(t *testing.T) {
	t.Run("includes the count", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, httpx.WriteList(rec, []string{"a", "b"}, 2))

		body := decode(t, rec)
		assert.Equal(t, float64(2), body["count"])
	})

	t.Run("zero count still serializes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		require.NoError(t, httpx.WriteList(rec, []string{}, 0))

		body := decode(t, rec)
		assert.Contains(t, body, "count")
		assert.Equal(t, float64(0), body["count"])
		assert.Equal(t, []any{}, body["data"])
	})
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, httpx.WriteError(rec, "Order not found", http.StatusNotFound))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Order not found", body["error"])
	assert.NotContains(t, body, "data")
}

func TestWriteValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, httpx.WriteValidationError(rec, []string{`"userId" is required`}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "Validation error", body["error"])
	assert.Equal(t, []any{`"userId" is required`}, body["details"])
}
