package userdir_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard-services/internal/userdir"
)

func TestClient_UserExists(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
		want    bool
		wantErr bool
	}{
		{
			name: "known user",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"success":true,"data":{"id":"user-1"}}`))
			},
			want: true,
		},
		{
			name: "unknown user",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"success":false,"error":"User not found"}`))
			},
			want: false,
		},
		{
			name: "upstream failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: false,
		},
		{
			name: "success flag false on 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success":false}`))
			},
			want: false,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success":`))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			client := userdir.New(srv.URL, time.Second)
			ok, err := client.UserExists(context.Background(), "user-1")
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestClient_UserExists_RequestPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := userdir.New(srv.URL+"/", time.Second)
	_, err := client.UserExists(context.Background(), "user-42")
	require.NoError(t, err)
	assert.Equal(t, "/api/users/user-42", gotPath)
}

func TestClient_UserExists_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := userdir.New(srv.URL, time.Second)
	_, err := client.UserExists(context.Background(), "user-1")
	require.Error(t, err)
}
