package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func() error

func (f pingFunc) Ping(context.Context) error { return f() }

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		name       string
		db         Pinger
		wantStatus int
		want       HealthResponse
	}{
		{name: "no database configured", wantStatus: http.StatusOK, want: HealthResponse{Status: "ok"}},
		{name: "database reachable", db: pingFunc(func() error { return nil }), wantStatus: http.StatusOK, want: HealthResponse{Status: "ok", Database: "ok"}},
		{name: "database down", db: pingFunc(func() error { return errors.New("dial tcp: refused") }), wantStatus: http.StatusServiceUnavailable, want: HealthResponse{Status: "degraded", Database: "unreachable"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, NewHealthHandler(tt.db).Health, http.MethodGet, "/health", "/health", nil, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			var got HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}
