package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupRouter(t *testing.T) {
	r := chi.NewRouter()
	SetupRouter(r, map[string]Pinger{
		"graph": PingFunc(func(_ context.Context) error { return nil }),
	})

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/health", nil)
	require.NoError(t, err)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"version":"dev","commit":"unknown"}`, w.Body.String())
}

func TestSetupRouter_Failure(t *testing.T) {
	r := chi.NewRouter()
	SetupRouter(r, map[string]Pinger{
		"graph":    PingFunc(func(_ context.Context) error { return nil }),
		"postgres": PingFunc(func(_ context.Context) error { return errors.New("connection refused") }),
	})

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/health", nil)
	require.NoError(t, err)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "postgres: connection refused")
}
