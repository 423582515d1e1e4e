package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MotoWorkShop/MWSBackend/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthRequest(t *testing.T, h *HealthHandler) (int, map[string]string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", h.Check)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHealthReportaSMTPOperativo(t *testing.T) {
	breaker := infra.NewCircuitBreaker(1, time.Minute)

	codigo, body := healthRequest(t, NewHealthHandler(nil, breaker))

	assert.Equal(t, http.StatusOK, codigo)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ok", body["smtp"])
}

func TestHealthReportaSMTPDegradadoConCircuitoAbierto(t *testing.T) {
	breaker := infra.NewCircuitBreaker(1, time.Minute)
	_ = breaker.Ejecutar(func() error { return errors.New("relay caído") })
	require.True(t, breaker.Abierta())

	codigo, body := healthRequest(t, NewHealthHandler(nil, breaker))

	assert.Equal(t, http.StatusOK, codigo)
	assert.Equal(t, "degraded", body["smtp"])
}
