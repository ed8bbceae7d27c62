package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/cellarkeeper/internal/metrics"
	"github.com/dmitrijs2005/cellarkeeper/internal/store/memory"
)

type downStore struct{}

func (downStore) Ping(context.Context) error { return errors.New("connection refused") }

func TestAdminRouter_Health(t *testing.T) {
	h := newAdminRouter(prometheus.NewRegistry(), memory.New())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	h = newAdminRouter(prometheus.NewRegistry(), downStore{})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestAdminRouter_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewRPC(reg).Observe("/cellarkeeper.v1.Cellar/Ping", "OK", 0)

	rec := httptest.NewRecorder()
	newAdminRouter(reg, memory.New()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `cellarkeeper_rpc_requests_total{code="OK",method="/cellarkeeper.v1.Cellar/Ping"} 1`)
}

func TestAdminRouter_UnknownPath(t *testing.T) {
	rec := httptest.NewRecorder()
	newAdminRouter(prometheus.NewRegistry(), memory.New()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
