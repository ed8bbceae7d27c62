package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSync_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewSync(reg)

	s.Drain()
	s.Drain()
	s.Replay(true)
	s.Replay(true)
	s.Replay(false)
	s.Pending(3)
	s.OfflineWrite("bottles")

	assert.Equal(t, 2.0, testutil.ToFloat64(s.drains))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.replays.WithLabelValues("succeeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.replays.WithLabelValues("failed")))
	assert.Equal(t, 3.0, testutil.ToFloat64(s.pending))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.offlineWrites.WithLabelValues("bottles")))
}

func TestNilReceiversAreNoops(t *testing.T) {
	var s *Sync
	var r *RPC

	assert.NotPanics(t, func() {
		s.Drain()
		s.Replay(true)
		s.Pending(1)
		s.OfflineWrite("cabinets")
		r.Observe("/x", "OK", time.Millisecond)
	})
}

func TestRPC_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRPC(reg)

	r.Observe("/cellarkeeper.v1.Cellar/GetBottle", "OK", 10*time.Millisecond)
	r.Observe("/cellarkeeper.v1.Cellar/GetBottle", "NotFound", time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues("/cellarkeeper.v1.Cellar/GetBottle", "OK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues("/cellarkeeper.v1.Cellar/GetBottle", "NotFound")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.latency))
}

func TestHandler_ExposesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewSync(reg).Drain()

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "cellarkeeper_sync_drains_total 1")
}

func TestNewSync_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewSync(reg)
	assert.Panics(t, func() { NewSync(reg) })
}
