// Package metrics defines the Prometheus collectors exported by the client
// sync core and the server. Every collector set is registered on a caller
// supplied registry; nil receivers are valid and record nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cellarkeeper"

// Sync tracks offline writes and queue draining.
type Sync struct {
	drains        prometheus.Counter
	replays       *prometheus.CounterVec
	pending       prometheus.Gauge
	offlineWrites *prometheus.CounterVec
}

func NewSync(reg prometheus.Registerer) *Sync {
	s := &Sync{
		drains: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "drains_total",
			Help:      "Number of queue drains run.",
		}),
		replays: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "replays_total",
			Help:      "Queued operations replayed against the remote store, by result.",
		}, []string{"result"}),
		pending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "pending_operations",
			Help:      "Operations waiting in the local queue.",
		}),
		offlineWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offline_writes_total",
			Help:      "Writes accepted locally and queued for later replay, by collection.",
		}, []string{"collection"}),
	}

	reg.MustRegister(s.drains, s.replays, s.pending, s.offlineWrites)
	return s
}

func (s *Sync) Drain() {
	if s == nil {
		return
	}
	s.drains.Inc()
}

func (s *Sync) Replay(ok bool) {
	if s == nil {
		return
	}
	result := "failed"
	if ok {
		result = "succeeded"
	}
	s.replays.WithLabelValues(result).Inc()
}

func (s *Sync) Pending(n int) {
	if s == nil {
		return
	}
	s.pending.Set(float64(n))
}

func (s *Sync) OfflineWrite(collection string) {
	if s == nil {
		return
	}
	s.offlineWrites.WithLabelValues(collection).Inc()
}

// RPC tracks server-side gRPC calls.
type RPC struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func NewRPC(reg prometheus.Registerer) *RPC {
	r := &RPC{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "Handled gRPC requests by method and status code.",
		}, []string{"method", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "rpc",
			Name:      "duration_seconds",
			Help:      "gRPC handler latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	reg.MustRegister(r.requests, r.latency)
	return r
}

func (r *RPC) Observe(method, code string, d time.Duration) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(method, code).Inc()
	r.latency.WithLabelValues(method).Observe(d.Seconds())
}

// Handler exposes everything gathered by g in the text exposition format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
