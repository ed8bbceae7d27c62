package connectivity

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/cellarkeeper/internal/logging"
)

// Checker answers whether the remote store can be used right now.
// Repositories and the sync coordinator depend on this, not on Monitor.
type Checker interface {
	IsOnline(ctx context.Context) bool
}

// Drainer replays queued operations. The monitor calls it when the device
// comes back online with work pending.
type Drainer interface {
	PendingCount(ctx context.Context) (int, error)
	TriggerDrain(ctx context.Context) error
}

type Monitor struct {
	probers  []Prober
	interval time.Duration
	timeout  time.Duration
	logger   logging.Logger

	drainer atomic.Pointer[Drainer]
	online  atomic.Bool
}

func NewMonitor(logger logging.Logger, interval, timeout time.Duration, probers ...Prober) *Monitor {
	return &Monitor{
		probers:  probers,
		interval: interval,
		timeout:  timeout,
		logger:   logger.With("module", "connectivity"),
	}
}

// SetDrainer wires the coordinator in after construction.
func (m *Monitor) SetDrainer(d Drainer) {
	m.drainer.Store(&d)
}

// IsOnline runs every prober, each bounded by the probe timeout. Any failure
// means offline; it never returns an error.
func (m *Monitor) IsOnline(ctx context.Context) bool {
	for _, p := range m.probers {
		pctx, cancel := context.WithTimeout(ctx, m.timeout)
		err := p.Probe(pctx)
		cancel()
		if err != nil {
			m.logger.Debug(ctx, "probe failed", "error", err)
			return false
		}
	}
	return true
}

// LastKnown is the state seen by the most recent listener tick.
func (m *Monitor) LastKnown() bool {
	return m.online.Load()
}

// StartListening checks once right away and then every interval. onChange
// runs on the first observation and on every transition after it. Coming
// online with pending operations triggers a drain. The returned function
// stops the loop and waits for it to exit.
func (m *Monitor) StartListening(ctx context.Context, onChange func(online bool)) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		first := true
		for {
			now := m.IsOnline(ctx)
			if ctx.Err() != nil {
				return
			}
			prev := m.online.Swap(now)
			if first || prev != now {
				first = false
				m.logger.Info(ctx, "connectivity changed", "online", now)
				if onChange != nil {
					onChange(now)
				}
				if now {
					m.drainPending(ctx)
				}
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}

func (m *Monitor) drainPending(ctx context.Context) {
	dp := m.drainer.Load()
	if dp == nil {
		return
	}
	d := *dp

	n, err := d.PendingCount(ctx)
	if err != nil {
		m.logger.Error(ctx, "pending count failed", "error", err)
		return
	}
	if n == 0 {
		return
	}
	if err := d.TriggerDrain(ctx); err != nil {
		m.logger.Warn(ctx, "automatic drain failed", "error", err)
	}
}

// Switch is a Checker with a manually set state.
type Switch struct {
	on atomic.Bool
}

func NewSwitch(online bool) *Switch {
	s := &Switch{}
	s.on.Store(online)
	return s
}

func (s *Switch) Set(online bool) { s.on.Store(online) }

func (s *Switch) IsOnline(context.Context) bool { return s.on.Load() }

func (s *Switch) Probe(ctx context.Context) error {
	if !s.on.Load() {
		return ErrNoNetwork
	}
	return nil
}
