package connectivity

import (
	"context"
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/cellarkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestInterfaceProber(t *testing.T) {
	tests := []struct {
		name    string
		ifaces  []net.Interface
		listErr error
		wantErr error
	}{
		{
			name:   "wifi up",
			ifaces: []net.Interface{{Name: "lo", Flags: net.FlagUp | net.FlagLoopback}, {Name: "wlan0", Flags: net.FlagUp}},
		},
		{
			name:    "only loopback",
			ifaces:  []net.Interface{{Name: "lo", Flags: net.FlagUp | net.FlagLoopback}},
			wantErr: ErrNoNetwork,
		},
		{
			name:    "ethernet down",
			ifaces:  []net.Interface{{Name: "eth0"}},
			wantErr: ErrNoNetwork,
		},
		{
			name:    "listing fails",
			listErr: errors.New("netlink"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &InterfaceProber{interfaces: func() ([]net.Interface, error) { return tt.ifaces, tt.listErr }}
			err := p.Probe(context.Background())
			switch {
			case tt.listErr != nil:
				assert.ErrorIs(t, err, tt.listErr)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestRemoteProber(t *testing.T) {
	assert.NoError(t, NewRemoteProber(pinger{}).Probe(context.Background()))
	assert.Error(t, NewRemoteProber(pinger{err: errors.New("down")}).Probe(context.Background()))
}

func TestIsOnline_AllProbersMustPass(t *testing.T) {
	ok := ProberFunc(func(context.Context) error { return nil })
	bad := ProberFunc(func(context.Context) error { return errors.New("unreachable") })

	assert.True(t, NewMonitor(logging.Nop{}, time.Second, time.Second, ok, ok).IsOnline(context.Background()))
	assert.False(t, NewMonitor(logging.Nop{}, time.Second, time.Second, ok, bad).IsOnline(context.Background()))
	assert.True(t, NewMonitor(logging.Nop{}, time.Second, time.Second).IsOnline(context.Background()))
}

func TestIsOnline_ProbeTimeoutMeansOffline(t *testing.T) {
	hang := ProberFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	m := NewMonitor(logging.Nop{}, time.Second, 20*time.Millisecond, hang)

	start := time.Now()
	assert.False(t, m.IsOnline(context.Background()))
	assert.Less(t, time.Since(start), time.Second)
}

type fakeDrainer struct {
	pending int
	drains  atomic.Int32
}

func (f *fakeDrainer) PendingCount(context.Context) (int, error) { return f.pending, nil }
func (f *fakeDrainer) TriggerDrain(context.Context) error {
	f.drains.Add(1)
	return nil
}

type recorder struct {
	mu     sync.Mutex
	events []bool
}

func (r *recorder) record(online bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, online)
}

func (r *recorder) snapshot() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.events...)
}

func TestStartListening_TransitionsOnly(t *testing.T) {
	defer goleak.VerifyNone(t)

	sw := NewSwitch(false)
	m := NewMonitor(logging.Nop{}, 5*time.Millisecond, time.Second, sw)
	d := &fakeDrainer{pending: 2}
	m.SetDrainer(d)

	rec := &recorder{}
	stop := m.StartListening(context.Background(), rec.record)

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, []bool{false}, rec.snapshot(), "steady state must not re-fire")
	assert.Zero(t, d.drains.Load())

	sw.Set(true)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return d.drains.Load() == 1 }, time.Second, time.Millisecond)
	assert.True(t, m.LastKnown())

	sw.Set(false)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 3 }, time.Second, time.Millisecond)

	stop()
	stop()

	assert.Equal(t, []bool{false, true, false}, rec.snapshot())
	assert.Equal(t, int32(1), d.drains.Load())
}

func TestStartListening_NoDrainWhenQueueEmpty(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := NewMonitor(logging.Nop{}, 5*time.Millisecond, time.Second, NewSwitch(true))
	d := &fakeDrainer{}
	m.SetDrainer(d)

	rec := &recorder{}
	stop := m.StartListening(context.Background(), rec.record)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 }, time.Second, time.Millisecond)
	stop()

	assert.Equal(t, []bool{true}, rec.snapshot())
	assert.Zero(t, d.drains.Load())
}

func TestStartListening_ParentCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	m := NewMonitor(logging.Nop{}, 5*time.Millisecond, time.Second, NewSwitch(true))
	stop := m.StartListening(ctx, nil)

	cancel()
	stop()
}

func TestSwitch(t *testing.T) {
	s := NewSwitch(true)
	assert.True(t, s.IsOnline(context.Background()))
	assert.NoError(t, s.Probe(context.Background()))

	s.Set(false)
	assert.False(t, s.IsOnline(context.Background()))
	assert.ErrorIs(t, s.Probe(context.Background()), ErrNoNetwork)
}
