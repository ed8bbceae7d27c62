// Package syncer replays the offline operation queue against the remote
// store once connectivity returns.
package syncer

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrijs2005/cellarkeeper/internal/client/cache"
	"github.com/dmitrijs2005/cellarkeeper/internal/client/connectivity"
	"github.com/dmitrijs2005/cellarkeeper/internal/client/queue"
	"github.com/dmitrijs2005/cellarkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/cellarkeeper/internal/common"
	"github.com/dmitrijs2005/cellarkeeper/internal/logging"
	"github.com/dmitrijs2005/cellarkeeper/internal/metrics"
	"github.com/dmitrijs2005/cellarkeeper/internal/models"
)

// LastSyncKey holds the time of the last completed drain.
const LastSyncKey = "meta:last_sync"

type CabinetReplayer interface {
	ReplayAdd(ctx context.Context, c models.Cabinet) (models.Cabinet, error)
	ReplayUpdate(ctx context.Context, id string, p models.CabinetPatch) error
}

type BottleReplayer interface {
	ReplayAdd(ctx context.Context, b models.Bottle) (models.Bottle, error)
	ReplayUpdate(ctx context.Context, id string, p models.BottlePatch) error
}

// Summary counts the outcome of one drain.
type Summary struct {
	Succeeded int
	Failed    int
}

type Status struct {
	Online            bool
	PendingOperations int
	LastSyncTime      *time.Time
}

type Options struct {
	Queue    *queue.Queue
	Cache    *cache.Store
	Meta     kv.Store
	Online   connectivity.Checker
	Cabinets CabinetReplayer
	Bottles  BottleReplayer
	Logger   logging.Logger
	Metrics  *metrics.Sync
}

type Coordinator struct {
	queue    *queue.Queue
	cache    *cache.Store
	meta     kv.Store
	online   connectivity.Checker
	cabinets CabinetReplayer
	bottles  BottleReplayer
	logger   logging.Logger
	metrics  *metrics.Sync

	group singleflight.Group
	// mu is held for a whole drain and for ClearAll.
	mu       sync.Mutex
	draining atomic.Bool
	now      func() time.Time
}

func New(opts Options) *Coordinator {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Coordinator{
		queue:    opts.Queue,
		cache:    opts.Cache,
		meta:     opts.Meta,
		online:   opts.Online,
		cabinets: opts.Cabinets,
		bottles:  opts.Bottles,
		logger:   logger.With("module", "syncer"),
		metrics:  opts.Metrics,
		now:      time.Now,
	}
}

// Drain replays every queued operation in order. Succeeded operations leave
// the queue; failed ones stay for the next drain and only show up in the
// summary. Concurrent callers share the drain already in flight.
// It returns common.ErrUnavailable without touching the queue when offline.
func (c *Coordinator) Drain(ctx context.Context) (Summary, error) {
	v, err, shared := c.group.Do("drain", func() (any, error) {
		return c.drain(ctx)
	})
	if shared {
		c.logger.Debug(ctx, "joined drain in flight")
	}
	s, _ := v.(Summary)
	return s, err
}

func (c *Coordinator) drain(ctx context.Context) (Summary, error) {
	var s Summary
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draining.Store(true)
	defer c.draining.Store(false)

	if !c.online.IsOnline(ctx) {
		return s, common.ErrUnavailable
	}
	c.metrics.Drain()

	ops, err := c.queue.AllPending(ctx)
	if err != nil {
		return s, err
	}

	// aliases maps local ids synced during this drain to their remote ids;
	// ops still holds the pre-drain snapshot.
	aliases := map[string]string{}
	// failedAdds are local ids whose creation failed during this drain.
	failedAdds := map[string]bool{}

	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return s, err
		}

		m := op.Mutation
		for from, to := range aliases {
			m = queue.Rebind(m, from, to)
		}

		if blocker := blockedBy(m, failedAdds); blocker != "" {
			c.logger.Debug(ctx, "skipping operation behind failed add", "op", op.ID, "blocked_by", blocker)
			c.fail(&s, m, failedAdds)
			continue
		}

		remoteID, err := c.replay(ctx, m)
		if err != nil {
			c.logger.Warn(ctx, "replay failed", "op", op.ID, "kind", m.Kind(), "collection", m.Collection(), "id", m.Target(), "error", err)
			c.fail(&s, m, failedAdds)
			continue
		}

		if err := c.queue.Remove(ctx, op.ID); err != nil {
			return s, fmt.Errorf("remove operation %s: %w", op.ID, err)
		}
		if remoteID != "" && remoteID != m.Target() {
			aliases[m.Target()] = remoteID
			if _, err := c.queue.Rebind(ctx, m.Target(), remoteID); err != nil {
				return s, fmt.Errorf("rebind %s: %w", m.Target(), err)
			}
		}
		s.Succeeded++
		c.metrics.Replay(true)
	}

	if err := c.meta.Set(ctx, LastSyncKey, []byte(c.now().UTC().Format(time.RFC3339Nano))); err != nil {
		c.logger.Error(ctx, "failed to record sync time", "error", err)
	}
	if n, err := c.queue.PendingCount(ctx); err == nil {
		c.metrics.Pending(n)
	}
	c.logger.Info(ctx, "drain finished", "succeeded", s.Succeeded, "failed", s.Failed)
	return s, nil
}

func (c *Coordinator) fail(s *Summary, m queue.Mutation, failedAdds map[string]bool) {
	s.Failed++
	c.metrics.Replay(false)
	if m.Kind() == queue.KindAdd {
		failedAdds[m.Target()] = true
	}
}

func blockedBy(m queue.Mutation, failedAdds map[string]bool) string {
	for id := range failedAdds {
		if m.DependsOn(id) {
			return id
		}
	}
	return ""
}

// replay sends m to its repository. For adds it returns the id the remote
// assigned.
func (c *Coordinator) replay(ctx context.Context, m queue.Mutation) (string, error) {
	switch m := m.(type) {
	case queue.AddCabinet:
		created, err := c.cabinets.ReplayAdd(ctx, m.Cabinet)
		return c.created(ctx, created.ID, err)
	case queue.UpdateCabinet:
		return "", c.cabinets.ReplayUpdate(ctx, m.ID, m.Patch)
	case queue.AddBottle:
		created, err := c.bottles.ReplayAdd(ctx, m.Bottle)
		return c.created(ctx, created.ID, err)
	case queue.UpdateBottle:
		return "", c.bottles.ReplayUpdate(ctx, m.ID, m.Patch)
	}
	return "", fmt.Errorf("%w: %T", queue.ErrUnknownMutation, m)
}

// created treats an add that reached the remote as done even when the local
// cache could not be re-keyed, so it is never created twice.
func (c *Coordinator) created(ctx context.Context, id string, err error) (string, error) {
	if err != nil && id != "" {
		c.logger.Error(ctx, "created remotely but cache not re-keyed", "id", id, "error", err)
		return id, nil
	}
	return id, err
}

func (c *Coordinator) PendingCount(ctx context.Context) (int, error) {
	return c.queue.PendingCount(ctx)
}

// TriggerDrain drains and drops the summary. It lets the connectivity monitor
// drive the coordinator.
func (c *Coordinator) TriggerDrain(ctx context.Context) error {
	_, err := c.Drain(ctx)
	return err
}

func (c *Coordinator) Status(ctx context.Context) (Status, error) {
	n, err := c.queue.PendingCount(ctx)
	if err != nil {
		return Status{}, err
	}
	st := Status{Online: c.online.IsOnline(ctx), PendingOperations: n}

	raw, err := c.meta.Get(ctx, LastSyncKey)
	if err != nil {
		return Status{}, fmt.Errorf("load last sync: %w", err)
	}
	if raw != nil {
		t, err := time.Parse(time.RFC3339Nano, string(raw))
		if err != nil {
			return Status{}, fmt.Errorf("parse last sync: %w", err)
		}
		st.LastSyncTime = &t
	}
	return st, nil
}

// ClearAll drops every queued operation, the whole cache and the sync time.
// Queued changes that never reached the remote are lost. It fails with
// common.ErrSyncInProgress while a drain runs.
func (c *Coordinator) ClearAll(ctx context.Context) error {
	if !c.mu.TryLock() {
		return common.ErrSyncInProgress
	}
	defer c.mu.Unlock()
	if err := c.queue.Clear(ctx); err != nil {
		return err
	}
	if err := c.cache.Clear(ctx); err != nil {
		return err
	}
	if err := c.meta.Delete(ctx, LastSyncKey); err != nil {
		return err
	}
	c.metrics.Pending(0)
	c.logger.Info(ctx, "local data cleared")
	return nil
}
