package cellar

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/cellarkeeper/internal/client/cache"
	"github.com/dmitrijs2005/cellarkeeper/internal/client/connectivity"
	"github.com/dmitrijs2005/cellarkeeper/internal/client/queue"
	"github.com/dmitrijs2005/cellarkeeper/internal/common"
	"github.com/dmitrijs2005/cellarkeeper/internal/logging"
	"github.com/dmitrijs2005/cellarkeeper/internal/metrics"
)

const defaultRemoteTimeout = 5 * time.Second

// Options carries the collaborators shared by both repositories.
type Options struct {
	Cache   *cache.Store
	Queue   *queue.Queue
	Online  connectivity.Checker
	Logger  logging.Logger
	Metrics *metrics.Sync
	// Timeout bounds every remote call. Zero means five seconds.
	Timeout time.Duration
}

type base struct {
	cache   *cache.Store
	queue   *queue.Queue
	online  connectivity.Checker
	logger  logging.Logger
	metrics *metrics.Sync
	timeout time.Duration
	now     func() time.Time
}

func newBase(opts Options, module string) base {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop{}
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultRemoteTimeout
	}
	return base{
		cache:   opts.Cache,
		queue:   opts.Queue,
		online:  opts.Online,
		logger:  logger.With("module", module),
		metrics: opts.Metrics,
		timeout: timeout,
		now:     time.Now,
	}
}

func callRemote[T any](ctx context.Context, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(ctx)
}

func callRemoteErr(ctx context.Context, timeout time.Duration, fn func(ctx context.Context) error) error {
	_, err := callRemote(ctx, timeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// permanent errors describe the request itself and reach the caller. Anything
// else is treated as the remote being unreachable.
func permanent(err error) bool {
	return common.IsValidation(err) || errors.Is(err, common.ErrNotFound)
}

func (b *base) enqueue(ctx context.Context, m queue.Mutation) error {
	if _, err := b.queue.Enqueue(ctx, m); err != nil {
		return err
	}
	b.metrics.OfflineWrite(string(m.Collection()))
	if n, err := b.queue.PendingCount(ctx); err == nil {
		b.metrics.Pending(n)
	}
	b.logger.Info(ctx, "queued for sync", "kind", m.Kind(), "collection", m.Collection(), "id", m.Target())
	return nil
}

// resolve swaps a local id that has already been synced for the remote id it
// became.
func (b *base) resolve(ctx context.Context, id string) (string, error) {
	if id == "" {
		return id, nil
	}
	return b.cache.Resolve(ctx, id)
}

func (b *base) resolveRef(ctx context.Context, id *string) (*string, error) {
	if id == nil {
		return nil, nil
	}
	resolved, err := b.resolve(ctx, *id)
	if err != nil {
		return nil, err
	}
	return &resolved, nil
}
