// Package queue is the durable FIFO log of mutations accepted while offline.
// The whole log is one JSON list under a single kv key; every write goes
// through a mutex so concurrent enqueues and removals never lose entries.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/cellarkeeper/internal/client/repositories/kv"
	"github.com/google/uuid"
)

// Key is the kv key holding the serialized queue.
const Key = "queue"

var ErrUnknownMutation = errors.New("unknown queued mutation")

// Operation is one queued mutation.
type Operation struct {
	ID         string
	Mutation   Mutation
	EnqueuedAt time.Time
}

type record struct {
	ID         string          `json:"id"`
	Kind       Kind            `json:"type"`
	Collection Collection      `json:"collection"`
	Payload    json.RawMessage `json:"data"`
	EnqueuedAt time.Time       `json:"timestamp"`
}

func (o Operation) MarshalJSON() ([]byte, error) {
	payload, err := encodePayload(o.Mutation)
	if err != nil {
		return nil, err
	}
	return json.Marshal(record{
		ID:         o.ID,
		Kind:       o.Mutation.Kind(),
		Collection: o.Mutation.Collection(),
		Payload:    payload,
		EnqueuedAt: o.EnqueuedAt,
	})
}

func (o *Operation) UnmarshalJSON(b []byte) error {
	var r record
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	m, err := decodePayload(r.Kind, r.Collection, r.Payload)
	if err != nil {
		return fmt.Errorf("operation %s: %w", r.ID, err)
	}
	*o = Operation{ID: r.ID, Mutation: m, EnqueuedAt: r.EnqueuedAt}
	return nil
}

type Queue struct {
	kv    kv.Store
	now   func() time.Time
	newID func() string

	mu sync.Mutex
}

func New(store kv.Store) *Queue {
	return &Queue{kv: store, now: time.Now, newID: uuid.NewString}
}

// Enqueue appends m and returns the stored operation.
func (q *Queue) Enqueue(ctx context.Context, m Mutation) (Operation, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	ops, err := q.load(ctx)
	if err != nil {
		return Operation{}, err
	}
	op := Operation{ID: q.newID(), Mutation: m, EnqueuedAt: q.now().UTC()}
	if err := q.save(ctx, append(ops, op)); err != nil {
		return Operation{}, err
	}
	return op, nil
}

// AllPending returns a snapshot of the queue, oldest first.
func (q *Queue) AllPending(ctx context.Context) ([]Operation, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.load(ctx)
}

// Remove drops the operation with the given id. Unknown ids are ignored.
func (q *Queue) Remove(ctx context.Context, id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	ops, err := q.load(ctx)
	if err != nil {
		return err
	}
	kept := ops[:0]
	for _, op := range ops {
		if op.ID != id {
			kept = append(kept, op)
		}
	}
	if len(kept) == len(ops) {
		return nil
	}
	return q.save(ctx, kept)
}

func (q *Queue) Clear(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.kv.Delete(ctx, Key)
}

func (q *Queue) PendingCount(ctx context.Context) (int, error) {
	ops, err := q.AllPending(ctx)
	return len(ops), err
}

// Rebind rewrites every queued reference to the local id from so it points
// at the remote id to. It returns the number of operations changed.
func (q *Queue) Rebind(ctx context.Context, from, to string) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	ops, err := q.load(ctx)
	if err != nil {
		return 0, err
	}
	changed := 0
	for i, op := range ops {
		if !op.Mutation.DependsOn(from) {
			continue
		}
		ops[i].Mutation = op.Mutation.rebind(from, to)
		changed++
	}
	if changed == 0 {
		return 0, nil
	}
	return changed, q.save(ctx, ops)
}

func (q *Queue) load(ctx context.Context) ([]Operation, error) {
	raw, err := q.kv.Get(ctx, Key)
	if err != nil {
		return nil, fmt.Errorf("load queue: %w", err)
	}
	ops := make([]Operation, 0)
	if raw == nil {
		return ops, nil
	}
	if err := json.Unmarshal(raw, &ops); err != nil {
		return nil, fmt.Errorf("decode queue: %w", err)
	}
	return ops, nil
}

func (q *Queue) save(ctx context.Context, ops []Operation) error {
	raw, err := json.Marshal(ops)
	if err != nil {
		return fmt.Errorf("encode queue: %w", err)
	}
	if err := q.kv.Set(ctx, Key, raw); err != nil {
		return fmt.Errorf("save queue: %w", err)
	}
	return nil
}
