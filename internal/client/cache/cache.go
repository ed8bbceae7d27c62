// Package cache keeps the last known snapshot of each collection so reads work
// offline. Entries are overwritten wholesale and never expire.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/cellarkeeper/internal/client/repositories/kv"
)

// Prefix namespaces cache entries inside the kv store.
const Prefix = "cache:"

// Entry is one cached payload.
type Entry struct {
	Data     json.RawMessage `json:"data"`
	CachedAt time.Time       `json:"cachedAt"`
}

type Store struct {
	kv  kv.Store
	now func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(store kv.Store) *Store {
	return &Store{
		kv:    store,
		now:   time.Now,
		locks: make(map[string]*sync.Mutex),
	}
}

// lock serializes writers of one key. Different keys never contend.
func (s *Store) lock(key string) func() {
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Put replaces whatever is cached under key with data.
func (s *Store) Put(ctx context.Context, key string, data any) error {
	defer s.lock(key)()
	return s.put(ctx, key, data)
}

func (s *Store) put(ctx context.Context, key string, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode cache[%s]: %w", key, err)
	}
	entry, err := json.Marshal(Entry{Data: raw, CachedAt: s.now().UTC()})
	if err != nil {
		return fmt.Errorf("encode cache[%s]: %w", key, err)
	}
	return s.kv.Set(ctx, Prefix+key, entry)
}

// Get returns the entry under key, or nil when nothing was cached.
func (s *Store) Get(ctx context.Context, key string) (*Entry, error) {
	raw, err := s.kv.Get(ctx, Prefix+key)
	if err != nil || raw == nil {
		return nil, err
	}
	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("decode cache[%s]: %w", key, err)
	}
	return &e, nil
}

func (s *Store) Has(ctx context.Context, key string) (bool, error) {
	e, err := s.Get(ctx, key)
	return e != nil, err
}

// Load decodes the payload under key into v. It reports false on a miss.
func (s *Store) Load(ctx context.Context, key string, v any) (bool, error) {
	e, err := s.Get(ctx, key)
	if err != nil || e == nil {
		return false, err
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return false, fmt.Errorf("decode cache[%s]: %w", key, err)
	}
	return true, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	defer s.lock(key)()
	return s.kv.Delete(ctx, Prefix+key)
}

// Clear drops every cache entry.
func (s *Store) Clear(ctx context.Context) error {
	return s.kv.Clear(ctx, Prefix)
}

// Update runs a read-modify-write of one key under its lock. fn receives the
// current value (zero and false on a miss) and returns the value to store.
func Update[T any](ctx context.Context, s *Store, key string, fn func(cur T, found bool) (T, error)) error {
	defer s.lock(key)()

	var cur T
	found, err := s.Load(ctx, key, &cur)
	if err != nil {
		return err
	}
	next, err := fn(cur, found)
	if err != nil {
		return err
	}
	return s.put(ctx, key, next)
}

// Upsert replaces the element of the list under key whose id matches item,
// or appends item when there is none.
func Upsert[T any](ctx context.Context, s *Store, key string, item T, id func(T) string) error {
	return Update(ctx, s, key, func(list []T, _ bool) ([]T, error) {
		for i := range list {
			if id(list[i]) == id(item) {
				list[i] = item
				return list, nil
			}
		}
		return append(list, item), nil
	})
}

// RemoveFromList drops the element with the given id from the list under key.
// A missing key stays missing.
func RemoveFromList[T any](ctx context.Context, s *Store, key, target string, id func(T) string) error {
	defer s.lock(key)()

	var list []T
	found, err := s.Load(ctx, key, &list)
	if err != nil || !found {
		return err
	}
	out := list[:0]
	for _, v := range list {
		if id(v) != target {
			out = append(out, v)
		}
	}
	return s.put(ctx, key, out)
}
