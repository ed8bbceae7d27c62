// Package kv is the durable key/value primitive the local cache and the
// operation queue are built on.
package kv

import "context"

// Store maps string keys to opaque values. Get returns (nil, nil) for an
// absent key. List and Clear operate on every key starting with prefix; an
// empty prefix matches everything.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) (map[string][]byte, error)
	Clear(ctx context.Context, prefix string) error
}
