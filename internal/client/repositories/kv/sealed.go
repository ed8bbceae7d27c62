package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cellarkeeper/internal/cryptox"
)

const (
	sealPrefix      = "seal:"
	sealSaltKey     = sealPrefix + "salt"
	sealVerifierKey = sealPrefix + "verifier"
)

var ErrWrongPassphrase = errors.New("wrong passphrase for local store")

// SealedStore encrypts every value before handing it to the inner store.
// Keys stay in clear text so prefix scans keep working.
type SealedStore struct {
	inner Store
	key   []byte
}

// OpenSealed derives the store key from passphrase. The first call on an empty
// inner store generates and saves the salt; later calls must use the same
// passphrase or get ErrWrongPassphrase.
func OpenSealed(ctx context.Context, inner Store, passphrase []byte) (*SealedStore, error) {
	salt, err := inner.Get(ctx, sealSaltKey)
	if err != nil {
		return nil, err
	}

	if salt == nil {
		if salt, err = cryptox.NewSalt(); err != nil {
			return nil, err
		}
		key := cryptox.DeriveKey(passphrase, salt)
		if err := inner.Set(ctx, sealSaltKey, salt); err != nil {
			return nil, err
		}
		if err := inner.Set(ctx, sealVerifierKey, cryptox.Verifier(key)); err != nil {
			return nil, err
		}
		return &SealedStore{inner: inner, key: key}, nil
	}

	key := cryptox.DeriveKey(passphrase, salt)
	verifier, err := inner.Get(ctx, sealVerifierKey)
	if err != nil {
		return nil, err
	}
	if !cryptox.Verify(key, verifier) {
		return nil, ErrWrongPassphrase
	}
	return &SealedStore{inner: inner, key: key}, nil
}

func (s *SealedStore) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := s.inner.Get(ctx, key)
	if err != nil || sealed == nil {
		return nil, err
	}
	v, err := cryptox.Open(s.key, sealed)
	if err != nil {
		return nil, fmt.Errorf("failed to open kv[%s]: %w", key, err)
	}
	return v, nil
}

func (s *SealedStore) Set(ctx context.Context, key string, value []byte) error {
	if strings.HasPrefix(key, sealPrefix) {
		return fmt.Errorf("key %q is reserved", key)
	}
	sealed, err := cryptox.Seal(s.key, value)
	if err != nil {
		return fmt.Errorf("failed to seal kv[%s]: %w", key, err)
	}
	return s.inner.Set(ctx, key, sealed)
}

func (s *SealedStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}

func (s *SealedStore) List(ctx context.Context, prefix string) (map[string][]byte, error) {
	all, err := s.inner.List(ctx, prefix)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(all))
	for k, sealed := range all {
		if strings.HasPrefix(k, sealPrefix) {
			continue
		}
		v, err := cryptox.Open(s.key, sealed)
		if err != nil {
			return nil, fmt.Errorf("failed to open kv[%s]: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

// Clear removes matching keys but never the seal parameters.
func (s *SealedStore) Clear(ctx context.Context, prefix string) error {
	all, err := s.inner.List(ctx, prefix)
	if err != nil {
		return err
	}
	for k := range all {
		if strings.HasPrefix(k, sealPrefix) {
			continue
		}
		if err := s.inner.Delete(ctx, k); err != nil {
			return err
		}
	}
	return nil
}
