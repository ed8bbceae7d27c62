package kv

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key        TEXT PRIMARY KEY,
  value      BLOB NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	require.NoError(t, err)
	return db
}

func stores(t *testing.T) map[string]Store {
	t.Helper()
	sealed, err := OpenSealed(context.Background(), NewMemoryStore(), []byte("pw"))
	require.NoError(t, err)
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": NewSQLiteStore(setupDB(t)),
		"sealed": sealed,
	}
}

func TestStore_Contract(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			v, err := s.Get(ctx, "absent")
			require.NoError(t, err)
			assert.Nil(t, v)

			require.NoError(t, s.Set(ctx, "cache:cabinets:u1", []byte("old")))
			require.NoError(t, s.Set(ctx, "cache:cabinets:u1", []byte("new")))
			v, err = s.Get(ctx, "cache:cabinets:u1")
			require.NoError(t, err)
			assert.Equal(t, []byte("new"), v)

			require.NoError(t, s.Set(ctx, "cache:bottles:c1", []byte{1}))
			require.NoError(t, s.Set(ctx, "Cache:upper", []byte{2}))
			require.NoError(t, s.Set(ctx, "queue", []byte("[]")))

			m, err := s.List(ctx, "cache:")
			require.NoError(t, err)
			assert.Len(t, m, 2)
			assert.Equal(t, []byte{1}, m["cache:bottles:c1"])

			all, err := s.List(ctx, "")
			require.NoError(t, err)
			assert.Len(t, all, 4)

			require.NoError(t, s.Clear(ctx, "cache:"))
			m, err = s.List(ctx, "cache:")
			require.NoError(t, err)
			assert.Empty(t, m)

			q, err := s.Get(ctx, "queue")
			require.NoError(t, err)
			assert.Equal(t, []byte("[]"), q, "clear must respect the prefix")

			require.NoError(t, s.Delete(ctx, "queue"))
			require.NoError(t, s.Delete(ctx, "queue"))
			q, err = s.Get(ctx, "queue")
			require.NoError(t, err)
			assert.Nil(t, q)
		})
	}
}

func TestSQLite_PrefixWithWildcards(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	require.NoError(t, s.Set(ctx, "a_%b", []byte{1}))
	require.NoError(t, s.Set(ctx, "axxb", []byte{2}))

	m, err := s.List(ctx, "a_%")
	require.NoError(t, err)
	assert.Len(t, m, 1)
	assert.Contains(t, m, "a_%b")
}

func TestSQLite_ErrorsWrapped(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	s := NewSQLiteStore(db)
	require.NoError(t, db.Close())

	_, err := s.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get kv[k]")

	require.ErrorContains(t, s.Set(ctx, "k", []byte("v")), "failed to set kv[k]")
	require.ErrorContains(t, s.Delete(ctx, "k"), "failed to delete kv[k]")
	require.ErrorContains(t, s.Clear(ctx, ""), "failed to clear kv")

	_, err = s.List(ctx, "")
	require.ErrorContains(t, err, "failed to list kv")
}

func TestMemory_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	in := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", in))
	in[0] = 'X'

	out, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)

	out[0] = 'Y'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestSealed_EncryptsAtRest(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()

	s, err := OpenSealed(ctx, inner, []byte("correct horse"))
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "cache:bottle:b1", []byte(`{"name":"Barolo"}`)))

	raw, err := inner.Get(ctx, "cache:bottle:b1")
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Barolo")

	reopened, err := OpenSealed(ctx, inner, []byte("correct horse"))
	require.NoError(t, err)
	v, err := reopened.Get(ctx, "cache:bottle:b1")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Barolo"}`, string(v))

	_, err = OpenSealed(ctx, inner, []byte("wrong"))
	assert.ErrorIs(t, err, ErrWrongPassphrase)
}

func TestSealed_ReservedKeysSurviveClear(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()

	s, err := OpenSealed(ctx, inner, []byte("pw"))
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "x", []byte("1")))

	assert.Error(t, s.Set(ctx, sealSaltKey, []byte("evil")))

	require.NoError(t, s.Clear(ctx, ""))
	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = OpenSealed(ctx, inner, []byte("pw"))
	assert.NoError(t, err, "salt and verifier must remain")
}

func TestSealed_CorruptValue(t *testing.T) {
	ctx := context.Background()
	inner := NewMemoryStore()

	s, err := OpenSealed(ctx, inner, []byte("pw"))
	require.NoError(t, err)
	require.NoError(t, inner.Set(ctx, "bad", []byte("not sealed at all")))

	_, err = s.Get(ctx, "bad")
	assert.ErrorContains(t, err, "failed to open kv[bad]")

	_, err = s.List(ctx, "")
	assert.Error(t, err)
}
