package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS bottles (id INTEGER PRIMARY KEY, name TEXT);`)
	require.NoError(t, err)
	return db
}

func countBottles(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM bottles`).Scan(&n))
	return n
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := setupDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO bottles(name) VALUES ('Barolo')`)
		return err
	})
	require.NoError(t, err)
	require.Equal(t, 1, countBottles(t, db))
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := setupDB(t)
	boom := errors.New("boom")

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO bottles(name) VALUES ('Chablis')`)
		require.NoError(t, e)
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, countBottles(t, db))
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	db := setupDB(t)

	defer func() {
		require.NotNil(t, recover(), "panic must propagate")
		require.Equal(t, 0, countBottles(t, db))
	}()

	_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO bottles(name) VALUES ('Rioja')`)
		require.NoError(t, e)
		panic("corked")
	})
}

func TestWithTx_BeginError(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Close())

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return nil
	})
	require.Error(t, err)
}

func TestInTx_ReturnsValue(t *testing.T) {
	db := setupDB(t)

	id, err := InTx(context.Background(), db, func(ctx context.Context, tx DBTX) (int64, error) {
		res, err := tx.ExecContext(ctx, `INSERT INTO bottles(name) VALUES ('Port')`)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
	require.Equal(t, 1, countBottles(t, db))
}

func TestInTx_ErrorDropsValue(t *testing.T) {
	db := setupDB(t)

	v, err := InTx(context.Background(), db, func(ctx context.Context, tx DBTX) (string, error) {
		return "partial", errors.New("fail")
	})
	require.Error(t, err)
	require.Empty(t, v)
}
