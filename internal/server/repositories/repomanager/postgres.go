package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/cellarkeeper/internal/dbx"
	"github.com/dmitrijs2005/cellarkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/cellarkeeper/internal/server/repositories/bottles"
	"github.com/dmitrijs2005/cellarkeeper/internal/server/repositories/cabinets"
)

type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Cabinets(db dbx.DBTX) cabinets.Repository {
	return cabinets.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Bottles(db dbx.DBTX) bottles.Repository {
	return bottles.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// OpenPostgres opens the pgx pool behind dsn, checks it is reachable and
// applies pending migrations.
func OpenPostgres(ctx context.Context, dsn string, m RepositoryManager) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	if err := m.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return db, nil
}
