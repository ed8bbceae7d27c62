// Package repomanager builds the Postgres repositories and composes them
// into a transactional store.Store.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/cellarkeeper/internal/dbx"
	"github.com/dmitrijs2005/cellarkeeper/internal/server/repositories/bottles"
	"github.com/dmitrijs2005/cellarkeeper/internal/server/repositories/cabinets"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Cabinets(db dbx.DBTX) cabinets.Repository
	Bottles(db dbx.DBTX) bottles.Repository
}
