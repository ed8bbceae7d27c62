// Package pgerr translates Postgres constraint violations into the shared
// sentinel errors.
package pgerr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/cellarkeeper/internal/common"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

// Map wraps err with common.ErrLocationTaken, common.ErrNotFound or
// common.ErrInvalidArgument when it is a unique, foreign key or check
// violation. Other errors come back wrapped as db errors.
func Map(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %s", common.ErrLocationTaken, pgErr.ConstraintName)
		case foreignKeyViolation:
			return fmt.Errorf("%w: %s", common.ErrNotFound, pgErr.ConstraintName)
		case checkViolation:
			return fmt.Errorf("%w: %s", common.ErrInvalidArgument, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("db error: %w", err)
}
