// Package bottles provides the PostgreSQL-backed bottle repository.
package bottles

import (
	"context"

	"github.com/dmitrijs2005/cellarkeeper/internal/models"
)

// Repository persists bottles. Stored-slot uniqueness is enforced by the
// database and surfaces as common.ErrLocationTaken.
type Repository interface {
	Insert(ctx context.Context, b models.Bottle) error
	Update(ctx context.Context, b models.Bottle) error
	Get(ctx context.Context, id string, forUpdate bool) (models.Bottle, error)
	ListStored(ctx context.Context, cabinetID string) ([]models.Bottle, error)
	ListHistory(ctx context.Context, ownerID string) ([]models.Bottle, error)
}
