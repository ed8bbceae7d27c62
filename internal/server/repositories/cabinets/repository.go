// Package cabinets provides the PostgreSQL-backed cabinet repository.
package cabinets

import (
	"context"

	"github.com/dmitrijs2005/cellarkeeper/internal/models"
)

type Repository interface {
	Insert(ctx context.Context, c models.Cabinet) error
	Update(ctx context.Context, c models.Cabinet) error
	// Get loads one cabinet; forUpdate locks the row until the transaction ends.
	Get(ctx context.Context, id string, forUpdate bool) (models.Cabinet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Cabinet, error)
	ListRacks(ctx context.Context, roomID string) ([]models.Cabinet, error)
}
