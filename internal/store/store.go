// Package store defines the remote store the client syncs against. The gRPC
// client, the in-memory store and the server's Postgres backend implement it.
package store

import (
	"context"

	"github.com/dmitrijs2005/cellarkeeper/internal/models"
)

// CabinetStore persists cabinets. CreateCabinet assigns the id.
type CabinetStore interface {
	CreateCabinet(ctx context.Context, c models.Cabinet) (models.Cabinet, error)
	UpdateCabinet(ctx context.Context, id string, p models.CabinetPatch) error
	GetCabinet(ctx context.Context, id string) (models.Cabinet, error)
	ListCabinets(ctx context.Context, ownerID string) ([]models.Cabinet, error)
	ListRoomRacks(ctx context.Context, roomID string) ([]models.Cabinet, error)
}

// BottleStore persists bottles. ListBottles returns stored bottles only;
// ListHistory returns opened and consumed ones.
type BottleStore interface {
	CreateBottle(ctx context.Context, b models.Bottle) (models.Bottle, error)
	UpdateBottle(ctx context.Context, id string, p models.BottlePatch) error
	GetBottle(ctx context.Context, id string) (models.Bottle, error)
	ListBottles(ctx context.Context, cabinetID string) ([]models.Bottle, error)
	ListHistory(ctx context.Context, ownerID string) ([]models.Bottle, error)
}

type Store interface {
	CabinetStore
	BottleStore
	Ping(ctx context.Context) error
}
