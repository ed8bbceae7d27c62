package cache

import (
	"context"

	"github.com/dmitrijs2005/cellarkeeper/internal/models"
)

func CabinetsKey(ownerID string) string  { return "cabinets:" + ownerID }
func RacksKey(roomID string) string      { return "racks:" + roomID }
func CabinetKey(id string) string        { return "cabinet:" + id }
func BottlesKey(cabinetID string) string { return "bottles:" + cabinetID }
func HistoryKey(ownerID string) string   { return "history:" + ownerID }
func BottleKey(id string) string         { return "bottle:" + id }
func AliasKey(localID string) string     { return "alias:" + localID }

func CabinetID(c models.Cabinet) string { return c.ID }
func BottleID(b models.Bottle) string   { return b.ID }

func (s *Store) PutCabinets(ctx context.Context, ownerID string, cabinets []models.Cabinet) error {
	return s.Put(ctx, CabinetsKey(ownerID), nonNil(cabinets))
}

// Cabinets returns the cached cabinets of an owner, empty on a miss.
func (s *Store) Cabinets(ctx context.Context, ownerID string) ([]models.Cabinet, error) {
	return loadList[models.Cabinet](ctx, s, CabinetsKey(ownerID))
}

func (s *Store) PutRacks(ctx context.Context, roomID string, racks []models.Cabinet) error {
	return s.Put(ctx, RacksKey(roomID), nonNil(racks))
}

func (s *Store) Racks(ctx context.Context, roomID string) ([]models.Cabinet, error) {
	return loadList[models.Cabinet](ctx, s, RacksKey(roomID))
}

func (s *Store) PutBottles(ctx context.Context, cabinetID string, bottles []models.Bottle) error {
	return s.Put(ctx, BottlesKey(cabinetID), nonNil(bottles))
}

// Bottles returns the cached stored bottles of a cabinet, empty on a miss.
func (s *Store) Bottles(ctx context.Context, cabinetID string) ([]models.Bottle, error) {
	return loadList[models.Bottle](ctx, s, BottlesKey(cabinetID))
}

func (s *Store) PutHistory(ctx context.Context, ownerID string, bottles []models.Bottle) error {
	return s.Put(ctx, HistoryKey(ownerID), nonNil(bottles))
}

func (s *Store) History(ctx context.Context, ownerID string) ([]models.Bottle, error) {
	return loadList[models.Bottle](ctx, s, HistoryKey(ownerID))
}

func (s *Store) PutCabinet(ctx context.Context, c models.Cabinet) error {
	return s.Put(ctx, CabinetKey(c.ID), c)
}

// Cabinet returns a single cached cabinet and whether it was found.
func (s *Store) Cabinet(ctx context.Context, id string) (models.Cabinet, bool, error) {
	var c models.Cabinet
	ok, err := s.Load(ctx, CabinetKey(id), &c)
	return c, ok, err
}

func (s *Store) PutBottle(ctx context.Context, b models.Bottle) error {
	return s.Put(ctx, BottleKey(b.ID), b)
}

func (s *Store) Bottle(ctx context.Context, id string) (models.Bottle, bool, error) {
	var b models.Bottle
	ok, err := s.Load(ctx, BottleKey(id), &b)
	return b, ok, err
}

// PutAlias records the remote id a synced local id was replaced by.
func (s *Store) PutAlias(ctx context.Context, localID, remoteID string) error {
	return s.Put(ctx, AliasKey(localID), remoteID)
}

// Resolve maps a local id that has already been synced to its remote id.
// Any other id comes back unchanged.
func (s *Store) Resolve(ctx context.Context, id string) (string, error) {
	if !models.IsLocalID(id) {
		return id, nil
	}
	var remoteID string
	ok, err := s.Load(ctx, AliasKey(id), &remoteID)
	if err != nil {
		return "", err
	}
	if !ok || remoteID == "" {
		return id, nil
	}
	return remoteID, nil
}

func loadList[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	out := make([]T, 0)
	if _, err := s.Load(ctx, key, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = make([]T, 0)
	}
	return out, nil
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
