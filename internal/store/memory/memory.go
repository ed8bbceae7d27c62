// Package memory is an in-process store.Store. The server uses it when no
// database is configured and tests use it as a per-test remote.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/cellarkeeper/internal/common"
	"github.com/dmitrijs2005/cellarkeeper/internal/models"
	"github.com/google/uuid"
)

type Store struct {
	mu       sync.RWMutex
	cabinets map[string]models.Cabinet
	bottles  map[string]models.Bottle
	seq      map[string]int64
	next     int64
	now      func() time.Time
}

func New() *Store {
	return &Store{
		cabinets: make(map[string]models.Cabinet),
		bottles:  make(map[string]models.Bottle),
		seq:      make(map[string]int64),
		now:      time.Now,
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) CreateCabinet(ctx context.Context, c models.Cabinet) (models.Cabinet, error) {
	if err := c.Validate(); err != nil {
		return models.Cabinet{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ParentID != "" {
		if _, ok := s.cabinets[c.ParentID]; !ok {
			return models.Cabinet{}, fmt.Errorf("parent cabinet %s: %w", c.ParentID, common.ErrNotFound)
		}
	}

	c.ID = uuid.NewString()
	s.cabinets[c.ID] = c
	s.track(c.ID)
	return c, nil
}

func (s *Store) UpdateCabinet(ctx context.Context, id string, p models.CabinetPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cabinets[id]
	if !ok {
		return fmt.Errorf("cabinet %s: %w", id, common.ErrNotFound)
	}
	updated, err := p.Apply(c)
	if err != nil {
		return err
	}
	s.cabinets[id] = updated
	return nil
}

func (s *Store) GetCabinet(ctx context.Context, id string) (models.Cabinet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cabinets[id]
	if !ok {
		return models.Cabinet{}, fmt.Errorf("cabinet %s: %w", id, common.ErrNotFound)
	}
	return c, nil
}

func (s *Store) ListCabinets(ctx context.Context, ownerID string) ([]models.Cabinet, error) {
	return s.filterCabinets(func(c models.Cabinet) bool { return c.OwnerID == ownerID }), nil
}

func (s *Store) ListRoomRacks(ctx context.Context, roomID string) ([]models.Cabinet, error) {
	return s.filterCabinets(func(c models.Cabinet) bool {
		return c.ParentID == roomID && c.Type == models.CabinetTypeRack
	}), nil
}

func (s *Store) CreateBottle(ctx context.Context, b models.Bottle) (models.Bottle, error) {
	if b.Status == "" {
		b.Status = models.StatusStored
	}
	if b.AddedAt.IsZero() {
		b.AddedAt = s.now().UTC()
	}
	if err := b.Validate(); err != nil {
		return models.Bottle{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cabinets[b.CabinetID]; !ok {
		return models.Bottle{}, fmt.Errorf("cabinet %s: %w", b.CabinetID, common.ErrNotFound)
	}
	if err := s.checkSlot("", b); err != nil {
		return models.Bottle{}, err
	}

	b.ID = uuid.NewString()
	s.bottles[b.ID] = b
	s.track(b.ID)
	return b, nil
}

func (s *Store) UpdateBottle(ctx context.Context, id string, p models.BottlePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bottles[id]
	if !ok {
		return fmt.Errorf("bottle %s: %w", id, common.ErrNotFound)
	}
	updated, err := p.Apply(b)
	if err != nil {
		return err
	}
	if p.MovesSlot() {
		if err := s.checkSlot(id, updated); err != nil {
			return err
		}
	}
	s.bottles[id] = updated
	return nil
}

func (s *Store) GetBottle(ctx context.Context, id string) (models.Bottle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bottles[id]
	if !ok {
		return models.Bottle{}, fmt.Errorf("bottle %s: %w", id, common.ErrNotFound)
	}
	return b, nil
}

func (s *Store) ListBottles(ctx context.Context, cabinetID string) ([]models.Bottle, error) {
	return s.filterBottles(func(b models.Bottle) bool {
		return b.CabinetID == cabinetID && b.IsStored()
	}), nil
}

func (s *Store) ListHistory(ctx context.Context, ownerID string) ([]models.Bottle, error) {
	return s.filterBottles(func(b models.Bottle) bool {
		return b.OwnerID == ownerID && b.Status.Terminal()
	}), nil
}

// checkSlot enforces one stored bottle per slot and the cabinet grid bounds.
// Caller holds s.mu.
func (s *Store) checkSlot(selfID string, b models.Bottle) error {
	if !b.IsStored() {
		return nil
	}
	c, ok := s.cabinets[b.CabinetID]
	if !ok {
		return fmt.Errorf("cabinet %s: %w", b.CabinetID, common.ErrNotFound)
	}
	if err := b.FitsIn(c.Dimensions); err != nil {
		return err
	}
	for id, other := range s.bottles {
		if id == selfID || !other.IsStored() || other.CabinetID != b.CabinetID {
			continue
		}
		if other.Location == b.Location {
			return fmt.Errorf("%w: %s in cabinet %s holds bottle %s",
				common.ErrLocationTaken, b.Location, b.CabinetID, id)
		}
	}
	return nil
}

// track records insertion order so listings are stable. Caller holds s.mu.
func (s *Store) track(id string) {
	s.next++
	s.seq[id] = s.next
}

func (s *Store) filterCabinets(keep func(models.Cabinet) bool) []models.Cabinet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Cabinet, 0)
	for _, c := range s.cabinets {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return s.seq[out[i].ID] < s.seq[out[j].ID] })
	return out
}

func (s *Store) filterBottles(keep func(models.Bottle) bool) []models.Bottle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Bottle, 0)
	for _, b := range s.bottles {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return s.seq[out[i].ID] < s.seq[out[j].ID] })
	return out
}
