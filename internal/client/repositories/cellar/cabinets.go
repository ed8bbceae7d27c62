package cellar

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cellarkeeper/internal/client/cache"
	"github.com/dmitrijs2005/cellarkeeper/internal/client/queue"
	"github.com/dmitrijs2005/cellarkeeper/internal/common"
	"github.com/dmitrijs2005/cellarkeeper/internal/models"
	"github.com/dmitrijs2005/cellarkeeper/internal/store"
)

type CabinetRepository struct {
	base
	remote store.CabinetStore
}

func NewCabinetRepository(remote store.CabinetStore, opts Options) *CabinetRepository {
	return &CabinetRepository{base: newBase(opts, "cabinets"), remote: remote}
}

// Add creates a cabinet for ownerID. Offline, or when the remote fails, the
// cabinet gets a local id, is cached and its creation is queued.
func (r *CabinetRepository) Add(ctx context.Context, ownerID string, c models.Cabinet) (models.Cabinet, error) {
	parentID, err := r.resolve(ctx, c.ParentID)
	if err != nil {
		return models.Cabinet{}, err
	}
	c.ID = ""
	c.OwnerID = ownerID
	c.ParentID = parentID
	if err := c.Validate(); err != nil {
		return models.Cabinet{}, err
	}

	if r.online.IsOnline(ctx) && !models.IsLocalID(c.ParentID) {
		created, err := callRemote(ctx, r.timeout, func(ctx context.Context) (models.Cabinet, error) {
			return r.remote.CreateCabinet(ctx, c)
		})
		if err == nil {
			return created, r.cacheCabinet(ctx, nil, created)
		}
		if permanent(err) {
			return models.Cabinet{}, err
		}
		r.logger.Warn(ctx, "remote create failed, falling back to queue", "error", err)
	}

	c.ID = models.NewLocalID()
	if err := r.cacheCabinet(ctx, nil, c); err != nil {
		return models.Cabinet{}, err
	}
	if err := r.enqueue(ctx, queue.AddCabinet{Cabinet: c}); err != nil {
		return models.Cabinet{}, err
	}
	return c, nil
}

// List returns the cabinets of ownerID, fresh from the remote when possible.
// Cabinets still waiting for their first sync stay visible.
func (r *CabinetRepository) List(ctx context.Context, ownerID string) ([]models.Cabinet, error) {
	if r.online.IsOnline(ctx) {
		fresh, err := callRemote(ctx, r.timeout, func(ctx context.Context) ([]models.Cabinet, error) {
			return r.remote.ListCabinets(ctx, ownerID)
		})
		if err == nil {
			cached, cerr := r.cache.Cabinets(ctx, ownerID)
			if cerr != nil {
				return nil, cerr
			}
			list := withPending(fresh, cached, cache.CabinetID)
			if err := r.cache.PutCabinets(ctx, ownerID, list); err != nil {
				return nil, err
			}
			for _, c := range fresh {
				if err := r.cache.PutCabinet(ctx, c); err != nil {
					return nil, err
				}
			}
			return list, nil
		}
		r.logger.Warn(ctx, "remote list failed, serving cache", "error", err)
	}
	return r.cache.Cabinets(ctx, ownerID)
}

// Racks lists the racks placed in a room.
func (r *CabinetRepository) Racks(ctx context.Context, roomID string) ([]models.Cabinet, error) {
	roomID, err := r.resolve(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if r.online.IsOnline(ctx) && !models.IsLocalID(roomID) {
		fresh, err := callRemote(ctx, r.timeout, func(ctx context.Context) ([]models.Cabinet, error) {
			return r.remote.ListRoomRacks(ctx, roomID)
		})
		if err == nil {
			cached, cerr := r.cache.Racks(ctx, roomID)
			if cerr != nil {
				return nil, cerr
			}
			list := withPending(fresh, cached, cache.CabinetID)
			return list, r.cache.PutRacks(ctx, roomID, list)
		}
		r.logger.Warn(ctx, "remote racks failed, serving cache", "error", err)
	}
	return r.cache.Racks(ctx, roomID)
}

// GetByID looks the cabinet up remotely, falling back to the cache.
// It returns common.ErrNotFound when neither knows the id.
func (r *CabinetRepository) GetByID(ctx context.Context, id string) (models.Cabinet, error) {
	id, err := r.resolve(ctx, id)
	if err != nil {
		return models.Cabinet{}, err
	}
	if r.online.IsOnline(ctx) && !models.IsLocalID(id) {
		c, err := callRemote(ctx, r.timeout, func(ctx context.Context) (models.Cabinet, error) {
			return r.remote.GetCabinet(ctx, id)
		})
		if err == nil {
			return c, r.cache.PutCabinet(ctx, c)
		}
		if errors.Is(err, common.ErrNotFound) {
			return models.Cabinet{}, err
		}
		r.logger.Warn(ctx, "remote get failed, serving cache", "id", id, "error", err)
	}

	c, ok, err := r.cache.Cabinet(ctx, id)
	if err != nil {
		return models.Cabinet{}, err
	}
	if !ok {
		return models.Cabinet{}, fmt.Errorf("cabinet %s: %w", id, common.ErrNotFound)
	}
	return c, nil
}

// Update applies a partial change. Offline the change is applied to the
// cached cabinet right away and queued.
func (r *CabinetRepository) Update(ctx context.Context, id string, p models.CabinetPatch) error {
	if p.IsEmpty() {
		return nil
	}
	id, err := r.resolve(ctx, id)
	if err != nil {
		return err
	}
	if p.ParentID, err = r.resolveRef(ctx, p.ParentID); err != nil {
		return err
	}

	prev, cached, err := r.cache.Cabinet(ctx, id)
	if err != nil {
		return err
	}
	if !cached && models.IsLocalID(id) {
		return fmt.Errorf("cabinet %s: %w", id, common.ErrNotFound)
	}
	if cached {
		if _, err := p.Apply(prev); err != nil {
			return err
		}
	}

	if r.online.IsOnline(ctx) && !models.IsLocalID(id) && !pointsAtLocal(p.ParentID) {
		err := callRemoteErr(ctx, r.timeout, func(ctx context.Context) error {
			return r.remote.UpdateCabinet(ctx, id, p)
		})
		if err == nil {
			return r.refresh(ctx, id, prev, cached, p)
		}
		if permanent(err) {
			return err
		}
		r.logger.Warn(ctx, "remote update failed, falling back to queue", "id", id, "error", err)
	}

	if err := r.enqueue(ctx, queue.UpdateCabinet{ID: id, Patch: p}); err != nil {
		return err
	}
	if !cached {
		return nil
	}
	next, err := p.Apply(prev)
	if err != nil {
		return err
	}
	return r.cacheCabinet(ctx, &prev, next)
}

// ReplayAdd sends a queued creation to the remote and moves every cached
// reference from the local id to the id the remote assigned.
func (r *CabinetRepository) ReplayAdd(ctx context.Context, c models.Cabinet) (models.Cabinet, error) {
	localID := c.ID
	c.ID = ""
	created, err := callRemote(ctx, r.timeout, func(ctx context.Context) (models.Cabinet, error) {
		return r.remote.CreateCabinet(ctx, c)
	})
	if err != nil {
		return models.Cabinet{}, err
	}
	if err := r.rekey(ctx, localID, created); err != nil {
		return created, fmt.Errorf("rekey cabinet %s: %w", localID, err)
	}
	return created, nil
}

func (r *CabinetRepository) ReplayUpdate(ctx context.Context, id string, p models.CabinetPatch) error {
	return callRemoteErr(ctx, r.timeout, func(ctx context.Context) error {
		return r.remote.UpdateCabinet(ctx, id, p)
	})
}

func (r *CabinetRepository) refresh(ctx context.Context, id string, prev models.Cabinet, cached bool, p models.CabinetPatch) error {
	if cached {
		next, err := p.Apply(prev)
		if err != nil {
			return err
		}
		return r.cacheCabinet(ctx, &prev, next)
	}
	fresh, err := callRemote(ctx, r.timeout, func(ctx context.Context) (models.Cabinet, error) {
		return r.remote.GetCabinet(ctx, id)
	})
	if err != nil {
		r.logger.Debug(ctx, "could not refresh cabinet after update", "id", id, "error", err)
		return nil
	}
	return r.cacheCabinet(ctx, nil, fresh)
}

// cacheCabinet writes c to every cached view it belongs to. prev is the
// cached state before the change, if any.
func (r *CabinetRepository) cacheCabinet(ctx context.Context, prev *models.Cabinet, c models.Cabinet) error {
	if err := r.cache.PutCabinet(ctx, c); err != nil {
		return err
	}
	if err := cache.Upsert(ctx, r.cache, cache.CabinetsKey(c.OwnerID), c, cache.CabinetID); err != nil {
		return err
	}
	if prev != nil && prev.ParentID != "" && prev.ParentID != c.ParentID {
		if err := cache.RemoveFromList(ctx, r.cache, cache.RacksKey(prev.ParentID), c.ID, cache.CabinetID); err != nil {
			return err
		}
	}
	if c.Type == models.CabinetTypeRack && c.ParentID != "" {
		return cache.Upsert(ctx, r.cache, cache.RacksKey(c.ParentID), c, cache.CabinetID)
	}
	return nil
}

func (r *CabinetRepository) rekey(ctx context.Context, localID string, created models.Cabinet) error {
	remoteID := created.ID

	cur, ok, err := r.cache.Cabinet(ctx, localID)
	if err != nil {
		return err
	}
	if ok {
		cur.ID = remoteID
	} else {
		cur = created
	}

	if err := cache.RemoveFromList(ctx, r.cache, cache.CabinetsKey(cur.OwnerID), localID, cache.CabinetID); err != nil {
		return err
	}
	if cur.ParentID != "" {
		if err := cache.RemoveFromList(ctx, r.cache, cache.RacksKey(cur.ParentID), localID, cache.CabinetID); err != nil {
			return err
		}
	}
	if err := r.cache.Delete(ctx, cache.CabinetKey(localID)); err != nil {
		return err
	}
	if err := r.cache.PutAlias(ctx, localID, remoteID); err != nil {
		return err
	}
	if err := r.cacheCabinet(ctx, nil, cur); err != nil {
		return err
	}

	if err := r.rekeyBottles(ctx, cur.OwnerID, localID, remoteID); err != nil {
		return err
	}
	return r.rekeyRacks(ctx, localID, remoteID)
}

// rekeyBottles moves the cached bottles of a cabinet to its new id.
func (r *CabinetRepository) rekeyBottles(ctx context.Context, ownerID, localID, remoteID string) error {
	bottles, err := r.cache.Bottles(ctx, localID)
	if err != nil {
		return err
	}
	for i := range bottles {
		bottles[i].CabinetID = remoteID
		if err := r.cache.PutBottle(ctx, bottles[i]); err != nil {
			return err
		}
	}
	if len(bottles) > 0 {
		if err := r.cache.PutBottles(ctx, remoteID, bottles); err != nil {
			return err
		}
	}
	if err := r.cache.Delete(ctx, cache.BottlesKey(localID)); err != nil {
		return err
	}

	history, err := r.cache.History(ctx, ownerID)
	if err != nil {
		return err
	}
	moved := false
	for i := range history {
		if history[i].CabinetID != localID {
			continue
		}
		history[i].CabinetID = remoteID
		if err := r.cache.PutBottle(ctx, history[i]); err != nil {
			return err
		}
		moved = true
	}
	if !moved {
		return nil
	}
	return r.cache.PutHistory(ctx, ownerID, history)
}

func (r *CabinetRepository) rekeyRacks(ctx context.Context, localID, remoteID string) error {
	racks, err := r.cache.Racks(ctx, localID)
	if err != nil || len(racks) == 0 {
		return err
	}
	for i := range racks {
		prev := racks[i]
		racks[i].ParentID = remoteID
		if err := r.cacheCabinet(ctx, &prev, racks[i]); err != nil {
			return err
		}
	}
	return r.cache.Delete(ctx, cache.RacksKey(localID))
}

func pointsAtLocal(id *string) bool {
	return id != nil && models.IsLocalID(*id)
}

// withPending appends cached entities that only exist locally to a fresh
// remote listing.
func withPending[T any](fresh, cached []T, id func(T) string) []T {
	out := make([]T, 0, len(fresh))
	out = append(out, fresh...)
	for _, v := range cached {
		if models.IsLocalID(id(v)) {
			out = append(out, v)
		}
	}
	return out
}
