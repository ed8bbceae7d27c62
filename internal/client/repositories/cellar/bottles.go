package cellar

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/cellarkeeper/internal/client/cache"
	"github.com/dmitrijs2005/cellarkeeper/internal/client/queue"
	"github.com/dmitrijs2005/cellarkeeper/internal/common"
	"github.com/dmitrijs2005/cellarkeeper/internal/models"
	"github.com/dmitrijs2005/cellarkeeper/internal/netx"
	"github.com/dmitrijs2005/cellarkeeper/internal/store"
)

// LabelSigner hands out presigned upload URLs for bottle label images.
type LabelSigner interface {
	LabelUploadURL(ctx context.Context, bottleID string) (key, url string, err error)
}

type BottleRepository struct {
	base
	remote store.BottleStore
	labels LabelSigner
	http   *http.Client
}

// NewBottleRepository builds the repository. labels may be nil, in which case
// AttachLabel always reports common.ErrUnavailable.
func NewBottleRepository(remote store.BottleStore, labels LabelSigner, opts Options) *BottleRepository {
	return &BottleRepository{
		base:   newBase(opts, "bottles"),
		remote: remote,
		labels: labels,
		http:   http.DefaultClient,
	}
}

// Add stores a new bottle in a free slot. The bottle always starts stored.
func (r *BottleRepository) Add(ctx context.Context, ownerID string, b models.Bottle) (models.Bottle, error) {
	if b.Status != "" && b.Status != models.StatusStored {
		return models.Bottle{}, fmt.Errorf("%w: new bottles must be stored", common.ErrInvalidArgument)
	}
	cabinetID, err := r.resolve(ctx, b.CabinetID)
	if err != nil {
		return models.Bottle{}, err
	}
	b.ID = ""
	b.OwnerID = ownerID
	b.CabinetID = cabinetID
	b.Status = models.StatusStored
	if b.AddedAt.IsZero() {
		b.AddedAt = r.now().UTC()
	}
	if err := b.Validate(); err != nil {
		return models.Bottle{}, err
	}
	if err := r.checkSlot(ctx, b); err != nil {
		return models.Bottle{}, err
	}

	if r.online.IsOnline(ctx) && !models.IsLocalID(b.CabinetID) {
		created, err := callRemote(ctx, r.timeout, func(ctx context.Context) (models.Bottle, error) {
			return r.remote.CreateBottle(ctx, b)
		})
		if err == nil {
			return created, r.cacheBottle(ctx, nil, created)
		}
		if permanent(err) {
			return models.Bottle{}, err
		}
		r.logger.Warn(ctx, "remote create failed, falling back to queue", "error", err)
	}

	b.ID = models.NewLocalID()
	if err := r.cacheBottle(ctx, nil, b); err != nil {
		return models.Bottle{}, err
	}
	if err := r.enqueue(ctx, queue.AddBottle{Bottle: b}); err != nil {
		return models.Bottle{}, err
	}
	return b, nil
}

// BulkResult is the outcome of AddMany. Errors is keyed by the position of
// the failed location in the request.
type BulkResult struct {
	Succeeded int
	Failed    int
	Errors    map[int]error
	Added     []models.Bottle
}

// AddMany adds one copy of tmpl at each location, in order. A bottle that
// cannot be added is recorded in the result and the rest still go in. The
// returned error is only set when ctx ends the run early.
func (r *BottleRepository) AddMany(ctx context.Context, ownerID string, tmpl models.Bottle, locations []models.Location) (BulkResult, error) {
	res := BulkResult{Errors: map[int]error{}, Added: make([]models.Bottle, 0, len(locations))}
	for i, loc := range locations {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		b := tmpl
		b.Location = loc
		created, err := r.Add(ctx, ownerID, b)
		if err != nil {
			res.Failed++
			res.Errors[i] = err
			continue
		}
		res.Succeeded++
		res.Added = append(res.Added, created)
	}
	r.logger.Info(ctx, "bulk add finished", "succeeded", res.Succeeded, "failed", res.Failed)
	return res, nil
}

// List returns the stored bottles of a cabinet.
func (r *BottleRepository) List(ctx context.Context, cabinetID string) ([]models.Bottle, error) {
	cabinetID, err := r.resolve(ctx, cabinetID)
	if err != nil {
		return nil, err
	}
	if r.online.IsOnline(ctx) && !models.IsLocalID(cabinetID) {
		fresh, err := callRemote(ctx, r.timeout, func(ctx context.Context) ([]models.Bottle, error) {
			return r.remote.ListBottles(ctx, cabinetID)
		})
		if err == nil {
			cached, cerr := r.cache.Bottles(ctx, cabinetID)
			if cerr != nil {
				return nil, cerr
			}
			list := withPending(fresh, cached, cache.BottleID)
			if err := r.cache.PutBottles(ctx, cabinetID, list); err != nil {
				return nil, err
			}
			for _, b := range fresh {
				if err := r.cache.PutBottle(ctx, b); err != nil {
					return nil, err
				}
			}
			return list, nil
		}
		r.logger.Warn(ctx, "remote list failed, serving cache", "error", err)
	}
	return r.cache.Bottles(ctx, cabinetID)
}

// History returns the opened and consumed bottles of an owner.
func (r *BottleRepository) History(ctx context.Context, ownerID string) ([]models.Bottle, error) {
	if r.online.IsOnline(ctx) {
		fresh, err := callRemote(ctx, r.timeout, func(ctx context.Context) ([]models.Bottle, error) {
			return r.remote.ListHistory(ctx, ownerID)
		})
		if err == nil {
			cached, cerr := r.cache.History(ctx, ownerID)
			if cerr != nil {
				return nil, cerr
			}
			list := withPending(fresh, cached, cache.BottleID)
			return list, r.cache.PutHistory(ctx, ownerID, list)
		}
		r.logger.Warn(ctx, "remote history failed, serving cache", "error", err)
	}
	return r.cache.History(ctx, ownerID)
}

// GetByID looks the bottle up remotely, falling back to the cache.
func (r *BottleRepository) GetByID(ctx context.Context, id string) (models.Bottle, error) {
	id, err := r.resolve(ctx, id)
	if err != nil {
		return models.Bottle{}, err
	}
	if r.online.IsOnline(ctx) && !models.IsLocalID(id) {
		b, err := callRemote(ctx, r.timeout, func(ctx context.Context) (models.Bottle, error) {
			return r.remote.GetBottle(ctx, id)
		})
		if err == nil {
			return b, r.cache.PutBottle(ctx, b)
		}
		if errors.Is(err, common.ErrNotFound) {
			return models.Bottle{}, err
		}
		r.logger.Warn(ctx, "remote get failed, serving cache", "id", id, "error", err)
	}

	b, ok, err := r.cache.Bottle(ctx, id)
	if err != nil {
		return models.Bottle{}, err
	}
	if !ok {
		return models.Bottle{}, fmt.Errorf("bottle %s: %w", id, common.ErrNotFound)
	}
	return b, nil
}

// Update applies a partial change. Status changes must follow the lifecycle.
// A local id that was never cached, or was dropped since, is not found.
func (r *BottleRepository) Update(ctx context.Context, id string, p models.BottlePatch) error {
	if p.IsEmpty() {
		return nil
	}
	id, err := r.resolve(ctx, id)
	if err != nil {
		return err
	}
	if p.CabinetID, err = r.resolveRef(ctx, p.CabinetID); err != nil {
		return err
	}

	prev, cached, err := r.cache.Bottle(ctx, id)
	if err != nil {
		return err
	}
	if !cached && models.IsLocalID(id) {
		return fmt.Errorf("bottle %s: %w", id, common.ErrNotFound)
	}
	if cached {
		next, err := p.Apply(prev)
		if err != nil {
			return err
		}
		if p.MovesSlot() {
			if err := r.checkSlot(ctx, next); err != nil {
				return err
			}
		}
	}

	if r.online.IsOnline(ctx) && !models.IsLocalID(id) && !pointsAtLocal(p.CabinetID) {
		err := callRemoteErr(ctx, r.timeout, func(ctx context.Context) error {
			return r.remote.UpdateBottle(ctx, id, p)
		})
		if err == nil {
			return r.refresh(ctx, id, prev, cached, p)
		}
		if permanent(err) {
			return err
		}
		r.logger.Warn(ctx, "remote update failed, falling back to queue", "id", id, "error", err)
	}

	if err := r.enqueue(ctx, queue.UpdateBottle{ID: id, Patch: p}); err != nil {
		return err
	}
	if !cached {
		return nil
	}
	next, err := p.Apply(prev)
	if err != nil {
		return err
	}
	return r.cacheBottle(ctx, &prev, next)
}

// Consume marks a stored bottle as drunk. rating is optional (1..10).
func (r *BottleRepository) Consume(ctx context.Context, id string, rating *int, notes string) error {
	return r.Update(ctx, id, models.ConsumePatch(rating, notes, r.now().UTC()))
}

// Open marks a stored bottle as opened. It leaves the cabinet for good.
func (r *BottleRepository) Open(ctx context.Context, id string) error {
	return r.Update(ctx, id, models.OpenPatch(r.now().UTC()))
}

// AttachLabel uploads a label image and records its object key on the
// bottle. It needs the remote and fails with common.ErrUnavailable offline.
func (r *BottleRepository) AttachLabel(ctx context.Context, id, contentType string, image []byte) (string, error) {
	id, err := r.resolve(ctx, id)
	if err != nil {
		return "", err
	}
	if r.labels == nil || models.IsLocalID(id) || !r.online.IsOnline(ctx) {
		return "", common.ErrUnavailable
	}

	type signed struct{ key, url string }
	s, err := callRemote(ctx, r.timeout, func(ctx context.Context) (signed, error) {
		key, url, err := r.labels.LabelUploadURL(ctx, id)
		return signed{key, url}, err
	})
	if err != nil {
		return "", fmt.Errorf("sign label upload: %w", err)
	}

	if err := netx.UploadToPresignedURL(ctx, r.http, s.url, contentType, image); err != nil {
		return "", err
	}

	p := models.BottlePatch{LabelImageKey: &s.key}
	err = callRemoteErr(ctx, r.timeout, func(ctx context.Context) error {
		return r.remote.UpdateBottle(ctx, id, p)
	})
	if err != nil {
		return "", fmt.Errorf("record label: %w", err)
	}

	prev, cached, err := r.cache.Bottle(ctx, id)
	if err != nil || !cached {
		return s.key, err
	}
	next, err := p.Apply(prev)
	if err != nil {
		return s.key, err
	}
	return s.key, r.cacheBottle(ctx, &prev, next)
}

// ReplayAdd sends a queued creation to the remote and re-keys the cached
// bottle to the id the remote assigned.
func (r *BottleRepository) ReplayAdd(ctx context.Context, b models.Bottle) (models.Bottle, error) {
	localID := b.ID
	b.ID = ""
	created, err := callRemote(ctx, r.timeout, func(ctx context.Context) (models.Bottle, error) {
		return r.remote.CreateBottle(ctx, b)
	})
	if err != nil {
		return models.Bottle{}, err
	}
	if err := r.rekey(ctx, localID, created); err != nil {
		return created, fmt.Errorf("rekey bottle %s: %w", localID, err)
	}
	return created, nil
}

func (r *BottleRepository) ReplayUpdate(ctx context.Context, id string, p models.BottlePatch) error {
	return callRemoteErr(ctx, r.timeout, func(ctx context.Context) error {
		return r.remote.UpdateBottle(ctx, id, p)
	})
}

// checkSlot rejects a stored bottle whose slot is outside its cabinet or
// already held by another cached stored bottle.
func (r *BottleRepository) checkSlot(ctx context.Context, b models.Bottle) error {
	if !b.IsStored() {
		return nil
	}
	if c, ok, err := r.cache.Cabinet(ctx, b.CabinetID); err != nil {
		return err
	} else if ok {
		if err := b.FitsIn(c.Dimensions); err != nil {
			return err
		}
	}

	others, err := r.cache.Bottles(ctx, b.CabinetID)
	if err != nil {
		return err
	}
	for _, o := range others {
		if o.ID != b.ID && o.IsStored() && o.Location == b.Location {
			return fmt.Errorf("%w: %s holds bottle %s", common.ErrLocationTaken, b.Location, o.ID)
		}
	}
	return nil
}

func (r *BottleRepository) refresh(ctx context.Context, id string, prev models.Bottle, cached bool, p models.BottlePatch) error {
	if cached {
		next, err := p.Apply(prev)
		if err != nil {
			return err
		}
		return r.cacheBottle(ctx, &prev, next)
	}
	fresh, err := callRemote(ctx, r.timeout, func(ctx context.Context) (models.Bottle, error) {
		return r.remote.GetBottle(ctx, id)
	})
	if err != nil {
		r.logger.Debug(ctx, "could not refresh bottle after update", "id", id, "error", err)
		return nil
	}
	return r.cacheBottle(ctx, nil, fresh)
}

// cacheBottle writes b to the cached views: the entity itself, the stored
// list of its cabinet, or the history of its owner once it left the cabinet.
func (r *BottleRepository) cacheBottle(ctx context.Context, prev *models.Bottle, b models.Bottle) error {
	if err := r.cache.PutBottle(ctx, b); err != nil {
		return err
	}
	if prev != nil && prev.CabinetID != b.CabinetID {
		if err := cache.RemoveFromList(ctx, r.cache, cache.BottlesKey(prev.CabinetID), b.ID, cache.BottleID); err != nil {
			return err
		}
	}
	if b.IsStored() {
		return cache.Upsert(ctx, r.cache, cache.BottlesKey(b.CabinetID), b, cache.BottleID)
	}
	if err := cache.RemoveFromList(ctx, r.cache, cache.BottlesKey(b.CabinetID), b.ID, cache.BottleID); err != nil {
		return err
	}
	return cache.Upsert(ctx, r.cache, cache.HistoryKey(b.OwnerID), b, cache.BottleID)
}

func (r *BottleRepository) rekey(ctx context.Context, localID string, created models.Bottle) error {
	cur, ok, err := r.cache.Bottle(ctx, localID)
	if err != nil {
		return err
	}
	if ok {
		cur.ID = created.ID
		cur.CabinetID = created.CabinetID
	} else {
		cur = created
	}

	if err := cache.RemoveFromList(ctx, r.cache, cache.BottlesKey(cur.CabinetID), localID, cache.BottleID); err != nil {
		return err
	}
	if err := cache.RemoveFromList(ctx, r.cache, cache.HistoryKey(cur.OwnerID), localID, cache.BottleID); err != nil {
		return err
	}
	if err := r.cache.Delete(ctx, cache.BottleKey(localID)); err != nil {
		return err
	}
	if err := r.cache.PutAlias(ctx, localID, created.ID); err != nil {
		return err
	}
	return r.cacheBottle(ctx, nil, cur)
}
