package cellar

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dmitrijs2005/cellarkeeper/internal/client/cache"
	"github.com/dmitrijs2005/cellarkeeper/internal/client/connectivity"
	"github.com/dmitrijs2005/cellarkeeper/internal/client/queue"
	"github.com/dmitrijs2005/cellarkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/cellarkeeper/internal/common"
	"github.com/dmitrijs2005/cellarkeeper/internal/models"
	"github.com/dmitrijs2005/cellarkeeper/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const owner = "u1"

// flakyStore wraps the in-memory store and fails every call with err while
// err is set.
type flakyStore struct {
	*memory.Store
	mu  sync.Mutex
	err error
}

func (f *flakyStore) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *flakyStore) check() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *flakyStore) CreateCabinet(ctx context.Context, c models.Cabinet) (models.Cabinet, error) {
	if err := f.check(); err != nil {
		return models.Cabinet{}, err
	}
	return f.Store.CreateCabinet(ctx, c)
}

func (f *flakyStore) ListCabinets(ctx context.Context, ownerID string) ([]models.Cabinet, error) {
	if err := f.check(); err != nil {
		return nil, err
	}
	return f.Store.ListCabinets(ctx, ownerID)
}

func (f *flakyStore) GetCabinet(ctx context.Context, id string) (models.Cabinet, error) {
	if err := f.check(); err != nil {
		return models.Cabinet{}, err
	}
	return f.Store.GetCabinet(ctx, id)
}

func (f *flakyStore) CreateBottle(ctx context.Context, b models.Bottle) (models.Bottle, error) {
	if err := f.check(); err != nil {
		return models.Bottle{}, err
	}
	return f.Store.CreateBottle(ctx, b)
}

func (f *flakyStore) UpdateBottle(ctx context.Context, id string, p models.BottlePatch) error {
	if err := f.check(); err != nil {
		return err
	}
	return f.Store.UpdateBottle(ctx, id, p)
}

type fixture struct {
	remote   *flakyStore
	online   *connectivity.Switch
	queue    *queue.Queue
	cache    *cache.Store
	cabinets *CabinetRepository
	bottles  *BottleRepository
}

func newFixture(t *testing.T, online bool) *fixture {
	t.Helper()
	mem := kv.NewMemoryStore()
	f := &fixture{
		remote: &flakyStore{Store: memory.New()},
		online: connectivity.NewSwitch(online),
		queue:  queue.New(mem),
		cache:  cache.New(mem),
	}
	opts := Options{Cache: f.cache, Queue: f.queue, Online: f.online}
	f.cabinets = NewCabinetRepository(f.remote, opts)
	f.bottles = NewBottleRepository(f.remote, nil, opts)
	return f
}

func (f *fixture) pending(t *testing.T) []queue.Operation {
	t.Helper()
	ops, err := f.queue.AllPending(context.Background())
	require.NoError(t, err)
	return ops
}

// remoteCabinet creates a cabinet straight on the remote, bypassing the cache.
func (f *fixture) remoteCabinet(t *testing.T) models.Cabinet {
	t.Helper()
	c := sampleCabinet()
	c.OwnerID = owner
	c, err := f.remote.Store.CreateCabinet(context.Background(), c)
	require.NoError(t, err)
	return c
}

func sampleCabinet() models.Cabinet {
	return models.Cabinet{
		Name:       "Kitchen",
		Type:       models.CabinetTypeCabinet,
		Dimensions: models.Dimensions{Rows: 4, Columns: 6, Depth: 2},
	}
}

func sampleBottle(cabinetID string, loc models.Location) models.Bottle {
	return models.Bottle{
		CabinetID: cabinetID,
		Location:  loc,
		Details:   models.Details{Name: "Barolo", Producer: "Vietti", Vintage: "2016", Type: models.WineTypeRed},
	}
}

func TestCabinetAdd_OnlineUsesRemoteID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	c, err := f.cabinets.Add(ctx, owner, sampleCabinet())
	require.NoError(t, err)
	assert.False(t, models.IsLocalID(c.ID))
	assert.Empty(t, f.pending(t))

	cached, err := f.cache.Cabinets(ctx, owner)
	require.NoError(t, err)
	require.Len(t, cached, 1)
	assert.Equal(t, c.ID, cached[0].ID)
}

func TestCabinetAdd_OfflineQueuesWithLocalID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	c, err := f.cabinets.Add(ctx, owner, sampleCabinet())
	require.NoError(t, err)
	assert.True(t, models.IsLocalID(c.ID))

	list, err := f.cabinets.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)

	ops := f.pending(t)
	require.Len(t, ops, 1)
	assert.Equal(t, queue.KindAdd, ops[0].Mutation.Kind())
	assert.Equal(t, queue.CollectionCabinets, ops[0].Mutation.Collection())
	assert.Equal(t, c.ID, ops[0].Mutation.Target())

	got, err := f.cabinets.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kitchen", got.Name)
}

func TestCabinetAdd_TransientErrorFallsBack(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	f.remote.fail(errors.New("connection reset"))

	c, err := f.cabinets.Add(ctx, owner, sampleCabinet())
	require.NoError(t, err)
	assert.True(t, models.IsLocalID(c.ID))
	assert.Len(t, f.pending(t), 1)
}

func TestCabinetAdd_ValidationIsNotQueued(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	bad := sampleCabinet()
	bad.Dimensions.Rows = 0
	_, err := f.cabinets.Add(ctx, owner, bad)
	require.ErrorIs(t, err, common.ErrInvalidArgument)
	assert.Empty(t, f.pending(t))

	f.online.Set(true)
	f.remote.fail(common.ErrInvalidArgument)
	_, err = f.cabinets.Add(ctx, owner, sampleCabinet())
	require.ErrorIs(t, err, common.ErrInvalidArgument)
	assert.Empty(t, f.pending(t))
}

func TestCabinetList_OnlineKeepsPendingEntries(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	local, err := f.cabinets.Add(ctx, owner, sampleCabinet())
	require.NoError(t, err)

	f.online.Set(true)
	remote, err := f.cabinets.Add(ctx, owner, models.Cabinet{
		Name: "Cellar", Type: models.CabinetTypeRoom, Dimensions: models.Dimensions{Rows: 1, Columns: 1, Depth: 1},
	})
	require.NoError(t, err)

	list, err := f.cabinets.List(ctx, owner)
	require.NoError(t, err)
	ids := []string{}
	for _, c := range list {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []string{local.ID, remote.ID}, ids)
}

func TestCabinetList_RemoteFailureServesCache(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	c, err := f.cabinets.Add(ctx, owner, sampleCabinet())
	require.NoError(t, err)

	f.remote.fail(errors.New("timeout"))
	list, err := f.cabinets.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)
}

func TestCabinetGetByID_RemoteNotFoundPropagates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	_, err := f.cabinets.GetByID(ctx, "missing")
	require.ErrorIs(t, err, common.ErrNotFound)

	f.online.Set(false)
	_, err = f.cabinets.GetByID(ctx, "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestCabinetUpdate_OfflineAppliesOptimistically(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)

	c, err := f.cabinets.Add(ctx, owner, sampleCabinet())
	require.NoError(t, err)

	f.online.Set(false)
	name := "Pantry"
	require.NoError(t, f.cabinets.Update(ctx, c.ID, models.CabinetPatch{Name: &name}))

	got, err := f.cabinets.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pantry", got.Name)

	list, err := f.cabinets.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Pantry", list[0].Name)

	ops := f.pending(t)
	require.Len(t, ops, 1)
	assert.Equal(t, queue.UpdateCabinet{ID: c.ID, Patch: models.CabinetPatch{Name: &name}}, ops[0].Mutation)
}

func TestCabinetRacks_FollowParent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	room, err := f.cabinets.Add(ctx, owner, models.Cabinet{
		Name: "Cellar", Type: models.CabinetTypeRoom, Dimensions: models.Dimensions{Rows: 1, Columns: 1, Depth: 1},
	})
	require.NoError(t, err)
	rack, err := f.cabinets.Add(ctx, owner, models.Cabinet{
		Name: "North wall", Type: models.CabinetTypeRack, ParentID: room.ID,
		Dimensions: models.Dimensions{Rows: 10, Columns: 8, Depth: 1},
	})
	require.NoError(t, err)

	racks, err := f.cabinets.Racks(ctx, room.ID)
	require.NoError(t, err)
	require.Len(t, racks, 1)
	assert.Equal(t, rack.ID, racks[0].ID)
}

func TestCabinetReplayAdd_RekeysCachedReferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	c, err := f.cabinets.Add(ctx, owner, sampleCabinet())
	require.NoError(t, err)
	b, err := f.bottles.Add(ctx, owner, sampleBottle(c.ID, models.Location{Row: 0, Col: 0}))
	require.NoError(t, err)

	created, err := f.cabinets.ReplayAdd(ctx, c)
	require.NoError(t, err)
	require.False(t, models.IsLocalID(created.ID))

	_, ok, err := f.cache.Cabinet(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, ok, "local id is gone")

	got, ok, err := f.cache.Cabinet(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Kitchen", got.Name)

	list, err := f.cache.Cabinets(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	bottles, err := f.cache.Bottles(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, bottles, 1)
	assert.Equal(t, b.ID, bottles[0].ID)
	assert.Equal(t, created.ID, bottles[0].CabinetID)

	old, err := f.cache.Bottles(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, old)
}

func TestBottleAdd_OfflineAppearsInList(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	b, err := f.bottles.Add(ctx, owner, sampleBottle("cab-1", models.Location{Row: 1, Col: 2}))
	require.NoError(t, err)
	assert.True(t, models.IsLocalID(b.ID))
	assert.Equal(t, models.StatusStored, b.Status)
	assert.False(t, b.AddedAt.IsZero())

	list, err := f.bottles.List(ctx, "cab-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	ops := f.pending(t)
	require.Len(t, ops, 1)
	assert.Equal(t, queue.CollectionBottles, ops[0].Mutation.Collection())
}

func TestBottleAdd_RejectsNonStoredStatus(t *testing.T) {
	f := newFixture(t, false)

	b := sampleBottle("cab-1", models.Location{})
	b.Status = models.StatusConsumed
	_, err := f.bottles.Add(context.Background(), owner, b)
	require.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestBottleAdd_LocationUniqueness(t *testing.T) {
	ctx := context.Background()

	for _, online := range []bool{true, false} {
		f := newFixture(t, online)
		c, err := f.cabinets.Add(ctx, owner, sampleCabinet())
		require.NoError(t, err)

		loc := models.Location{Row: 1, Col: 2}
		_, err = f.bottles.Add(ctx, owner, sampleBottle(c.ID, loc))
		require.NoError(t, err)

		_, err = f.bottles.Add(ctx, owner, sampleBottle(c.ID, loc))
		require.ErrorIs(t, err, common.ErrLocationTaken, "online=%v", online)

		_, err = f.bottles.Add(ctx, owner, sampleBottle(c.ID, models.Location{Row: 1, Col: 2, DepthIndex: 1}))
		require.NoError(t, err, "different depth is a different slot")
	}
}

func TestBottleAdd_OutsideCabinetGrid(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	c, err := f.cabinets.Add(ctx, owner, sampleCabinet())
	require.NoError(t, err)

	_, err = f.bottles.Add(ctx, owner, sampleBottle(c.ID, models.Location{Row: 4}))
	require.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestBottleConsume_MovesToHistoryAndFreesSlot(t *testing.T) {
	ctx := context.Background()

	for _, online := range []bool{true, false} {
		f := newFixture(t, true)
		c, err := f.cabinets.Add(ctx, owner, sampleCabinet())
		require.NoError(t, err)
		loc := models.Location{Row: 0, Col: 3}
		b, err := f.bottles.Add(ctx, owner, sampleBottle(c.ID, loc))
		require.NoError(t, err)

		f.online.Set(online)
		rating := 9
		require.NoError(t, f.bottles.Consume(ctx, b.ID, &rating, "silky"))

		stored, err := f.bottles.List(ctx, c.ID)
		require.NoError(t, err)
		assert.Empty(t, stored, "online=%v", online)

		history, err := f.bottles.History(ctx, owner)
		require.NoError(t, err)
		require.Len(t, history, 1, "online=%v", online)
		assert.Equal(t, models.StatusConsumed, history[0].Status)
		require.NotNil(t, history[0].Rating)
		assert.Equal(t, 9, *history[0].Rating)
		assert.NotNil(t, history[0].ConsumedAt)

		_, err = f.bottles.Add(ctx, owner, sampleBottle(c.ID, loc))
		require.NoError(t, err, "slot is free again")
	}
}

func TestBottleConsume_IsIrreversible(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	b, err := f.bottles.Add(ctx, owner, sampleBottle("cab-1", models.Location{}))
	require.NoError(t, err)
	require.NoError(t, f.bottles.Open(ctx, b.ID))

	require.ErrorIs(t, f.bottles.Consume(ctx, b.ID, nil, ""), common.ErrInvalidTransition)

	stored := models.StatusStored
	err = f.bottles.Update(ctx, b.ID, models.BottlePatch{Status: &stored})
	require.ErrorIs(t, err, common.ErrInvalidTransition)

	ops := f.pending(t)
	assert.Len(t, ops, 2, "rejected transitions are not queued")
}

func TestBottleConsume_RatingOutOfRange(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	c := f.remoteCabinet(t)

	b, err := f.bottles.Add(ctx, owner, sampleBottle(c.ID, models.Location{}))
	require.NoError(t, err)

	rating := 11
	require.ErrorIs(t, f.bottles.Consume(ctx, b.ID, &rating, ""), common.ErrInvalidArgument)

	got, err := f.bottles.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusStored, got.Status)
}

func TestBottleUpdate_TransientErrorQueues(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, true)
	c := f.remoteCabinet(t)

	b, err := f.bottles.Add(ctx, owner, sampleBottle(c.ID, models.Location{}))
	require.NoError(t, err)

	f.remote.fail(errors.New("503"))
	notes := "decant an hour"
	require.NoError(t, f.bottles.Update(ctx, b.ID, models.BottlePatch{Notes: &notes}))

	ops := f.pending(t)
	require.Len(t, ops, 1)
	assert.Equal(t, b.ID, ops[0].Mutation.Target())

	f.remote.fail(nil)
	f.online.Set(false)
	got, err := f.bottles.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, notes, got.Notes)
}

func TestBottleUpdate_MoveToTakenSlot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	_, err := f.bottles.Add(ctx, owner, sampleBottle("cab-1", models.Location{Row: 0}))
	require.NoError(t, err)
	b, err := f.bottles.Add(ctx, owner, sampleBottle("cab-1", models.Location{Row: 1}))
	require.NoError(t, err)

	taken := models.Location{Row: 0}
	err = f.bottles.Update(ctx, b.ID, models.BottlePatch{Location: &taken})
	require.ErrorIs(t, err, common.ErrLocationTaken)
}

func TestBottleReplayAdd_Rekeys(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	c := f.remoteCabinet(t)

	b, err := f.bottles.Add(ctx, owner, sampleBottle(c.ID, models.Location{}))
	require.NoError(t, err)

	created, err := f.bottles.ReplayAdd(ctx, b)
	require.NoError(t, err)
	assert.NotEqual(t, b.ID, created.ID)

	list, err := f.cache.Bottles(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	_, ok, err := f.cache.Bottle(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBottleReplayAdd_LocalIDResolvesAfterSync(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)
	c := f.remoteCabinet(t)

	b, err := f.bottles.Add(ctx, owner, sampleBottle(c.ID, models.Location{}))
	require.NoError(t, err)
	created, err := f.bottles.ReplayAdd(ctx, b)
	require.NoError(t, err)
	require.NoError(t, f.queue.Clear(ctx))

	f.online.Set(true)
	got, err := f.bottles.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	require.NoError(t, f.bottles.Consume(ctx, b.ID, nil, ""))
	assert.Empty(t, f.pending(t), "nothing queued for the stale id")

	remote, err := f.remote.GetBottle(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConsumed, remote.Status)

	f.online.Set(false)
	require.ErrorIs(t, f.bottles.Open(ctx, b.ID), common.ErrInvalidTransition)
	assert.Empty(t, f.pending(t))
}

func TestBottleUpdate_UnknownLocalID(t *testing.T) {
	ctx := context.Background()

	for _, online := range []bool{true, false} {
		f := newFixture(t, online)
		err := f.bottles.Consume(ctx, models.NewLocalID(), nil, "")
		require.ErrorIs(t, err, common.ErrNotFound, "online=%v", online)
		assert.Empty(t, f.pending(t))
	}
}

func TestCabinetReplayAdd_LocalIDResolvesAfterSync(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false)

	local, err := f.cabinets.Add(ctx, owner, models.Cabinet{
		Name: "Cellar", Type: models.CabinetTypeRoom, Dimensions: models.Dimensions{Rows: 1, Columns: 1, Depth: 1},
	})
	require.NoError(t, err)
	created, err := f.cabinets.ReplayAdd(ctx, local)
	require.NoError(t, err)
	require.NoError(t, f.queue.Clear(ctx))

	f.online.Set(true)
	name := "Cave"
	require.NoError(t, f.cabinets.Update(ctx, local.ID, models.CabinetPatch{Name: &name}))
	assert.Empty(t, f.pending(t))

	got, err := f.cabinets.GetByID(ctx, local.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Cave", got.Name)

	rack := sampleCabinet()
	rack.Type = models.CabinetTypeRack
	rack.ParentID = local.ID
	r, err := f.cabinets.Add(ctx, owner, rack)
	require.NoError(t, err)
	assert.Equal(t, created.ID, r.ParentID)
	assert.False(t, models.IsLocalID(r.ID), "parent resolved so the rack went online")

	racks, err := f.cabinets.Racks(ctx, local.ID)
	require.NoError(t, err)
	require.Len(t, racks, 1)
	assert.Equal(t, r.ID, racks[0].ID)

	err = f.cabinets.Update(ctx, models.NewLocalID(), models.CabinetPatch{Name: &name})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestBottleAddMany_PartialFailure(t *testing.T) {
	ctx := context.Background()

	for _, online := range []bool{true, false} {
		f := newFixture(t, online)
		c, err := f.cabinets.Add(ctx, owner, sampleCabinet())
		require.NoError(t, err)
		_, err = f.bottles.Add(ctx, owner, sampleBottle(c.ID, models.Location{Row: 0, Col: 1}))
		require.NoError(t, err)

		locations := []models.Location{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 9, Col: 0}}
		res, err := f.bottles.AddMany(ctx, owner, sampleBottle(c.ID, models.Location{}), locations)
		require.NoError(t, err)

		assert.Equal(t, 2, res.Succeeded, "online=%v", online)
		assert.Equal(t, 2, res.Failed, "online=%v", online)
		require.Len(t, res.Errors, 2)
		assert.ErrorIs(t, res.Errors[1], common.ErrLocationTaken)
		assert.ErrorIs(t, res.Errors[3], common.ErrInvalidArgument)
		require.Len(t, res.Added, 2)
		assert.Equal(t, locations[0], res.Added[0].Location)
		assert.Equal(t, locations[2], res.Added[1].Location)
		for _, b := range res.Added {
			assert.Equal(t, models.IsLocalID(b.ID), !online)
			assert.Equal(t, "Barolo", b.Details.Name)
		}

		stored, err := f.bottles.List(ctx, c.ID)
		require.NoError(t, err)
		assert.Len(t, stored, 3, "online=%v", online)
	}
}

func TestBottleAddMany_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := newFixture(t, false)

	res, err := f.bottles.AddMany(ctx, owner, sampleBottle("cab-1", models.Location{}), []models.Location{{}, {Row: 1}})
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Succeeded)
	assert.Empty(t, f.pending(t))
}

type fakeSigner struct {
	url string
}

func (s fakeSigner) LabelUploadURL(ctx context.Context, bottleID string) (string, string, error) {
	return "labels/" + bottleID + ".jpg", s.url, nil
}

func TestAttachLabel(t *testing.T) {
	ctx := context.Background()

	var uploaded []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uploaded, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := newFixture(t, true)
	c := f.remoteCabinet(t)
	f.bottles.labels = fakeSigner{url: srv.URL}
	f.bottles.http = srv.Client()

	b, err := f.bottles.Add(ctx, owner, sampleBottle(c.ID, models.Location{}))
	require.NoError(t, err)

	key, err := f.bottles.AttachLabel(ctx, b.ID, "image/jpeg", []byte("jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "labels/"+b.ID+".jpg", key)
	assert.Equal(t, []byte("jpeg"), uploaded)

	got, err := f.remote.GetBottle(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, key, got.LabelImageKey)

	f.online.Set(false)
	_, err = f.bottles.AttachLabel(ctx, b.ID, "image/jpeg", []byte("jpeg"))
	require.ErrorIs(t, err, common.ErrUnavailable)
}
