package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/cellarkeeper/internal/dbx"
	"github.com/dmitrijs2005/cellarkeeper/internal/models"
	"github.com/dmitrijs2005/cellarkeeper/internal/store"
)

// Store is the Postgres store.Store. Every write runs in one transaction
// that locks the rows it reads.
type Store struct {
	db    *sql.DB
	repos RepositoryManager
	now   func() time.Time
	newID func() string
}

var _ store.Store = (*Store)(nil)

func NewStore(db *sql.DB, repos RepositoryManager) *Store {
	return &Store{db: db, repos: repos, now: time.Now, newID: uuid.NewString}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) CreateCabinet(ctx context.Context, c models.Cabinet) (models.Cabinet, error) {
	if err := c.Validate(); err != nil {
		return models.Cabinet{}, err
	}
	c.ID = s.newID()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Cabinets(tx)
		if c.ParentID != "" {
			if _, err := repo.Get(ctx, c.ParentID, false); err != nil {
				return fmt.Errorf("parent: %w", err)
			}
		}
		return repo.Insert(ctx, c)
	})
	if err != nil {
		return models.Cabinet{}, err
	}
	return c, nil
}

func (s *Store) UpdateCabinet(ctx context.Context, id string, p models.CabinetPatch) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Cabinets(tx)
		c, err := repo.Get(ctx, id, true)
		if err != nil {
			return err
		}
		updated, err := p.Apply(c)
		if err != nil {
			return err
		}
		return repo.Update(ctx, updated)
	})
}

func (s *Store) GetCabinet(ctx context.Context, id string) (models.Cabinet, error) {
	return s.repos.Cabinets(s.db).Get(ctx, id, false)
}

func (s *Store) ListCabinets(ctx context.Context, ownerID string) ([]models.Cabinet, error) {
	return s.repos.Cabinets(s.db).ListByOwner(ctx, ownerID)
}

func (s *Store) ListRoomRacks(ctx context.Context, roomID string) ([]models.Cabinet, error) {
	return s.repos.Cabinets(s.db).ListRacks(ctx, roomID)
}

// checkFits loads the bottle's cabinet and checks the location against its
// grid. Only stored bottles occupy a slot.
func (s *Store) checkFits(ctx context.Context, tx dbx.DBTX, b models.Bottle) error {
	if !b.IsStored() {
		return nil
	}
	c, err := s.repos.Cabinets(tx).Get(ctx, b.CabinetID, false)
	if err != nil {
		return err
	}
	return b.FitsIn(c.Dimensions)
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
	b.ID = s.newID()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.checkFits(ctx, tx, b); err != nil {
			return err
		}
		return s.repos.Bottles(tx).Insert(ctx, b)
	})
	if err != nil {
		return models.Bottle{}, err
	}
	return b, nil
}

func (s *Store) UpdateBottle(ctx context.Context, id string, p models.BottlePatch) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Bottles(tx)
		b, err := repo.Get(ctx, id, true)
		if err != nil {
			return err
		}
		updated, err := p.Apply(b)
		if err != nil {
			return err
		}
		if p.MovesSlot() {
			if err := s.checkFits(ctx, tx, updated); err != nil {
				return err
			}
		}
		return repo.Update(ctx, updated)
	})
}

func (s *Store) GetBottle(ctx context.Context, id string) (models.Bottle, error) {
	return s.repos.Bottles(s.db).Get(ctx, id, false)
}

func (s *Store) ListBottles(ctx context.Context, cabinetID string) ([]models.Bottle, error) {
	return s.repos.Bottles(s.db).ListStored(ctx, cabinetID)
}

func (s *Store) ListHistory(ctx context.Context, ownerID string) ([]models.Bottle, error) {
	return s.repos.Bottles(s.db).ListHistory(ctx, ownerID)
}
