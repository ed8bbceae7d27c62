package cabinets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cellarkeeper/internal/common"
	"github.com/dmitrijs2005/cellarkeeper/internal/dbx"
	"github.com/dmitrijs2005/cellarkeeper/internal/models"
	"github.com/dmitrijs2005/cellarkeeper/internal/server/repositories/pgerr"
)

const selectColumns = `SELECT id, owner_id, parent_id, name, type, grid_rows, grid_cols, grid_depth, room_layout, zone FROM cabinets`

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func encodeJSON(c models.Cabinet) (layout, zone any, err error) {
	if layout, err = dbx.NullJSON(c.RoomLayout); err != nil {
		return nil, nil, err
	}
	if zone, err = dbx.NullJSON(c.Zone); err != nil {
		return nil, nil, err
	}
	return layout, zone, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, c models.Cabinet) error {
	layout, zone, err := encodeJSON(c)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO cabinets (id, owner_id, parent_id, name, type, grid_rows, grid_cols, grid_depth, room_layout, zone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = r.db.ExecContext(ctx, query,
		c.ID, c.OwnerID, nullString(c.ParentID), c.Name, string(c.Type),
		c.Dimensions.Rows, c.Dimensions.Columns, c.Dimensions.Depth, layout, zone)
	return pgerr.Map(err)
}

func (r *PostgresRepository) Update(ctx context.Context, c models.Cabinet) error {
	layout, zone, err := encodeJSON(c)
	if err != nil {
		return err
	}
	query := `
		UPDATE cabinets SET parent_id = $2, name = $3, type = $4,
			grid_rows = $5, grid_cols = $6, grid_depth = $7, room_layout = $8, zone = $9
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		c.ID, nullString(c.ParentID), c.Name, string(c.Type),
		c.Dimensions.Rows, c.Dimensions.Columns, c.Dimensions.Depth, layout, zone)
	if err != nil {
		return pgerr.Map(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("cabinet %s: %w", c.ID, common.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCabinet(s scanner) (models.Cabinet, error) {
	var (
		c            models.Cabinet
		parent       sql.NullString
		kind         string
		layout, zone []byte
	)
	if err := s.Scan(&c.ID, &c.OwnerID, &parent, &c.Name, &kind,
		&c.Dimensions.Rows, &c.Dimensions.Columns, &c.Dimensions.Depth, &layout, &zone); err != nil {
		return models.Cabinet{}, err
	}
	c.ParentID = parent.String
	c.Type = models.CabinetType(kind)

	var err error
	if c.RoomLayout, err = dbx.ScanNullJSON[models.RoomLayout](layout); err != nil {
		return models.Cabinet{}, err
	}
	if c.Zone, err = dbx.ScanNullJSON[models.Zone](zone); err != nil {
		return models.Cabinet{}, err
	}
	return c, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string, forUpdate bool) (models.Cabinet, error) {
	query := selectColumns + ` WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	c, err := scanCabinet(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Cabinet{}, fmt.Errorf("cabinet %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return models.Cabinet{}, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]models.Cabinet, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select cabinets: %w", err)
	}
	defer rows.Close()

	result := make([]models.Cabinet, 0)
	for rows.Next() {
		c, err := scanCabinet(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Cabinet, error) {
	return r.list(ctx, selectColumns+` WHERE owner_id = $1 ORDER BY created_at, id`, ownerID)
}

func (r *PostgresRepository) ListRacks(ctx context.Context, roomID string) ([]models.Cabinet, error) {
	return r.list(ctx, selectColumns+` WHERE parent_id = $1 AND type = 'rack' ORDER BY created_at, id`, roomID)
}
