package bottles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cellarkeeper/internal/common"
	"github.com/dmitrijs2005/cellarkeeper/internal/dbx"
	"github.com/dmitrijs2005/cellarkeeper/internal/models"
	"github.com/dmitrijs2005/cellarkeeper/internal/server/repositories/pgerr"
)

const selectColumns = `SELECT id, owner_id, cabinet_id, slot_row, slot_col, slot_depth, details, status,
	barcode, label_image_key, added_at, opened_at, consumed_at, rating, notes, peak_window FROM bottles`

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// args returns the column values of b in selectColumns order.
func args(b models.Bottle) ([]any, error) {
	details, err := json.Marshal(b.Details)
	if err != nil {
		return nil, fmt.Errorf("encode details: %w", err)
	}
	window, err := dbx.NullJSON(b.PeakWindow)
	if err != nil {
		return nil, err
	}
	var opened, consumed sql.NullTime
	if b.OpenedAt != nil {
		opened = sql.NullTime{Time: *b.OpenedAt, Valid: true}
	}
	if b.ConsumedAt != nil {
		consumed = sql.NullTime{Time: *b.ConsumedAt, Valid: true}
	}
	var rating sql.NullInt32
	if b.Rating != nil {
		rating = sql.NullInt32{Int32: int32(*b.Rating), Valid: true}
	}
	return []any{
		b.ID, b.OwnerID, b.CabinetID,
		b.Location.Row, b.Location.Col, b.Location.DepthIndex,
		details, string(b.Status), b.Barcode, b.LabelImageKey,
		b.AddedAt, opened, consumed, rating, b.Notes, window,
	}, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, b models.Bottle) error {
	values, err := args(b)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO bottles (id, owner_id, cabinet_id, slot_row, slot_col, slot_depth, details, status,
			barcode, label_image_key, added_at, opened_at, consumed_at, rating, notes, peak_window)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err = r.db.ExecContext(ctx, query, values...)
	return pgerr.Map(err)
}

// Update rewrites every mutable column of b. owner_id and added_at never change.
func (r *PostgresRepository) Update(ctx context.Context, b models.Bottle) error {
	values, err := args(b)
	if err != nil {
		return err
	}
	mutable := append([]any{values[0]}, values[2:10]...)
	mutable = append(mutable, values[11:]...)
	query := `
		UPDATE bottles SET cabinet_id = $2, slot_row = $3, slot_col = $4, slot_depth = $5,
			details = $6, status = $7, barcode = $8, label_image_key = $9,
			opened_at = $10, consumed_at = $11, rating = $12, notes = $13, peak_window = $14
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, mutable...)
	if err != nil {
		return pgerr.Map(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("bottle %s: %w", b.ID, common.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBottle(s scanner) (models.Bottle, error) {
	var (
		b                models.Bottle
		details, window  []byte
		status           string
		opened, consumed sql.NullTime
		rating           sql.NullInt32
	)
	if err := s.Scan(&b.ID, &b.OwnerID, &b.CabinetID,
		&b.Location.Row, &b.Location.Col, &b.Location.DepthIndex,
		&details, &status, &b.Barcode, &b.LabelImageKey,
		&b.AddedAt, &opened, &consumed, &rating, &b.Notes, &window); err != nil {
		return models.Bottle{}, err
	}

	if err := json.Unmarshal(details, &b.Details); err != nil {
		return models.Bottle{}, fmt.Errorf("decode details: %w", err)
	}
	b.Status = models.Status(status)
	b.AddedAt = b.AddedAt.UTC()
	if opened.Valid {
		t := opened.Time.UTC()
		b.OpenedAt = &t
	}
	if consumed.Valid {
		t := consumed.Time.UTC()
		b.ConsumedAt = &t
	}
	if rating.Valid {
		v := int(rating.Int32)
		b.Rating = &v
	}
	var err error
	if b.PeakWindow, err = dbx.ScanNullJSON[models.PeakWindow](window); err != nil {
		return models.Bottle{}, err
	}
	return b, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string, forUpdate bool) (models.Bottle, error) {
	query := selectColumns + ` WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	b, err := scanBottle(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Bottle{}, fmt.Errorf("bottle %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return models.Bottle{}, fmt.Errorf("db error: %w", err)
	}
	return b, nil
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]models.Bottle, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select bottles: %w", err)
	}
	defer rows.Close()

	result := make([]models.Bottle, 0)
	for rows.Next() {
		b, err := scanBottle(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) ListStored(ctx context.Context, cabinetID string) ([]models.Bottle, error) {
	return r.list(ctx, selectColumns+` WHERE cabinet_id = $1 AND status = 'stored' ORDER BY created_at, id`, cabinetID)
}

func (r *PostgresRepository) ListHistory(ctx context.Context, ownerID string) ([]models.Bottle, error) {
	return r.list(ctx, selectColumns+` WHERE owner_id = $1 AND status IN ('opened', 'consumed') ORDER BY created_at, id`, ownerID)
}
