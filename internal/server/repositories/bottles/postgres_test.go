package bottles

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/cellarkeeper/internal/common"
	"github.com/dmitrijs2005/cellarkeeper/internal/models"
)

var columns = []string{
	"id", "owner_id", "cabinet_id", "slot_row", "slot_col", "slot_depth", "details", "status",
	"barcode", "label_image_key", "added_at", "opened_at", "consumed_at", "rating", "notes", "peak_window",
}

var added = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

const detailsJSON = `{"name":"Barolo","winery":"Vietti","vintage":"2016","type":"Red"}`

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPostgresRepository(db), mock
}

func sample() models.Bottle {
	return models.Bottle{
		ID: "b1", OwnerID: "u1", CabinetID: "c1",
		Location: models.Location{Row: 1, Col: 2, DepthIndex: 0},
		Details:  models.Details{Name: "Barolo", Producer: "Vietti", Vintage: "2016", Type: models.WineTypeRed},
		Status:   models.StatusStored,
		AddedAt:  added,
	}
}

func TestInsert(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO bottles`).
		WithArgs("b1", "u1", "c1", 1, 2, 0, []byte(detailsJSON), "stored", "", "",
			added, nil, nil, nil, "", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Insert(context.Background(), sample()))
}

func TestInsert_SlotTaken(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO bottles`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "bottles_stored_slot_uq"})

	err := repo.Insert(context.Background(), sample())
	assert.ErrorIs(t, err, common.ErrLocationTaken)
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	consumed := added.Add(24 * time.Hour)
	rating := 9

	b := sample()
	b.Status = models.StatusConsumed
	b.ConsumedAt = &consumed
	b.Rating = &rating
	b.Notes = "tar and roses"

	mock.ExpectExec(`UPDATE bottles SET .* WHERE id = \$1`).
		WithArgs("b1", "c1", 1, 2, 0, []byte(detailsJSON), "consumed", "", "",
			nil, consumed, int32(9), "tar and roses", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(context.Background(), b))

	mock.ExpectExec(`UPDATE bottles`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Update(context.Background(), b), common.ErrNotFound)
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	opened := added.Add(time.Hour)

	mock.ExpectQuery(`SELECT .* FROM bottles WHERE id = \$1$`).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			"b1", "u1", "c1", 1, 2, 0, []byte(detailsJSON), "opened", "8001", "labels/x",
			added, opened, nil, nil, "", []byte(`{"start":2024,"end":2036}`)))

	b, err := repo.Get(context.Background(), "b1", false)
	require.NoError(t, err)

	want := sample()
	want.Status = models.StatusOpened
	want.Barcode = "8001"
	want.LabelImageKey = "labels/x"
	want.OpenedAt = &opened
	want.PeakWindow = &models.PeakWindow{Start: 2024, End: 2036}
	assert.Equal(t, want, b)
}

func TestGet_NotFoundAndLock(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`WHERE id = \$1 FOR UPDATE`).WithArgs("nope").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "nope", true)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListStored(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`WHERE cabinet_id = \$1 AND status = 'stored' ORDER BY created_at, id`).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			"b1", "u1", "c1", 1, 2, 0, []byte(detailsJSON), "stored", "", "",
			added, nil, nil, nil, "", nil))

	list, err := repo.ListStored(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, []models.Bottle{sample()}, list)
}

func TestListHistory(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	consumed := added.Add(time.Hour)

	mock.ExpectQuery(`WHERE owner_id = \$1 AND status IN \('opened', 'consumed'\)`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			"b1", "u1", "c1", 1, 2, 0, []byte(detailsJSON), "consumed", "", "",
			added, nil, consumed, int64(7), "nice", nil))

	list, err := repo.ListHistory(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Rating)
	assert.Equal(t, 7, *list[0].Rating)
	assert.Equal(t, "nice", list[0].Notes)
}

func TestList_BadDetails(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM bottles`).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			"b1", "u1", "c1", 0, 0, 0, []byte(`{`), "stored", "", "",
			added, nil, nil, nil, "", nil))

	_, err := repo.ListStored(context.Background(), "c1")
	assert.Error(t, err)
}

func TestList_QueryError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM bottles`).WillReturnError(errors.New("boom"))

	_, err := repo.ListHistory(context.Background(), "u1")
	assert.Error(t, err)
}
