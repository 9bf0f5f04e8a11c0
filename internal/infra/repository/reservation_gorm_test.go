package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/thefaderoom/faderoom-api/internal/db"
	domain "github.com/thefaderoom/faderoom-api/internal/domain/reservation"
	"github.com/thefaderoom/faderoom-api/internal/httperr"
	"github.com/thefaderoom/faderoom-api/internal/models"
)

func newTestRepo(t *testing.T) (*ReservationGormRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A second pooled connection would get its own empty in-memory db.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	return NewReservationGormRepository(db), db
}

func pending(date, clock string) *models.Reservation {
	return &models.Reservation{
		ReservationDate: date,
		ReservationTime: clock,
		Status:          string(domain.StatusPending),
	}
}

func TestCreateReservationConflict(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateReservation(ctx, pending("2026-09-01", "10:00:00")))

	err := repo.CreateReservation(ctx, pending("2026-09-01", "10:00:00"))
	require.Error(t, err)

	code, ok := httperr.AsBusiness(err)
	assert.True(t, ok)
	assert.Equal(t, "time_conflict", code)

	// A different slot on the same day is fine.
	assert.NoError(t, repo.CreateReservation(ctx, pending("2026-09-01", "10:30:00")))
}

func TestCancelledSlotIsReusable(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	first := pending("2026-09-01", "10:00:00")
	require.NoError(t, repo.CreateReservation(ctx, first))

	first.Status = string(domain.StatusCancelled)
	require.NoError(t, db.Save(first).Error)

	// The slot frees up once its holder is cancelled.
	assert.NoError(t, repo.CreateReservation(ctx, pending("2026-09-01", "10:00:00")))
}

func TestListOccupiedTimes(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	rows := []*models.Reservation{
		{ReservationDate: "2026-09-01", ReservationTime: "11:00:00", Status: "confirmed"},
		{ReservationDate: "2026-09-01", ReservationTime: "09:00:00", Status: "pending"},
		{ReservationDate: "2026-09-01", ReservationTime: "10:00:00", Status: "cancelled"},
		{ReservationDate: "2026-09-02", ReservationTime: "09:30:00", Status: "pending"},
	}
	for _, r := range rows {
		require.NoError(t, db.Create(r).Error)
	}

	times, err := repo.ListOccupiedTimes(ctx, "2026-09-01", domain.OccupyingStatuses())
	require.NoError(t, err)

	// Cancelled rows and other dates do not block; output is ordered.
	assert.Equal(t, []string{"09:00:00", "11:00:00"}, times)
}

func TestGetWorkingHoursMissingRow(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	wh, err := repo.GetWorkingHours(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, wh)

	require.NoError(t, db.Create(&models.WorkingHours{
		DayOfWeek: 3,
		StartTime: "09:00:00",
		EndTime:   "20:00:00",
	}).Error)

	wh, err = repo.GetWorkingHours(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, wh)
	assert.Equal(t, "09:00:00", wh.StartTime)
}

func TestGetReservationMissing(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	res, err := repo.GetReservation(ctx, 12345)
	require.NoError(t, err)
	assert.Nil(t, res)

	row := pending("2026-09-01", "10:00:00")
	require.NoError(t, db.Create(row).Error)

	res, err = repo.GetReservation(ctx, row.ID)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "10:00:00", res.ReservationTime)
}

func TestListReservationsOrdering(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	rows := []*models.Reservation{
		{ReservationDate: "2026-09-02", ReservationTime: "09:00:00", Status: "pending"},
		{ReservationDate: "2026-09-01", ReservationTime: "12:00:00", Status: "pending"},
		{ReservationDate: "2026-09-01", ReservationTime: "09:30:00", Status: "confirmed"},
	}
	for _, r := range rows {
		require.NoError(t, db.Create(r).Error)
	}

	out, err := repo.ListReservations(ctx)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "2026-09-01", out[0].ReservationDate)
	assert.Equal(t, "09:30:00", out[0].ReservationTime)
	assert.Equal(t, "12:00:00", out[1].ReservationTime)
	assert.Equal(t, "2026-09-02", out[2].ReservationDate)
}

func TestListCompleted(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	price := 30.0
	rows := []*models.Reservation{
		{ReservationDate: "2026-09-01", ReservationTime: "09:00:00", Status: "completed", ServicePrice: &price},
		{ReservationDate: "2026-09-01", ReservationTime: "10:00:00", Status: "pending"},
		{ReservationDate: "2026-08-15", ReservationTime: "09:00:00", Status: "completed"},
	}
	for _, r := range rows {
		require.NoError(t, db.Create(r).Error)
	}

	out, err := repo.ListCompleted(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "2026-08-15", out[0].ReservationDate)
	require.NotNil(t, out[1].ServicePrice)
	assert.Equal(t, 30.0, *out[1].ServicePrice)
}
