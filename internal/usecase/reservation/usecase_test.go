package reservation

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/thefaderoom/faderoom-api/internal/audit"
	domain "github.com/thefaderoom/faderoom-api/internal/domain/reservation"
	"github.com/thefaderoom/faderoom-api/internal/models"
	"github.com/thefaderoom/faderoom-api/internal/realtime"
)

// mockRepo implements domain.Repository for use case tests.
type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetWorkingHours(ctx context.Context, dayOfWeek int) (*models.WorkingHours, error) {
	args := m.Called(ctx, dayOfWeek)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WorkingHours), args.Error(1)
}

func (m *mockRepo) ListOccupiedTimes(ctx context.Context, date string, statuses []domain.Status) ([]string, error) {
	args := m.Called(ctx, date, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockRepo) CreateReservation(ctx context.Context, res *models.Reservation) error {
	return m.Called(ctx, res).Error(0)
}

func (m *mockRepo) GetReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *mockRepo) UpdateReservation(ctx context.Context, res *models.Reservation) error {
	return m.Called(ctx, res).Error(0)
}

func (m *mockRepo) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *mockRepo) ListReservationsForUser(ctx context.Context, userID uint) ([]models.Reservation, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *mockRepo) ListCompleted(ctx context.Context) ([]models.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Reservation), args.Error(1)
}

var _ domain.Repository = (*mockRepo)(nil)

// newSideEffects builds a working audit dispatcher and change broker so
// use cases run against the real thing instead of stubs.
func newSideEffects(t *testing.T) (*audit.Dispatcher, *realtime.Broker) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.AuditLog{}))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return audit.NewDispatcher(audit.New(db)), realtime.NewBroker(rdb)
}
