package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/thefaderoom/faderoom-api/internal/domain/reservation"
	"github.com/thefaderoom/faderoom-api/internal/httperr"
	"github.com/thefaderoom/faderoom-api/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *ReservationGormRepository) GetWorkingHours(
	ctx context.Context,
	dayOfWeek int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	err := r.db.WithContext(ctx).
		Where("day_of_week = ?", dayOfWeek).
		First(&wh).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &wh, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *ReservationGormRepository) ListOccupiedTimes(
	ctx context.Context,
	date string,
	statuses []domain.Status,
) ([]string, error) {

	set := make([]string, 0, len(statuses))
	for _, s := range statuses {
		set = append(set, string(s))
	}

	var times []string
	err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("reservation_date = ? AND status IN ?", date, set).
		Order("reservation_time ASC").
		Pluck("reservation_time", &times).Error

	if err != nil {
		return nil, err
	}

	return times, nil
}

// --------------------------------------------------
// Reservation (create / conflict)
// --------------------------------------------------

// CreateReservation is the conditional write: the transaction re-checks
// the slot, and the partial unique index on non-cancelled rows closes
// the race two concurrent submissions would otherwise win together.
func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Reservation{}).
			Where(
				"reservation_date = ? AND reservation_time = ? AND status <> ?",
				res.ReservationDate,
				res.ReservationTime,
				string(domain.StatusCancelled),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		if err := tx.Create(res).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness("time_conflict")
			}
			return err
		}

		return nil
	})
}

// --------------------------------------------------
// Reservation (state change)
// --------------------------------------------------

func (r *ReservationGormRepository) GetReservation(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	err := r.db.WithContext(ctx).First(&res, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *ReservationGormRepository) ListReservations(
	ctx context.Context,
) ([]models.Reservation, error) {

	var out []models.Reservation
	err := r.db.WithContext(ctx).
		Preload("User.Profile").
		Order("reservation_date ASC").
		Order("reservation_time ASC").
		Find(&out).Error

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *ReservationGormRepository) ListReservationsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Reservation, error) {

	var out []models.Reservation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("reservation_date ASC").
		Order("reservation_time ASC").
		Find(&out).Error

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *ReservationGormRepository) ListCompleted(
	ctx context.Context,
) ([]models.Reservation, error) {

	var out []models.Reservation
	err := r.db.WithContext(ctx).
		Select("id", "reservation_date", "service_price").
		Where("status = ?", string(domain.StatusCompleted)).
		Order("reservation_date ASC").
		Find(&out).Error

	if err != nil {
		return nil, err
	}

	return out, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
