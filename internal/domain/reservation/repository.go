package reservation

import (
	"context"

	"github.com/thefaderoom/faderoom-api/internal/models"
)

type Repository interface {
	// -------- Working hours --------

	// GetWorkingHours returns the schedule row for a weekday, or
	// (nil, nil) when no row exists.
	GetWorkingHours(ctx context.Context, dayOfWeek int) (*models.WorkingHours, error)

	// -------- Availability --------

	// ListOccupiedTimes returns the reservation_time values of a date's
	// reservations whose status is in the given set.
	ListOccupiedTimes(
		ctx context.Context,
		date string,
		statuses []Status,
	) ([]string, error)

	// -------- Reservation (create / conflict) --------

	// CreateReservation inserts conditionally: a non-cancelled
	// reservation already holding the same date+time slot yields a
	// time_conflict business error instead of a second row.
	CreateReservation(ctx context.Context, res *models.Reservation) error

	// -------- Reservation (state change) --------

	// GetReservation returns (nil, nil) when no row exists; errors are
	// reserved for actual lookup failures.
	GetReservation(ctx context.Context, id uint) (*models.Reservation, error)

	UpdateReservation(ctx context.Context, res *models.Reservation) error

	// -------- Listing --------

	ListReservations(ctx context.Context) ([]models.Reservation, error)

	ListReservationsForUser(ctx context.Context, userID uint) ([]models.Reservation, error)

	// ListCompleted returns completed reservations (date + price only)
	// ordered by date, for analytics.
	ListCompleted(ctx context.Context) ([]models.Reservation, error)
}
