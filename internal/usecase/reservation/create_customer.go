package reservation

import (
	"context"

	"github.com/thefaderoom/faderoom-api/internal/audit"
	domain "github.com/thefaderoom/faderoom-api/internal/domain/reservation"
	"github.com/thefaderoom/faderoom-api/internal/httperr"
	"github.com/thefaderoom/faderoom-api/internal/metrics"
	"github.com/thefaderoom/faderoom-api/internal/models"
	"github.com/thefaderoom/faderoom-api/internal/realtime"
)

// ======================================================
// INPUT
// ======================================================

type CreateCustomerReservationInput struct {
	UserID uint

	Date string // YYYY-MM-DD
	Time string // HH:MM or HH:MM:SS

	ServiceName  string
	ServicePrice *float64
	Notes        string

	// Source distinguishes direct bookings from consumed stashes in
	// metrics and audit metadata.
	Source string
}

// ======================================================
// USE CASE
// ======================================================

// CreateCustomerReservation submits a customer booking with status
// pending. The insert is conditional; a taken slot surfaces as a
// time_conflict business error.
type CreateCustomerReservation struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	broker *realtime.Broker
}

func NewCreateCustomerReservation(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	broker *realtime.Broker,
) *CreateCustomerReservation {
	return &CreateCustomerReservation{
		repo:   repo,
		audit:  auditDispatcher,
		broker: broker,
	}
}

func (uc *CreateCustomerReservation) Execute(
	ctx context.Context,
	in CreateCustomerReservationInput,
) (*models.Reservation, error) {

	if in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_date_or_time")
	}

	date, err := domain.NormalizeDate(in.Date)
	if err != nil {
		return nil, err
	}

	clock, err := domain.NormalizeClock(in.Time)
	if err != nil {
		return nil, err
	}

	if in.ServicePrice != nil && *in.ServicePrice < 0 {
		return nil, httperr.ErrBusiness("invalid_price")
	}

	userID := in.UserID
	res := &models.Reservation{
		UserID:          &userID,
		ReservationDate: date,
		ReservationTime: clock,
		Status:          string(domain.InitialStatus()),
		ServiceName:     in.ServiceName,
		ServicePrice:    in.ServicePrice,
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			metrics.ReservationConflicts.Inc()
		}
		return nil, err
	}

	source := in.Source
	if source == "" {
		source = "customer"
	}
	metrics.ReservationsCreated.WithLabelValues(source).Inc()

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
		Metadata: map[string]any{
			"date":   date,
			"time":   clock,
			"source": source,
		},
	})

	uc.broker.ReservationChanged(ctx, "insert", res.ID)

	return res, nil
}
