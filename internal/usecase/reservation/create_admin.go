package reservation

import (
	"context"
	"fmt"
	"strings"

	"github.com/thefaderoom/faderoom-api/internal/audit"
	domain "github.com/thefaderoom/faderoom-api/internal/domain/reservation"
	"github.com/thefaderoom/faderoom-api/internal/httperr"
	"github.com/thefaderoom/faderoom-api/internal/metrics"
	"github.com/thefaderoom/faderoom-api/internal/models"
	"github.com/thefaderoom/faderoom-api/internal/realtime"
	"github.com/thefaderoom/faderoom-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAdminReservationInput struct {
	AdminID uint

	CustomerName  string
	CustomerPhone string

	Date string
	Time string

	ServiceName  string
	ServicePrice *float64
	Notes        string
}

// ======================================================
// USE CASE
// ======================================================

// CreateAdminReservation books a slot on a customer's behalf: no owning
// user, status confirmed immediately, customer name/phone folded into
// the notes field.
type CreateAdminReservation struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	broker *realtime.Broker
}

func NewCreateAdminReservation(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	broker *realtime.Broker,
) *CreateAdminReservation {
	return &CreateAdminReservation{
		repo:   repo,
		audit:  auditDispatcher,
		broker: broker,
	}
}

func (uc *CreateAdminReservation) Execute(
	ctx context.Context,
	in CreateAdminReservationInput,
) (*models.Reservation, error) {

	if in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_date_or_time")
	}

	name := strings.TrimSpace(in.CustomerName)
	phone := strings.TrimSpace(in.CustomerPhone)
	if name == "" || phone == "" {
		return nil, httperr.ErrBusiness("missing_customer")
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

	now := timezone.Now()
	res := &models.Reservation{
		UserID:          nil,
		ReservationDate: date,
		ReservationTime: clock,
		Status:          string(domain.StatusConfirmed),
		ServiceName:     strings.TrimSpace(in.ServiceName),
		ServicePrice:    in.ServicePrice,
		Notes:           embedCustomer(name, phone, in.Notes),
		ConfirmedAt:     &now,
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		if httperr.IsBusiness(err, "time_conflict") {
			metrics.ReservationConflicts.Inc()
		}
		return nil, err
	}

	metrics.ReservationsCreated.WithLabelValues("admin").Inc()

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.AdminID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
		Metadata: map[string]any{
			"date":   date,
			"time":   clock,
			"source": "admin",
		},
	})

	uc.broker.ReservationChanged(ctx, "insert", res.ID)

	return res, nil
}

// embedCustomer keeps the customer's identity inside notes, matching the
// "Klijent: Name (Phone)" rows the admin dashboard has always produced.
func embedCustomer(name, phone, notes string) string {
	tag := fmt.Sprintf("Klijent: %s (%s)", name, phone)
	if strings.TrimSpace(notes) == "" {
		return tag
	}
	return tag + ". " + strings.TrimSpace(notes)
}
