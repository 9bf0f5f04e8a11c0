package reservation

import (
	"context"

	"github.com/thefaderoom/faderoom-api/internal/audit"
	domain "github.com/thefaderoom/faderoom-api/internal/domain/reservation"
	"github.com/thefaderoom/faderoom-api/internal/httperr"
	"github.com/thefaderoom/faderoom-api/internal/metrics"
	"github.com/thefaderoom/faderoom-api/internal/models"
	"github.com/thefaderoom/faderoom-api/internal/realtime"
	"github.com/thefaderoom/faderoom-api/internal/timezone"
)

// UpdateStatus applies one admin-triggered transition of the
// pending -> confirmed -> completed / cancelled workflow.
type UpdateStatus struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	broker *realtime.Broker
}

func NewUpdateStatus(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	broker *realtime.Broker,
) *UpdateStatus {
	return &UpdateStatus{
		repo:   repo,
		audit:  auditDispatcher,
		broker: broker,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	adminID uint,
	reservationID uint,
	to domain.Status,
) (*models.Reservation, error) {

	if !to.Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	res, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	if err := domain.Transition(res, to, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	metrics.StatusTransitions.WithLabelValues(string(to)).Inc()

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "reservation_" + string(to),
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	uc.broker.ReservationChanged(ctx, "update", res.ID)

	return res, nil
}
