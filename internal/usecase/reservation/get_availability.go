package reservation

import (
	"context"

	domain "github.com/thefaderoom/faderoom-api/internal/domain/reservation"
	"github.com/thefaderoom/faderoom-api/internal/metrics"
)

// GetAvailability is the single slot calculator behind both the customer
// and the admin booking surfaces.
type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]domain.TimeSlot, domain.DayStatus, error) {

	metrics.AvailabilityRequests.Inc()

	weekday, err := domain.Weekday(date)
	if err != nil {
		return nil, domain.DayStatusUnknown, err
	}

	wh, err := uc.repo.GetWorkingHours(ctx, weekday)
	if err != nil {
		return nil, domain.DayStatusUnknown, err
	}

	// Missing row or closed day: zero slots, no reservation fetch.
	if wh == nil || wh.IsClosed {
		return nil, domain.DayStatusClosed, nil
	}

	times, err := uc.repo.ListOccupiedTimes(ctx, date, domain.OccupyingStatuses())
	if err != nil {
		return nil, domain.DayStatusUnknown, err
	}

	occupied := make(map[string]bool, len(times))
	for _, t := range times {
		occupied[t] = true
	}

	slots, status := domain.BuildSlots(wh, occupied)
	return slots, status, nil
}
