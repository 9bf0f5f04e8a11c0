package reservation

import (
	"context"

	domain "github.com/thefaderoom/faderoom-api/internal/domain/reservation"
	"github.com/thefaderoom/faderoom-api/internal/dto"
)

// ListReservations backs the admin table: every reservation, ordered by
// date then time, with the owner's profile flattened in. Admin-created
// rows have no owner; their customer lives in the notes.
type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

func (uc *ListReservations) Execute(ctx context.Context) ([]dto.ReservationListDTO, error) {
	reservations, err := uc.repo.ListReservations(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, res := range reservations {
		row := dto.ReservationListDTO{
			ID:              res.ID,
			ReservationDate: res.ReservationDate,
			ReservationTime: res.ReservationTime,
			Status:          res.Status,
			ServiceName:     res.ServiceName,
			ServicePrice:    res.ServicePrice,
			Notes:           res.Notes,
		}

		if res.User != nil && res.User.Profile != nil {
			row.FullName = res.User.Profile.FullName
			row.PhoneNumber = res.User.Profile.PhoneNumber
		}

		out = append(out, row)
	}

	return out, nil
}
