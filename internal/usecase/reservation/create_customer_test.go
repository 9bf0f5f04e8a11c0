package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/thefaderoom/faderoom-api/internal/domain/reservation"
	"github.com/thefaderoom/faderoom-api/internal/httperr"
	"github.com/thefaderoom/faderoom-api/internal/models"
)

func TestCreateCustomerReservation(t *testing.T) {
	repo := new(mockRepo)
	dispatcher, broker := newSideEffects(t)
	uc := NewCreateCustomerReservation(repo, dispatcher, broker)

	repo.On("CreateReservation", mock.Anything, mock.MatchedBy(func(res *models.Reservation) bool {
		return res.ReservationDate == "2026-09-01" &&
			res.ReservationTime == "10:30:00" &&
			res.Status == string(domain.StatusPending) &&
			res.UserID != nil && *res.UserID == 7
	})).Return(nil)

	price := 25.0
	res, err := uc.Execute(context.Background(), CreateCustomerReservationInput{
		UserID:       7,
		Date:         "2026-09-01",
		Time:         "10:30", // short form normalizes to HH:MM:SS
		ServiceName:  "Fade",
		ServicePrice: &price,
	})

	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "10:30:00", res.ReservationTime)
	assert.Equal(t, string(domain.StatusPending), res.Status)

	repo.AssertExpectations(t)
}

func TestCreateCustomerReservationValidation(t *testing.T) {
	badPrice := -5.0

	tests := []struct {
		name     string
		in       CreateCustomerReservationInput
		wantCode string
	}{
		{
			name:     "missing date",
			in:       CreateCustomerReservationInput{UserID: 1, Time: "10:00"},
			wantCode: "missing_date_or_time",
		},
		{
			name:     "missing time",
			in:       CreateCustomerReservationInput{UserID: 1, Date: "2026-09-01"},
			wantCode: "missing_date_or_time",
		},
		{
			name:     "off-grid time",
			in:       CreateCustomerReservationInput{UserID: 1, Date: "2026-09-01", Time: "10:15"},
			wantCode: "invalid_time",
		},
		{
			name:     "bad date",
			in:       CreateCustomerReservationInput{UserID: 1, Date: "soon", Time: "10:00"},
			wantCode: "invalid_date",
		},
		{
			name: "negative price",
			in: CreateCustomerReservationInput{
				UserID: 1, Date: "2026-09-01", Time: "10:00", ServicePrice: &badPrice,
			},
			wantCode: "invalid_price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepo)
			dispatcher, broker := newSideEffects(t)
			uc := NewCreateCustomerReservation(repo, dispatcher, broker)

			res, err := uc.Execute(context.Background(), tt.in)

			require.Error(t, err)
			assert.Nil(t, res)

			code, ok := httperr.AsBusiness(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, code)

			// Nothing may reach the database on validation failure.
			repo.AssertNotCalled(t, "CreateReservation", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateCustomerReservationConflict(t *testing.T) {
	repo := new(mockRepo)
	dispatcher, broker := newSideEffects(t)
	uc := NewCreateCustomerReservation(repo, dispatcher, broker)

	repo.On("CreateReservation", mock.Anything, mock.Anything).
		Return(httperr.ErrBusiness("time_conflict"))

	res, err := uc.Execute(context.Background(), CreateCustomerReservationInput{
		UserID: 7,
		Date:   "2026-09-01",
		Time:   "10:00",
	})

	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
}
