package reservation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/thefaderoom/faderoom-api/internal/domain/reservation"
	"github.com/thefaderoom/faderoom-api/internal/httperr"
	"github.com/thefaderoom/faderoom-api/internal/models"
)

func TestUpdateStatusConfirm(t *testing.T) {
	repo := new(mockRepo)
	dispatcher, broker := newSideEffects(t)
	uc := NewUpdateStatus(repo, dispatcher, broker)

	stored := &models.Reservation{Status: string(domain.StatusPending)}
	stored.ID = 42

	repo.On("GetReservation", mock.Anything, uint(42)).Return(stored, nil)
	repo.On("UpdateReservation", mock.Anything, stored).Return(nil)

	res, err := uc.Execute(context.Background(), 1, 42, domain.StatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), res.Status)
	assert.NotNil(t, res.ConfirmedAt)
	repo.AssertExpectations(t)
}

func TestUpdateStatusInvalidTransition(t *testing.T) {
	repo := new(mockRepo)
	dispatcher, broker := newSideEffects(t)
	uc := NewUpdateStatus(repo, dispatcher, broker)

	stored := &models.Reservation{Status: string(domain.StatusCompleted)}
	repo.On("GetReservation", mock.Anything, uint(5)).Return(stored, nil)

	_, err := uc.Execute(context.Background(), 1, 5, domain.StatusCancelled)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	repo.AssertNotCalled(t, "UpdateReservation", mock.Anything, mock.Anything)
}

func TestUpdateStatusUnknownStatus(t *testing.T) {
	repo := new(mockRepo)
	dispatcher, broker := newSideEffects(t)
	uc := NewUpdateStatus(repo, dispatcher, broker)

	_, err := uc.Execute(context.Background(), 1, 5, domain.Status("archived"))

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
	repo.AssertNotCalled(t, "GetReservation", mock.Anything, mock.Anything)
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := new(mockRepo)
	dispatcher, broker := newSideEffects(t)
	uc := NewUpdateStatus(repo, dispatcher, broker)

	repo.On("GetReservation", mock.Anything, uint(99)).Return(nil, nil)

	_, err := uc.Execute(context.Background(), 1, 99, domain.StatusConfirmed)

	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "reservation_not_found"))
}

func TestUpdateStatusLookupFailure(t *testing.T) {
	repo := new(mockRepo)
	dispatcher, broker := newSideEffects(t)
	uc := NewUpdateStatus(repo, dispatcher, broker)

	dbErr := errors.New("connection refused")
	repo.On("GetReservation", mock.Anything, uint(7)).Return(nil, dbErr)

	_, err := uc.Execute(context.Background(), 1, 7, domain.StatusConfirmed)

	// A broken lookup is not a missing reservation; the error must
	// surface as-is so the handler answers 500, not 404.
	require.ErrorIs(t, err, dbErr)
	_, isBusiness := httperr.AsBusiness(err)
	assert.False(t, isBusiness)
}
