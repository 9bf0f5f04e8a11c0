package reservation

import (
	"time"

	"github.com/thefaderoom/faderoom-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition applies an admin status change, stamping the matching
// lifecycle timestamp.
func Transition(res *models.Reservation, to Status, now time.Time) error {
	if err := CanTransition(Status(res.Status), to); err != nil {
		return err
	}

	res.Status = string(to)
	switch to {
	case StatusConfirmed:
		res.ConfirmedAt = &now
	case StatusCompleted:
		res.CompletedAt = &now
	case StatusCancelled:
		res.CancelledAt = &now
	}
	return nil
}
