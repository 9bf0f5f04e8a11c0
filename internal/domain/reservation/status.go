package reservation

import "github.com/thefaderoom/faderoom-api/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// transitions: pending -> confirmed -> completed,
// cancelled reachable from pending or confirmed.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransition validates a single admin-triggered status change.
func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}

// OccupyingStatuses are the statuses that block a time slot. Both the
// public and the admin availability surfaces use the same set.
func OccupyingStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}

// InitialStatus for customer-created reservations.
func InitialStatus() Status {
	return StatusPending
}
