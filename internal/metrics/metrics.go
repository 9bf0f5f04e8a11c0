package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReservationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "faderoom_reservations_created_total",
		Help: "Reservations created, by source (customer, stash, admin).",
	}, []string{"source"})

	ReservationConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "faderoom_reservation_conflicts_total",
		Help: "Booking attempts rejected because the slot was taken.",
	})

	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "faderoom_status_transitions_total",
		Help: "Admin status transitions, by target status.",
	}, []string{"to"})

	AvailabilityRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "faderoom_availability_requests_total",
		Help: "Slot availability computations served.",
	})
)
