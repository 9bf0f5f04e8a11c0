package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/thefaderoom/faderoom-api/internal/httperr"
)

// mapReservationError translates use-case errors into HTTP responses.
// Business codes become 4xx with the code preserved; anything else is a
// logged 500.
func mapReservationError(c *gin.Context, err error) {
	code, ok := httperr.AsBusiness(err)
	if !ok {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("reservation operation failed")
		httperr.Internal(c, "reservation_failed", "Something went wrong.")
		return
	}

	switch code {
	case "time_conflict":
		httperr.Conflict(c, code, "That time slot is already taken.")
	case "reservation_not_found":
		httperr.NotFound(c, code, "Reservation not found.")
	case "invalid_state":
		httperr.BadRequest(c, code, "Reservation cannot move to that status.")
	case "missing_date_or_time":
		httperr.BadRequest(c, code, "Date and time are required.")
	case "missing_customer":
		httperr.BadRequest(c, code, "Customer name and phone are required.")
	default:
		httperr.BadRequest(c, code, "Invalid reservation request.")
	}
}
