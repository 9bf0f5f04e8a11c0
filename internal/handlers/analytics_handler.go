package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/thefaderoom/faderoom-api/internal/httperr"
	ucReservation "github.com/thefaderoom/faderoom-api/internal/usecase/reservation"
)

type AnalyticsHandler struct {
	analyticsUC *ucReservation.Analytics
}

func NewAnalyticsHandler(analyticsUC *ucReservation.Analytics) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: analyticsUC}
}

func (h *AnalyticsHandler) Get(c *gin.Context) {
	report, err := h.analyticsUC.Execute(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("analytics aggregation failed")
		httperr.Internal(c, "analytics_failed", "Could not compute analytics.")
		return
	}

	c.JSON(http.StatusOK, report)
}
