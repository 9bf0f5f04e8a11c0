package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	domain "github.com/thefaderoom/faderoom-api/internal/domain/reservation"
	"github.com/thefaderoom/faderoom-api/internal/httperr"
	"github.com/thefaderoom/faderoom-api/internal/httpresp"
	"github.com/thefaderoom/faderoom-api/internal/models"
	"github.com/thefaderoom/faderoom-api/internal/stash"
	ucReservation "github.com/thefaderoom/faderoom-api/internal/usecase/reservation"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves everything the marketing page and the booking
// dialog need before a session exists.
type PublicHandler struct {
	db             *gorm.DB
	stash          *stash.Store
	availabilityUC *ucReservation.GetAvailability
}

func NewPublicHandler(
	db *gorm.DB,
	stashStore *stash.Store,
	availabilityUC *ucReservation.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		stash:          stashStore,
		availabilityUC: availabilityUC,
	}
}

////////////////////////////////////////////////////////
// CATALOG / SITE DATA
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = ?", true).
		Order("position ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListWorkingHours(c *gin.Context) {
	var hours []models.WorkingHours
	if err := h.db.
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_list_working_hours", "Could not load working hours.")
		return
	}

	httpresp.List(c, hours)
}

func (h *PublicHandler) ListGallery(c *gin.Context) {
	var images []models.GalleryImage
	if err := h.db.
		Order("position ASC, id ASC").
		Find(&images).Error; err != nil {

		httperr.Internal(c, "failed_to_list_gallery", "Could not load gallery.")
		return
	}

	httpresp.List(c, images)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := domain.NormalizeDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	slots, status, err := h.availabilityUC.Execute(c.Request.Context(), date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("availability failed")
		httperr.Internal(c, "availability_failed", "Could not compute time slots.")
		return
	}

	if slots == nil {
		slots = []domain.TimeSlot{}
	}

	c.JSON(http.StatusOK, gin.H{
		"date":   date,
		"status": status,
		"slots":  slots,
	})
}

////////////////////////////////////////////////////////
// PRE-AUTH BOOKING STASH
////////////////////////////////////////////////////////

type StashReservationRequest struct {
	ReservationDate string   `json:"reservation_date" binding:"required"`
	ReservationTime string   `json:"reservation_time" binding:"required"`
	Notes           string   `json:"notes"`
	ServiceName     string   `json:"service_name"`
	ServicePrice    *float64 `json:"service_price"`
}

// StashReservation holds an unauthenticated booking intent. Nothing is
// inserted here; the intent is submitted when register/login presents
// the returned token.
func (h *PublicHandler) StashReservation(c *gin.Context) {
	var req StashReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Date and time are required.")
		return
	}

	date, err := domain.NormalizeDate(req.ReservationDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	clock, err := domain.NormalizeClock(req.ReservationTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "Invalid time.")
		return
	}

	token, err := h.stash.Put(c.Request.Context(), stash.PendingReservation{
		ReservationDate: date,
		ReservationTime: clock,
		Notes:           req.Notes,
		ServiceName:     req.ServiceName,
		ServicePrice:    req.ServicePrice,
	})
	if err != nil {
		log.Error().Err(err).Msg("stash put failed")
		httperr.Internal(c, "stash_failed", "Could not hold the reservation.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"stash_token":    token,
		"expires_in_sec": int(h.stash.TTL().Seconds()),
	})
}
