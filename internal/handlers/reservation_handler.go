package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/thefaderoom/faderoom-api/internal/domain/reservation"
	"github.com/thefaderoom/faderoom-api/internal/httperr"
	"github.com/thefaderoom/faderoom-api/internal/httpresp"
	"github.com/thefaderoom/faderoom-api/internal/middleware"
	"github.com/thefaderoom/faderoom-api/internal/realtime"
	ucReservation "github.com/thefaderoom/faderoom-api/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

// ReservationHandler is the admin dashboard's reservation surface:
// listing, booking on a customer's behalf, the status workflow, and the
// change-feed stream.
type ReservationHandler struct {
	listUC         *ucReservation.ListReservations
	createAdminUC  *ucReservation.CreateAdminReservation
	updateStatusUC *ucReservation.UpdateStatus
	availabilityUC *ucReservation.GetAvailability
	broker         *realtime.Broker
}

func NewReservationHandler(
	listUC *ucReservation.ListReservations,
	createAdminUC *ucReservation.CreateAdminReservation,
	updateStatusUC *ucReservation.UpdateStatus,
	availabilityUC *ucReservation.GetAvailability,
	broker *realtime.Broker,
) *ReservationHandler {
	return &ReservationHandler{
		listUC:         listUC,
		createAdminUC:  createAdminUC,
		updateStatusUC: updateStatusUC,
		availabilityUC: availabilityUC,
		broker:         broker,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	reservations, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Could not load reservations.")
		return
	}

	httpresp.List(c, reservations)
}

// ======================================================
// CREATE (ON BEHALF OF A CUSTOMER)
// ======================================================

type AdminCreateReservationRequest struct {
	CustomerName  string   `json:"customer_name" binding:"required"`
	CustomerPhone string   `json:"customer_phone" binding:"required"`
	Date          string   `json:"reservation_date" binding:"required"`
	Time          string   `json:"reservation_time" binding:"required"`
	ServiceName   string   `json:"service_name"`
	ServicePrice  *float64 `json:"service_price"`
	Notes         string   `json:"notes"`
}

func (h *ReservationHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req AdminCreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid reservation payload.")
		return
	}

	res, err := h.createAdminUC.Execute(c.Request.Context(), ucReservation.CreateAdminReservationInput{
		AdminID:       adminID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Date:          req.Date,
		Time:          req.Time,
		ServiceName:   req.ServiceName,
		ServicePrice:  req.ServicePrice,
		Notes:         req.Notes,
	})
	if err != nil {
		mapReservationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// ======================================================
// STATUS WORKFLOW
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid reservation id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	res, err := h.updateStatusUC.Execute(
		c.Request.Context(),
		adminID,
		uint(id),
		domain.Status(req.Status),
	)
	if err != nil {
		mapReservationError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// ======================================================
// AVAILABILITY (SAME CALCULATOR AS THE PUBLIC SURFACE)
// ======================================================

func (h *ReservationHandler) Availability(c *gin.Context) {
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

// ======================================================
// CHANGE FEED (SSE)
// ======================================================

// Stream relays reservation change events to the admin list. The
// consumer re-fetches the full list on any event.
func (h *ReservationHandler) Stream(c *gin.Context) {
	sub := h.broker.Subscribe(c.Request.Context())
	defer sub.Close()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	events := sub.Channel()

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("change", msg.Payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
