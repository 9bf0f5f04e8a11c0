package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/thefaderoom/faderoom-api/internal/domain/reservation"
	"github.com/thefaderoom/faderoom-api/internal/httpresp"
	"github.com/thefaderoom/faderoom-api/internal/middleware"
	"github.com/thefaderoom/faderoom-api/internal/models"
	ucReservation "github.com/thefaderoom/faderoom-api/internal/usecase/reservation"
)

type MeHandler struct {
	db       *gorm.DB
	repo     domain.Repository
	createUC *ucReservation.CreateCustomerReservation
}

func NewMeHandler(
	db *gorm.DB,
	repo domain.Repository,
	createUC *ucReservation.CreateCustomerReservation,
) *MeHandler {
	return &MeHandler{db: db, repo: repo, createUC: createUC}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.Preload("Profile").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	var roles []string
	h.db.Model(&models.UserRole{}).
		Where("user_id = ?", userID).
		Pluck("role", &roles)

	out := userJSON(&user)
	out["roles"] = roles

	c.JSON(http.StatusOK, gin.H{"user": out})
}

func (h *MeHandler) ListMyReservations(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	reservations, err := h.repo.ListReservationsForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_reservations"})
		return
	}

	httpresp.List(c, reservations)
}

type CreateReservationRequest struct {
	ReservationDate string   `json:"reservation_date" binding:"required"`
	ReservationTime string   `json:"reservation_time" binding:"required"`
	Notes           string   `json:"notes"`
	ServiceName     string   `json:"service_name"`
	ServicePrice    *float64 `json:"service_price"`
}

func (h *MeHandler) CreateReservation(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateCustomerReservationInput{
		UserID:       userID,
		Date:         req.ReservationDate,
		Time:         req.ReservationTime,
		Notes:        req.Notes,
		ServiceName:  req.ServiceName,
		ServicePrice: req.ServicePrice,
	})
	if err != nil {
		mapReservationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}
