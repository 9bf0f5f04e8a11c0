package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/thefaderoom/faderoom-api/internal/config"
	"github.com/thefaderoom/faderoom-api/internal/models"
	"github.com/thefaderoom/faderoom-api/internal/stash"
	ucReservation "github.com/thefaderoom/faderoom-api/internal/usecase/reservation"
	"github.com/thefaderoom/faderoom-api/internal/validators"
)

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	stash    *stash.Store
	createUC *ucReservation.CreateCustomerReservation

	// Swappable so tests do not depend on live DNS.
	emailDomainOK func(string) bool
}

func NewAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	stashStore *stash.Store,
	createUC *ucReservation.CreateCustomerReservation,
) *AuthHandler {
	return &AuthHandler{
		db:            db,
		config:        cfg,
		stash:         stashStore,
		createUC:      createUC,
		emailDomainOK: validators.IsEmailDomainValid,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	FullName    string `json:"full_name" binding:"required,min=2,max=100"`
	PhoneNumber string `json:"phone_number" binding:"required,min=8,max=20"`
	Email       string `json:"email" binding:"required,email,max=255"`
	Password    string `json:"password" binding:"required,min=6,max=100"`

	// Token of a booking intent stashed before authentication.
	StashToken string `json:"stash_token"`
}

type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	StashToken string `json:"stash_token"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.emailDomainOK(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email_domain"})
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email_already_registered"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashed),
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.Profile{
			UserID:      user.ID,
			FullName:    strings.TrimSpace(req.FullName),
			PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_user"})
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	resp := gin.H{
		"user": gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"full_name":    req.FullName,
			"phone_number": req.PhoneNumber,
		},
		"token": token,
	}

	if res := h.consumeStash(c, user.ID, req.StashToken); res != nil {
		resp["reservation"] = res
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Preload("Profile").
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	resp := gin.H{
		"user":  userJSON(&user),
		"token": token,
	}

	if res := h.consumeStash(c, user.ID, req.StashToken); res != nil {
		resp["reservation"] = res
	}

	c.JSON(http.StatusOK, resp)
}

// consumeStash submits a pre-auth booking intent once an identity
// exists. Stash problems never fail the auth flow; a lost intent just
// means the customer books again.
func (h *AuthHandler) consumeStash(c *gin.Context, userID uint, token string) *models.Reservation {
	if token == "" {
		return nil
	}

	pending, err := h.stash.Consume(c.Request.Context(), token)
	if err != nil {
		log.Warn().Err(err).Msg("stash consume failed")
		return nil
	}
	if pending == nil {
		return nil
	}

	res, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateCustomerReservationInput{
		UserID:       userID,
		Date:         pending.ReservationDate,
		Time:         pending.ReservationTime,
		ServiceName:  pending.ServiceName,
		ServicePrice: pending.ServicePrice,
		Notes:        pending.Notes,
		Source:       "stash",
	})
	if err != nil {
		log.Warn().Err(err).Uint("user_id", userID).Msg("stashed reservation rejected")
		return nil
	}

	return res
}

func userJSON(user *models.User) gin.H {
	out := gin.H{
		"id":    user.ID,
		"email": user.Email,
	}
	if user.Profile != nil {
		out["full_name"] = user.Profile.FullName
		out["phone_number"] = user.Profile.PhoneNumber
	}
	return out
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
