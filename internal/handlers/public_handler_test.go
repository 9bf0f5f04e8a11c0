package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/thefaderoom/faderoom-api/internal/db"
	infraRepo "github.com/thefaderoom/faderoom-api/internal/infra/repository"
	"github.com/thefaderoom/faderoom-api/internal/models"
	"github.com/thefaderoom/faderoom-api/internal/stash"
	ucReservation "github.com/thefaderoom/faderoom-api/internal/usecase/reservation"
)

func newPublicRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	repo := infraRepo.NewReservationGormRepository(db)
	stashStore := stash.NewStore(rdb, 15*time.Minute)
	availabilityUC := ucReservation.NewGetAvailability(repo)

	h := NewPublicHandler(db, stashStore, availabilityUC)

	r := gin.New()
	r.GET("/api/public/availability", h.Availability)
	r.POST("/api/public/reservations/stash", h.StashReservation)
	return r, db
}

func TestAvailabilityEndpoint(t *testing.T) {
	r, db := newPublicRouter(t)

	// 2026-09-01 is a Tuesday.
	require.NoError(t, db.Create(&models.WorkingHours{
		DayOfWeek: 2,
		StartTime: "09:00:00",
		EndTime:   "11:00:00",
	}).Error)
	require.NoError(t, db.Create(&models.Reservation{
		ReservationDate: "2026-09-01",
		ReservationTime: "09:30:00",
		Status:          "pending",
	}).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/availability?date=2026-09-01", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Date   string `json:"date"`
		Status string `json:"status"`
		Slots  []struct {
			Time      string `json:"time"`
			Available bool   `json:"available"`
		} `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "2026-09-01", body.Date)
	assert.Equal(t, "open", body.Status)
	require.Len(t, body.Slots, 4)
	assert.False(t, body.Slots[1].Available, "09:30 is held by a pending booking")
	assert.True(t, body.Slots[0].Available)
}

func TestAvailabilityEndpointClosedDay(t *testing.T) {
	r, db := newPublicRouter(t)

	require.NoError(t, db.Create(&models.WorkingHours{
		DayOfWeek: 0,
		IsClosed:  true,
	}).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/public/availability?date=2026-09-06", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"closed"`)
	assert.Contains(t, w.Body.String(), `"slots":[]`)
}

func TestStashEndpoint(t *testing.T) {
	r, _ := newPublicRouter(t)

	payload := `{"reservation_date":"2026-09-01","reservation_time":"10:00","service_name":"Fade"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/public/reservations/stash", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		StashToken   string `json:"stash_token"`
		ExpiresInSec int    `json:"expires_in_sec"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.StashToken)
	assert.Equal(t, 900, body.ExpiresInSec)
}

func TestStashEndpointRejectsOffGridTime(t *testing.T) {
	r, _ := newPublicRouter(t)

	payload := `{"reservation_date":"2026-09-01","reservation_time":"10:10"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/public/reservations/stash", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_time")
}
