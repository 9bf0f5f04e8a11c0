package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/thefaderoom/faderoom-api/internal/audit"
	domain "github.com/thefaderoom/faderoom-api/internal/domain/reservation"
	"github.com/thefaderoom/faderoom-api/internal/httperr"
	"github.com/thefaderoom/faderoom-api/internal/httpresp"
	"github.com/thefaderoom/faderoom-api/internal/middleware"
	"github.com/thefaderoom/faderoom-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type WorkingHoursHandler struct {
	db         *gorm.DB
	dispatcher *audit.Dispatcher
}

func NewWorkingHoursHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, dispatcher: dispatcher}
}

// ======================================================
// WEEKLY SCHEDULE
// ======================================================

func (h *WorkingHoursHandler) List(c *gin.Context) {
	var hours []models.WorkingHours
	if err := h.db.WithContext(c.Request.Context()).
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_working_hours", "Could not load working hours.")
		return
	}

	httpresp.List(c, hours)
}

type WorkingDayUpdateRequest struct {
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	IsClosed  *bool   `json:"is_closed"`
}

// UpdateDay patches a single weekday row. Omitted fields keep their
// current values, so the dashboard can toggle is_closed without
// resending the times.
func (h *WorkingHoursHandler) UpdateDay(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 0 || day > 6 {
		httperr.BadRequest(c, "invalid_day", "Day must be between 0 (Sunday) and 6 (Saturday).")
		return
	}

	var req WorkingDayUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid working hours payload.")
		return
	}

	var row models.WorkingHours
	if err := h.db.WithContext(c.Request.Context()).
		Where("day_of_week = ?", day).
		First(&row).Error; err != nil {

		httperr.NotFound(c, "day_not_found", "No schedule row for that day.")
		return
	}

	if req.StartTime != nil {
		t, err := domain.NormalizeClock(*req.StartTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_time", "Start time must be on a 30-minute boundary.")
			return
		}
		row.StartTime = t
	}
	if req.EndTime != nil {
		t, err := domain.NormalizeClock(*req.EndTime)
		if err != nil {
			httperr.BadRequest(c, "invalid_time", "End time must be on a 30-minute boundary.")
			return
		}
		row.EndTime = t
	}
	if req.IsClosed != nil {
		row.IsClosed = *req.IsClosed
	}

	if !row.IsClosed && row.StartTime >= row.EndTime {
		httperr.BadRequest(c, "invalid_range", "Start time must be before end time.")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&row).Error; err != nil {
		httperr.Internal(c, "failed_to_save_working_hours", "Could not save working hours.")
		return
	}

	h.dispatcher.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "working_hours_updated",
		Entity:   "working_hours",
		EntityID: &row.ID,
		Metadata: row,
	})

	c.JSON(http.StatusOK, row)
}

// ======================================================
// PRESETS
// ======================================================

// ScheduleEntry is one weekday inside a preset snapshot.
type ScheduleEntry struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsClosed  bool   `json:"is_closed"`
}

func (h *WorkingHoursHandler) ListPresets(c *gin.Context) {
	var presets []models.WorkingHoursPreset
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at ASC").
		Find(&presets).Error; err != nil {

		httperr.Internal(c, "failed_to_get_presets", "Could not load presets.")
		return
	}

	httpresp.List(c, presets)
}

type CreatePresetRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CreatePreset snapshots the current weekly schedule under a name.
func (h *WorkingHoursHandler) CreatePreset(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreatePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Preset name is required.")
		return
	}

	var hours []models.WorkingHours
	if err := h.db.WithContext(c.Request.Context()).
		Order("day_of_week ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_working_hours", "Could not load working hours.")
		return
	}

	schedule := make([]ScheduleEntry, 0, len(hours))
	for _, row := range hours {
		schedule = append(schedule, ScheduleEntry{
			DayOfWeek: row.DayOfWeek,
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
			IsClosed:  row.IsClosed,
		})
	}

	raw, err := json.Marshal(schedule)
	if err != nil {
		httperr.Internal(c, "failed_to_save_preset", "Could not save preset.")
		return
	}

	preset := models.WorkingHoursPreset{
		Name:     req.Name,
		Schedule: datatypes.JSON(raw),
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&preset).Error; err != nil {
		httperr.Internal(c, "failed_to_save_preset", "Could not save preset.")
		return
	}

	h.dispatcher.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "preset_created",
		Entity:   "working_hours_preset",
		EntityID: &preset.ID,
		Metadata: gin.H{"name": preset.Name},
	})

	c.JSON(http.StatusCreated, preset)
}

// ApplyPreset overwrites each weekday row with the preset's snapshot.
func (h *WorkingHoursHandler) ApplyPreset(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid preset id.")
		return
	}

	var preset models.WorkingHoursPreset
	if err := h.db.WithContext(c.Request.Context()).
		First(&preset, uint(id)).Error; err != nil {

		httperr.NotFound(c, "preset_not_found", "Preset not found.")
		return
	}

	var schedule []ScheduleEntry
	if err := json.Unmarshal(preset.Schedule, &schedule); err != nil {
		httperr.Internal(c, "invalid_preset", "Preset snapshot is corrupted.")
		return
	}

	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		for _, entry := range schedule {
			updates := map[string]any{
				"start_time": entry.StartTime,
				"end_time":   entry.EndTime,
				"is_closed":  entry.IsClosed,
			}
			if err := tx.Model(&models.WorkingHours{}).
				Where("day_of_week = ?", entry.DayOfWeek).
				Updates(updates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_apply_preset", "Could not apply preset.")
		return
	}

	h.dispatcher.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "preset_applied",
		Entity:   "working_hours_preset",
		EntityID: &preset.ID,
		Metadata: gin.H{"name": preset.Name},
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *WorkingHoursHandler) DeletePreset(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid preset id.")
		return
	}

	result := h.db.WithContext(c.Request.Context()).
		Delete(&models.WorkingHoursPreset{}, uint(id))
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_preset", "Could not delete preset.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "preset_not_found", "Preset not found.")
		return
	}

	presetID := uint(id)
	h.dispatcher.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "preset_deleted",
		Entity:   "working_hours_preset",
		EntityID: &presetID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
