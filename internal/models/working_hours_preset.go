package models

import (
	"time"

	"gorm.io/datatypes"
)

// WorkingHoursPreset is a named snapshot of the weekly schedule.
// Schedule is a JSON array with one entry per weekday:
// {day_of_week, start_time, end_time, is_closed}.
type WorkingHoursPreset struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string         `gorm:"size:100;not null" json:"name"`
	Schedule datatypes.JSON `gorm:"type:json" json:"schedule"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
