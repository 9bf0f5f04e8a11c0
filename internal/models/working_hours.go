package models

import "time"

// WorkingHours holds the weekly schedule, one row per weekday
// (0=Sunday .. 6=Saturday). Times are wall-clock "HH:MM:SS" strings;
// when IsClosed is true they are not consulted.
type WorkingHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DayOfWeek int    `gorm:"uniqueIndex;not null" json:"day_of_week"`
	StartTime string `gorm:"size:8" json:"start_time"`
	EndTime   string `gorm:"size:8" json:"end_time"`
	IsClosed  bool   `gorm:"default:false" json:"is_closed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
