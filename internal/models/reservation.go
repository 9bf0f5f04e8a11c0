package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Admin-created reservations carry no user.
	UserID *uint `gorm:"index" json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user,omitempty"`

	ReservationDate string `gorm:"size:10;not null;index" json:"reservation_date"`
	ReservationTime string `gorm:"size:8;not null" json:"reservation_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	ServiceName  string   `gorm:"size:100" json:"service_name"`
	ServicePrice *float64 `json:"service_price"`
	Notes        string   `gorm:"size:500" json:"notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
