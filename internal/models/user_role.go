package models

import "time"

// UserRole grants a role to a user. Role membership is looked up per
// request, never embedded in the session token.
type UserRole struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Role string `gorm:"size:20;not null" json:"role"`

	CreatedAt time.Time `json:"created_at"`
}
