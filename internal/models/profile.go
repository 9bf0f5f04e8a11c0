package models

import "time"

type Profile struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	FullName    string `gorm:"size:100;not null" json:"full_name"`
	PhoneNumber string `gorm:"size:20" json:"phone_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
