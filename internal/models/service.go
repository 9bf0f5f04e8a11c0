package models

import "time"

// Service is one entry of the shop's catalog. Reservations reference it
// by name and carry a denormalized price of their own.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Category    string  `gorm:"size:50;not null" json:"category"`
	Name        string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
	Position    int     `json:"position"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
