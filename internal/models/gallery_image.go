package models

import "time"

type GalleryImage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ObjectKey string `gorm:"size:255;uniqueIndex;not null" json:"object_key"`
	URL       string `gorm:"size:500;not null" json:"url"`
	Title     string `gorm:"size:100" json:"title"`
	Position  int    `json:"position"`

	CreatedAt time.Time `json:"created_at"`
}
