package db

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/thefaderoom/faderoom-api/internal/models"
)

// Seed inserts the initial weekly schedule and the service catalog. Both
// are idempotent: existing rows are left alone so admin edits survive
// restarts.
func Seed(db *gorm.DB) {
	seedWorkingHours(db)
	seedServices(db)
}

func seedWorkingHours(db *gorm.DB) {
	type day struct {
		dow    int
		start  string
		end    string
		closed bool
	}

	week := []day{
		{0, "", "", true}, // Sunday
		{1, "09:00:00", "20:00:00", false},
		{2, "09:00:00", "20:00:00", false},
		{3, "09:00:00", "20:00:00", false},
		{4, "09:00:00", "20:00:00", false},
		{5, "09:00:00", "20:00:00", false},
		{6, "09:00:00", "15:00:00", false}, // Saturday
	}

	for _, d := range week {
		wh := models.WorkingHours{
			DayOfWeek: d.dow,
			StartTime: d.start,
			EndTime:   d.end,
			IsClosed:  d.closed,
		}
		if err := db.
			Where("day_of_week = ?", d.dow).
			FirstOrCreate(&wh).Error; err != nil {
			log.Error().Err(err).Int("day_of_week", d.dow).Msg("seed working hours")
		}
	}
}

func seedServices(db *gorm.DB) {
	type svc struct {
		category string
		name     string
		price    float64
		duration int
	}

	catalog := []svc{
		{"Kosa", "Fade ili klasično šišanje", 15, 30},
		{"Kosa", "Fade ili klasično šišanje i pranje", 20, 30},
		{"Kosa", "Dječje šišanje (do 10 godina)", 10, 30},
		{"Kosa", "Šišanje mašinicom na nulu i uređivanje brade", 20, 30},
		{"Kosa", "Kreativno šišanje (duga kosa)", 30, 60},
		{"Brada", "Uređivanje brade", 10, 30},
		{"Kosa i Brada", "Šišanje i uređivanje brade (brada na jednu dužinu i crte)", 20, 30},
		{"Kosa i Brada", "Fade ili klasično šišanje i uređivanje brade", 25, 45},
		{"Kosa i Brada", "Šišanje, uređivanje brade, pranje i masaža vlasišta", 30, 60},
		{"Kosa i Brada", "Fade ili klasično šišanje, uređivanje brade i pranje", 30, 60},
	}

	for i, s := range catalog {
		service := models.Service{
			Category:    s.category,
			Name:        s.name,
			Price:       s.price,
			DurationMin: s.duration,
			Position:    i,
			Active:      true,
		}
		if err := db.
			Where("name = ?", s.name).
			FirstOrCreate(&service).Error; err != nil {
			log.Error().Err(err).Str("service", s.name).Msg("seed services")
		}
	}
}
