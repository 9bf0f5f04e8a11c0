package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/thefaderoom/faderoom-api/internal/config"
	"github.com/thefaderoom/faderoom-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db
}

// Migrate runs AutoMigrate plus the raw bits GORM cannot express: the
// partial unique index that makes a booking a conditional write (at most
// one non-cancelled reservation per date+time slot).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.UserRole{},
		&models.WorkingHours{},
		&models.WorkingHoursPreset{},
		&models.Service{},
		&models.Reservation{},
		&models.GalleryImage{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	return db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_reservations_active_slot
        ON reservations (reservation_date, reservation_time)
        WHERE status <> 'cancelled'
    `).Error
}
