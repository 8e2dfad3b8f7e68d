package db

import (
	"log"
	"time"

	"github.com/harborbay/boathouse-scheduler/internal/config"
	"github.com/harborbay/boathouse-scheduler/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Boat{},
		&models.Booking{},
		&models.BookingAssignment{},
		&models.DriverReport{},
		&models.Participant{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Legacy rows created before the facility flag existed.
	db.Exec(`
        UPDATE boats
        SET is_facility = TRUE
        WHERE name = ?
    `, models.LegacyFacilityName)

	return db
}
