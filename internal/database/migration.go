package database

import (
	"fmt"

	"github.com/abbaschallawala95/studio/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.ChargingSession{},
		&models.Tracker{},
		&models.AuditLog{},
		&models.Backup{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
