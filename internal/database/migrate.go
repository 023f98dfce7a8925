package database

import (
	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates/updates the three record collections.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.JobType{},
		&models.Job{},
		&models.Application{},
	)
}
