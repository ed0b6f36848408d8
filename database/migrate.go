package database

import (
	"gorm.io/gorm"

	"torami_backend/internal/models"
)

// AutoMigrate migrates every model. GiveawayParticipant and Stamp carry the
// composite unique indexes that back idempotent joins and stamp collection.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.StandApplication{},
		&models.CosplayRegistration{},
		&models.SubmissionMessage{},
		&models.GalleryItem{},
		&models.Giveaway{},
		&models.GiveawayParticipant{},
		&models.Sponsor{},
		&models.Stamp{},
		&models.AppConfig{},
	)
}
