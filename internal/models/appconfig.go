package models

import (
	"time"

	"gorm.io/datatypes"
)

// AppConfigID is the well-known primary key of the single configuration row.
const AppConfigID = 1

// AppConfig is the app-wide display configuration. Exactly one row exists;
// it is created lazily by the get-or-create accessor in the config service.
type AppConfig struct {
	ID                int            `gorm:"primaryKey" json:"id"`
	DonationsEnabled  bool           `gorm:"not null;default:true" json:"donationsEnabled"`
	HomeGalleryImages datatypes.JSON `gorm:"type:jsonb" json:"homeGalleryImages"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (AppConfig) TableName() string {
	return "app_config"
}
