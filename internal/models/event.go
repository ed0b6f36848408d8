package models

import (
	"time"

	"gorm.io/datatypes"
)

type Event struct {
	BaseModel
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Date        time.Time      `gorm:"index" json:"date"`
	Location    string         `json:"location"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	Images      datatypes.JSON `gorm:"type:jsonb" json:"images"`
	IsPast      bool           `gorm:"default:false" json:"isPast"`
}
