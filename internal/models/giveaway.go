package models

import (
	"time"

	"gorm.io/datatypes"
)

type Giveaway struct {
	BaseModel
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Prize       string         `json:"prize"`
	Images      datatypes.JSON `gorm:"type:jsonb" json:"images"`
	Status      GiveawayStatus `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
	EndsAt      *time.Time     `json:"endsAt,omitempty"`

	Participants []GiveawayParticipant `gorm:"foreignKey:GiveawayID;constraint:OnDelete:CASCADE" json:"participants,omitempty"`
}

// GiveawayParticipant records that a user joined a giveaway. The composite
// unique index is what makes Join exactly-once: a concurrent duplicate
// insert fails atomically at the database.
type GiveawayParticipant struct {
	ID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     string    `gorm:"type:uuid;uniqueIndex:idx_giveaway_participant;not null" json:"userId"`
	GiveawayID string    `gorm:"type:uuid;uniqueIndex:idx_giveaway_participant;not null" json:"giveawayId"`
	CreatedAt  time.Time `json:"createdAt"`
}
