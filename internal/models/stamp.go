package models

import "time"

// Stamp is a collectible the user earns by scanning a venue code. One code
// per user, enforced by the composite unique index.
type Stamp struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    string    `gorm:"type:uuid;uniqueIndex:idx_user_stamp;not null" json:"userId"`
	Code      string    `gorm:"uniqueIndex:idx_user_stamp;not null" json:"code"`
	Type      string    `gorm:"not null" json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}
