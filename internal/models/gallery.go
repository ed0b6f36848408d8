package models

// GalleryItem is a user photo awaiting moderation. New items always start
// pending; Feedback is written by a Reject action and left alone otherwise.
type GalleryItem struct {
	BaseModel
	UserID      string        `gorm:"type:uuid;index;not null" json:"userId"`
	EventID     *string       `gorm:"type:uuid;index" json:"eventId,omitempty"`
	URL         string        `gorm:"not null" json:"url"`
	Description string        `gorm:"type:text" json:"description"`
	Status      GalleryStatus `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
	Feedback    *string       `gorm:"type:text" json:"feedback,omitempty"`
}
