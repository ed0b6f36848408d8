package models

import (
	"time"

	"gorm.io/datatypes"
)

// StandApplication is a vendor stand request submitted for moderator review.
type StandApplication struct {
	BaseModel
	UserID      string           `gorm:"type:uuid;index;not null" json:"userId"`
	BrandName   string           `gorm:"not null" json:"brandName"`
	Type        string           `json:"type"`
	ContactName string           `json:"contactName"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	Socials     string           `json:"socials"`
	Description string           `gorm:"type:text" json:"description"`
	Needs       string           `gorm:"type:text" json:"needs"`
	Images      datatypes.JSON   `gorm:"type:jsonb" json:"images"`
	EventID     *string          `gorm:"type:uuid;index" json:"eventId,omitempty"`
	Status      SubmissionStatus `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
}

// CosplayRegistration is a cosplay contest entry submitted for moderator review.
type CosplayRegistration struct {
	BaseModel
	UserID          string           `gorm:"type:uuid;index;not null" json:"userId"`
	ParticipantName string           `gorm:"not null" json:"participantName"`
	Nickname        string           `json:"nickname"`
	Whatsapp        string           `json:"whatsapp"`
	CharacterName   string           `gorm:"not null" json:"characterName"`
	SeriesName      string           `json:"seriesName"`
	Category        string           `json:"category"`
	ReferenceImage  *string          `json:"referenceImage,omitempty"`
	AudioLink       *string          `json:"audioLink,omitempty"`
	Status          SubmissionStatus `gorm:"type:varchar(16);not null;default:'registered'" json:"status"`
}

// SubmissionMessage is one entry of a submission's conversation thread.
// Messages live in their own table and are only ever inserted; Seq is
// assigned by the database, so concurrent appends cannot overwrite each
// other and thread order is total.
type SubmissionMessage struct {
	ID            string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Seq           int64          `gorm:"autoIncrement;uniqueIndex" json:"seq"`
	Kind          SubmissionKind `gorm:"type:varchar(16);index:idx_submission_thread,priority:1;not null" json:"kind"`
	SubmissionID  string         `gorm:"type:uuid;index:idx_submission_thread,priority:2;not null" json:"submissionId"`
	Sender        MessageSender  `gorm:"type:varchar(16);not null" json:"sender"`
	Text          string         `gorm:"type:text" json:"text"`
	AttachmentURL *string        `json:"attachmentUrl,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func (SubmissionMessage) TableName() string {
	return "submission_messages"
}
