package dto

import (
	"torami_backend/internal/models"
)

type CreateStandRequest struct {
	BrandName   string   `json:"brandName" validate:"required,max=200"`
	Type        string   `json:"type" validate:"max=100"`
	ContactName string   `json:"contactName" validate:"max=200"`
	Email       string   `json:"email" validate:"omitempty,email"`
	Phone       string   `json:"phone" validate:"max=50"`
	Socials     string   `json:"socials" validate:"max=500"`
	Description string   `json:"description"`
	Needs       string   `json:"needs"`
	Images      []string `json:"images" validate:"dive,url"`
	EventID     *string  `json:"eventId,omitempty"`
}

type CreateCosplayRequest struct {
	ParticipantName string  `json:"participantName" validate:"required,max=200"`
	Nickname        string  `json:"nickname" validate:"max=100"`
	Whatsapp        string  `json:"whatsapp" validate:"max=50"`
	CharacterName   string  `json:"characterName" validate:"required,max=200"`
	SeriesName      string  `json:"seriesName" validate:"max=200"`
	Category        string  `json:"category" validate:"max=100"`
	ReferenceImage  *string `json:"referenceImage,omitempty" validate:"omitempty,url"`
	AudioLink       *string `json:"audioLink,omitempty" validate:"omitempty,url"`
}

// UpdateSubmissionStatusRequest asks for a transition to a terminal status.
// Reason is only meaningful for a rejection; when present, it becomes a
// moderator notice on the submission's thread.
type UpdateSubmissionStatusRequest struct {
	Status models.SubmissionStatus `json:"status" validate:"required"`
	Reason string                  `json:"reason"`
}

type AddMessageRequest struct {
	Sender        models.MessageSender `json:"sender" validate:"required,oneof=OWNER MODERATOR"`
	Text          string               `json:"text"`
	AttachmentURL *string              `json:"attachmentUrl,omitempty" validate:"omitempty,url"`
}
