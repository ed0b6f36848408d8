package dto

import "torami_backend/internal/models"

type CreateGalleryItemRequest struct {
	URL         string  `json:"url" validate:"required,url"`
	Description string  `json:"description" validate:"max=2000"`
	EventID     *string `json:"eventId,omitempty"`
}

type ModerateGalleryItemRequest struct {
	Status   models.GalleryStatus `json:"status" validate:"required,oneof=pending approved rejected"`
	Feedback *string              `json:"feedback,omitempty" validate:"omitempty,max=2000"`
}

type UpdateGalleryDescriptionRequest struct {
	Description string `json:"description" validate:"required,max=2000"`
}
