package dto

import (
	"time"

	"torami_backend/internal/models"
)

type CreateGiveawayRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description"`
	Prize       string     `json:"prize" validate:"max=500"`
	Images      []string   `json:"images" validate:"dive,url"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
}

type UpdateGiveawayRequest struct {
	Title       *string                `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string                `json:"description,omitempty"`
	Prize       *string                `json:"prize,omitempty" validate:"omitempty,max=500"`
	Images      []string               `json:"images,omitempty" validate:"omitempty,dive,url"`
	Status      *models.GiveawayStatus `json:"status,omitempty" validate:"omitempty,oneof=active finished cancelled"`
	EndsAt      *time.Time             `json:"endsAt,omitempty"`
}
