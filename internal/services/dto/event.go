package dto

import "time"

type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"max=300"`
	Tags        []string  `json:"tags"`
	Images      []string  `json:"images" validate:"dive,url"`
}

type UpdateEventRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Location    *string    `json:"location,omitempty" validate:"omitempty,max=300"`
	Tags        []string   `json:"tags,omitempty"`
	Images      []string   `json:"images,omitempty" validate:"omitempty,dive,url"`
	IsPast      *bool      `json:"isPast,omitempty"`
}
