package dto

import "torami_backend/internal/models"

type ValidateStampRequest struct {
	Code string `json:"code" validate:"required,max=50"`
}

type CollectStampResponse struct {
	Stamp     *models.Stamp  `json:"stamp"`
	Message   string         `json:"message"`
	Total     int            `json:"total"`
	Collected []models.Stamp `json:"collected"`
}
