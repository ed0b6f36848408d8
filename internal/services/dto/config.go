package dto

type UpdateConfigRequest struct {
	DonationsEnabled  *bool    `json:"donationsEnabled,omitempty"`
	HomeGalleryImages []string `json:"homeGalleryImages,omitempty" validate:"omitempty,dive,url"`
}
