package dto

type CreateSponsorRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	LogoURL string `json:"logoUrl" validate:"omitempty,url"`
	Tier    string `json:"tier" validate:"max=50"`
	WebURL  string `json:"webUrl" validate:"omitempty,url"`
}

type UpdateSponsorRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,max=200"`
	LogoURL *string `json:"logoUrl,omitempty" validate:"omitempty,url"`
	Tier    *string `json:"tier,omitempty" validate:"omitempty,max=50"`
	WebURL  *string `json:"webUrl,omitempty" validate:"omitempty,url"`
}
