package models

type Sponsor struct {
	BaseModel
	Name    string `gorm:"not null" json:"name"`
	LogoURL string `json:"logoUrl"`
	Tier    string `json:"tier"`
	WebURL  string `json:"webUrl"`
}
