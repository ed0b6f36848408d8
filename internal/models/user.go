package models

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Avatar       *string  `json:"avatar,omitempty"`
	Role         UserRole `gorm:"type:varchar(16);not null;default:'user'" json:"role"`
}

// IsModerator reports whether the user may perform moderation actions.
func (u *User) IsModerator() bool {
	return u.Role == UserRoleAdmin
}
