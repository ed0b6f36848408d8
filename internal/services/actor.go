package services

import "torami_backend/internal/models"

// Actor is the caller identity handed to every workflow operation. Identity
// and role come from the auth middleware; services never authenticate, they
// only authorize against this value.
type Actor struct {
	UserID string
	Role   models.UserRole
}

// IsModerator reports whether the actor may perform moderation actions.
func (a Actor) IsModerator() bool {
	return a.Role == models.UserRoleAdmin
}

// Owns reports whether the actor is the owner of a record.
func (a Actor) Owns(ownerID string) bool {
	return a.UserID != "" && a.UserID == ownerID
}

// CanActFor reports whether the actor may run an owner-scoped read for
// userID: the owner themselves, or any moderator.
func (a Actor) CanActFor(userID string) bool {
	return a.Owns(userID) || a.IsModerator()
}
