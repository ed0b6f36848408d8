package models

type UserRole string
type SubmissionKind string
type SubmissionStatus string
type GalleryStatus string
type GiveawayStatus string
type MessageSender string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	SubmissionKindStand   SubmissionKind = "stand"
	SubmissionKindCosplay SubmissionKind = "cosplay"

	// Stand applications: pending -> approved | rejected. No path back.
	StandStatusPending  SubmissionStatus = "pending"
	StandStatusApproved SubmissionStatus = "approved"
	StandStatusRejected SubmissionStatus = "rejected"

	// Cosplay registrations: registered -> confirmed | rejected. No path back.
	CosplayStatusRegistered SubmissionStatus = "registered"
	CosplayStatusConfirmed  SubmissionStatus = "confirmed"
	CosplayStatusRejected   SubmissionStatus = "rejected"

	GalleryStatusPending  GalleryStatus = "pending"
	GalleryStatusApproved GalleryStatus = "approved"
	GalleryStatusRejected GalleryStatus = "rejected"

	GiveawayStatusActive    GiveawayStatus = "active"
	GiveawayStatusFinished  GiveawayStatus = "finished"
	GiveawayStatusCancelled GiveawayStatus = "cancelled"

	MessageSenderOwner     MessageSender = "OWNER"
	MessageSenderModerator MessageSender = "MODERATOR"
)
