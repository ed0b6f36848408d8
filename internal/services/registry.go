package services

import "torami_backend/internal/email"

// ServiceContainer holds every initialized service for handler wiring.
type ServiceContainer struct {
	AuthService      AuthService
	StandService     StandService
	CosplayService   CosplayService
	GalleryService   GalleryService
	GiveawayService  GiveawayService
	EventService     EventService
	SponsorService   SponsorService
	StampService     StampService
	AppConfigService AppConfigService
	StatsService     StatsService
	EmailService     email.Provider
}
