package handlers

// AppHandlers holds every initialized handler for route registration.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	StandHandler    *StandHandler
	CosplayHandler  *CosplayHandler
	GalleryHandler  *GalleryHandler
	GiveawayHandler *GiveawayHandler
	EventHandler    *EventHandler
	SponsorHandler  *SponsorHandler
	StampHandler    *StampHandler
	ConfigHandler   *ConfigHandler
	StatsHandler    *StatsHandler
}
