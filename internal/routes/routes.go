package routes

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"

	"torami_backend/internal/handlers"
)

// RegisterRoutes registers all HTTP routes.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.StandHandler.RegisterRoutes(api)
		appHandlers.CosplayHandler.RegisterRoutes(api)
		appHandlers.GalleryHandler.RegisterRoutes(api)
		appHandlers.GiveawayHandler.RegisterRoutes(api)
		appHandlers.EventHandler.RegisterRoutes(api)
		appHandlers.SponsorHandler.RegisterRoutes(api)
		appHandlers.StampHandler.RegisterRoutes(api)
		appHandlers.ConfigHandler.RegisterRoutes(api)
		appHandlers.StatsHandler.RegisterRoutes(api)
	}

	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
