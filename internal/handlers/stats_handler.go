package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"torami_backend/internal/middleware"
	"torami_backend/internal/models"
	"torami_backend/internal/services"
)

type StatsHandler struct {
	*BaseHandler
	statsService services.StatsService
}

func NewStatsHandler(base *BaseHandler, statsService services.StatsService) *StatsHandler {
	return &StatsHandler{
		BaseHandler:  base,
		statsService: statsService,
	}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/stats")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.Platform)
	}
}

func (h *StatsHandler) Platform(c *gin.Context) {
	stats, err := h.statsService.Platform(c.Request.Context(), h.GetActor(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
