package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"torami_backend/internal/middleware"
	"torami_backend/internal/models"
	"torami_backend/internal/services"
	"torami_backend/internal/services/dto"
)

type ConfigHandler struct {
	*BaseHandler
	configService services.AppConfigService
}

func NewConfigHandler(base *BaseHandler, configService services.AppConfigService) *ConfigHandler {
	return &ConfigHandler{
		BaseHandler:   base,
		configService: configService,
	}
}

func (h *ConfigHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Readable without auth: the frontend needs it before login.
	r.GET("/config", h.Get)

	admin := r.Group("/config")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.PATCH("", h.Update)
		admin.POST("/reset", h.Reset)
	}
}

func (h *ConfigHandler) Get(c *gin.Context) {
	cfg, err := h.configService.GetOrCreate(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

func (h *ConfigHandler) Update(c *gin.Context) {
	var req dto.UpdateConfigRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	cfg, err := h.configService.Update(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

func (h *ConfigHandler) Reset(c *gin.Context) {
	cfg, err := h.configService.Reset(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}
