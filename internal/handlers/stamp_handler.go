package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"torami_backend/internal/middleware"
	"torami_backend/internal/services"
	"torami_backend/internal/services/dto"
)

type StampHandler struct {
	*BaseHandler
	stampService services.StampService
}

func NewStampHandler(base *BaseHandler, stampService services.StampService) *StampHandler {
	return &StampHandler{
		BaseHandler:  base,
		stampService: stampService,
	}
}

func (h *StampHandler) RegisterRoutes(r *gin.RouterGroup) {
	stamps := r.Group("/stamps")
	stamps.Use(middleware.AuthMiddleware())
	{
		stamps.POST("/collect", h.Collect)
		stamps.GET("/me", h.Mine)
	}
}

func (h *StampHandler) Collect(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ValidateStampRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.stampService.Collect(c.Request.Context(), userID, req.Code)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *StampHandler) Mine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	stamps, err := h.stampService.UserStamps(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stamps)
}
