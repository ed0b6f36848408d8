package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"torami_backend/internal/middleware"
	"torami_backend/internal/models"
	"torami_backend/internal/services"
	"torami_backend/internal/services/dto"
)

type StandHandler struct {
	*BaseHandler
	standService services.StandService
}

func NewStandHandler(base *BaseHandler, standService services.StandService) *StandHandler {
	return &StandHandler{
		BaseHandler:  base,
		standService: standService,
	}
}

func (h *StandHandler) RegisterRoutes(r *gin.RouterGroup) {
	stands := r.Group("/stands")
	stands.Use(middleware.AuthMiddleware())
	{
		stands.POST("", h.Create)
		stands.GET("/user/:userId", h.ListByUser)
		stands.POST("/:id/messages", h.AddMessage)
		stands.GET("/:id/messages", h.Messages)
	}

	admin := r.Group("/stands")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.PATCH("/:id/status", h.UpdateStatus)
	}
}

func (h *StandHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateStandRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	stand, err := h.standService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, stand)
}

func (h *StandHandler) List(c *gin.Context) {
	stands, err := h.standService.List(c.Request.Context(), h.GetActor(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stands)
}

func (h *StandHandler) ListByUser(c *gin.Context) {
	userID := c.Param("userId")

	stands, err := h.standService.ListByUser(c.Request.Context(), h.GetActor(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stands)
}

func (h *StandHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateSubmissionStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	stand, err := h.standService.UpdateStatus(c.Request.Context(), h.GetActor(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stand)
}

func (h *StandHandler) AddMessage(c *gin.Context) {
	id := c.Param("id")

	var req dto.AddMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	msg, err := h.standService.AddMessage(c.Request.Context(), h.GetActor(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

func (h *StandHandler) Messages(c *gin.Context) {
	id := c.Param("id")

	msgs, err := h.standService.Messages(c.Request.Context(), h.GetActor(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, msgs)
}
