package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"torami_backend/internal/middleware"
	"torami_backend/internal/models"
	"torami_backend/internal/services"
	"torami_backend/internal/services/dto"
)

type CosplayHandler struct {
	*BaseHandler
	cosplayService services.CosplayService
}

func NewCosplayHandler(base *BaseHandler, cosplayService services.CosplayService) *CosplayHandler {
	return &CosplayHandler{
		BaseHandler:    base,
		cosplayService: cosplayService,
	}
}

func (h *CosplayHandler) RegisterRoutes(r *gin.RouterGroup) {
	cosplay := r.Group("/cosplay")
	cosplay.Use(middleware.AuthMiddleware())
	{
		cosplay.POST("", h.Create)
		cosplay.GET("/user/:userId", h.ListByUser)
		cosplay.POST("/:id/messages", h.AddMessage)
		cosplay.GET("/:id/messages", h.Messages)
	}

	admin := r.Group("/cosplay")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.PATCH("/:id/status", h.UpdateStatus)
	}
}

func (h *CosplayHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCosplayRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	reg, err := h.cosplayService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reg)
}

func (h *CosplayHandler) List(c *gin.Context) {
	regs, err := h.cosplayService.List(c.Request.Context(), h.GetActor(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, regs)
}

func (h *CosplayHandler) ListByUser(c *gin.Context) {
	userID := c.Param("userId")

	regs, err := h.cosplayService.ListByUser(c.Request.Context(), h.GetActor(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, regs)
}

func (h *CosplayHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateSubmissionStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	reg, err := h.cosplayService.UpdateStatus(c.Request.Context(), h.GetActor(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reg)
}

func (h *CosplayHandler) AddMessage(c *gin.Context) {
	id := c.Param("id")

	var req dto.AddMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	msg, err := h.cosplayService.AddMessage(c.Request.Context(), h.GetActor(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

func (h *CosplayHandler) Messages(c *gin.Context) {
	id := c.Param("id")

	msgs, err := h.cosplayService.Messages(c.Request.Context(), h.GetActor(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, msgs)
}
