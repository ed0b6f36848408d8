package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"torami_backend/internal/middleware"
	"torami_backend/internal/models"
	"torami_backend/internal/services"
	"torami_backend/internal/services/dto"
)

type EventHandler struct {
	*BaseHandler
	eventService services.EventService
}

func NewEventHandler(base *BaseHandler, eventService services.EventService) *EventHandler {
	return &EventHandler{
		BaseHandler:  base,
		eventService: eventService,
	}
}

func (h *EventHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/events", h.List)
	r.GET("/events/:id", h.Get)

	admin := r.Group("/events")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.eventService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) List(c *gin.Context) {
	upcomingOnly := c.Query("upcoming") == "true"

	events, err := h.eventService.List(c.Request.Context(), upcomingOnly)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateEventRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.eventService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
