package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"torami_backend/internal/middleware"
	"torami_backend/internal/models"
	"torami_backend/internal/services"
	"torami_backend/internal/services/dto"
)

type GalleryHandler struct {
	*BaseHandler
	galleryService services.GalleryService
}

func NewGalleryHandler(base *BaseHandler, galleryService services.GalleryService) *GalleryHandler {
	return &GalleryHandler{
		BaseHandler:    base,
		galleryService: galleryService,
	}
}

func (h *GalleryHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public feed shows approved items only.
	r.GET("/gallery", h.ListPublic)

	gallery := r.Group("/gallery")
	gallery.Use(middleware.AuthMiddleware())
	{
		gallery.POST("", h.Create)
		gallery.GET("/user/:userId", h.ListByUser)
		gallery.PATCH("/:id/description", h.UpdateDescription)
	}

	admin := r.Group("/gallery")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("/all", h.ListAll)
		admin.PATCH("/:id/moderate", h.Moderate)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *GalleryHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateGalleryItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	item, err := h.galleryService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *GalleryHandler) ListPublic(c *gin.Context) {
	items, err := h.galleryService.ListPublic(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *GalleryHandler) ListByUser(c *gin.Context) {
	userID := c.Param("userId")

	items, err := h.galleryService.ListByUser(c.Request.Context(), h.GetActor(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *GalleryHandler) ListAll(c *gin.Context) {
	items, err := h.galleryService.ListAll(c.Request.Context(), h.GetActor(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *GalleryHandler) Moderate(c *gin.Context) {
	id := c.Param("id")

	var req dto.ModerateGalleryItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	item, err := h.galleryService.Moderate(c.Request.Context(), h.GetActor(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *GalleryHandler) UpdateDescription(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateGalleryDescriptionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	item, err := h.galleryService.UpdateDescription(c.Request.Context(), h.GetActor(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.galleryService.HardDelete(c.Request.Context(), h.GetActor(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gallery item deleted"})
}
