package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"torami_backend/internal/middleware"
	"torami_backend/internal/models"
	"torami_backend/internal/services"
	"torami_backend/internal/services/dto"
)

type SponsorHandler struct {
	*BaseHandler
	sponsorService services.SponsorService
}

func NewSponsorHandler(base *BaseHandler, sponsorService services.SponsorService) *SponsorHandler {
	return &SponsorHandler{
		BaseHandler:    base,
		sponsorService: sponsorService,
	}
}

func (h *SponsorHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/sponsors", h.List)
	r.GET("/sponsors/:id", h.Get)

	admin := r.Group("/sponsors")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *SponsorHandler) Create(c *gin.Context) {
	var req dto.CreateSponsorRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	sponsor, err := h.sponsorService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sponsor)
}

func (h *SponsorHandler) Get(c *gin.Context) {
	sponsor, err := h.sponsorService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sponsor)
}

func (h *SponsorHandler) List(c *gin.Context) {
	sponsors, err := h.sponsorService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sponsors)
}

func (h *SponsorHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateSponsorRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	sponsor, err := h.sponsorService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sponsor)
}

func (h *SponsorHandler) Delete(c *gin.Context) {
	if err := h.sponsorService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sponsor deleted"})
}
