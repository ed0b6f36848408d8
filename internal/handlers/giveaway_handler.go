package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"torami_backend/internal/middleware"
	"torami_backend/internal/models"
	"torami_backend/internal/services"
	"torami_backend/internal/services/dto"
)

type GiveawayHandler struct {
	*BaseHandler
	giveawayService services.GiveawayService
}

func NewGiveawayHandler(base *BaseHandler, giveawayService services.GiveawayService) *GiveawayHandler {
	return &GiveawayHandler{
		BaseHandler:     base,
		giveawayService: giveawayService,
	}
}

func (h *GiveawayHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/giveaways", h.List)
	r.GET("/giveaways/:id", h.Get)

	auth := r.Group("/giveaways")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/:id/join", h.Join)
		auth.GET("/user/me", h.Mine)
	}

	admin := r.Group("/giveaways")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *GiveawayHandler) Create(c *gin.Context) {
	var req dto.CreateGiveawayRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	g, err := h.giveawayService.Create(c.Request.Context(), h.GetActor(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, g)
}

func (h *GiveawayHandler) Get(c *gin.Context) {
	g, err := h.giveawayService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, g)
}

func (h *GiveawayHandler) List(c *gin.Context) {
	giveaways, err := h.giveawayService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, giveaways)
}

func (h *GiveawayHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateGiveawayRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	g, err := h.giveawayService.Update(c.Request.Context(), h.GetActor(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, g)
}

func (h *GiveawayHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.giveawayService.Delete(c.Request.Context(), h.GetActor(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Giveaway deleted"})
}

func (h *GiveawayHandler) Join(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	g, err := h.giveawayService.Join(c.Request.Context(), h.GetActor(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, g)
}

func (h *GiveawayHandler) Mine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	giveaways, err := h.giveawayService.UserGiveaways(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, giveaways)
}
