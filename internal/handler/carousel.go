package handler

import (
	"net/http"

	"medtour/internal/model"
	"medtour/internal/service"

	"github.com/gin-gonic/gin"
)

// CarouselHandler serves carousel slides
type CarouselHandler struct {
	catalog *service.CatalogService
}

// NewCarouselHandler creates a new carousel handler
func NewCarouselHandler(catalog *service.CatalogService) *CarouselHandler {
	return &CarouselHandler{
		catalog: catalog,
	}
}

// Get handles GET /api/v1/carousels/:kind
func (h *CarouselHandler) Get(c *gin.Context) {
	var req model.CarouselRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.Kind = c.Param("kind")
	req.Width = RequestViewport(c, h.catalog.DefaultWidth()).Width()

	page, err := h.catalog.Carousel(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
