package handler

import (
	"net/http"

	"medtour/internal/model"
	"medtour/internal/service"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles quote form submissions
type QuoteHandler struct {
	catalog *service.CatalogService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(catalog *service.CatalogService) *QuoteHandler {
	return &QuoteHandler{
		catalog: catalog,
	}
}

// Submit handles POST /api/v1/quotes with a JSON or form body
func (h *QuoteHandler) Submit(c *gin.Context) {
	var req model.QuoteRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response, err := h.catalog.SubmitQuote(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}
