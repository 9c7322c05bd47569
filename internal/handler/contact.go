package handler

import (
	"net/http"

	"medtour/internal/model"
	"medtour/internal/service"

	"github.com/gin-gonic/gin"
)

// redirectOpener opens a link by redirecting the client to it
type redirectOpener struct {
	c *gin.Context
}

func (o redirectOpener) Open(url string) {
	o.c.Redirect(http.StatusFound, url)
}

// ContactHandler handles messaging deep links
type ContactHandler struct {
	catalog    *service.CatalogService
	dispatcher *service.ContactDispatcher
}

// NewContactHandler creates a new contact handler
func NewContactHandler(catalog *service.CatalogService, dispatcher *service.ContactDispatcher) *ContactHandler {
	return &ContactHandler{
		catalog:    catalog,
		dispatcher: dispatcher,
	}
}

// WhatsApp handles GET /api/v1/contact/whatsapp. It redirects to the chat
// link, or returns it as JSON with format=json.
func (h *ContactHandler) WhatsApp(c *gin.Context) {
	var req model.ContactRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	link, err := h.catalog.ContactLink(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Format == "json" {
		c.JSON(http.StatusOK, link)
		return
	}
	h.dispatcher.Dispatch(redirectOpener{c: c}, link.URL)
}
