package handler

import (
	"net/http"
	"time"

	"medtour/internal/model"
	"medtour/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler handles provider and hospital HTTP requests
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
	}
}

// ListProviders handles GET /api/v1/providers
func (h *CatalogHandler) ListProviders(c *gin.Context) {
	var req model.ListingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response, err := h.catalog.ListProviders(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetProvider handles GET /api/v1/providers/:id
func (h *CatalogHandler) GetProvider(c *gin.Context) {
	provider, err := h.catalog.GetProvider(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, provider)
}

// ListHospitals handles GET /api/v1/hospitals
func (h *CatalogHandler) ListHospitals(c *gin.Context) {
	hospitals, err := h.catalog.ListHospitals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": hospitals, "total": len(hospitals)})
}

// ListSpecialties handles GET /api/v1/specialties
func (h *CatalogHandler) ListSpecialties(c *gin.Context) {
	specialties, err := h.catalog.ListSpecialties(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": specialties, "total": len(specialties)})
}

// HospitalSpecialty handles GET /api/v1/hospitals/:hospital/:specialty. Every
// outcome is wrapped in the {success, data} envelope.
func (h *CatalogHandler) HospitalSpecialty(c *gin.Context) {
	startTime := time.Now()

	data, err := h.catalog.HospitalSpecialty(c.Request.Context(), c.Param("hospital"), c.Param("specialty"))
	if err != nil {
		c.JSON(statusFor(err), model.HospitalSpecialtyResponse{
			Success: false,
			Error:   err.Error(),
			Took:    time.Since(startTime).Milliseconds(),
		})
		return
	}

	c.JSON(http.StatusOK, model.HospitalSpecialtyResponse{
		Success: true,
		Data:    data,
		Took:    time.Since(startTime).Milliseconds(),
	})
}

// Stats handles GET /api/v1/stats
func (h *CatalogHandler) Stats(c *gin.Context) {
	stats, err := h.catalog.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
