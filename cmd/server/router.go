package main

import (
	"net/http"
	"strings"

	"medtour/internal/config"
	"medtour/internal/handler"
	"medtour/internal/service"
	"medtour/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func newRouter(cfg *config.Config, catalog *service.CatalogService, dispatcher *service.ContactDispatcher, limiter *handler.RateLimiter) *gin.Engine {
	// Initialize handlers
	catalogHandler := handler.NewCatalogHandler(catalog)
	carouselHandler := handler.NewCarouselHandler(catalog)
	contactHandler := handler.NewContactHandler(catalog, dispatcher)
	quoteHandler := handler.NewQuoteHandler(catalog)
	pages := web.NewHandler(catalog, cfg.Server.SiteName)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = splitList(cfg.Server.AllowedOrigins)
	corsConfig.AllowMethods = splitList(cfg.Server.AllowedMethods)
	corsConfig.AllowHeaders = splitList(cfg.Server.AllowedHeaders)
	router.Use(cors.New(corsConfig))
	router.Use(handler.AcceptViewportHints())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		stats, err := catalog.Stats(c.Request.Context())
		if err != nil {
			status, code = "degraded", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":     status,
			"service":    "medtour",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
			"catalog":    stats,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		// Catalog endpoints
		apiV1.GET("/providers", catalogHandler.ListProviders)
		apiV1.GET("/providers/:id", catalogHandler.GetProvider)
		apiV1.GET("/hospitals", catalogHandler.ListHospitals)
		apiV1.GET("/hospitals/:hospital/:specialty", catalogHandler.HospitalSpecialty)
		apiV1.GET("/specialties", catalogHandler.ListSpecialties)
		apiV1.GET("/stats", catalogHandler.Stats)

		// Carousel endpoint
		apiV1.GET("/carousels/:kind", carouselHandler.Get)

		// Lead endpoints
		apiV1.GET("/contact/whatsapp", limiter.Middleware(), contactHandler.WhatsApp)
		apiV1.POST("/quotes", limiter.Middleware(), quoteHandler.Submit)
	}

	// Server-rendered pages
	pages.Register(router)

	// Serve static files
	// This function is implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router, cfg.Server.StaticDir, pages.NotFound)

	return router
}

// notFound answers unknown API paths with JSON and everything else with page
func notFound(page gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}
		page(c)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
