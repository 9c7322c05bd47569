package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medtour/internal/cache"
	"medtour/internal/config"
	"medtour/internal/handler"
	"medtour/internal/model"
	"medtour/internal/repository"
	"medtour/internal/service"
	"medtour/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// catalogStore is a CatalogRepository that can be seeded and closed
type catalogStore interface {
	service.CatalogRepository
	Seed(ctx context.Context, catalog *model.Catalog) error
	Close() error
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		utils.Log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := utils.SetupLogger(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		utils.Log.Fatalf("Failed to configure logging: %v", err)
	}

	utils.Log.Infof("%s medical travel catalog", cfg.Server.SiteName)
	utils.Log.WithFields(logrus.Fields{
		"version":    Version,
		"build_time": BuildTime,
		"git_commit": GitCommit,
	}).Info("Build info")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	ctx := context.Background()

	repo, err := openRepository(ctx, cfg)
	if err != nil {
		utils.Log.Fatalf("Failed to open catalog store: %v", err)
	}
	defer repo.Close()

	respCache := openCache(ctx, cfg)
	defer respCache.Close()

	// Initialize services
	dispatcher := service.NewContactDispatcher(cfg.Contact.WhatsAppPhone, cfg.Contact.WhatsAppTemplate)
	catalog := service.NewCatalogService(repo, dispatcher, respCache, service.CatalogOptions{
		PageSize:     cfg.Listing.PageSize,
		MaxPageSize:  cfg.Listing.MaxPageSize,
		Breakpoints:  cfg.Carousel.Breakpoints,
		DefaultWidth: cfg.Carousel.DefaultWidth,
		CacheTTL:     time.Duration(cfg.Cache.TTLSeconds) * time.Second,
	})

	limiter := handler.NewRateLimiter(cfg.Contact.QuoteRatePerMinute, cfg.Contact.QuoteBurst)
	defer limiter.Stop()

	utils.Log.Info("✅ Services initialized")

	router := newRouter(cfg, catalog, dispatcher, limiter)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	utils.Log.Infof("🚀 Starting server on %s", addr)
	utils.Log.Infof("📝 API: http://localhost:%d/api/v1", cfg.Server.Port)
	utils.Log.Infof("🌐 Web UI: http://localhost:%d", cfg.Server.Port)

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Log.Info("🛑 Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Log.WithError(err).Error("Server forced to shut down")
	}
	utils.Log.Info("✅ Server stopped")
}

// loadCatalog returns the catalog named by CATALOG_FILE, or the bundled one
func loadCatalog(cfg *config.Config) (*model.Catalog, error) {
	if cfg.Database.CatalogFile != "" {
		return repository.LoadCatalogFile(cfg.Database.CatalogFile)
	}
	return repository.DefaultCatalog()
}

// openRepository builds the configured catalog store. The memory store is
// always seeded; SQL stores are migrated and seeded only on request.
func openRepository(ctx context.Context, cfg *config.Config) (catalogStore, error) {
	if cfg.Database.Driver == config.DriverMemory {
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return nil, err
		}
		stats := repository.Stats(catalog)
		utils.Log.Infof("✅ Loaded in-memory catalog (%d providers, %d hospitals)", stats.Providers, stats.Hospitals)
		return repository.NewMemoryRepository(catalog), nil
	}

	repo, err := repository.NewSQLRepository(
		cfg.Database.Driver,
		cfg.GetDSN(),
		cfg.Database.MaxConnections,
		cfg.Database.MaxIdleConnections,
	)
	if err != nil {
		return nil, err
	}
	if err := repo.Migrate(ctx); err != nil {
		repo.Close()
		return nil, err
	}
	utils.Log.Infof("✅ Connected to %s catalog store", cfg.Database.Driver)

	if cfg.Database.SeedOnStart {
		catalog, err := loadCatalog(cfg)
		if err != nil {
			repo.Close()
			return nil, err
		}
		if err := repo.Seed(ctx, catalog); err != nil {
			repo.Close()
			return nil, err
		}
		utils.Log.Info("✅ Catalog seeded")
	}
	return repo, nil
}

// openCache connects to Redis when REDIS_URL is set and falls back to the
// in-process cache when it is unset or unreachable.
func openCache(ctx context.Context, cfg *config.Config) cache.Cache {
	if cfg.Cache.RedisURL == "" {
		return cache.NewMemoryCache()
	}

	rc, err := cache.NewRedisCache(cfg.Cache.RedisURL)
	if err != nil {
		utils.Log.WithError(err).Warn("⚠️  Redis misconfigured, using in-memory cache")
		return cache.NewMemoryCache()
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		rc.Close()
		utils.Log.WithError(err).Warn("⚠️  Redis unavailable, using in-memory cache")
		return cache.NewMemoryCache()
	}
	utils.Log.Info("✅ Connected to Redis cache")
	return rc
}
