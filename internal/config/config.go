package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Listing  ListingConfig
	Carousel CarouselConfig
	Contact  ContactConfig
	Cache    CacheConfig
	Logging  LoggingConfig
}

// Supported catalog stores
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig holds catalog store configuration
type DatabaseConfig struct {
	Driver             string
	DSN                string // full connection string (takes precedence)
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	SeedOnStart        bool
	CatalogFile        string // YAML catalog replacing the bundled one
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
	AllowedMethods string
	AllowedHeaders string
	StaticDir      string
	SiteName       string
}

// ListingConfig holds provider listing configuration
type ListingConfig struct {
	PageSize    int
	MaxPageSize int
}

// CarouselConfig holds slide breakpoints. Breakpoints[i] is the first width
// that shows i+2 items per slide.
type CarouselConfig struct {
	Breakpoints  []int
	DefaultWidth int
}

// ContactConfig holds messaging and lead capture configuration
type ContactConfig struct {
	WhatsAppPhone      string
	WhatsAppTemplate   string
	QuoteRatePerMinute int
	QuoteBurst         int
}

// CacheConfig holds response cache configuration
type CacheConfig struct {
	RedisURL   string
	TTLSeconds int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Database: DatabaseConfig{
			Driver:             strings.ToLower(getEnv("DATABASE_DRIVER", DriverMemory)),
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "medtour"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 25),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 5),
			SeedOnStart:        getEnvAsBool("SEED_ON_START", false),
			CatalogFile:        getEnv("CATALOG_FILE", ""),
		},
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			AllowedMethods: getEnv("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS"),
			AllowedHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
			StaticDir:      getEnv("STATIC_DIR", "./cmd/server/web/static"),
			SiteName:       getEnv("SITE_NAME", "MedTour"),
		},
		Listing: ListingConfig{
			PageSize:    getEnvAsInt("LISTING_PAGE_SIZE", 3),
			MaxPageSize: getEnvAsInt("LISTING_MAX_PAGE_SIZE", 24),
		},
		Carousel: CarouselConfig{
			Breakpoints:  getEnvAsIntSlice("CAROUSEL_BREAKPOINTS", []int{768, 1024, 1280}),
			DefaultWidth: getEnvAsInt("CAROUSEL_DEFAULT_WIDTH", 1280),
		},
		Contact: ContactConfig{
			WhatsAppPhone:      getEnv("WHATSAPP_PHONE", "+91 98765 43210"),
			WhatsAppTemplate:   getEnv("WHATSAPP_TEMPLATE", "Hello, I would like to know more about {service} at {provider}."),
			QuoteRatePerMinute: getEnvAsInt("QUOTE_RATE_PER_MINUTE", 10),
			QuoteBurst:         getEnvAsInt("QUOTE_BURST", 5),
		},
		Cache: CacheConfig{
			RedisURL:   getEnv("REDIS_URL", ""),
			TTLSeconds: getEnvAsInt("CACHE_TTL_SECONDS", 300),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise surface as odd runtime behaviour
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMemory, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}
	if c.Listing.PageSize <= 0 {
		return fmt.Errorf("LISTING_PAGE_SIZE must be positive, got %d", c.Listing.PageSize)
	}
	if c.Listing.MaxPageSize < c.Listing.PageSize {
		return fmt.Errorf("LISTING_MAX_PAGE_SIZE (%d) is below LISTING_PAGE_SIZE (%d)", c.Listing.MaxPageSize, c.Listing.PageSize)
	}
	return ValidateBreakpoints("CAROUSEL_BREAKPOINTS", c.Carousel.Breakpoints)
}

// ValidateBreakpoints checks that carousel breakpoints are positive and
// strictly increasing. name labels the setting in the error.
func ValidateBreakpoints(name string, breakpoints []int) error {
	prev := 0
	for _, bp := range breakpoints {
		if bp <= prev {
			return fmt.Errorf("%s must be positive and strictly increasing, got %v", name, breakpoints)
		}
		prev = bp
	}
	return nil
}

// GetDSN returns the connection string for the configured SQL driver
func (c *Config) GetDSN() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}
	if c.Database.Driver == DriverSQLite {
		return "file:medtour.db?_pragma=busy_timeout(5000)"
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logrus.Warnf("Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		logrus.Warnf("Invalid boolean value for %s, using default %t", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsIntSlice(key string, defaultValue []int) []int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var out []int
	for _, part := range strings.Split(valueStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			logrus.Warnf("Invalid integer list for %s, using default %v", key, defaultValue)
			return defaultValue
		}
		out = append(out, v)
	}
	return out
}
