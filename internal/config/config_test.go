package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("LISTING_PAGE_SIZE", "")
	t.Setenv("CAROUSEL_BREAKPOINTS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Database.Driver)
	assert.Equal(t, 3, cfg.Listing.PageSize)
	assert.Equal(t, []int{768, 1024, 1280}, cfg.Carousel.Breakpoints)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("LISTING_PAGE_SIZE", "6")
	t.Setenv("CAROUSEL_BREAKPOINTS", "600, 900")
	t.Setenv("SEED_ON_START", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, 6, cfg.Listing.PageSize)
	assert.Equal(t, []int{600, 900}, cfg.Carousel.Breakpoints)
	assert.True(t, cfg.Database.SeedOnStart)
	assert.Contains(t, cfg.GetDSN(), "file:")
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database: DatabaseConfig{Driver: DriverMemory},
			Listing:  ListingConfig{PageSize: 3, MaxPageSize: 24},
			Carousel: CarouselConfig{Breakpoints: []int{768, 1024, 1280}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mongo" }, wantErr: true},
		{name: "zero page size", mutate: func(c *Config) { c.Listing.PageSize = 0 }, wantErr: true},
		{name: "max below page size", mutate: func(c *Config) { c.Listing.MaxPageSize = 2 }, wantErr: true},
		{name: "decreasing breakpoints", mutate: func(c *Config) { c.Carousel.Breakpoints = []int{1024, 768} }, wantErr: true},
		{name: "no breakpoints", mutate: func(c *Config) { c.Carousel.Breakpoints = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBreakpoints(t *testing.T) {
	assert.NoError(t, ValidateBreakpoints("bp", nil))
	assert.NoError(t, ValidateBreakpoints("bp", []int{400, 800}))

	err := ValidateBreakpoints("--breakpoints", []int{800, 800})
	require.Error(t, err)
	assert.Equal(t, "--breakpoints must be positive and strictly increasing, got [800 800]", err.Error())
	assert.Error(t, ValidateBreakpoints("bp", []int{0, 10}))
}

func TestGetDSN_Postgres(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Driver: DriverPostgres, Host: "db", Port: 5433, User: "u", Password: "p", Database: "medtour", SSLMode: "disable",
	}}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=medtour sslmode=disable", cfg.GetDSN())

	cfg.Database.DSN = "postgres://x"
	assert.Equal(t, "postgres://x", cfg.GetDSN())
}
