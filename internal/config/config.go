// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"

	"practice-pricing/core/pricing"
	"practice-pricing/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Server contains HTTP server settings
	Server ServerConfig `json:"server"`

	// Database is the Postgres connection string for the catalog store
	Database DatabaseConfig `json:"database"`

	// Catalog is the HCL catalog file used when no database is configured
	Catalog CatalogConfig `json:"catalog"`

	// Pricing contains tenant overrides layered onto the engine defaults
	Pricing pricing.Overrides `json:"pricing"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Listen is the bind address
	Listen string `json:"listen"`
}

// DatabaseConfig contains catalog store settings
type DatabaseConfig struct {
	// URL is the Postgres connection string
	URL string `json:"url"`
}

// CatalogConfig contains file-backed catalog settings
type CatalogConfig struct {
	// Path is the HCL catalog file path
	Path string `json:"path"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Listen: ":8080",
		},
		Catalog: CatalogConfig{
			Path: "catalog.hcl",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save writes the configuration to a file
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FromEnv applies environment overrides. DATABASE_URL and LISTEN_ADDR
// take precedence over file values.
func (c *Config) FromEnv() {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		c.Database.URL = url
	}
	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		c.Server.Listen = addr
	}
	if path := os.Getenv("CATALOG_PATH"); path != "" {
		c.Catalog.Path = path
	}
}

// EngineConfig returns the merged engine configuration
func (c *Config) EngineConfig() pricing.Config {
	return pricing.Defaults().Merge(c.Pricing)
}
