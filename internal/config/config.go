package config

import (
	"os"
	"strconv"
)

// Config holds application configuration values.
type Config struct {
	Secret       string
	DatabaseDSN  string
	HTTPPort     string
	InventoryCSV string
}

// Load reads configuration from environment variables with reasonable
// defaults for local development.
func Load() Config {
	cfg := Config{
		Secret:       getenv("SECRET", "dev_secret"),
		DatabaseDSN:  getenv("DATABASE_DSN", "clinic.db"),
		HTTPPort:     getenv("HTTP_PORT", "8080"),
		InventoryCSV: getenv("INVENTORY_CSV", "assets/inventory.csv"),
	}

	if _, err := strconv.Atoi(cfg.HTTPPort); err != nil {
		cfg.HTTPPort = "8080"
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
