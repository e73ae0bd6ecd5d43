// ABOUTME: Centralized configuration for the wine chat service
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
)

// localDataset is the conventional dataset filename the scraper writes next
// to the process working directory.
const localDataset = "enriched_wine_data_safari.csv"

// Config holds all configuration for the wine chat service
type Config struct {
	// Dataset settings
	DatasetPath string

	// HTTP host settings
	ListenAddr string
	StaticDir  string

	// Engine settings
	MaxResults int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		DatasetPath: getEnv("WINECHAT_DATASET", DefaultDatasetPath()),
		ListenAddr:  getEnv("WINECHAT_ADDR", ":5001"),
		StaticDir:   getEnv("WINECHAT_STATIC_DIR", "static"),
		MaxResults:  getEnvInt("WINECHAT_MAX_RESULTS", 5),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.DatasetPath == "" {
		return fmt.Errorf("WINECHAT_DATASET must not be empty")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("WINECHAT_ADDR must not be empty")
	}
	if c.MaxResults < 1 || c.MaxResults > 20 {
		return fmt.Errorf("WINECHAT_MAX_RESULTS must be 1-20, got %d", c.MaxResults)
	}
	return nil
}

// DefaultDatasetPath prefers a dataset in the working directory, falling back
// to the XDG data directory. Respects XDG_DATA_HOME override for testing.
func DefaultDatasetPath() string {
	if _, err := os.Stat(localDataset); err == nil {
		return localDataset
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = xdg.DataHome
	}
	return filepath.Join(dataHome, "winechat", localDataset)
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
