// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Dataset resolution and small formatting helpers
package commands

import (
	"fmt"
	"sort"

	"github.com/eagles/winechat/internal/catalog"
	"github.com/eagles/winechat/internal/config"
)

// resolveDatasetPath returns the dataset location, preferring the --dataset
// flag over the environment-derived default.
func resolveDatasetPath() (string, error) {
	if datasetFlag != "" {
		return datasetFlag, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("loading config: %w", err)
	}
	return cfg.DatasetPath, nil
}

// loadCatalog loads the wine catalog from the resolved dataset path.
func loadCatalog() (*catalog.Catalog, error) {
	path, err := resolveDatasetPath()
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return cat, nil
}

// sortedKeys returns a count map's keys in alphabetical order for stable
// display.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}
