// Package checklist holds the boss catalog, the persisted completion set,
// and the in-memory row table the UI renders.
package checklist

import (
	"encoding/json"
	"fmt"
	"os"
)

// RegionEntry is one catalog record: a region and its ordered boss list.
type RegionEntry struct {
	Region string   `json:"region"`
	Bosses []string `json:"bosses"`
}

// LoadCatalog reads and parses the boss catalog. The catalog is required
// input: a missing or malformed file is an error, never defaulted.
func LoadCatalog(path string) ([]RegionEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var entries []RegionEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return entries, nil
}
