// Package prefs persists process-wide company preferences as a JSON
// key/value file. Preferences are loaded once at startup and written back
// only on an explicit save.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Keys lists the preference keys the document renderer substitutes into
// invoice templates
var Keys = []string{
	"company_name",
	"company_address",
	"company_city",
	"company_state",
	"company_postal",
	"gst_number",
	"company_phone",
	"company_email",
	"company_website",
}

// KnownKey reports whether key is one of the supported preference keys
func KnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Store reads and writes the preferences file
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the preferences file. A missing file is not an error; it
// yields an empty mapping.
func (s *Store) Load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	values := make(map[string]string)
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse preferences: %w", err)
	}

	return values, nil
}

// Save writes the full mapping back to disk, creating parent directories
// as needed
func (s *Store) Save(values map[string]string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	return os.WriteFile(s.path, data, 0644)
}
