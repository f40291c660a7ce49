// Package profile loads structured resume data from disk.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"resumechat/internal/domain"
)

// Load reads a profile from a YAML or JSON file, chosen by extension.
func Load(path string) (domain.Profile, error) {
	var p domain.Profile

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read profile: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &p); err != nil {
			return p, fmt.Errorf("parse profile %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return p, fmt.Errorf("parse profile %s: %w", path, err)
		}
	}

	if err := Validate(p); err != nil {
		return p, err
	}
	return p, nil
}

// Validate checks the minimum a profile needs before it can answer
// anything useful.
func Validate(p domain.Profile) error {
	if strings.TrimSpace(p.Basics.Name) == "" {
		return fmt.Errorf("profile: basics.name is required")
	}
	return nil
}
