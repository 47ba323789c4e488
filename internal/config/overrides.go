package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides maps candidate name -> field -> replacement value. The
// commission's export leaves the office column blank for candidates with
// no reported activity in the period, so each cycle ships a small patch
// file instead of code changes. Keys are the literal candidate names as
// filed.
type Overrides map[string]map[string]string

// LoadOverrides reads an override YAML file. An empty path returns an
// empty override set, since most runs outside a reporting deadline need
// no patches.
func LoadOverrides(path string) (Overrides, error) {
	if path == "" {
		return Overrides{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides file: %w", err)
	}

	var overrides Overrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse overrides file %s: %w", path, err)
	}

	return overrides, nil
}
