package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rosters holds the per-chamber district rosters for one election cycle.
// Each outer slice position is a district slot (House district 1 is slot
// 0, Senate district A is slot 0); each inner slice lists the candidate
// names on that district's ballot, exactly as registered with the
// commission. Rosters change only between runs, when ballots change.
type Rosters struct {
	House  [][]string `yaml:"house"`
	Senate [][]string `yaml:"senate"`
}

// LoadRosters reads a roster YAML file.
func LoadRosters(path string) (*Rosters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var rosters Rosters
	if err := yaml.Unmarshal(data, &rosters); err != nil {
		return nil, fmt.Errorf("failed to parse roster file %s: %w", path, err)
	}

	if len(rosters.House) == 0 && len(rosters.Senate) == 0 {
		return nil, fmt.Errorf("roster file %s defines no districts", path)
	}

	return &rosters, nil
}
