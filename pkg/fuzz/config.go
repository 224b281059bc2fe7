package fuzz

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls random world generation: how wide the drag row is and
// how densely entities are sprinkled along it.
type Config struct {
	WorldWidth    int     `yaml:"world_width"`
	EntityDensity float64 `yaml:"entity_density"`
}

// DefaultConfig is a 20-tile row at 30% entity density.
func DefaultConfig() Config {
	return Config{WorldWidth: 20, EntityDensity: 0.3}
}

// LoadConfig reads a Config from a YAML file, starting from
// DefaultConfig so an omitted field keeps its default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("fuzz: reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("fuzz: invalid config yaml: %w", err)
	}
	return cfg, nil
}
