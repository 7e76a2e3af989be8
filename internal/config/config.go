package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Get returns the value of an environment variable, or fallback when the
// variable is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Scenario holds simulation defaults loaded from a YAML file. Zero-valued
// fields mean "not set"; callers keep their own defaults for those.
type Scenario struct {
	Map          string `yaml:"map"`
	Algorithm    string `yaml:"algorithm"`
	Heuristic    string `yaml:"heuristic"`
	FuelCapacity int    `yaml:"fuel_capacity"`
	MaxSteps     int    `yaml:"max_steps"`
	Seed         int64  `yaml:"seed"`
}

// LoadScenario reads a scenario file.
func LoadScenario(path string) (Scenario, error) {
	var s Scenario

	raw, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("load scenario: %w", err)
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("load scenario %q: %w", path, err)
	}
	return s, nil
}
