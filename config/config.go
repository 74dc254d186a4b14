// Package config provides configuration loading and access for the engine.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all engine tuning parameters.
type Config struct {
	Leveling  LevelingConfig  `yaml:"leveling"`
	Hunger    HungerConfig    `yaml:"hunger"`
	Rest      RestConfig      `yaml:"rest"`
	Genetics  GeneticsConfig  `yaml:"genetics"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// LevelingConfig holds experience curve parameters.
type LevelingConfig struct {
	// XPPerLevel scales the threshold for the next level: level * this.
	XPPerLevel int `yaml:"xp_per_level" env:"MENAGERIE_XP_PER_LEVEL"`
}

// HungerConfig holds hunger depletion parameters.
type HungerConfig struct {
	Rate float64 `yaml:"rate" env:"MENAGERIE_HUNGER_RATE"` // Hunger lost per second before trait scaling
	Max  float64 `yaml:"max"`                              // Starting and maximum hunger
}

// RestConfig holds resting parameters.
type RestConfig struct {
	HealFraction float64 `yaml:"heal_fraction"` // Fraction of max HP healed per rest
}

// GeneticsConfig holds breeding parameters.
type GeneticsConfig struct {
	MutationRate float64 `yaml:"mutation_rate" env:"MENAGERIE_MUTATION_RATE"` // Probability in [0,1] that an inherited trait mutates
}

// TelemetryConfig holds lifecycle telemetry parameters.
type TelemetryConfig struct {
	WindowGenerations int `yaml:"window_generations"` // Generations aggregated per stats window
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults and applying MENAGERIE_* environment overrides last.
// If path is empty, only defaults and the environment are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Environment overrides win over both defaults and file
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment overrides: %w", err)
	}

	return cfg, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
