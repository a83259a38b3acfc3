// Package config loads the optional parkassist.yaml configuration:
// default car dimensions, maneuver type, driving mode, and transcript
// settings. Missing fields fall back to defaults; zero car dimensions
// mean "prompt interactively".
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel   string           `yaml:"log_level"`
	Car        CarConfig        `yaml:"car"`
	Parking    ParkingConfig    `yaml:"parking"`
	Transcript TranscriptConfig `yaml:"transcript"`
}

type CarConfig struct {
	Length float64 `yaml:"length"`
	Width  float64 `yaml:"width"`
}

type ParkingConfig struct {
	// Type is "parallel", "perpendicular", or "" to ask at startup.
	Type string `yaml:"type"`
	// Mode is "forward", "reverse", or "" to ask at startup.
	Mode string `yaml:"mode"`
}

type TranscriptConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

func Default() *Config {
	return &Config{
		LogLevel:   "info",
		Transcript: TranscriptConfig{Enabled: true},
	}
}

// Load reads a YAML config file over the defaults. A missing file is
// not an error when the path is the default location.
func Load(path string) (*Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(content)) == "" {
		return nil, errors.New("config file is empty")
	}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

func Validate(cfg *Config) error {
	if cfg.Car.Length < 0 || cfg.Car.Width < 0 {
		return errors.New("car dimensions must not be negative")
	}
	switch strings.ToLower(cfg.Parking.Type) {
	case "", "parallel", "perpendicular":
	default:
		return fmt.Errorf("parking.type must be parallel or perpendicular, got %q", cfg.Parking.Type)
	}
	switch strings.ToLower(cfg.Parking.Mode) {
	case "", "forward", "reverse":
	default:
		return fmt.Errorf("parking.mode must be forward or reverse, got %q", cfg.Parking.Mode)
	}
	return nil
}
