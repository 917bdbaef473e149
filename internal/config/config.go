// Package config loads the BeOnTrack configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harunkazanli9/beontrack/internal/geometry"
)

const (
	DefaultDirName  = ".beontrack"
	DefaultFilename = "config.yaml"
)

// Store kinds
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config is the full configuration
type Config struct {
	Journey Journey         `yaml:"journey"`
	Path    geometry.Params `yaml:"path"`
	Storage Storage         `yaml:"storage"`
}

// Journey controls how workouts translate into movement and celebrations
type Journey struct {
	StepsPerWorkout float64 `yaml:"stepsPerWorkout"`
	AvatarSpeed     float64 `yaml:"avatarSpeed"`
	PopupSeconds    float64 `yaml:"popupSeconds"`
	Notifications   bool    `yaml:"notifications"`
}

// Storage selects where the workout log is persisted
type Storage struct {
	Kind    string `yaml:"kind"`
	DataDir string `yaml:"dataDir"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Journey: Journey{
			StepsPerWorkout: 50,
			AvatarSpeed:     3,
			PopupSeconds:    2.5,
			Notifications:   false,
		},
		Path: geometry.DefaultParams(),
		Storage: Storage{
			Kind:    StoreJSON,
			DataDir: DefaultDataDir(),
		},
	}
}

// DefaultDataDir returns ~/.beontrack, or .beontrack when the home
// directory is unknown
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultDirName
	}
	return filepath.Join(home, DefaultDirName)
}

// DefaultPath returns the default location of the config file
func DefaultPath() string {
	return filepath.Join(DefaultDataDir(), DefaultFilename)
}

// Load reads the config at path on top of the defaults. A missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Storage.DataDir = expandHome(cfg.Storage.DataDir)

	return cfg, cfg.Validate()
}

// Save writes the config to path, creating the directory if needed
func Save(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks the numeric parameters and the store kind
func (c Config) Validate() error {
	positive := map[string]float64{
		"journey.stepsPerWorkout": c.Journey.StepsPerWorkout,
		"journey.avatarSpeed":     c.Journey.AvatarSpeed,
		"path.segmentLength":      c.Path.SegmentLength,
		"path.forwardScale":       c.Path.ForwardScale,
	}
	for field, v := range positive {
		if v <= 0 {
			return fmt.Errorf("config %s must be positive, got %v", field, v)
		}
	}
	nonNegative := map[string]float64{
		"journey.popupSeconds": c.Journey.PopupSeconds,
		"path.lookahead":       c.Path.Lookahead,
		"path.minimumLength":   c.Path.MinimumLength,
	}
	for field, v := range nonNegative {
		if v < 0 {
			return fmt.Errorf("config %s cannot be negative, got %v", field, v)
		}
	}

	switch c.Storage.Kind {
	case StoreJSON, StoreSQLite:
	default:
		return fmt.Errorf("config storage.kind: unknown store %q (must be one of: %s, %s)", c.Storage.Kind, StoreJSON, StoreSQLite)
	}
	if strings.TrimSpace(c.Storage.DataDir) == "" {
		return fmt.Errorf("config storage.dataDir is required")
	}
	return nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
