// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Storage  StorageConfig  `toml:"storage"`
	Calendar CalendarConfig `toml:"calendar"`
	UI       UIConfig       `toml:"ui"`
	Drag     DragConfig     `toml:"drag"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// CalendarConfig holds calendar import settings.
type CalendarConfig struct {
	ICSFiles []string `toml:"ics_files"` // watched .ics files merged into the grid
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme        string `toml:"theme"`         // "mocha", "macchiato", "frappe", "latte"
	DefaultView  string `toml:"default_view"`  // "day" or "week"
	DefaultColor string `toml:"default_color"` // hex color for new events
}

// DragConfig tunes the drag interaction thresholds.
type DragConfig struct {
	MoveThreshold     int `toml:"move_threshold"`      // cells before a press becomes a drag
	DateThreshold     int `toml:"date_threshold"`      // horizontal cells before date follow starts
	ActivationDelayMS int `toml:"activation_delay_ms"` // click vs drag disambiguation delay
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme:        "frappe",
			DefaultView:  "week",
			DefaultColor: "#3b82f6",
		},
		Drag: DragConfig{
			MoveThreshold:     5,
			DateThreshold:     30,
			ActivationDelayMS: 300,
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "schedule.db"
	}
	return filepath.Join(home, ".local", "share", "schedule", "schedule.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "schedule", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	for i, p := range cfg.Calendar.ICSFiles {
		cfg.Calendar.ICSFiles[i] = expandPath(p)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SCHEDULE_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("SCHEDULE_ICS_FILES"); v != "" {
		cfg.Calendar.ICSFiles = strings.Split(v, ",")
	}
	if v := os.Getenv("SCHEDULE_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("SCHEDULE_UI_VIEW"); v != "" {
		cfg.UI.DefaultView = v
	}
	if v := os.Getenv("SCHEDULE_UI_COLOR"); v != "" {
		cfg.UI.DefaultColor = v
	}
	if v := os.Getenv("SCHEDULE_DRAG_MOVE_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Drag.MoveThreshold = n
		}
	}
	if v := os.Getenv("SCHEDULE_DRAG_DATE_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Drag.DateThreshold = n
		}
	}
	if v := os.Getenv("SCHEDULE_DRAG_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Drag.ActivationDelayMS = n
		}
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}

	switch c.UI.DefaultView {
	case "day", "week":
	default:
		return fmt.Errorf("default_view must be \"day\" or \"week\", got %q", c.UI.DefaultView)
	}

	if !hexColorRe.MatchString(c.UI.DefaultColor) {
		return fmt.Errorf("default_color must be a #rrggbb value, got %q", c.UI.DefaultColor)
	}

	if c.Drag.MoveThreshold <= 0 {
		return errors.New("move_threshold must be positive")
	}
	if c.Drag.DateThreshold <= c.Drag.MoveThreshold {
		return errors.New("date_threshold must be larger than move_threshold")
	}
	if c.Drag.ActivationDelayMS < 0 {
		return errors.New("activation_delay_ms cannot be negative")
	}

	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
