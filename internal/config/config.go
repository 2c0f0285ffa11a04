// Package config loads and saves the railway-timeline settings file.
//
// The file lives at ~/.railway-timeline/config.json. Comments and trailing
// commas are accepted, so users can annotate their settings.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/jsonc"

	"github.com/AnatoleLucet/railway-timeline/internal/logging"
)

const (
	configDirName  = ".railway-timeline"
	configFileName = "config.json"

	// TokenEnv overrides the api_key setting when set.
	TokenEnv = "RAILWAY_API_TOKEN"

	DefaultPixelsPerDay    = 100
	DefaultZoomSensitivity = 100
	DefaultRefreshInterval = time.Minute
)

var ErrNotConfigured = errors.New("railway-timeline is not configured")

var log = logging.New("config")

// Config stores user-defined railway-timeline settings.
type Config struct {
	APIKey        string `json:"api_key,omitempty"`
	ProjectID     string `json:"project_id,omitempty"`
	EnvironmentID string `json:"environment_id,omitempty"`

	// DataFile points at an offline YAML dataset. When set it takes
	// precedence over the Railway API.
	DataFile string `json:"data_file,omitempty"`

	PixelsPerDay    float64 `json:"pixels_per_day,omitempty"`
	ZoomSensitivity float64 `json:"zoom_sensitivity,omitempty"`

	// RefreshInterval is a Go duration string ("30s", "5m"). "0" disables
	// periodic refresh.
	RefreshInterval string `json:"refresh_interval,omitempty"`

	// Keybindings maps action names to a replacement key.
	Keybindings map[string]string `json:"keybindings,omitempty"`
}

// Default returns a configuration with every optional value filled in.
func Default() Config {
	return Config{
		PixelsPerDay:    DefaultPixelsPerDay,
		ZoomSensitivity: DefaultZoomSensitivity,
		RefreshInterval: DefaultRefreshInterval.String(),
	}
}

// ConfigPath returns the configuration file path.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Exists reports whether the config file exists.
func Exists() (bool, error) {
	path, err := ConfigPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat config path: %w", err)
}

// Load reads, normalizes, and validates the saved configuration. A missing
// file yields ErrNotConfigured.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, ErrNotConfigured
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg, err = Normalize(cfg)
	if err != nil {
		return Config{}, err
	}
	log.Debug("loaded config", "path", path)
	return applyEnv(cfg), nil
}

// LoadOrDefault behaves like Load but returns Default when no file exists.
func LoadOrDefault() (Config, error) {
	cfg, err := Load()
	if errors.Is(err, ErrNotConfigured) {
		cfg, err = Normalize(Default())
		return applyEnv(cfg), err
	}
	return cfg, err
}

// applyEnv lets RAILWAY_API_TOKEN replace the stored api_key. Save never
// sees the override.
func applyEnv(cfg Config) Config {
	if token := strings.TrimSpace(os.Getenv(TokenEnv)); token != "" {
		cfg.APIKey = token
	}
	return cfg
}

// Save writes configuration to disk.
func Save(cfg Config) error {
	cfg, err := Normalize(cfg)
	if err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	log.Info("saved config", "path", path)
	return nil
}

// Normalize fills defaults and expands the data file path.
func Normalize(cfg Config) (Config, error) {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.ProjectID = strings.TrimSpace(cfg.ProjectID)
	cfg.EnvironmentID = strings.TrimSpace(cfg.EnvironmentID)

	if strings.TrimSpace(cfg.DataFile) != "" {
		path, err := NormalizePath(cfg.DataFile)
		if err != nil {
			return Config{}, fmt.Errorf("invalid data_file: %w", err)
		}
		cfg.DataFile = path
	}

	if cfg.PixelsPerDay < 0 {
		return Config{}, fmt.Errorf("invalid pixels_per_day: %v", cfg.PixelsPerDay)
	}
	if cfg.PixelsPerDay == 0 {
		cfg.PixelsPerDay = DefaultPixelsPerDay
	}
	if cfg.ZoomSensitivity < 0 {
		return Config{}, fmt.Errorf("invalid zoom_sensitivity: %v", cfg.ZoomSensitivity)
	}
	if cfg.ZoomSensitivity == 0 {
		cfg.ZoomSensitivity = DefaultZoomSensitivity
	}

	if strings.TrimSpace(cfg.RefreshInterval) == "" {
		cfg.RefreshInterval = DefaultRefreshInterval.String()
	}
	if _, err := parseInterval(cfg.RefreshInterval); err != nil {
		return Config{}, fmt.Errorf("invalid refresh_interval: %w", err)
	}
	return cfg, nil
}

// Refresh returns the parsed refresh interval. Zero means refresh is off.
func (c Config) Refresh() time.Duration {
	d, err := parseInterval(c.RefreshInterval)
	if err != nil {
		return DefaultRefreshInterval
	}
	return d
}

func parseInterval(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultRefreshInterval, nil
	}
	if value == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", value)
	}
	return d, nil
}

// NormalizePath expands "~" and returns a clean absolute path.
func NormalizePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is required")
	}

	expanded, err := expandHome(trimmed)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}

	return filepath.Clean(abs), nil
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}
	return path, nil
}
