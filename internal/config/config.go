// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or environment variables.
type Config struct {
	// API
	BaseURL string `json:"base_url,omitempty"` // Marketplace API base URL
	Token   string `json:"token,omitempty"`    // Bearer token for authenticated calls

	// Geo
	GeocoderURL      string  `json:"geocoder_url,omitempty"`      // Geocoding service base URL
	DefaultLatitude  float64 `json:"default_latitude,omitempty"`  // Fallback latitude when device location is unavailable
	DefaultLongitude float64 `json:"default_longitude,omitempty"` // Fallback longitude when device location is unavailable

	// Behavior
	PageSize          int     `json:"page_size,omitempty"`           // Results per page
	TimeoutSeconds    int     `json:"timeout_seconds,omitempty"`     // Per-request timeout
	RequestsPerSecond float64 `json:"requests_per_second,omitempty"` // Client-side rate limit
	Currency          string  `json:"currency,omitempty"`            // Display currency code
	DemoMode          bool    `json:"demo_mode,omitempty"`           // Serve canned fixture data instead of calling the API
	StrictSchemas     bool    `json:"strict_schemas,omitempty"`      // Reject responses that fail schema validation
	Verbose           bool    `json:"verbose,omitempty"`             // Print detailed debug information
}

// Environment variable names recognized by FromEnv.
const (
	EnvBaseURL     = "GIGMATE_BASE_URL"
	EnvToken       = "GIGMATE_TOKEN"
	EnvGeocoderURL = "GIGMATE_GEOCODER_URL"
	EnvDemoMode    = "GIGMATE_DEMO"
)

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. Values read
// here sit between the config file and CLI flags in precedence.
func FromEnv() Config {
	cfg := Config{
		BaseURL:     os.Getenv(EnvBaseURL),
		Token:       os.Getenv(EnvToken),
		GeocoderURL: os.Getenv(EnvGeocoderURL),
	}
	if raw := os.Getenv(EnvDemoMode); raw != "" {
		if demo, err := strconv.ParseBool(raw); err == nil {
			cfg.DemoMode = demo
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.PageSize < 0 {
		return fmt.Errorf("config error: 'page_size' must be non-negative")
	}
	if c.PageSize > 100 {
		return fmt.Errorf("config error: 'page_size' must not exceed 100")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("config error: 'requests_per_second' must be non-negative")
	}
	if c.DefaultLatitude < -90 || c.DefaultLatitude > 90 {
		return fmt.Errorf("config error: 'default_latitude' must be between -90 and 90")
	}
	if c.DefaultLongitude < -180 || c.DefaultLongitude > 180 {
		return fmt.Errorf("config error: 'default_longitude' must be between -180 and 180")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.Token == "" {
		result.Token = defaults.Token
	}
	if result.GeocoderURL == "" {
		result.GeocoderURL = defaults.GeocoderURL
	}
	if result.Currency == "" {
		result.Currency = defaults.Currency
	}

	// Numeric fields: use default if zero
	if result.PageSize == 0 {
		result.PageSize = defaults.PageSize
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.RequestsPerSecond == 0 {
		result.RequestsPerSecond = defaults.RequestsPerSecond
	}
	if result.DefaultLatitude == 0 {
		result.DefaultLatitude = defaults.DefaultLatitude
	}
	if result.DefaultLongitude == 0 {
		result.DefaultLongitude = defaults.DefaultLongitude
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
