// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Catalog sources
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	CatalogFile string `json:"catalog_file,omitempty"` // Path to a JSON catalog file

	// Scoring
	APIKey string `json:"api_key,omitempty"` // Gemini API key
	TopN   int    `json:"top_n,omitempty"`   // Default result count for ranking

	// Thresholds
	HighStipendThreshold int    `json:"high_stipend_threshold,omitempty"` // Stipend for the High Stipend badge
	RemoteCategory       string `json:"remote_category,omitempty"`        // Category treated as remote work
	MaxPrioritySkills    int    `json:"max_priority_skills,omitempty"`    // Priority list cap in gap analysis
	ResourcesPerSkill    int    `json:"resources_per_skill,omitempty"`    // Resources bound per priority skill

	// Behavior
	Port int `json:"port,omitempty"` // HTTP server port
}

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

// Validate checks that the configuration has valid values.
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}
	if c.HighStipendThreshold < 0 {
		return fmt.Errorf("config error: 'high_stipend_threshold' must be non-negative")
	}
	if c.MaxPrioritySkills < 0 {
		return fmt.Errorf("config error: 'max_priority_skills' must be non-negative")
	}
	if c.ResourcesPerSkill < 0 {
		return fmt.Errorf("config error: 'resources_per_skill' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}

	if c.CatalogFile != "" {
		if _, err := os.Stat(c.CatalogFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.CatalogFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.CatalogFile == "" {
		result.CatalogFile = defaults.CatalogFile
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.RemoteCategory == "" {
		result.RemoteCategory = defaults.RemoteCategory
	}
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.HighStipendThreshold == 0 {
		result.HighStipendThreshold = defaults.HighStipendThreshold
	}
	if result.MaxPrioritySkills == 0 {
		result.MaxPrioritySkills = defaults.MaxPrioritySkills
	}
	if result.ResourcesPerSkill == 0 {
		result.ResourcesPerSkill = defaults.ResourcesPerSkill
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	return result
}

// Defaults returns the built-in configuration defaults.
func Defaults() Config {
	return Config{
		TopN:                 10,
		HighStipendThreshold: 20000,
		RemoteCategory:       "remote",
		MaxPrioritySkills:    6,
		ResourcesPerSkill:    2,
		Port:                 8080,
	}
}
