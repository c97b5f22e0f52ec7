// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the process configuration, loadable from a JSON file with
// environment overrides applied afterwards. All fields are optional; missing
// values use defaults or CLI flags.
type Config struct {
	// Data inputs
	ResumesCSV string `json:"resumes_csv,omitempty"` // Path to candidate CSV
	TeamsCSV   string `json:"teams_csv,omitempty"`   // Path to team CSV
	RoleFile   string `json:"role_file,omitempty"`   // Path to role requirements JSON

	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // Optional Postgres URL for search auditing

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Development-level logging
}

// LoadConfig loads configuration from a JSON file.
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

// ApplyEnv overlays environment variables onto the config. Environment wins
// over file values.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("RESUMES_CSV"); v != "" {
		c.ResumesCSV = v
	}
	if v := os.Getenv("TEAMS_CSV"); v != "" {
		c.TeamsCSV = v
	}
	if v := os.Getenv("ROLE_FILE"); v != "" {
		c.RoleFile = v
	}
}

// Validate checks that configured values are usable.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	for _, input := range []struct{ name, path string }{
		{"resumes_csv", c.ResumesCSV},
		{"teams_csv", c.TeamsCSV},
		{"role_file", c.RoleFile},
	} {
		if input.path == "" {
			continue
		}
		if _, err := os.Stat(input.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", input.name, input.path)
		}
	}
	return nil
}
