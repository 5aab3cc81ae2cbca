// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// defaultPort is used when no port is configured anywhere.
const defaultPort = 8080

// Config holds runtime configuration. All fields are optional in the file;
// missing values fall back to environment variables, then defaults.
type Config struct {
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key; empty disables LLM extraction
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed records in CLI mode
}

// Load reads configuration from an optional JSON file and fills gaps from
// the environment (PORT, DATABASE_URL, GEMINI_API_KEY). path may be empty.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	if cfg.Port == 0 {
		if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			cfg.Port = port
		}
	}
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	return &cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d is out of range", c.Port)
	}
	return nil
}
