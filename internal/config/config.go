// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Environment variable names recognized by FromEnv.
const (
	EnvAPIKey       = "GEMINI_API_KEY"
	EnvTaxonomyPath = "NEURALSCAN_TAXONOMY"
	EnvPort         = "PORT"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags.
type Config struct {
	APIKey         string  `json:"api_key,omitempty"`         // Embedding API key
	EmbeddingModel string  `json:"embedding_model,omitempty"` // Embedding model name
	TaxonomyPath   string  `json:"taxonomy,omitempty"`        // Path to a custom taxonomy JSON file
	Port           int     `json:"port,omitempty"`            // HTTP server port
	TopK           int     `json:"top_k,omitempty"`           // Sentence matches per job requirement
	MinSimilarity  float64 `json:"min_similarity,omitempty"`  // Informational; matcher threshold is fixed
	UseBrowser     bool    `json:"use_browser,omitempty"`     // Headless browser fallback for job URLs
	Verbose        bool    `json:"verbose,omitempty"`         // Print detailed output
}

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
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

// FromEnv returns a Config populated from environment variables.
func FromEnv() Config {
	cfg := Config{
		APIKey:       os.Getenv(EnvAPIKey),
		TaxonomyPath: os.Getenv(EnvTaxonomyPath),
	}
	if port, err := strconv.Atoi(os.Getenv(EnvPort)); err == nil && port > 0 {
		cfg.Port = port
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.TopK < 0 {
		return fmt.Errorf("config error: 'top_k' must be non-negative")
	}
	if c.MinSimilarity < 0 || c.MinSimilarity > 1 {
		return fmt.Errorf("config error: 'min_similarity' must be in [0,1]")
	}
	if c.TaxonomyPath != "" {
		if _, err := os.Stat(c.TaxonomyPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.TaxonomyPath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values under CLI flags and env vars.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.TaxonomyPath == "" {
		result.TaxonomyPath = defaults.TaxonomyPath
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.TopK == 0 {
		result.TopK = defaults.TopK
	}
	if result.MinSimilarity == 0 {
		result.MinSimilarity = defaults.MinSimilarity
	}
	if !result.UseBrowser {
		result.UseBrowser = defaults.UseBrowser
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
