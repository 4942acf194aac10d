package main

import (
	"context"
	"fmt"

	"github.com/surendra-bolla/NeuralScan/internal/config"
	"github.com/surendra-bolla/NeuralScan/internal/embedding"
	"github.com/surendra-bolla/NeuralScan/internal/screening"
	"github.com/surendra-bolla/NeuralScan/internal/taxonomy"
)

// loadConfig resolves configuration with flag > config file > environment
// precedence.
func loadConfig() (config.Config, error) {
	cfg := config.FromEnv()

	if configPath != "" {
		fileCfg, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	if taxonomyPath != "" {
		cfg.TaxonomyPath = taxonomyPath
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadTaxonomy returns the custom taxonomy if one is configured, otherwise
// the built-in default.
func loadTaxonomy(cfg config.Config) (*taxonomy.Taxonomy, error) {
	if cfg.TaxonomyPath == "" {
		return taxonomy.Default(), nil
	}
	tax, err := taxonomy.Load(cfg.TaxonomyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}
	return tax, nil
}

// buildScreener constructs a fully wired Screener. The returned cleanup
// closes the embedding client.
func buildScreener(ctx context.Context, cfg config.Config) (*screening.Screener, func(), error) {
	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("%s environment variable is required", config.EnvAPIKey)
	}

	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return nil, nil, err
	}

	model := cfg.EmbeddingModel
	if model == "" {
		model = embedding.DefaultModel
	}

	embedder, err := embedding.NewGeminiEmbedder(ctx, cfg.APIKey, model)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create embedding client: %w", err)
	}

	opts := []screening.Option{}
	if cfg.TopK > 0 {
		opts = append(opts, screening.WithTopK(cfg.TopK))
	}

	cleanup := func() { _ = embedder.Close() }
	return screening.New(tax, embedder, opts...), cleanup, nil
}
