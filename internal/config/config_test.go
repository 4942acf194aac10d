package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"api_key": "test-key",
		"port": 9090,
		"top_k": 10,
		"use_browser": true
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 10, cfg.TopK)
	assert.True(t, cfg.UseBrowser)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeConfigFile(t, `{broken`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvPort, "7070")

	cfg := FromEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 7070, cfg.Port)
}

func TestFromEnv_InvalidPortIgnored(t *testing.T) {
	t.Setenv(EnvPort, "not-a-port")

	cfg := FromEnv()
	assert.Equal(t, 0, cfg.Port)
}

func TestValidate_PortRange(t *testing.T) {
	cfg := Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	cfg.Port = 8080
	assert.NoError(t, cfg.Validate())
}

func TestValidate_NegativeTopK(t *testing.T) {
	cfg := Config{TopK: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MinSimilarityRange(t *testing.T) {
	cfg := Config{MinSimilarity: 1.5}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingTaxonomyFile(t *testing.T) {
	cfg := Config{TaxonomyPath: filepath.Join(t.TempDir(), "missing.json")}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "explicit", TopK: 3}
	defaults := Config{APIKey: "default", Port: 8080, TopK: 5, Verbose: true}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "explicit", merged.APIKey)
	assert.Equal(t, 3, merged.TopK)
	assert.Equal(t, 8080, merged.Port)
	assert.True(t, merged.Verbose)
}
