package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON are strings like "30s" handled by the Duration type.
	jsonBody := `{
		"app": { "version": "1.2.3" },
		"server": {
			"address": "127.0.0.1:8721",
			"request_timeout": "30s"
		},
		"storage": {
			"db": { "dsn": "/home/user/.pii-guard/vault.db" }
		},
		"vault": { "household_id": "huis-1" },
		"detector": {
			"base_url": "http://127.0.0.1:5002",
			"language": "nl",
			"min_confidence": 0.5,
			"request_timeout": "5s"
		},
		"llm": {
			"mode": "hybrid",
			"local_endpoint": "http://127.0.0.1:11434",
			"local_model": "llama3",
			"cloud_endpoint": "https://api.example.com",
			"cloud_model": "big-model",
			"request_timeout": "2m"
		},
		"resolver": {
			"high_threshold": 0.92,
			"possible_threshold": 0.87
		},
		"workers": {
			"document_pool_size": 4,
			"document_queue_size": 32
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "127.0.0.1:8721", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "/home/user/.pii-guard/vault.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "huis-1", cfg.Vault.HouseholdID)
	assert.Empty(t, cfg.Vault.Passphrase, "passphrase must not be configurable via JSON")

	assert.Equal(t, "http://127.0.0.1:5002", cfg.Detector.BaseURL)
	assert.Equal(t, "nl", cfg.Detector.Language)
	assert.InDelta(t, 0.5, cfg.Detector.MinConfidence, 1e-9)
	assert.Equal(t, 5*time.Second, cfg.Detector.RequestTimeout)

	assert.Equal(t, "hybrid", cfg.LLM.Mode)
	assert.Equal(t, "http://127.0.0.1:11434", cfg.LLM.LocalEndpoint)
	assert.Equal(t, 2*time.Minute, cfg.LLM.RequestTimeout)

	assert.InDelta(t, 0.92, cfg.Resolver.HighThreshold, 1e-9)
	assert.InDelta(t, 0.87, cfg.Resolver.PossibleThreshold, 1e-9)

	assert.Equal(t, 4, cfg.Workers.DocumentPoolSize)
	assert.Equal(t, 32, cfg.Workers.DocumentQueueSize)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	// request_timeout should be a duration string; make it invalid.
	jsonBody := `{
		"server": { "request_timeout": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// With non-pointer nested structs, all fields are zero values.
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"server": { "address": "127.0.0.1:8000" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	// Others remain zero
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Detector{}, cfg.Detector)
	assert.Equal(t, Storage{}, cfg.Storage)
}

func TestDuration_UnmarshalJSON_Number(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`1500000000`)))
	assert.Equal(t, Duration(1500*time.Millisecond), d)
}

func TestDuration_MarshalJSON_RoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)
	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
