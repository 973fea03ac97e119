// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// pii-guard agent. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the loopback
	// HTTP server the desktop shell talks to.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Vault holds settings for the encrypted value store: the passphrase
	// source and the household the agent serves.
	Vault Vault `envPrefix:"VAULT_"`

	// Detector holds connection settings for the local entity detector
	// sidecar. An empty base URL disables detection; the pipeline then
	// runs custom terms only.
	Detector Detector `envPrefix:"DETECTOR_"`

	// LLM holds default model backend settings used when a request does
	// not carry a full profile.
	LLM LLM `envPrefix:"LLM_"`

	// Resolver holds the similarity thresholds of the person matcher.
	Resolver Resolver `envPrefix:"RESOLVER_"`

	// Workers holds sizing for the document processing pool.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after environment
	// variables and flags. Populated via the CONFIG environment variable
	// or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running agent
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the agent listens, in
	// "host:port" format. The default binds loopback only; the agent is
	// not meant to be reachable from other machines.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the vault database.
type DB struct {
	// DSN selects and configures the backend. A plain file path opens a
	// local SQLite database; a postgres:// URI connects to a self-hosted
	// server for a household-shared vault.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Vault holds settings for the encrypted value store.
type Vault struct {
	// Passphrase unlocks the vault key material at startup. Prefer the
	// environment variable over flags so the value stays out of process
	// listings.
	// Env: VAULT_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`

	// HouseholdID scopes the person index. Empty means a single-user
	// vault.
	// Env: VAULT_HOUSEHOLD_ID
	HouseholdID string `env:"HOUSEHOLD_ID"`
}

// Detector holds connection settings for the entity detector sidecar.
type Detector struct {
	// BaseURL is the analyzer endpoint, e.g. "http://127.0.0.1:5002".
	// Empty disables detection entirely.
	// Env: DETECTOR_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Language is the analysis language hint sent with every request.
	// Env: DETECTOR_LANGUAGE
	Language string `env:"LANGUAGE"`

	// MinConfidence drops detector spans scored below this floor, [0,1].
	// Env: DETECTOR_MIN_CONFIDENCE
	MinConfidence float64 `env:"MIN_CONFIDENCE"`

	// RequestTimeout bounds one detector call (e.g. "5s").
	// Env: DETECTOR_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// LLM holds default model backend settings. Profiles supplied with a chat
// request override these.
type LLM struct {
	// Mode is the default backend mode: "local", "hybrid" or "cloud".
	// Env: LLM_MODE
	Mode string `env:"MODE"`

	// LocalEndpoint is the on-device model server base URL.
	// Env: LLM_LOCAL_ENDPOINT
	LocalEndpoint string `env:"LOCAL_ENDPOINT"`

	// LocalModel is the model name for the local endpoint.
	// Env: LLM_LOCAL_MODEL
	LocalModel string `env:"LOCAL_MODEL"`

	// CloudEndpoint is the hosted API base URL.
	// Env: LLM_CLOUD_ENDPOINT
	CloudEndpoint string `env:"CLOUD_ENDPOINT"`

	// CloudModel is the model name for the cloud endpoint.
	// Env: LLM_CLOUD_MODEL
	CloudModel string `env:"CLOUD_MODEL"`

	// RequestTimeout bounds one completion call (e.g. "2m").
	// Env: LLM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Resolver holds the similarity thresholds of the person matcher. Both are
// configuration rather than constants so that households with very similar
// names can tighten them.
type Resolver struct {
	// HighThreshold is the minimum Jaro-Winkler score for a high
	// confidence match, (0,1].
	// Env: RESOLVER_HIGH_THRESHOLD
	HighThreshold float64 `env:"HIGH_THRESHOLD"`

	// PossibleThreshold is the minimum score for a possible match,
	// (0,1], at most HighThreshold.
	// Env: RESOLVER_POSSIBLE_THRESHOLD
	PossibleThreshold float64 `env:"POSSIBLE_THRESHOLD"`
}

// Workers holds sizing for the document processing pool.
type Workers struct {
	// DocumentPoolSize is the number of concurrent document workers.
	// Env: WORKERS_DOCUMENT_POOL_SIZE
	DocumentPoolSize int `env:"DOCUMENT_POOL_SIZE"`

	// DocumentQueueSize bounds the batch queue; submissions beyond it
	// block the batch call.
	// Env: WORKERS_DOCUMENT_QUEUE_SIZE
	DocumentQueueSize int `env:"DOCUMENT_QUEUE_SIZE"`
}

// GetStructuredConfig loads, merges, and validates the agent configuration
// from all available sources. Sources are merged with mergo in order, first
// non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
