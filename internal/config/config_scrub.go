package config

import (
	"fmt"
)

// ScrubStorage groups storage settings for the scrub CLI.
type ScrubStorage struct {
	// DB holds the vault database settings.
	DB DB
}

// ScrubConfig is the configuration view of the scrub command: the one-shot
// anonymizer needs the vault database, the vault passphrase, and optionally
// a detector. It has no server or worker settings.
type ScrubConfig struct {
	// Storage contains the vault database settings.
	Storage ScrubStorage
	// Vault contains passphrase and household settings.
	Vault Vault
	// Detector contains detector connection settings. An empty base URL
	// runs scrub in custom-terms-only mode.
	Detector Detector
	// Resolver thresholds are carried so scrub survives a shared JSON
	// config written for the agent.
	Resolver Resolver
}

// GetScrubConfig builds and validates a scrub-specific config view from the
// merged structured configuration.
func GetScrubConfig() (*ScrubConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	scrubCfg := &ScrubConfig{
		Storage: ScrubStorage{
			DB: DB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Vault:    cfg.Vault,
		Detector: cfg.Detector,
		Resolver: cfg.Resolver,
	}

	return scrubCfg, scrubCfg.validate()
}
