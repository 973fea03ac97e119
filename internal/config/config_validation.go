// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// agent invariants before it is used at startup.
//
// The vault passphrase is checked at keychain unlock rather than here, so
// that read-only commands which never open the vault still work without it.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Detector.MinConfidence < 0 || cfg.Detector.MinConfidence > 1 {
		return ErrInvalidDetectorConfigs
	}

	if err := validateThresholds(cfg.Resolver); err != nil {
		return err
	}

	if cfg.Workers.DocumentPoolSize < 1 || cfg.Workers.DocumentQueueSize < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// validateThresholds checks the resolver similarity thresholds: both in
// (0,1], possible not above high.
func validateThresholds(r Resolver) error {
	if r.HighThreshold <= 0 || r.HighThreshold > 1 {
		return ErrInvalidResolverConfigs
	}
	if r.PossibleThreshold <= 0 || r.PossibleThreshold > 1 {
		return ErrInvalidResolverConfigs
	}
	if r.PossibleThreshold > r.HighThreshold {
		return ErrInvalidResolverConfigs
	}

	return nil
}

func (cfg *ScrubConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
