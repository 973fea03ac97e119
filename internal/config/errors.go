package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ScrubConfig.validate] when required configuration groups are incomplete
// or out of range.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidVaultConfigs indicates invalid vault settings
	// (for example, a missing passphrase).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidDetectorConfigs indicates invalid detector settings
	// (for example, a confidence floor outside [0,1]).
	ErrInvalidDetectorConfigs = errors.New("invalid detector configuration")
	// ErrInvalidResolverConfigs indicates invalid resolver thresholds
	// (outside (0,1] or possible above high).
	ErrInvalidResolverConfigs = errors.New("invalid resolver configuration")
	// ErrInvalidWorkerConfigs indicates invalid worker pool sizing.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
