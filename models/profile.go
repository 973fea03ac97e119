// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package models

import (
	"errors"
	"fmt"
)

// BackendMode selects where a profile's model calls go.
type BackendMode string

const (
	// ModeLocal keeps everything on the device: prompts go to the
	// local endpoint raw, because nothing leaves the machine.
	ModeLocal BackendMode = "local"

	// ModeHybrid tries the local endpoint first and falls back to
	// the cloud endpoint with mandatory anonymization.
	ModeHybrid BackendMode = "hybrid"

	// ModeCloud always sends to the cloud endpoint, always after
	// anonymization.
	ModeCloud BackendMode = "cloud"
)

// ErrInvalidProfile is returned by Profile.Validate when the variant's
// required fields are missing or the mode is unknown.
var ErrInvalidProfile = errors.New("invalid profile")

// LocalBackend configures the on-device model endpoint.
type LocalBackend struct {
	// Endpoint is the base URL of the local model server.
	Endpoint string `json:"endpoint"`

	// Model is the model name passed with each completion.
	Model string `json:"model"`
}

// CloudBackend configures the hosted model endpoint.
type CloudBackend struct {
	// Endpoint is the base URL of the hosted API.
	Endpoint string `json:"endpoint"`

	// Model is the model name passed with each completion.
	Model string `json:"model"`

	// APIKeyEnv names the environment variable holding the API key.
	// The key itself is never part of the profile.
	APIKeyEnv string `json:"api_key_env,omitempty"`
}

// Profile is an assistant persona. The backend configuration is a
// tagged variant: Mode says which of the pointer fields must be set,
// and Validate enforces exactly that, so a profile can never reach the
// pipeline half-configured.
type Profile struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Mode  BackendMode   `json:"mode"`
	Local *LocalBackend `json:"local,omitempty"`
	Cloud *CloudBackend `json:"cloud,omitempty"`
}

// Validate checks the variant's required fields:
//
//	local  → Local set
//	cloud  → Cloud set
//	hybrid → Local and Cloud set
func (p Profile) Validate() error {
	switch p.Mode {
	case ModeLocal:
		if p.Local == nil || p.Local.Endpoint == "" {
			return fmt.Errorf("%w: mode %q requires a local backend", ErrInvalidProfile, p.Mode)
		}
	case ModeCloud:
		if p.Cloud == nil || p.Cloud.Endpoint == "" {
			return fmt.Errorf("%w: mode %q requires a cloud backend", ErrInvalidProfile, p.Mode)
		}
	case ModeHybrid:
		if p.Local == nil || p.Local.Endpoint == "" {
			return fmt.Errorf("%w: mode %q requires a local backend", ErrInvalidProfile, p.Mode)
		}
		if p.Cloud == nil || p.Cloud.Endpoint == "" {
			return fmt.Errorf("%w: mode %q requires a cloud backend", ErrInvalidProfile, p.Mode)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidProfile, p.Mode)
	}
	return nil
}

// Anonymizes reports whether prompts for this profile must pass the
// anonymization pipeline before leaving the process. Only pure local
// mode is exempt.
func (p Profile) Anonymizes() bool {
	return p.Mode != ModeLocal
}
