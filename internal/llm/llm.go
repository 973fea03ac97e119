// Package llm is the adapter for the model backends a profile can
// target: the on-device model server and the hosted API. Both speak
// the OpenAI-compatible chat completion wire format, which keeps a
// single code path for llama.cpp, Ollama and hosted providers alike.
package llm

//go:generate mockgen -source=llm.go -destination=../mock/llm_mock.go -package=mock

import (
	"context"
	"errors"

	"github.com/rvanwijk/pii-guard/internal/config"
	"github.com/rvanwijk/pii-guard/models"
)

// ErrModelUnavailable wraps every transport, timeout, or non-200
// failure of a model backend.
var ErrModelUnavailable = errors.New("model backend unavailable")

// Client sends a prompt to the backend a profile selects and returns
// the completion text. Hybrid profiles fail over from the local to the
// cloud endpoint inside Complete; the caller anonymizes the prompt
// beforehand whenever Profile.Anonymizes reports true, so both legs
// can carry the same text.
type Client interface {
	Complete(ctx context.Context, profile models.Profile, prompt string) (string, error)
}

// defaultCloudKeyEnv names the environment variable holding the hosted
// API key for the built-in default profile. Custom profiles name their
// own variable.
const defaultCloudKeyEnv = "LLM_CLOUD_API_KEY"

// DefaultProfile builds the profile used when a chat request names
// none, from the configured backend defaults.
func DefaultProfile(cfg config.LLM) models.Profile {
	p := models.Profile{
		ID:   "default",
		Name: "Default",
		Mode: models.BackendMode(cfg.Mode),
	}
	if p.Mode == "" {
		p.Mode = models.ModeLocal
	}

	if cfg.LocalEndpoint != "" {
		p.Local = &models.LocalBackend{Endpoint: cfg.LocalEndpoint, Model: cfg.LocalModel}
	}
	if cfg.CloudEndpoint != "" {
		p.Cloud = &models.CloudBackend{
			Endpoint:  cfg.CloudEndpoint,
			Model:     cfg.CloudModel,
			APIKeyEnv: defaultCloudKeyEnv,
		}
	}

	return p
}
