// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package llm

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/rvanwijk/pii-guard/internal/config"
	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/internal/utils"
	"github.com/rvanwijk/pii-guard/models"
)

// completionPath is the OpenAI-compatible chat endpoint appended to
// every backend base URL.
const completionPath = "/v1/chat/completions"

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the POST body in the OpenAI-compatible wire format.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type httpClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// New constructs the HTTP implementation of [Client]. One underlying
// client serves every backend, since base URLs come from the profile
// on each call.
func New(cfg config.LLM, log *logger.Logger) Client {
	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.RequestTimeout)

	return &httpClient{client: client, logger: log}
}

// Complete implements [Client]. The profile's mode selects the
// backend; hybrid tries the local endpoint first and falls back to
// the cloud endpoint with the same prompt.
func (c *httpClient) Complete(ctx context.Context, profile models.Profile, prompt string) (string, error) {
	if err := profile.Validate(); err != nil {
		return "", err
	}

	switch profile.Mode {
	case models.ModeLocal:
		return c.complete(ctx, profile.Local.Endpoint, profile.Local.Model, "", prompt)

	case models.ModeCloud:
		return c.complete(ctx, profile.Cloud.Endpoint, profile.Cloud.Model, cloudKey(profile.Cloud), prompt)

	case models.ModeHybrid:
		answer, err := c.complete(ctx, profile.Local.Endpoint, profile.Local.Model, "", prompt)
		if err == nil {
			return answer, nil
		}

		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "httpClient.Complete").
			Str("profile", profile.ID).
			Msg("local backend failed, falling back to cloud")

		return c.complete(ctx, profile.Cloud.Endpoint, profile.Cloud.Model, cloudKey(profile.Cloud), prompt)

	default:
		return "", fmt.Errorf("%w: unknown mode %q", models.ErrInvalidProfile, profile.Mode)
	}
}

// complete runs one chat completion against a single backend.
func (c *httpClient) complete(ctx context.Context, endpoint, model, key, prompt string) (string, error) {
	base, err := utils.NormalizeBaseURL(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid model endpoint: %w", err)
	}

	var out chatResponse
	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(chatRequest{
			Model:    model,
			Messages: []chatMessage{{Role: "user", Content: prompt}},
		}).
		SetResult(&out)
	if key != "" {
		req.SetHeader("Authorization", "Bearer "+key)
	}

	resp, err := req.Post(base + completionPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: backend returned status %d", ErrModelUnavailable, resp.StatusCode())
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: backend returned no completion", ErrModelUnavailable)
	}

	return out.Choices[0].Message.Content, nil
}

// cloudKey resolves the hosted API key from the environment variable
// the backend names. An unset variable yields no Authorization header.
func cloudKey(b *models.CloudBackend) string {
	if b == nil || b.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(b.APIKeyEnv)
}
