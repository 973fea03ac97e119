// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package detector

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rvanwijk/pii-guard/internal/config"
	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/internal/utils"
	"github.com/rvanwijk/pii-guard/models"
)

// entityCategories maps the analyzer's entity taxonomy onto the closed
// vault category set. Unmapped entity types are dropped at the adapter
// so a drifting analyzer model can never widen the vault schema.
var entityCategories = map[string]models.Category{
	"PERSON":        models.CategoryName,
	"EMAIL_ADDRESS": models.CategoryEmail,
	"PHONE_NUMBER":  models.CategoryPhone,
	"IBAN_CODE":     models.CategoryBankAccount,
	"LOCATION":      models.CategoryAddress,
	"ADDRESS":       models.CategoryAddress,
	"NL_BSN":        models.CategoryBSN,
	"BSN":           models.CategoryBSN,
	"DATE_OF_BIRTH": models.CategoryDateOfBirth,
	"BIRTH_DATE":    models.CategoryDateOfBirth,
	"INCOME":        models.CategoryIncome,
	"SALARY":        models.CategoryIncome,
}

// analyzeRequest is the POST /analyze payload.
type analyzeRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// analyzeSpan is one hit in the analyzer response. Offsets arrive as
// character positions, the way the analyzer's runtime slices strings.
type analyzeSpan struct {
	EntityType string  `json:"entity_type"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Score      float64 `json:"score"`
}

type httpDetector struct {
	client        *utils.HTTPClient
	language      string
	minConfidence float64

	logger *logger.Logger
}

// NewHTTPDetector constructs the HTTP implementation of [Detector]
// against the analyzer endpoint in cfg. Returns an error if the base
// URL cannot be parsed.
func NewHTTPDetector(cfg config.Detector, log *logger.Logger) (Detector, error) {
	baseURL, err := utils.NormalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid detector address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpDetector{
		client:        client,
		language:      cfg.Language,
		minConfidence: cfg.MinConfidence,
		logger:        log,
	}, nil
}

// Detect implements [Detector]. It POSTs the text to /analyze and maps
// the response spans onto vault categories and byte offsets. Spans
// scored below the configured confidence floor, spans with entity
// types outside the category map, and spans with out-of-range offsets
// are dropped here, before any caller sees them.
func (d *httpDetector) Detect(ctx context.Context, text string) ([]models.DetectedSpan, error) {
	log := logger.FromContext(ctx)

	var found []analyzeSpan
	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(analyzeRequest{Text: text, Language: d.language}).
		SetResult(&found).
		Post("/analyze")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDetectorUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: analyzer returned status %d", ErrDetectorUnavailable, resp.StatusCode())
	}

	boundaries := runeBoundaries(text)

	spans := make([]models.DetectedSpan, 0, len(found))
	for _, s := range found {
		if s.Score < d.minConfidence {
			continue
		}

		category, known := entityCategories[s.EntityType]
		if !known {
			log.Debug().
				Str("func", "httpDetector.Detect").
				Str("entity_type", s.EntityType).
				Msg("unmapped entity type dropped")
			continue
		}

		if s.Start < 0 || s.End > len(boundaries)-1 || s.Start >= s.End {
			log.Warn().
				Str("func", "httpDetector.Detect").
				Int("start", s.Start).
				Int("end", s.End).
				Msg("analyzer span out of range, dropped")
			continue
		}

		spans = append(spans, models.DetectedSpan{
			Start:      boundaries[s.Start],
			End:        boundaries[s.End],
			Category:   category,
			Confidence: s.Score,
		})
	}

	log.Debug().
		Str("func", "httpDetector.Detect").
		Int("reported", len(found)).
		Int("kept", len(spans)).
		Msg("analyzer call done")

	return spans, nil
}

// runeBoundaries returns the byte offset of every rune boundary in
// text, with a final entry for len(text), so character offsets from
// the analyzer convert to byte offsets by index.
func runeBoundaries(text string) []int {
	boundaries := make([]int, 0, len(text)+1)
	for i := range text {
		boundaries = append(boundaries, i)
	}
	return append(boundaries, len(text))
}
