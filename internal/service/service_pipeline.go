// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rvanwijk/pii-guard/internal/anonymizer"
	"github.com/rvanwijk/pii-guard/internal/config"
	"github.com/rvanwijk/pii-guard/internal/detector"
	"github.com/rvanwijk/pii-guard/internal/llm"
	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/internal/metrics"
	"github.com/rvanwijk/pii-guard/internal/rehydrate"
	"github.com/rvanwijk/pii-guard/internal/scanner"
	"github.com/rvanwijk/pii-guard/internal/utils"
	"github.com/rvanwijk/pii-guard/internal/workers"
	"github.com/rvanwijk/pii-guard/models"
)

// warnDetectorDown is appended to pipeline warnings when the entity
// detector cannot be reached and the pass ran on custom terms alone.
const warnDetectorDown = "entity detection unavailable, custom terms only"

type pipelineService struct {
	detector   detector.Detector
	anonymizer *anonymizer.Anonymizer
	scanner    *scanner.Scanner
	rehydrater *rehydrate.Rehydrater
	model      llm.Client
	pool       *workers.DocumentPool
	ids        *utils.UUIDGenerator
	defaults   config.LLM
	metrics    *metrics.Metrics
	logger     *logger.Logger
}

func NewPipelineService(
	entityDetector detector.Detector,
	anonymize *anonymizer.Anonymizer,
	scan *scanner.Scanner,
	restore *rehydrate.Rehydrater,
	model llm.Client,
	pool *workers.DocumentPool,
	defaults config.LLM,
	m *metrics.Metrics,
	log *logger.Logger,
) PipelineService {
	return &pipelineService{
		detector:   entityDetector,
		anonymizer: anonymize,
		scanner:    scan,
		rehydrater: restore,
		model:      model,
		pool:       pool,
		ids:        utils.NewUUIDGenerator(),
		defaults:   defaults,
		metrics:    m,
		logger:     log,
	}
}

func (s *pipelineService) Anonymize(ctx context.Context, req models.AnonymizeRequest) (models.AnonymizeResponse, error) {
	res, report, err := s.pass(ctx, req.Text, req.Conversation, req.PersonID)
	if err != nil {
		return models.AnonymizeResponse{}, fmt.Errorf("anonymize: %w", err)
	}

	return models.AnonymizeResponse{
		Text:     res.Text,
		Mapping:  res.Mapping,
		Scan:     report,
		Warnings: res.Warnings,
	}, nil
}

func (s *pipelineService) Rehydrate(ctx context.Context, req models.RehydrateRequest) (models.RehydrateResponse, error) {
	restored := s.rehydrater.Rehydrate(ctx, rehydrate.Request{
		Text:    req.Text,
		Mapping: req.Mapping,
	})
	s.metrics.RecordUnresolved(len(restored.Unresolved))

	return models.RehydrateResponse{
		Text:       restored.Text,
		Unresolved: restored.Unresolved,
	}, nil
}

func (s *pipelineService) ProcessDocument(ctx context.Context, doc models.ParsedDocument, conversation models.Conversation) (models.ProcessedDocument, error) {
	if strings.TrimSpace(doc.TextContent) == "" {
		return models.ProcessedDocument{}, ErrEmptyDocument
	}
	if doc.ID == "" {
		doc.ID = s.ids.Generate()
	}

	res, report, err := s.pass(ctx, doc.TextContent, conversation, "")
	if err != nil {
		return models.ProcessedDocument{}, fmt.Errorf("process document %s: %w", doc.ID, err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "pipelineService.ProcessDocument").
		Str("document_id", doc.ID).
		Int("values", res.Mapping.Len()).
		Bool("safe", report.IsSafe).
		Msg("document processed")

	return models.ProcessedDocument{
		Parsed: doc,
		Extraction: models.PIIExtraction{
			DocumentID:   doc.ID,
			Conversation: conversation,
			Fields:       candidateFields(res.Mapping),
		},
		Anonymized: res.Text,
		Mapping:    res.Mapping,
		Scan:       report,
		Warnings:   res.Warnings,
	}, nil
}

// ProcessBatch fans the documents out over the worker pool and waits
// for all of them. Results keep submission order; a failed document
// leaves a zero value at its index and lands in Failed.
func (s *pipelineService) ProcessBatch(ctx context.Context, req models.BatchDocumentsRequest) (models.BatchDocumentsResponse, error) {
	results := make([]models.ProcessedDocument, len(req.Documents))
	failures := make([]error, len(req.Documents))

	var wg sync.WaitGroup
	for i, doc := range req.Documents {
		wg.Add(1)
		err := s.pool.Submit(ctx, func(jobCtx context.Context) {
			defer wg.Done()

			if jobCtx.Err() != nil {
				failures[i] = jobCtx.Err()
				return
			}
			results[i], failures[i] = s.ProcessDocument(jobCtx, doc, req.Conversation)
		})
		if err != nil {
			wg.Done()
			failures[i] = err
		}
	}
	wg.Wait()

	resp := models.BatchDocumentsResponse{Results: results}
	for i, failure := range failures {
		if failure == nil {
			continue
		}
		logger.FromContext(ctx).Warn().
			Err(failure).
			Str("func", "pipelineService.ProcessBatch").
			Int("document", i).
			Msg("document failed in batch")
		resp.Failed = append(resp.Failed, i)
	}

	return resp, nil
}

func (s *pipelineService) SendMessage(ctx context.Context, req models.SendMessageRequest) (models.ChatResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return models.ChatResponse{}, ErrEmptyMessage
	}

	profile := req.Profile
	if profile.Mode == "" {
		profile = llm.DefaultProfile(s.defaults)
	}
	if err := profile.Validate(); err != nil {
		return models.ChatResponse{}, err
	}

	// Pure local mode: the prompt never leaves the machine, so it
	// goes to the model verbatim and nothing needs restoring.
	if !profile.Anonymizes() {
		answer, err := s.complete(ctx, profile, req.Text)
		if err != nil {
			return models.ChatResponse{}, err
		}
		return models.ChatResponse{Text: answer, Scan: models.ScanReport{IsSafe: true}}, nil
	}

	res, report, err := s.pass(ctx, req.Text, req.Conversation, "")
	if err != nil {
		return models.ChatResponse{}, fmt.Errorf("anonymize message: %w", err)
	}

	answer, err := s.complete(ctx, profile, res.Text)
	if err != nil {
		return models.ChatResponse{}, err
	}

	restored := s.rehydrater.Rehydrate(ctx, rehydrate.Request{
		Text:      answer,
		Mapping:   res.Mapping,
		Incognito: req.Conversation.Incognito,
	})
	s.metrics.RecordUnresolved(len(restored.Unresolved))

	logger.FromContext(ctx).Info().
		Str("func", "pipelineService.SendMessage").
		Str("mode", string(profile.Mode)).
		Bool("incognito", req.Conversation.Incognito).
		Int("values", res.Mapping.Len()).
		Int("unresolved", len(restored.Unresolved)).
		Msg("message completed")

	return models.ChatResponse{
		Text:     restored.Text,
		Mapping:  res.Mapping,
		Scan:     report,
		Warnings: res.Warnings,
	}, nil
}

// pass is the shared detect/anonymize/scan sequence. A down detector
// degrades the pass to custom terms with a warning; it never blocks.
func (s *pipelineService) pass(ctx context.Context, text string, conversation models.Conversation, personID string) (anonymizer.Result, models.ScanReport, error) {
	started := time.Now()

	var warnings []string
	spans, err := s.detector.Detect(ctx, text)
	if err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "pipelineService.pass").
			Msg("detector unavailable, continuing with custom terms")
		s.metrics.RecordDetectorFailure()
		warnings = append(warnings, warnDetectorDown)
		spans = nil
	}

	res, err := s.anonymizer.Anonymize(ctx, anonymizer.Request{
		Text:      text,
		Spans:     spans,
		PersonID:  personID,
		Incognito: conversation.Incognito,
	})
	if err != nil {
		return anonymizer.Result{}, models.ScanReport{}, err
	}
	res.Warnings = append(warnings, res.Warnings...)

	report := s.scanner.Scan(res.Text)

	outcome := metrics.OutcomeOK
	if len(res.Warnings) > 0 {
		outcome = metrics.OutcomeDegraded
	}
	s.metrics.RecordAnonymize(outcome, categoryCounts(res.Mapping), time.Since(started))
	s.metrics.RecordScan(report)

	return res, report, nil
}

func (s *pipelineService) complete(ctx context.Context, profile models.Profile, prompt string) (string, error) {
	started := time.Now()

	answer, err := s.model.Complete(ctx, profile, prompt)
	if err != nil {
		return "", fmt.Errorf("completion (%s): %w", profile.Mode, err)
	}
	s.metrics.RecordCompletion(profile.Mode, time.Since(started))

	return answer, nil
}

// candidateFields turns known-category mapping entries into extraction
// candidates. Custom terms are redactions, not personal data fields,
// and stay out.
func candidateFields(mapping models.Mapping) []models.ExtractedField {
	fields := make([]models.ExtractedField, 0, mapping.Len())
	for _, e := range mapping.Entries {
		if !e.Category.Known() {
			continue
		}
		fields = append(fields, models.ExtractedField{
			Category:   e.Category,
			Value:      e.Original,
			Confidence: e.Confidence,
		})
	}
	return fields
}

func categoryCounts(mapping models.Mapping) map[models.Category]int {
	if mapping.Len() == 0 {
		return nil
	}
	counts := make(map[models.Category]int, mapping.Len())
	for _, e := range mapping.Entries {
		counts[e.Category]++
	}
	return counts
}
