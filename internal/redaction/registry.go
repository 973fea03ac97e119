// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

// Package redaction manages the user's custom redaction registry:
// literal terms that must always be masked regardless of what the
// detector finds. Terms persist through the store; an in-memory
// snapshot serves the anonymizer's scan pass without a database
// round trip per request.
package redaction

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/internal/store"
	"github.com/rvanwijk/pii-guard/internal/utils"
	"github.com/rvanwijk/pii-guard/internal/validators"
	"github.com/rvanwijk/pii-guard/models"
)

// Registry is the custom-term service. Safe for concurrent use.
type Registry struct {
	terms  store.TermRepository
	ids    *utils.UUIDGenerator
	logger *logger.Logger

	mu       sync.RWMutex
	snapshot []models.RedactionTerm
}

// NewRegistry loads the persisted terms and returns a ready registry.
func NewRegistry(ctx context.Context, terms store.TermRepository, log *logger.Logger) (*Registry, error) {
	r := &Registry{
		terms:  terms,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}

	loaded, err := terms.ListTerms(ctx)
	if err != nil {
		return nil, err
	}
	r.snapshot = loaded
	log.Debug().Str("func", "redaction.NewRegistry").Int("terms", len(loaded)).Msg("redaction registry loaded")

	return r, nil
}

// AddTerm registers one literal. The position is assigned by the store
// and preserved across restarts; duplicates of the same original are
// refused with store.ErrTermAlreadyExists.
func (r *Registry) AddTerm(ctx context.Context, label, value string) (models.RedactionTerm, error) {
	if strings.TrimSpace(label) == "" {
		return models.RedactionTerm{}, validators.ErrEmptyTermLabel
	}
	if value == "" {
		return models.RedactionTerm{}, validators.ErrEmptyTermValue
	}

	term := &models.RedactionTerm{
		ID:          r.ids.Generate(),
		Label:       label,
		Original:    value,
		Replacement: Replacement(label, value),
		CreatedAt:   time.Now(),
	}
	if err := r.terms.SaveTerms(ctx, term); err != nil {
		return models.RedactionTerm{}, err
	}

	r.mu.Lock()
	r.snapshot = append(r.snapshot, *term)
	r.mu.Unlock()

	return *term, nil
}

// BulkImport parses "label,value" lines and registers each valid one.
// Malformed lines (no comma, empty label or value) and terms already
// present are skipped; the returned count is what was actually added.
func (r *Registry) BulkImport(ctx context.Context, text string) (int, error) {
	log := logger.FromContext(ctx)

	existing := make(map[string]struct{})
	r.mu.RLock()
	for _, term := range r.snapshot {
		existing[term.Original] = struct{}{}
	}
	r.mu.RUnlock()

	var batch []*models.RedactionTerm
	skipped := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		label, value, ok := strings.Cut(line, ",")
		label = strings.TrimSpace(label)
		value = strings.TrimSpace(value)
		if !ok || label == "" || value == "" {
			skipped++
			continue
		}
		if _, dup := existing[value]; dup {
			skipped++
			continue
		}
		existing[value] = struct{}{}

		batch = append(batch, &models.RedactionTerm{
			ID:          r.ids.Generate(),
			Label:       label,
			Original:    value,
			Replacement: Replacement(label, value),
			CreatedAt:   time.Now(),
		})
	}

	if skipped > 0 {
		log.Warn().Str("func", "Registry.BulkImport").Int("skipped", skipped).Msg("skipped malformed or duplicate import lines")
	}
	if len(batch) == 0 {
		return 0, nil
	}

	if err := r.terms.SaveTerms(ctx, batch...); err != nil {
		return 0, err
	}

	r.mu.Lock()
	for _, term := range batch {
		r.snapshot = append(r.snapshot, *term)
	}
	r.mu.Unlock()

	return len(batch), nil
}

// RemoveTerm deletes the term at the given position.
func (r *Registry) RemoveTerm(ctx context.Context, position int) error {
	r.mu.RLock()
	var id string
	for _, term := range r.snapshot {
		if term.Position == position {
			id = term.ID
			break
		}
	}
	r.mu.RUnlock()

	if id == "" {
		return store.ErrTermNotFound
	}
	if err := r.terms.DeleteTerm(ctx, id); err != nil {
		return err
	}

	r.mu.Lock()
	r.snapshot = slicesDelete(r.snapshot, id)
	r.mu.Unlock()

	return nil
}

// Clear removes every term.
func (r *Registry) Clear(ctx context.Context) error {
	r.mu.RLock()
	terms := make([]models.RedactionTerm, len(r.snapshot))
	copy(terms, r.snapshot)
	r.mu.RUnlock()

	for _, term := range terms {
		if err := r.terms.DeleteTerm(ctx, term.ID); err != nil {
			return err
		}
		r.mu.Lock()
		r.snapshot = slicesDelete(r.snapshot, term.ID)
		r.mu.Unlock()
	}

	return nil
}

// Terms returns the registry in insertion (position) order.
func (r *Registry) Terms() []models.RedactionTerm {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.RedactionTerm, len(r.snapshot))
	copy(out, r.snapshot)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })

	return out
}

// LongestFirst returns the terms ordered for the anonymizer's scan
// pass: longer originals first, so "Acme Corp International" is masked
// before "Acme Corp" can eat its prefix. Ties keep insertion order.
func (r *Registry) LongestFirst() []models.RedactionTerm {
	out := r.Terms()
	sort.SliceStable(out, func(i, j int) bool {
		return utf8.RuneCountInString(out[i].Original) > utf8.RuneCountInString(out[j].Original)
	})

	return out
}

func slicesDelete(terms []models.RedactionTerm, id string) []models.RedactionTerm {
	out := terms[:0]
	for _, term := range terms {
		if term.ID != id {
			out = append(out, term)
		}
	}

	return out
}
