// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

// Package anonymizer performs the substitution pass that turns detected
// personal data into stable placeholder tokens before any text leaves
// the machine. It owns no state of its own: vault placeholders come
// from the vault service, request-scoped tokens live in the call frame,
// and custom masks come from the redaction registry.
package anonymizer

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/internal/store"
	"github.com/rvanwijk/pii-guard/internal/vault"
	"github.com/rvanwijk/pii-guard/models"
)

// VaultIndex is the slice of the vault the anonymizer needs: equality
// lookups and use-count bumps. Incognito requests touch neither.
type VaultIndex interface {
	Lookup(ctx context.Context, normalizedValue string, category models.Category) (models.VaultEntry, error)
	RecordUse(ctx context.Context, entryIDs ...string) error
}

// TermSource provides the custom redaction terms, longest first.
type TermSource interface {
	LongestFirst() []models.RedactionTerm
}

// Request is one anonymization pass over one text.
type Request struct {
	Text  string
	Spans []models.DetectedSpan

	// PersonID optionally names the household member the text
	// concerns. Vault identity keys on the value itself, so the hint
	// carries attribution for logs, not a different lookup path.
	PersonID string

	// Incognito severs the vault: no lookups, no use-count bumps,
	// request-scoped tokens only.
	Incognito bool
}

// Result carries the anonymized text and the substitution table the
// caller needs for re-hydration. The mapping is request-scoped; the
// anonymizer keeps no copy.
type Result struct {
	Text     string
	Mapping  models.Mapping
	Warnings []string
}

// placeholderToken matches the substitution tokens this package emits,
// e.g. "[BSN_1]" or "[BANK_ACCOUNT_12]".
var placeholderToken = regexp.MustCompile(`\[[A-Z][A-Z0-9_]*_[0-9]+\]`)

// Anonymizer is safe for concurrent use across conversations.
type Anonymizer struct {
	vault  VaultIndex
	terms  TermSource
	logger *logger.Logger
}

func New(vaultIndex VaultIndex, terms TermSource, log *logger.Logger) *Anonymizer {
	return &Anonymizer{
		vault:  vaultIndex,
		terms:  terms,
		logger: log,
	}
}

// Anonymize replaces every resolved span and every custom term in the
// request text with placeholder tokens.
//
// The pass degrades instead of blocking: an empty span list (detector
// down) still runs the custom-term pass, and a vault failure falls back
// to request-scoped tokens with a warning.
func (a *Anonymizer) Anonymize(ctx context.Context, req Request) (Result, error) {
	log := logger.FromContext(ctx)

	res := Result{Text: req.Text}

	// 1. drop malformed spans up front so they cannot win overlaps
	spans := make([]models.DetectedSpan, 0, len(req.Spans))
	for _, span := range req.Spans {
		if span.Start < 0 || span.End > len(req.Text) || span.Start >= span.End {
			res.Warnings = append(res.Warnings, fmt.Sprintf("span [%d,%d) outside text bounds, skipped", span.Start, span.End))
			continue
		}
		spans = append(spans, span)
	}

	// 2. overlap resolution: higher confidence wins, ties to the longer
	spans = resolveOverlaps(spans)

	// 3. decide one placeholder per distinct (category, value): vault
	// reuse first, then request-scoped minting past claimed numbers
	plan := a.buildPlan(ctx, req, spans, &res)

	// 4. substitute in descending start order so byte offsets into the
	// original text stay valid
	text := req.Text
	for _, span := range spans {
		original := text[span.Start:span.End]
		assigned, ok := plan.tokens[planKey(span.Category, vault.Normalize(original))]
		if !ok {
			continue
		}
		text = text[:span.Start] + assigned + text[span.End:]
		res.Mapping.Add(models.MappingEntry{
			Original:    original,
			Placeholder: assigned,
			Category:    span.Category,
			Confidence:  span.Confidence,
		})
	}

	// 5. custom-term pass runs unconditionally, also on empty span lists
	text = a.applyCustomTerms(text, &res.Mapping)
	res.Text = text

	// 6. bump use counters for reused vault entries (never incognito)
	if !req.Incognito && len(plan.reused) > 0 {
		if err := a.vault.RecordUse(ctx, plan.reused...); err != nil {
			log.Warn().Err(err).Str("func", "Anonymizer.Anonymize").Msg("use-count bump failed")
			res.Warnings = append(res.Warnings, "vault use counters not updated")
		}
	}

	log.Debug().
		Str("func", "Anonymizer.Anonymize").
		Str("person_id", req.PersonID).
		Int("spans", len(spans)).
		Int("substitutions", res.Mapping.Len()).
		Bool("incognito", req.Incognito).
		Msg("anonymization pass done")

	return res, nil
}

// substitutionPlan fixes the placeholder for every distinct value
// before any text is touched.
type substitutionPlan struct {
	tokens map[string]string
	reused []string
}

func planKey(category models.Category, normalized string) string {
	return string(category) + "\x00" + normalized
}

func (a *Anonymizer) buildPlan(ctx context.Context, req Request, spans []models.DetectedSpan, res *Result) substitutionPlan {
	plan := substitutionPlan{tokens: make(map[string]string)}

	// number values in document order, independent of the descending
	// substitution order
	ordered := make([]models.DetectedSpan, len(spans))
	copy(ordered, spans)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Start < ordered[j].Start })

	claimed := make(map[string]struct{})
	type pending struct {
		key      string
		category models.Category
	}
	var toMint []pending

	vaultDown := false
	for _, span := range ordered {
		normalized := vault.Normalize(req.Text[span.Start:span.End])
		if normalized == "" {
			continue
		}
		key := planKey(span.Category, normalized)
		if _, done := plan.tokens[key]; done {
			continue
		}

		if req.Incognito {
			plan.tokens[key] = ""
			toMint = append(toMint, pending{key: key, category: span.Category})
			continue
		}

		entry, err := a.vault.Lookup(ctx, normalized, span.Category)
		switch {
		case err == nil:
			plan.tokens[key] = entry.Placeholder
			claimed[entry.Placeholder] = struct{}{}
			plan.reused = append(plan.reused, entry.ID)
		case errors.Is(err, store.ErrVaultEntryNotFound):
			plan.tokens[key] = ""
			toMint = append(toMint, pending{key: key, category: span.Category})
		default:
			if !vaultDown {
				vaultDown = true
				res.Warnings = append(res.Warnings, "vault unavailable, using request-scoped tokens")
			}
			plan.tokens[key] = ""
			toMint = append(toMint, pending{key: key, category: span.Category})
		}
	}

	// request-scoped counters live here, in the call frame; numbering
	// bumps past any placeholder the vault already claimed above
	counters := make(map[models.Category]int)
	for _, p := range toMint {
		n := counters[p.category]
		var token string
		for {
			n++
			token = fmt.Sprintf("[%s_%d]", p.category.Label(), n)
			if _, taken := claimed[token]; !taken {
				break
			}
		}
		counters[p.category] = n
		claimed[token] = struct{}{}
		plan.tokens[p.key] = token
	}

	return plan
}

// applyCustomTerms masks every registry term occurrence, longest
// original first, skipping matches inside placeholder tokens.
func (a *Anonymizer) applyCustomTerms(text string, mapping *models.Mapping) string {
	terms := a.terms.LongestFirst()

	for _, term := range terms {
		if term.Original == "" || term.Replacement == "" || term.Original == term.Replacement {
			continue
		}

		protected := placeholderToken.FindAllStringIndex(text, -1)
		replaced, any := replaceOutside(text, term.Original, term.Replacement, protected)
		if !any {
			continue
		}

		text = replaced
		mapping.Add(models.MappingEntry{
			Original:    term.Original,
			Placeholder: term.Replacement,
			Category:    models.CategoryCustom,
			Confidence:  1,
		})
	}

	return text
}

// replaceOutside replaces every occurrence of from that does not fall
// inside one of the protected [start,end) regions.
func replaceOutside(text, from, to string, protected [][]int) (string, bool) {
	var b strings.Builder
	idx := 0
	any := false

	for {
		rel := strings.Index(text[idx:], from)
		if rel < 0 {
			break
		}
		at := idx + rel
		end := at + len(from)

		if insideAny(protected, at, end) {
			b.WriteString(text[idx:end])
			idx = end
			continue
		}

		b.WriteString(text[idx:at])
		b.WriteString(to)
		idx = end
		any = true
	}

	if !any {
		return text, false
	}
	b.WriteString(text[idx:])

	return b.String(), true
}

func insideAny(regions [][]int, start, end int) bool {
	for _, region := range regions {
		if start >= region[0] && end <= region[1] {
			return true
		}
	}

	return false
}

// resolveOverlaps keeps at most one span per overlapping group: the
// higher confidence wins, ties go to the longer span. The survivors
// come back sorted by descending start, ready for substitution.
func resolveOverlaps(spans []models.DetectedSpan) []models.DetectedSpan {
	sorted := make([]models.DetectedSpan, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Confidence != sorted[j].Confidence {
			return sorted[i].Confidence > sorted[j].Confidence
		}
		return sorted[i].Length() > sorted[j].Length()
	})

	kept := make([]models.DetectedSpan, 0, len(sorted))
	for _, candidate := range sorted {
		conflict := false
		for _, winner := range kept {
			if candidate.Overlaps(winner) {
				conflict = true
				break
			}
		}
		if !conflict {
			kept = append(kept, candidate)
		}
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].Start > kept[j].Start })

	return kept
}
