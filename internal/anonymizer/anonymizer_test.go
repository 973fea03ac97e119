// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package anonymizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/internal/redaction"
	"github.com/rvanwijk/pii-guard/internal/store"
	"github.com/rvanwijk/pii-guard/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockVaultIndex struct {
	lookupFn    func(ctx context.Context, normalizedValue string, category models.Category) (models.VaultEntry, error)
	recordUseFn func(ctx context.Context, entryIDs ...string) error
}

func (m *mockVaultIndex) Lookup(ctx context.Context, normalizedValue string, category models.Category) (models.VaultEntry, error) {
	if m.lookupFn != nil {
		return m.lookupFn(ctx, normalizedValue, category)
	}
	return models.VaultEntry{}, store.ErrVaultEntryNotFound
}

func (m *mockVaultIndex) RecordUse(ctx context.Context, entryIDs ...string) error {
	if m.recordUseFn != nil {
		return m.recordUseFn(ctx, entryIDs...)
	}
	return nil
}

type mockTermSource struct {
	terms []models.RedactionTerm
}

func (m *mockTermSource) LongestFirst() []models.RedactionTerm {
	return m.terms
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func newTestAnonymizer(vaultIndex *mockVaultIndex, terms *mockTermSource) *Anonymizer {
	if vaultIndex == nil {
		vaultIndex = &mockVaultIndex{}
	}
	if terms == nil {
		terms = &mockTermSource{}
	}
	return New(vaultIndex, terms, logger.Nop())
}

func span(start, end int, category models.Category, confidence float64) models.DetectedSpan {
	return models.DetectedSpan{Start: start, End: end, Category: category, Confidence: confidence}
}

// ─────────────────────────────────────────────
// Minting
// ─────────────────────────────────────────────

func TestAnonymizer_Anonymize_MintsRequestScopedTokens(t *testing.T) {
	a := newTestAnonymizer(nil, nil)

	text := "Jan Jansen woont op Kerkstraat 12"
	res, err := a.Anonymize(testContext(), Request{
		Text: text,
		Spans: []models.DetectedSpan{
			span(0, 10, models.CategoryName, 0.95),
			span(20, 33, models.CategoryAddress, 0.9),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "[NAME_1] woont op [ADDRESS_1]", res.Text)
	require.Equal(t, 2, res.Mapping.Len())

	entry, ok := res.Mapping.ByPlaceholder("[NAME_1]")
	require.True(t, ok)
	assert.Equal(t, "Jan Jansen", entry.Original)
	assert.Equal(t, models.CategoryName, entry.Category)
	assert.InDelta(t, 0.95, entry.Confidence, 1e-9)
}

func TestAnonymizer_Anonymize_NumbersInDocumentOrder(t *testing.T) {
	a := newTestAnonymizer(nil, nil)

	text := "Jan belt Piet"
	res, err := a.Anonymize(testContext(), Request{
		Text: text,
		Spans: []models.DetectedSpan{
			span(9, 13, models.CategoryName, 0.9),
			span(0, 3, models.CategoryName, 0.9),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "[NAME_1] belt [NAME_2]", res.Text)
}

func TestAnonymizer_Anonymize_RepeatedValueSharesToken(t *testing.T) {
	a := newTestAnonymizer(nil, nil)

	text := "Jan, dit is Jan"
	res, err := a.Anonymize(testContext(), Request{
		Text: text,
		Spans: []models.DetectedSpan{
			span(0, 3, models.CategoryName, 0.9),
			span(12, 15, models.CategoryName, 0.9),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "[NAME_1], dit is [NAME_1]", res.Text)
	assert.Equal(t, 1, res.Mapping.Len(), "mapping must deduplicate by original value")
}

func TestAnonymizer_Anonymize_MultibyteOffsets(t *testing.T) {
	a := newTestAnonymizer(nil, nil)

	text := "naam: Renée Jansen."
	start := strings.Index(text, "Renée")
	end := start + len("Renée Jansen")

	res, err := a.Anonymize(testContext(), Request{
		Text:  text,
		Spans: []models.DetectedSpan{span(start, end, models.CategoryName, 0.9)},
	})
	require.NoError(t, err)

	assert.Equal(t, "naam: [NAME_1].", res.Text)
}

// ─────────────────────────────────────────────
// Vault reuse
// ─────────────────────────────────────────────

func TestAnonymizer_Anonymize_ReusesVaultPlaceholder(t *testing.T) {
	var recorded []string
	vaultIndex := &mockVaultIndex{
		lookupFn: func(_ context.Context, normalizedValue string, category models.Category) (models.VaultEntry, error) {
			if normalizedValue == "111222333" && category == models.CategoryBSN {
				return models.VaultEntry{ID: "e-1", Placeholder: "[BSN_7]"}, nil
			}
			return models.VaultEntry{}, store.ErrVaultEntryNotFound
		},
		recordUseFn: func(_ context.Context, ids ...string) error {
			recorded = ids
			return nil
		},
	}
	a := newTestAnonymizer(vaultIndex, nil)

	text := "BSN: 111222333"
	res, err := a.Anonymize(testContext(), Request{
		Text:  text,
		Spans: []models.DetectedSpan{span(5, 14, models.CategoryBSN, 0.99)},
	})
	require.NoError(t, err)

	assert.Equal(t, "BSN: [BSN_7]", res.Text)
	assert.Equal(t, []string{"e-1"}, recorded)
}

func TestAnonymizer_Anonymize_MintingSkipsClaimedNumbers(t *testing.T) {
	vaultIndex := &mockVaultIndex{
		lookupFn: func(_ context.Context, normalizedValue string, _ models.Category) (models.VaultEntry, error) {
			if normalizedValue == "jan" {
				return models.VaultEntry{ID: "e-1", Placeholder: "[NAME_1]"}, nil
			}
			return models.VaultEntry{}, store.ErrVaultEntryNotFound
		},
	}
	a := newTestAnonymizer(vaultIndex, nil)

	text := "Jan en Piet"
	res, err := a.Anonymize(testContext(), Request{
		Text: text,
		Spans: []models.DetectedSpan{
			span(0, 3, models.CategoryName, 0.9),
			span(7, 11, models.CategoryName, 0.9),
		},
	})
	require.NoError(t, err)

	// the vault claimed [NAME_1]; the request-scoped token must not collide
	assert.Equal(t, "[NAME_1] en [NAME_2]", res.Text)
}

func TestAnonymizer_Anonymize_VaultFailureDegrades(t *testing.T) {
	vaultIndex := &mockVaultIndex{
		lookupFn: func(_ context.Context, _ string, _ models.Category) (models.VaultEntry, error) {
			return models.VaultEntry{}, errors.New("database locked")
		},
	}
	a := newTestAnonymizer(vaultIndex, nil)

	res, err := a.Anonymize(testContext(), Request{
		Text:  "Jan",
		Spans: []models.DetectedSpan{span(0, 3, models.CategoryName, 0.9)},
	})
	require.NoError(t, err, "vault failure must degrade, not block")

	assert.Equal(t, "[NAME_1]", res.Text)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "vault unavailable")
}

// ─────────────────────────────────────────────
// Incognito
// ─────────────────────────────────────────────

func TestAnonymizer_Anonymize_IncognitoNeverTouchesVault(t *testing.T) {
	vaultIndex := &mockVaultIndex{
		lookupFn: func(_ context.Context, _ string, _ models.Category) (models.VaultEntry, error) {
			t.Error("incognito request performed a vault lookup")
			return models.VaultEntry{}, store.ErrVaultEntryNotFound
		},
		recordUseFn: func(_ context.Context, _ ...string) error {
			t.Error("incognito request bumped use counters")
			return nil
		},
	}
	a := newTestAnonymizer(vaultIndex, nil)

	res, err := a.Anonymize(testContext(), Request{
		Text:      "BSN: 111222333",
		Spans:     []models.DetectedSpan{span(5, 14, models.CategoryBSN, 0.99)},
		Incognito: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "BSN: [BSN_1]", res.Text)
}

// ─────────────────────────────────────────────
// Overlap resolution
// ─────────────────────────────────────────────

func TestAnonymizer_Anonymize_OverlapHigherConfidenceWins(t *testing.T) {
	a := newTestAnonymizer(nil, nil)

	// "0612345678" read as phone (0.95) and as bank account (0.6)
	text := "bel 0612345678"
	res, err := a.Anonymize(testContext(), Request{
		Text: text,
		Spans: []models.DetectedSpan{
			span(4, 14, models.CategoryPhone, 0.95),
			span(4, 14, models.CategoryBankAccount, 0.6),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "bel [PHONE_1]", res.Text)
	assert.Equal(t, 1, res.Mapping.Len())
}

func TestAnonymizer_Anonymize_OverlapTieGoesToLongerSpan(t *testing.T) {
	a := newTestAnonymizer(nil, nil)

	text := "Jan Jansen"
	res, err := a.Anonymize(testContext(), Request{
		Text: text,
		Spans: []models.DetectedSpan{
			span(0, 3, models.CategoryName, 0.9),
			span(0, 10, models.CategoryName, 0.9),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "[NAME_1]", res.Text)
	entry, ok := res.Mapping.ByPlaceholder("[NAME_1]")
	require.True(t, ok)
	assert.Equal(t, "Jan Jansen", entry.Original)
}

func TestAnonymizer_Anonymize_InvalidSpansSkipped(t *testing.T) {
	a := newTestAnonymizer(nil, nil)

	text := "Jan"
	res, err := a.Anonymize(testContext(), Request{
		Text: text,
		Spans: []models.DetectedSpan{
			span(-1, 2, models.CategoryName, 0.9),
			span(0, 99, models.CategoryName, 0.9),
			span(2, 2, models.CategoryName, 0.9),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Jan", res.Text, "malformed spans must not substitute")
	assert.Len(t, res.Warnings, 3)
}

// ─────────────────────────────────────────────
// Custom terms
// ─────────────────────────────────────────────

func TestAnonymizer_Anonymize_CustomTermsRunWithoutSpans(t *testing.T) {
	terms := &mockTermSource{terms: []models.RedactionTerm{
		{Label: "Company", Original: "Acme Corp", Replacement: redaction.Replacement("Company", "Acme Corp")},
	}}
	a := newTestAnonymizer(nil, terms)

	text := "rapport voor Acme Corp over Acme Corp"
	res, err := a.Anonymize(testContext(), Request{Text: text})
	require.NoError(t, err)

	assert.NotContains(t, res.Text, "Acme Corp")
	assert.Len(t, res.Text, len(text), "custom masks preserve length")

	entry, ok := res.Mapping.ByPlaceholder(redaction.Replacement("Company", "Acme Corp"))
	require.True(t, ok)
	assert.Equal(t, models.CategoryCustom, entry.Category)
	assert.Equal(t, 1.0, entry.Confidence)
}

func TestAnonymizer_Anonymize_CustomSkipsPlaceholderInteriors(t *testing.T) {
	terms := &mockTermSource{terms: []models.RedactionTerm{
		{Label: "Afk", Original: "BSN", Replacement: "XQZ"},
	}}
	a := newTestAnonymizer(nil, terms)

	text := "mijn BSN is 111222333"
	res, err := a.Anonymize(testContext(), Request{
		Text:  text,
		Spans: []models.DetectedSpan{span(12, 21, models.CategoryBSN, 0.99)},
	})
	require.NoError(t, err)

	assert.Equal(t, "mijn XQZ is [BSN_1]", res.Text,
		"the literal outside the token is masked, the token itself is untouched")
}

func TestAnonymizer_Anonymize_LongestTermWinsPrefixFights(t *testing.T) {
	// LongestFirst contract: longer originals come first
	terms := &mockTermSource{terms: []models.RedactionTerm{
		{Label: "C", Original: "Acme Corp International", Replacement: redaction.Replacement("C", "Acme Corp International")},
		{Label: "C", Original: "Acme Corp", Replacement: redaction.Replacement("C", "Acme Corp")},
	}}
	a := newTestAnonymizer(nil, terms)

	res, err := a.Anonymize(testContext(), Request{Text: "memo: Acme Corp International"})
	require.NoError(t, err)

	assert.Equal(t, "memo: "+redaction.Replacement("C", "Acme Corp International"), res.Text)
}

func TestAnonymizer_Anonymize_NoEntryMapsValueToItself(t *testing.T) {
	terms := &mockTermSource{terms: []models.RedactionTerm{
		{Label: "X", Original: "zelfde", Replacement: "zelfde"},
	}}
	a := newTestAnonymizer(nil, terms)

	res, err := a.Anonymize(testContext(), Request{
		Text:  "zelfde Jan",
		Spans: []models.DetectedSpan{span(7, 10, models.CategoryName, 0.9)},
	})
	require.NoError(t, err)

	for _, entry := range res.Mapping.Entries {
		assert.NotEqual(t, entry.Original, entry.Placeholder)
	}
}

// ─────────────────────────────────────────────
// Helpers under test
// ─────────────────────────────────────────────

func Test_resolveOverlaps_DisjointSpansAllSurvive(t *testing.T) {
	spans := []models.DetectedSpan{
		span(0, 3, models.CategoryName, 0.9),
		span(10, 15, models.CategoryEmail, 0.8),
		span(20, 25, models.CategoryPhone, 0.7),
	}

	kept := resolveOverlaps(spans)
	require.Len(t, kept, 3)

	// descending start order for substitution
	assert.Equal(t, 20, kept[0].Start)
	assert.Equal(t, 10, kept[1].Start)
	assert.Equal(t, 0, kept[2].Start)
}

func Test_replaceOutside_ProtectedRegions(t *testing.T) {
	text := "abc [TOK_1] abc"
	protected := [][]int{{4, 11}}

	out, any := replaceOutside(text, "abc", "xyz", protected)
	require.True(t, any)
	assert.Equal(t, "xyz [TOK_1] xyz", out)

	out, any = replaceOutside("[TOK_1]", "TOK", "ZZZ", [][]int{{0, 7}})
	assert.False(t, any)
	assert.Equal(t, "[TOK_1]", out)
}
