// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

// Package rehydrate restores original values into model output: the
// reverse of the anonymization pass. Placeholder tokens resolve through
// the per-request mapping first and the vault second; custom masks are
// reversed from the mapping alone.
package rehydrate

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/internal/store"
	"github.com/rvanwijk/pii-guard/models"
)

// VaultReader resolves placeholders minted in earlier conversations,
// which the per-request mapping cannot know.
type VaultReader interface {
	GetByPlaceholder(ctx context.Context, placeholder string) (models.VaultEntry, error)
}

// Request is one rehydration pass over one response text.
type Request struct {
	Text    string
	Mapping models.Mapping

	// Incognito severs the vault fallback: only the per-request
	// mapping resolves, anything else stays verbatim.
	Incognito bool
}

// Result carries the restored text. Unresolved lists the placeholder
// tokens neither the mapping nor the vault knew; they remain verbatim
// in Text.
type Result struct {
	Text       string
	Unresolved []string
}

// placeholderToken matches the tokens the anonymizer emits, e.g.
// "[BSN_1]" or "[BANK_ACCOUNT_12]".
var placeholderToken = regexp.MustCompile(`\[[A-Z][A-Z0-9_]*_[0-9]+\]`)

// Rehydrater is safe for concurrent use across conversations.
type Rehydrater struct {
	vault  VaultReader
	logger *logger.Logger
}

func New(vault VaultReader, log *logger.Logger) *Rehydrater {
	return &Rehydrater{
		vault:  vault,
		logger: log,
	}
}

// Rehydrate substitutes every placeholder token back to its original
// value. A token no source can resolve stays verbatim and is reported,
// never an error: showing one leaked token beats blocking the whole
// response.
//
// Text without placeholders passes through unchanged, and running the
// pass on its own output is safe.
func (r *Rehydrater) Rehydrate(ctx context.Context, req Request) Result {
	st := newRestoreState()
	text := r.restore(ctx, req.Text, req, st)

	logger.FromContext(ctx).Debug().
		Str("func", "Rehydrater.Rehydrate").
		Int("unresolved", len(st.unresolved)).
		Bool("incognito", req.Incognito).
		Msg("rehydration pass done")

	return Result{Text: text, Unresolved: st.unresolved}
}

// restoreState carries the unresolved-token report across the segments
// of one logical pass, deduplicated in order of first appearance.
type restoreState struct {
	unresolved []string
	seen       map[string]struct{}
}

func newRestoreState() *restoreState {
	return &restoreState{seen: make(map[string]struct{})}
}

func (st *restoreState) report(token string) {
	if _, dup := st.seen[token]; dup {
		return
	}
	st.seen[token] = struct{}{}
	st.unresolved = append(st.unresolved, token)
}

// restore runs both passes over one self-contained segment: tokens
// first, then the custom masks recorded in the mapping.
func (r *Rehydrater) restore(ctx context.Context, segment string, req Request, st *restoreState) string {
	log := logger.FromContext(ctx)

	// 1. placeholder tokens: mapping first, vault for tokens from
	// earlier conversations
	out := placeholderToken.ReplaceAllStringFunc(segment, func(token string) string {
		if entry, ok := req.Mapping.ByPlaceholder(token); ok {
			return entry.Original
		}

		if req.Incognito || r.vault == nil {
			st.report(token)
			return token
		}

		entry, err := r.vault.GetByPlaceholder(ctx, token)
		switch {
		case err == nil:
			return entry.NormalizedValue
		case errors.Is(err, store.ErrVaultEntryNotFound):
		default:
			log.Warn().Err(err).
				Str("func", "Rehydrater.restore").
				Str("token", token).
				Msg("vault lookup failed, token left verbatim")
		}
		st.report(token)
		return token
	})

	// 2. reverse the custom masks
	for _, entry := range req.Mapping.Entries {
		if entry.Category != models.CategoryCustom || entry.Placeholder == "" {
			continue
		}
		out = strings.ReplaceAll(out, entry.Placeholder, entry.Original)
	}

	return out
}

// ─────────────────────────────────────────────
// Streaming
// ─────────────────────────────────────────────

// StreamRehydrater rehydrates model output chunk by chunk. Feed returns
// the prefix that is safe to show now; a tail that could still grow
// into a placeholder token or a custom mask is held back until a later
// chunk or Flush completes it. Concatenating every Feed result plus the
// final Flush yields exactly what Rehydrate would return for the whole
// text, for any chunking of the input.
type StreamRehydrater struct {
	r    *Rehydrater
	req  Request
	st   *restoreState
	tail string
}

// Stream starts an incremental pass sharing this rehydrater's sources.
func (r *Rehydrater) Stream(mapping models.Mapping, incognito bool) *StreamRehydrater {
	return &StreamRehydrater{
		r:   r,
		req: Request{Mapping: mapping, Incognito: incognito},
		st:  newRestoreState(),
	}
}

// Feed appends chunk to the held tail and returns the rehydrated prefix
// that cannot be part of a still-growing token.
func (s *StreamRehydrater) Feed(ctx context.Context, chunk string) string {
	s.tail += chunk

	cut := safeFlushPoint(s.tail, s.req.Mapping)
	if cut == 0 {
		return ""
	}

	segment := s.tail[:cut]
	s.tail = s.tail[cut:]

	return s.r.restore(ctx, segment, s.req, s.st)
}

// Flush drains whatever Feed held back. Call once, at stream end.
func (s *StreamRehydrater) Flush(ctx context.Context) string {
	if s.tail == "" {
		return ""
	}

	segment := s.tail
	s.tail = ""

	return s.r.restore(ctx, segment, s.req, s.st)
}

// Unresolved lists the tokens no source could resolve so far,
// deduplicated, in order of first appearance.
func (s *StreamRehydrater) Unresolved() []string {
	return s.st.unresolved
}

// safeFlushPoint returns the offset up to which text cannot belong to a
// still-growing placeholder token or custom mask.
func safeFlushPoint(text string, mapping models.Mapping) int {
	if text == "" {
		return 0
	}

	cut := len(text)

	// an unclosed bracket that still looks like a token prefix holds
	// everything from the bracket on
	if open := strings.LastIndex(text, "["); open != -1 {
		rest := text[open:]
		if !strings.Contains(rest, "]") && viableTokenPrefix(rest) {
			cut = open
		}
	}

	// a tail equal to a proper prefix of a custom mask is held too
	overlap := 0
	for _, entry := range mapping.Entries {
		if entry.Category != models.CategoryCustom || entry.Placeholder == "" {
			continue
		}
		mask := entry.Placeholder
		limit := len(mask) - 1
		if limit > cut {
			limit = cut
		}
		for n := limit; n > overlap; n-- {
			if strings.HasSuffix(text[:cut], mask[:n]) {
				overlap = n
				break
			}
		}
	}

	return cut - overlap
}

// viableTokenPrefix reports whether s, which starts with '[', could
// still grow into a placeholder token.
func viableTokenPrefix(s string) bool {
	for _, r := range s[1:] {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
			return false
		}
	}
	return true
}
