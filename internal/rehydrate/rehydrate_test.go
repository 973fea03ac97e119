package rehydrate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/internal/store"
	"github.com/rvanwijk/pii-guard/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockVaultReader struct {
	getFn func(ctx context.Context, placeholder string) (models.VaultEntry, error)
}

func (m *mockVaultReader) GetByPlaceholder(ctx context.Context, placeholder string) (models.VaultEntry, error) {
	if m.getFn != nil {
		return m.getFn(ctx, placeholder)
	}
	return models.VaultEntry{}, store.ErrVaultEntryNotFound
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func newTestRehydrater(vault *mockVaultReader) *Rehydrater {
	if vault == nil {
		vault = &mockVaultReader{}
	}
	return New(vault, logger.Nop())
}

func mappingOf(entries ...models.MappingEntry) models.Mapping {
	return models.Mapping{Entries: entries}
}

// ─────────────────────────────────────────────
// Whole-text passes
// ─────────────────────────────────────────────

func TestRehydrater_Rehydrate_MappingFirst(t *testing.T) {
	vault := &mockVaultReader{
		getFn: func(_ context.Context, placeholder string) (models.VaultEntry, error) {
			t.Errorf("vault consulted for %s, mapping should have resolved it", placeholder)
			return models.VaultEntry{}, store.ErrVaultEntryNotFound
		},
	}
	r := newTestRehydrater(vault)

	res := r.Rehydrate(testContext(), Request{
		Text: "dag [NAME_1]",
		Mapping: mappingOf(models.MappingEntry{
			Original: "Jan", Placeholder: "[NAME_1]", Category: models.CategoryName,
		}),
	})

	assert.Equal(t, "dag Jan", res.Text)
	assert.Empty(t, res.Unresolved)
}

func TestRehydrater_Rehydrate_VaultFallback(t *testing.T) {
	vault := &mockVaultReader{
		getFn: func(_ context.Context, placeholder string) (models.VaultEntry, error) {
			if placeholder == "[PHONE_4]" {
				return models.VaultEntry{Placeholder: placeholder, NormalizedValue: "0612345678"}, nil
			}
			return models.VaultEntry{}, store.ErrVaultEntryNotFound
		},
	}
	r := newTestRehydrater(vault)

	res := r.Rehydrate(testContext(), Request{Text: "bel [PHONE_4] terug"})

	assert.Equal(t, "bel 0612345678 terug", res.Text)
	assert.Empty(t, res.Unresolved)
}

func TestRehydrater_Rehydrate_UnknownTokenStaysVerbatim(t *testing.T) {
	r := newTestRehydrater(nil)

	res := r.Rehydrate(testContext(), Request{Text: "[PET_9] en nog eens [PET_9]"})

	assert.Equal(t, "[PET_9] en nog eens [PET_9]", res.Text)
	assert.Equal(t, []string{"[PET_9]"}, res.Unresolved, "reported once, not per occurrence")
}

func TestRehydrater_Rehydrate_PlainTextUnchanged(t *testing.T) {
	r := newTestRehydrater(nil)

	text := "gewoon antwoord zonder tokens, met [lijst[0]] er in"
	res := r.Rehydrate(testContext(), Request{Text: text})

	assert.Equal(t, text, res.Text)
	assert.Empty(t, res.Unresolved)
}

func TestRehydrater_Rehydrate_IdempotentOnOwnOutput(t *testing.T) {
	r := newTestRehydrater(nil)
	mapping := mappingOf(
		models.MappingEntry{Original: "Jan", Placeholder: "[NAME_1]", Category: models.CategoryName},
		models.MappingEntry{Original: "Acme Corp", Placeholder: "ACME.7f3a", Category: models.CategoryCustom},
	)

	first := r.Rehydrate(testContext(), Request{Text: "van [NAME_1] bij ACME.7f3a", Mapping: mapping})
	second := r.Rehydrate(testContext(), Request{Text: first.Text, Mapping: mapping})

	assert.Equal(t, "van Jan bij Acme Corp", first.Text)
	assert.Equal(t, first.Text, second.Text)
	assert.Empty(t, second.Unresolved)
}

func TestRehydrater_Rehydrate_ReversesCustomMasks(t *testing.T) {
	r := newTestRehydrater(nil)

	res := r.Rehydrate(testContext(), Request{
		Text: "memo ACME.7f3a, cc ACME.7f3a",
		Mapping: mappingOf(models.MappingEntry{
			Original: "Acme Corp", Placeholder: "ACME.7f3a", Category: models.CategoryCustom, Confidence: 1,
		}),
	})

	assert.Equal(t, "memo Acme Corp, cc Acme Corp", res.Text)
}

func TestRehydrater_Rehydrate_IncognitoSkipsVault(t *testing.T) {
	vault := &mockVaultReader{
		getFn: func(_ context.Context, placeholder string) (models.VaultEntry, error) {
			t.Errorf("incognito pass consulted the vault for %s", placeholder)
			return models.VaultEntry{}, store.ErrVaultEntryNotFound
		},
	}
	r := newTestRehydrater(vault)

	res := r.Rehydrate(testContext(), Request{Text: "zie [NAME_3]", Incognito: true})

	assert.Equal(t, "zie [NAME_3]", res.Text)
	assert.Equal(t, []string{"[NAME_3]"}, res.Unresolved)
}

func TestRehydrater_Rehydrate_VaultErrorDegrades(t *testing.T) {
	vault := &mockVaultReader{
		getFn: func(_ context.Context, _ string) (models.VaultEntry, error) {
			return models.VaultEntry{}, errors.New("database locked")
		},
	}
	r := newTestRehydrater(vault)

	res := r.Rehydrate(testContext(), Request{Text: "zie [NAME_3]"})

	assert.Equal(t, "zie [NAME_3]", res.Text, "a vault failure must not eat the token")
	assert.Equal(t, []string{"[NAME_3]"}, res.Unresolved)
}

// ─────────────────────────────────────────────
// Streaming
// ─────────────────────────────────────────────

func TestStreamRehydrater_TokenSplitAcrossChunks(t *testing.T) {
	r := newTestRehydrater(nil)
	s := r.Stream(mappingOf(models.MappingEntry{
		Original: "Jan", Placeholder: "[NAME_1]", Category: models.CategoryName,
	}), false)

	ctx := testContext()
	assert.Equal(t, "Hallo ", s.Feed(ctx, "Hallo [NA"))
	assert.Equal(t, "Jan, daag", s.Feed(ctx, "ME_1], daag"))
	assert.Equal(t, "", s.Flush(ctx))
	assert.Empty(t, s.Unresolved())
}

func TestStreamRehydrater_MaskSplitAcrossChunks(t *testing.T) {
	r := newTestRehydrater(nil)
	s := r.Stream(mappingOf(models.MappingEntry{
		Original: "Acme Corp", Placeholder: "ACME.7f3a", Category: models.CategoryCustom,
	}), false)

	ctx := testContext()
	assert.Equal(t, "bij ", s.Feed(ctx, "bij ACME"))
	assert.Equal(t, "Acme Corp klaar", s.Feed(ctx, ".7f3a klaar"))
	assert.Equal(t, "", s.Flush(ctx))
}

func TestStreamRehydrater_NonTokenBracketNotHeld(t *testing.T) {
	r := newTestRehydrater(nil)
	s := r.Stream(models.Mapping{}, false)

	out := s.Feed(testContext(), "lijst[0] en [antwoord")
	assert.Equal(t, "lijst[0] en [antwoord", out, "a bracket that cannot become a token flows through")
}

func TestStreamRehydrater_FlushDrainsUnclosedTail(t *testing.T) {
	r := newTestRehydrater(nil)
	s := r.Stream(models.Mapping{}, false)

	ctx := testContext()
	assert.Equal(t, "tot ", s.Feed(ctx, "tot [NAME_1"))
	assert.Equal(t, "[NAME_1", s.Flush(ctx), "an unclosed tail comes out verbatim at stream end")
	assert.Empty(t, s.Unresolved())
}

func TestStreamRehydrater_MatchesWholeStringForAnyChunking(t *testing.T) {
	vault := &mockVaultReader{
		getFn: func(_ context.Context, placeholder string) (models.VaultEntry, error) {
			if placeholder == "[PHONE_4]" {
				return models.VaultEntry{Placeholder: placeholder, NormalizedValue: "0612345678"}, nil
			}
			return models.VaultEntry{}, store.ErrVaultEntryNotFound
		},
	}
	r := newTestRehydrater(vault)

	mapping := mappingOf(
		models.MappingEntry{Original: "Renée Jansen", Placeholder: "[NAME_1]", Category: models.CategoryName, Confidence: 0.9},
		models.MappingEntry{Original: "Acme Corp", Placeholder: "ACME.7f3a", Category: models.CategoryCustom, Confidence: 1},
	)
	text := "Overleg café: [NAME_1] belt [PHONE_4]; zie ACME.7f3a en [GHOST_9] blijft."

	whole := r.Rehydrate(testContext(), Request{Text: text, Mapping: mapping})
	require.Equal(t, "Overleg café: Renée Jansen belt 0612345678; zie Acme Corp en [GHOST_9] blijft.", whole.Text)
	require.Equal(t, []string{"[GHOST_9]"}, whole.Unresolved)

	for size := 1; size <= 9; size++ {
		s := r.Stream(mapping, false)
		ctx := testContext()

		var b strings.Builder
		for i := 0; i < len(text); i += size {
			end := i + size
			if end > len(text) {
				end = len(text)
			}
			b.WriteString(s.Feed(ctx, text[i:end]))
		}
		b.WriteString(s.Flush(ctx))

		require.Equal(t, whole.Text, b.String(), "chunk size %d", size)
		assert.Equal(t, whole.Unresolved, s.Unresolved(), "chunk size %d", size)
	}
}

func Test_safeFlushPoint(t *testing.T) {
	mask := mappingOf(models.MappingEntry{
		Original: "Acme Corp", Placeholder: "ACME.7f3a", Category: models.CategoryCustom,
	})

	tests := []struct {
		name    string
		text    string
		mapping models.Mapping
		want    int
	}{
		{name: "empty", text: "", mapping: models.Mapping{}, want: 0},
		{name: "no candidates", text: "alles veilig", mapping: models.Mapping{}, want: len("alles veilig")},
		{name: "unclosed token", text: "ab [NAME_", mapping: models.Mapping{}, want: 3},
		{name: "bare bracket", text: "ab [", mapping: models.Mapping{}, want: 3},
		{name: "closed token flushes", text: "ab [NAME_1] cd", mapping: models.Mapping{}, want: len("ab [NAME_1] cd")},
		{name: "lowercase disqualifies", text: "ab [nee", mapping: models.Mapping{}, want: len("ab [nee")},
		{name: "mask prefix held", text: "xy ACME.7", mapping: mask, want: 3},
		{name: "full mask flushes", text: "xy ACME.7f3a!", mapping: mask, want: len("xy ACME.7f3a!")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, safeFlushPoint(tt.text, tt.mapping))
		})
	}
}
