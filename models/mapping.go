package models

// MappingEntry records one substitution performed during an
// anonymization pass.
type MappingEntry struct {
	// Original is the exact source text that was replaced.
	Original string `json:"original"`

	// Placeholder is what now stands in the outbound text: a vault
	// token like "[BSN_1]", a request-scoped token, or a custom
	// redaction mask.
	Placeholder string `json:"placeholder"`

	// Category is the data category, or CategoryCustom for registry
	// replacements.
	Category Category `json:"category"`

	// Confidence is the detector confidence for the span, 1 for
	// custom terms.
	Confidence float64 `json:"confidence"`
}

// Mapping is the substitution table of a single request/response round
// trip. It lives exactly as long as that round trip: the agent hands it
// to the caller and keeps no copy, and for incognito conversations the
// caller must not persist it either.
type Mapping struct {
	Entries []MappingEntry `json:"entries"`
}

// Add appends an entry unless an entry for the same original value is
// already present, keeping the mapping deduplicated by original.
func (m *Mapping) Add(e MappingEntry) {
	for _, existing := range m.Entries {
		if existing.Original == e.Original {
			return
		}
	}
	m.Entries = append(m.Entries, e)
}

// ByPlaceholder returns the entry whose placeholder equals token.
func (m *Mapping) ByPlaceholder(token string) (MappingEntry, bool) {
	for _, e := range m.Entries {
		if e.Placeholder == token {
			return e, true
		}
	}
	return MappingEntry{}, false
}

// HasPlaceholder reports whether any entry already claims token.
func (m *Mapping) HasPlaceholder(token string) bool {
	_, ok := m.ByPlaceholder(token)
	return ok
}

// Len returns the number of recorded substitutions.
func (m *Mapping) Len() int {
	return len(m.Entries)
}
