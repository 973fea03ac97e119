package models

import "time"

// RedactionTerm is a user-defined literal that must always be masked,
// independent of what the detector finds. Terms are fully user-managed.
type RedactionTerm struct {
	// ID is the UUID of the term.
	ID string `json:"id"`

	// Label names what the term is ("Company", "Project X").
	Label string `json:"label"`

	// Original is the exact literal to replace, matched verbatim.
	Original string `json:"original"`

	// Replacement is the deterministic mask. It always has the same
	// rune length as Original so surrounding layout survives.
	Replacement string `json:"replacement"`

	// Position preserves insertion order; RemoveTerm addresses terms
	// by this index.
	Position int `json:"position"`

	CreatedAt time.Time `json:"created_at"`
}
