// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package models

import "time"

// VaultEntry is one stored piece of personal data together with the
// placeholder that stands in for it in outbound text.
//
// The placeholder is minted once, from a persistent per-category
// sequence, and never changes or gets reused afterwards, even if the
// entry is removed. That stability is what makes re-hydration of old
// conversations possible.
type VaultEntry struct {
	// ID is the UUID of the entry.
	ID string `json:"id"`

	// PersonID binds the entry to a household member. Empty for
	// values stored before the user attributed them to anyone.
	PersonID string `json:"person_id,omitempty"`

	// Category is the kind of data the entry holds.
	Category Category `json:"category"`

	// NormalizedValue is the canonical form of the original value
	// (lower-cased, whitespace-collapsed). It is never serialized:
	// the agent API returns placeholders, not raw personal data.
	NormalizedValue string `json:"-"`

	// EncryptedValue is the AES-GCM blob of the normalized value as it
	// sits on disk. Only the store layer and the vault service touch it.
	EncryptedValue string `json:"-"`

	// ValueIndex is the keyed HMAC over category and normalized value.
	// Equality lookups go through this column so the table never has to
	// be decrypted to answer "have I seen this value before".
	ValueIndex string `json:"-"`

	// Placeholder is the stable substitution token, e.g. "[BSN_1]".
	Placeholder string `json:"placeholder"`

	// Confidence is the detector confidence at the time the value
	// was confirmed, in [0,1]. Manual entries carry 1.
	Confidence float64 `json:"confidence"`

	// SourceDocumentID records which processed document the value
	// came from, when applicable.
	SourceDocumentID string `json:"source_document_id,omitempty"`

	// UseCount counts anonymization passes that substituted this
	// entry. Incognito traffic never touches it.
	UseCount int64 `json:"use_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
