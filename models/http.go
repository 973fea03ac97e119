// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package models

// AnonymizeRequest asks the agent to anonymize one piece of text.
// Detection runs inside the agent; the caller only supplies text and
// conversation context.
type AnonymizeRequest struct {
	Text         string       `json:"text"`
	Conversation Conversation `json:"conversation"`

	// PersonID optionally scopes vault lookups to one household
	// member when the caller already knows whose text this is.
	PersonID string `json:"person_id,omitempty"`
}

// AnonymizeResponse carries the anonymized text, the round-trip
// mapping the caller needs for later re-hydration, and the residual
// scan over the anonymized text.
type AnonymizeResponse struct {
	Text     string     `json:"text"`
	Mapping  Mapping    `json:"mapping"`
	Scan     ScanReport `json:"scan"`
	Warnings []string   `json:"warnings,omitempty"`
}

// RehydrateRequest asks the agent to restore original values in text
// that came back from a model, using the round-trip mapping.
type RehydrateRequest struct {
	Text    string  `json:"text"`
	Mapping Mapping `json:"mapping"`
}

// RehydrateResponse carries the restored text. Unresolved lists
// placeholder tokens that could not be mapped back; they remain
// verbatim in Text.
type RehydrateResponse struct {
	Text       string   `json:"text"`
	Unresolved []string `json:"unresolved,omitempty"`
}

// ProcessDocumentRequest submits one parsed document for the full
// detect/anonymize/scan pass.
type ProcessDocumentRequest struct {
	Filename     string       `json:"filename"`
	TextContent  string       `json:"text_content"`
	Conversation Conversation `json:"conversation"`
}

// BatchDocumentsRequest submits several parsed documents at once.
// Processing happens on the document worker pool; results are
// returned per document in submission order.
type BatchDocumentsRequest struct {
	Documents    []ParsedDocument `json:"documents"`
	Conversation Conversation     `json:"conversation"`
}

// BatchDocumentsResponse carries the per-document results of a batch
// run. Failed lists indexes of documents whose processing errored.
type BatchDocumentsResponse struct {
	Results []ProcessedDocument `json:"results"`
	Failed  []int               `json:"failed,omitempty"`
}

// ResolveEntityRequest asks for person candidates for a name.
type ResolveEntityRequest struct {
	Name string `json:"name"`
}

// ResolveEntityResponse lists candidates best first. Empty means the
// user should be offered "create new person" only.
type ResolveEntityResponse struct {
	Matches []EntityMatch `json:"matches"`
}

// ConfirmExtractionRequest stores user-confirmed fields of an
// extraction for a person. The agent refuses it for incognito
// conversations.
type ConfirmExtractionRequest struct {
	Extraction PIIExtraction `json:"extraction"`
	PersonID   string        `json:"person_id"`
}

// ConfirmExtractionResponse returns the stored entries and any
// per-field warnings (for example a BSN failing its checksum).
type ConfirmExtractionResponse struct {
	Entries  []VaultEntry `json:"entries"`
	Warnings []string     `json:"warnings,omitempty"`
}

// SendMessageRequest submits one chat message for the mode-dependent
// pipeline run.
type SendMessageRequest struct {
	Conversation Conversation `json:"conversation"`
	Profile      Profile      `json:"profile"`
	Text         string       `json:"text"`
}

// ChatResponse is the assistant reply after re-hydration, plus the
// pipeline artifacts the shell shows in the anonymization indicator.
type ChatResponse struct {
	Text     string     `json:"text"`
	Mapping  Mapping    `json:"mapping"`
	Scan     ScanReport `json:"scan"`
	Warnings []string   `json:"warnings,omitempty"`
}

// AddTermRequest registers one custom redaction term.
type AddTermRequest struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ImportTermsRequest bulk-imports terms, one "label,value" per line.
type ImportTermsRequest struct {
	Text string `json:"text"`
}

// ImportTermsResponse reports how many lines were actually imported;
// malformed lines are skipped, not counted, and not fatal.
type ImportTermsResponse struct {
	Imported int `json:"imported"`
}

// CreatePersonRequest adds a household member after the user chose
// "create new person" in the resolve dialog.
type CreatePersonRequest struct {
	DisplayName  string `json:"display_name"`
	Relationship string `json:"relationship"`
	HouseholdID  string `json:"household_id,omitempty"`
}

// VersionResponse reports build metadata of the running agent.
type VersionResponse struct {
	BuildVersion string `json:"build_version"`
	BuildDate    string `json:"build_date"`
	BuildCommit  string `json:"build_commit"`
}

// ErrorResponse is the uniform error body of the agent API.
type ErrorResponse struct {
	Error string `json:"error"`
}
