package models

// ParsedDocument is the text form of an uploaded document. Parsing
// binary formats (PDF, DOCX, scans) happens outside the agent; the
// shell hands over extracted text only.
type ParsedDocument struct {
	// ID is assigned by the agent when processing starts.
	ID string `json:"id,omitempty"`

	// Filename is the original file name, kept for display and for
	// SourceDocumentID bookkeeping on stored values.
	Filename string `json:"filename"`

	// TextContent is the full extracted text.
	TextContent string `json:"text_content"`
}

// ExtractedField is one candidate piece of personal data found in a
// document, awaiting user confirmation.
type ExtractedField struct {
	Category   Category `json:"category"`
	Value      string   `json:"value"`
	Confidence float64  `json:"confidence"`
}

// PIIExtraction is the set of candidate fields from one document or
// message, together with the conversation it came from. Confirmation
// binds fields to a person and writes them to the vault; extractions
// from incognito conversations can never be confirmed.
type PIIExtraction struct {
	DocumentID   string           `json:"document_id,omitempty"`
	Conversation Conversation     `json:"conversation"`
	Fields       []ExtractedField `json:"fields"`
}

// ProcessedDocument is the complete result of one document pass:
// the parsed input, the candidate extraction, the anonymized text
// with its mapping, and the residual scan over that text.
type ProcessedDocument struct {
	Parsed     ParsedDocument `json:"parsed"`
	Extraction PIIExtraction  `json:"extraction"`
	Anonymized string         `json:"anonymized"`
	Mapping    Mapping        `json:"mapping"`
	Scan       ScanReport     `json:"scan"`
	Warnings   []string       `json:"warnings,omitempty"`
}
