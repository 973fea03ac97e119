package models

// ScanReport is the result of the residual scan that runs over text
// after anonymization. It is advisory: an unsafe report warns the
// user, it never blocks anything.
type ScanReport struct {
	// IsSafe is true when no residual pattern matched.
	IsSafe bool `json:"is_safe"`

	// FoundPatterns lists the names of the patterns that matched,
	// e.g. "email" or "bsn". Deduplicated, stable order.
	FoundPatterns []string `json:"found_patterns,omitempty"`
}
