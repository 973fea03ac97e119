package models

const (
	// MatchExact marks a case-insensitive exact name match.
	MatchExact = "exact"

	// MatchHigh marks a similarity score at or above the high
	// confidence threshold.
	MatchHigh = "high"

	// MatchPossible marks a score between the possible and high
	// thresholds.
	MatchPossible = "possible"
)

// EntityMatch is one candidate person for an ambiguous name, proposed
// to the user for confirmation. Matching never binds on its own.
type EntityMatch struct {
	Person Person  `json:"person"`
	Score  float64 `json:"score"`
	Grade  string  `json:"grade"`
}
