// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package models

// DetectedSpan is one hit reported by the entity detector: a byte
// range of the analyzed text, the category the detector assigned, and
// its confidence in [0,1].
//
// Start is inclusive, End exclusive, both byte offsets into the
// original text.
type DetectedSpan struct {
	Start      int      `json:"start"`
	End        int      `json:"end"`
	Category   Category `json:"category"`
	Confidence float64  `json:"confidence"`
}

// Length returns the span width in bytes.
func (s DetectedSpan) Length() int {
	return s.End - s.Start
}

// Overlaps reports whether the two spans share at least one byte.
func (s DetectedSpan) Overlaps(other DetectedSpan) bool {
	return s.Start < other.End && other.Start < s.End
}
