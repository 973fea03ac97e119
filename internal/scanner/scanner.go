// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

// Package scanner runs the residual check over already-anonymized text:
// a set of structural regexes that catches personal data the detector or
// the custom-term pass missed. It inspects only the output text, never
// the anonymizer's state, so a detector blind spot cannot blind it too.
package scanner

import (
	"regexp"

	"github.com/rvanwijk/pii-guard/internal/validators"
	"github.com/rvanwijk/pii-guard/models"
)

// residualPatterns are checked in order; FoundPatterns keeps that
// order. A classify hook refines the reported name per match, which
// lets the digit-run pattern tell checksum-valid BSNs apart from
// arbitrary ID-like runs.
var residualPatterns = []struct {
	name     string
	re       *regexp.Regexp
	classify func(match string) string
}{
	{name: "id_digits", re: regexp.MustCompile(`\b\d{8,9}\b`), classify: classifyDigitRun},
	{name: "email", re: regexp.MustCompile(`\b[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}\b`)},
	{name: "phone_nl", re: regexp.MustCompile(`(?:\+31|\b0031|\b0)[\s\-]?[1-9](?:[\s\-]?\d){8}\b`)},
	{name: "phone_intl", re: regexp.MustCompile(`\+\d{1,3}[-\s]?\d{1,4}[-\s]?\d{3,4}[-\s]?\d{3,4}\b`)},
	{name: "iban", re: regexp.MustCompile(`\b[A-Z]{2}\d{2}[-\s]?[A-Z0-9]{4}[-\s]?(?:[A-Z0-9]{4}[-\s]?){1,7}[A-Z0-9]{1,4}\b`)},
	{name: "card", re: regexp.MustCompile(`\b(?:\d{4}[-\s]?){3}\d{4}\b`)},
	{name: "postcode_nl", re: regexp.MustCompile(`\b[1-9]\d{3}\s?[A-Z]{2}\b`)},
}

func classifyDigitRun(match string) string {
	if validators.Elfproef(match) {
		return "bsn"
	}
	return "id_digits"
}

// Scanner is stateless and safe for concurrent use.
type Scanner struct{}

func New() *Scanner {
	return &Scanner{}
}

// Scan reports every residual pattern found in text. The report is
// advisory: the caller surfaces it to the user and decides, the scanner
// never blocks anything.
func (s *Scanner) Scan(text string) models.ScanReport {
	report := models.ScanReport{IsSafe: true}

	seen := make(map[string]struct{})
	add := func(name string) {
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		report.FoundPatterns = append(report.FoundPatterns, name)
	}

	for _, p := range residualPatterns {
		if p.classify == nil {
			if p.re.MatchString(text) {
				add(p.name)
			}
			continue
		}
		for _, match := range p.re.FindAllString(text, -1) {
			add(p.classify(match))
		}
	}

	report.IsSafe = len(report.FoundPatterns) == 0

	return report
}
