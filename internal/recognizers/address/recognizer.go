// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package address recognizes US-style street addresses.
package address

import (
	"regexp"

	"casetrace/internal/detector"
	"casetrace/internal/scoring"
)

// Recognizer implements detector.Recognizer for street addresses.
type Recognizer struct {
	pattern *regexp.Regexp
}

// NewRecognizer creates an address recognizer matching a street number,
// a capitalized street name, and a common street suffix.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		pattern: regexp.MustCompile(
			`\b\d+ [A-Z][a-z]+(?: [A-Z][a-z]+)? (?:Ave|Avenue|St|Street|Rd|Road|Blvd|Boulevard|Drive|Dr|Lane|Ln|Court|Ct|Way|Place|Pl)\b`),
	}
}

// Name implements detector.Recognizer.
func (r *Recognizer) Name() string {
	return "ADDRESS"
}

// Recognize scans text for street addresses, one candidate per distinct label.
func (r *Recognizer) Recognize(text string) []detector.EntityCandidate {
	seen := make(map[string]bool)
	var candidates []detector.EntityCandidate

	score := scoring.EntityScore(detector.EntityAddress)
	for _, match := range r.pattern.FindAllString(text, -1) {
		if seen[match] {
			continue
		}
		seen[match] = true

		candidates = append(candidates, detector.EntityCandidate{
			Label:           match,
			Type:            detector.EntityAddress,
			RiskScore:       score.Risk,
			ConfidenceScore: score.Confidence,
		})
	}

	return candidates
}
