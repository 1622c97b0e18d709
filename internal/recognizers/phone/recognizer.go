// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package phone recognizes North American phone numbers in the separator
// styles that show up in call logs: dashed, dotted, spaced, and
// parenthesized area codes, with an optional +1 country prefix.
package phone

import (
	"regexp"

	"casetrace/internal/detector"
	"casetrace/internal/scoring"
)

// Recognizer implements detector.Recognizer for phone numbers.
type Recognizer struct {
	pattern *regexp.Regexp
}

// NewRecognizer creates a phone-number recognizer.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		pattern: regexp.MustCompile(`(?:\+1[-.\s]?)?\(?\d{3}\)?[-.\s]\d{3}[-.\s]?\d{4}\b`),
	}
}

// Name implements detector.Recognizer.
func (r *Recognizer) Name() string {
	return "PHONE"
}

// Recognize scans text for phone numbers, one candidate per distinct label.
// The label keeps the number exactly as written; normalization is left to
// downstream consumers that need to merge formats.
func (r *Recognizer) Recognize(text string) []detector.EntityCandidate {
	seen := make(map[string]bool)
	var candidates []detector.EntityCandidate

	score := scoring.EntityScore(detector.EntityPhone)
	for _, match := range r.pattern.FindAllString(text, -1) {
		if seen[match] {
			continue
		}
		seen[match] = true

		candidates = append(candidates, detector.EntityCandidate{
			Label:           match,
			Type:            detector.EntityPhone,
			RiskScore:       score.Risk,
			ConfidenceScore: score.Confidence,
		})
	}

	return candidates
}
