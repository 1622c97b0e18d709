// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package email recognizes email addresses.
package email

import (
	"regexp"

	"casetrace/internal/detector"
	"casetrace/internal/scoring"
)

// Recognizer implements detector.Recognizer for email addresses.
type Recognizer struct {
	pattern *regexp.Regexp
}

// NewRecognizer creates an email recognizer using the standard
// local-part@domain.tld pattern.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		pattern: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
	}
}

// Name implements detector.Recognizer.
func (r *Recognizer) Name() string {
	return "EMAIL"
}

// Recognize scans text for email addresses, one candidate per distinct label.
func (r *Recognizer) Recognize(text string) []detector.EntityCandidate {
	seen := make(map[string]bool)
	var candidates []detector.EntityCandidate

	score := scoring.EntityScore(detector.EntityEmail)
	for _, match := range r.pattern.FindAllString(text, -1) {
		if seen[match] {
			continue
		}
		seen[match] = true

		candidates = append(candidates, detector.EntityCandidate{
			Label:           match,
			Type:            detector.EntityEmail,
			RiskScore:       score.Risk,
			ConfidenceScore: score.Confidence,
		})
	}

	return candidates
}
