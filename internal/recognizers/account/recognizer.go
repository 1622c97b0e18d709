// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package account recognizes financial account identifiers: keyword-prefixed
// account numbers ("acct #4471920038") and IBAN-shaped strings. Bare digit
// runs are deliberately not matched; without a prefix they are
// indistinguishable from phone numbers and serials.
package account

import (
	"regexp"

	"casetrace/internal/detector"
	"casetrace/internal/scoring"
)

// Recognizer implements detector.Recognizer for account identifiers.
type Recognizer struct {
	patterns []*regexp.Regexp
}

// NewRecognizer creates an account-ID recognizer.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:acct|account)\.?\s*(?:#|no\.?|number)?\s*\d{6,16}\b`),
			regexp.MustCompile(`\b[A-Z]{2}\d{2}[A-Z0-9]{11,30}\b`),
		},
	}
}

// Name implements detector.Recognizer.
func (r *Recognizer) Name() string {
	return "ACCOUNT"
}

// Recognize runs each account pattern as an independent pass.
func (r *Recognizer) Recognize(text string) []detector.EntityCandidate {
	seen := make(map[string]bool)
	var candidates []detector.EntityCandidate

	score := scoring.EntityScore(detector.EntityAccount)
	for _, pattern := range r.patterns {
		for _, match := range pattern.FindAllString(text, -1) {
			if seen[match] {
				continue
			}
			seen[match] = true

			candidates = append(candidates, detector.EntityCandidate{
				Label:           match,
				Type:            detector.EntityAccount,
				RiskScore:       score.Risk,
				ConfidenceScore: score.Confidence,
			})
		}
	}

	return candidates
}
