// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package caseid recognizes forensic case and docket identifiers in the
// year-unit-sequence shapes used by law-enforcement filing systems, e.g.
// "2023-HOM-00412" and "CR-2024-1187".
package caseid

import (
	"regexp"

	"casetrace/internal/detector"
	"casetrace/internal/scoring"
)

// Recognizer implements detector.Recognizer for case identifiers.
type Recognizer struct {
	patterns []*regexp.Regexp
}

// NewRecognizer creates a case-ID recognizer.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		patterns: []*regexp.Regexp{
			// Year first: 2023-HOM-00412
			regexp.MustCompile(`\b\d{4}-[A-Z]{2,4}-\d{3,6}\b`),
			// Unit first: CR-2024-1187
			regexp.MustCompile(`\b[A-Z]{2,4}-\d{4}-\d{3,6}\b`),
		},
	}
}

// Name implements detector.Recognizer.
func (r *Recognizer) Name() string {
	return "CASE_ID"
}

// Recognize runs each identifier pattern as an independent pass.
func (r *Recognizer) Recognize(text string) []detector.EntityCandidate {
	seen := make(map[string]bool)
	var candidates []detector.EntityCandidate

	score := scoring.EntityScore(detector.EntityCaseID)
	for _, pattern := range r.patterns {
		for _, match := range pattern.FindAllString(text, -1) {
			if seen[match] {
				continue
			}
			seen[match] = true

			candidates = append(candidates, detector.EntityCandidate{
				Label:           match,
				Type:            detector.EntityCaseID,
				RiskScore:       score.Risk,
				ConfidenceScore: score.Confidence,
			})
		}
	}

	return candidates
}
