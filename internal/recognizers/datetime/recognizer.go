// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package datetime recognizes calendar dates in the formats that appear in
// incident reports and medical notes: numeric (MM/DD/YYYY), ISO (YYYY-MM-DD),
// and written month-name dates.
package datetime

import (
	"regexp"

	"casetrace/internal/detector"
	"casetrace/internal/scoring"
)

// Recognizer implements detector.Recognizer for dates.
type Recognizer struct {
	patterns []*regexp.Regexp
}

// NewRecognizer creates a date recognizer covering the common report formats.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2,4}\b`),
			regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
			regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December) \d{1,2}, \d{4}\b`),
		},
	}
}

// Name implements detector.Recognizer.
func (r *Recognizer) Name() string {
	return "DATE"
}

// Recognize runs each date pattern as an independent pass. A date substring
// inside a longer identifier may also match; that overlap is accepted since
// consumers key on label+type.
func (r *Recognizer) Recognize(text string) []detector.EntityCandidate {
	seen := make(map[string]bool)
	var candidates []detector.EntityCandidate

	score := scoring.EntityScore(detector.EntityDate)
	for _, pattern := range r.patterns {
		for _, match := range pattern.FindAllString(text, -1) {
			if seen[match] {
				continue
			}
			seen[match] = true

			candidates = append(candidates, detector.EntityCandidate{
				Label:           match,
				Type:            detector.EntityDate,
				RiskScore:       score.Risk,
				ConfidenceScore: score.Confidence,
			})
		}
	}

	return candidates
}
