// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package personname recognizes person names using a capitalization
// heuristic: two consecutive capitalized tokens, filtered against an
// explicit denylist of document headers and labels that match the same
// shape. The denylist is a named constant set so false-positive tuning
// stays auditable; this is a rule table, not a statistical model.
package personname

import (
	"regexp"
	"strings"

	"casetrace/internal/detector"
	"casetrace/internal/scoring"
)

// Recognizer implements detector.Recognizer for person names.
type Recognizer struct {
	pattern *regexp.Regexp
}

// NewRecognizer creates a person-name recognizer with the standard
// two-token capitalization pattern.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		pattern: regexp.MustCompile(`\b([A-Z][a-z]+ [A-Z][a-z]+)\b`),
	}
}

// Name implements detector.Recognizer.
func (r *Recognizer) Name() string {
	return "PERSON_NAME"
}

// Recognize scans text for capitalized two-token names. Identical labels
// are emitted once per document.
func (r *Recognizer) Recognize(text string) []detector.EntityCandidate {
	seen := make(map[string]bool)
	var candidates []detector.EntityCandidate

	score := scoring.EntityScore(detector.EntityPerson)
	for _, match := range r.pattern.FindAllString(text, -1) {
		if seen[match] {
			continue
		}
		seen[match] = true

		if r.denylisted(match) {
			continue
		}

		candidates = append(candidates, detector.EntityCandidate{
			Label:           match,
			Type:            detector.EntityPerson,
			RiskScore:       score.Risk,
			ConfidenceScore: score.Confidence,
		})
	}

	return candidates
}

// denylisted rejects a candidate whose full phrase is a known header or
// whose tokens include a form-field label.
func (r *Recognizer) denylisted(phrase string) bool {
	if Denylist[phrase] {
		return true
	}
	for _, token := range strings.Fields(phrase) {
		if LabelTokens[token] {
			return true
		}
	}
	return false
}
