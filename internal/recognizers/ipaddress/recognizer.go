// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package ipaddress recognizes IPv4 addresses. Candidates are validated
// with net.ParseIP so dotted sequences with out-of-range octets are
// dropped rather than emitted at reduced confidence.
package ipaddress

import (
	"net"
	"regexp"

	"casetrace/internal/detector"
	"casetrace/internal/scoring"
)

// Recognizer implements detector.Recognizer for IP addresses.
type Recognizer struct {
	pattern *regexp.Regexp
}

// NewRecognizer creates an IPv4 recognizer.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		pattern: regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`),
	}
}

// Name implements detector.Recognizer.
func (r *Recognizer) Name() string {
	return "IP_ADDRESS"
}

// Recognize scans text for IPv4 addresses.
func (r *Recognizer) Recognize(text string) []detector.EntityCandidate {
	seen := make(map[string]bool)
	var candidates []detector.EntityCandidate

	score := scoring.EntityScore(detector.EntityIP)
	for _, match := range r.pattern.FindAllString(text, -1) {
		if seen[match] {
			continue
		}
		seen[match] = true

		if net.ParseIP(match) == nil {
			continue
		}

		candidates = append(candidates, detector.EntityCandidate{
			Label:           match,
			Type:            detector.EntityIP,
			RiskScore:       score.Risk,
			ConfidenceScore: score.Confidence,
		})
	}

	return candidates
}
