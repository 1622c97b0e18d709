// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"strings"

	"casetrace/internal/config"
	"casetrace/internal/detector"
	"casetrace/internal/recognizers/account"
	"casetrace/internal/recognizers/address"
	"casetrace/internal/recognizers/caseid"
	"casetrace/internal/recognizers/datetime"
	"casetrace/internal/recognizers/email"
	"casetrace/internal/recognizers/ipaddress"
	"casetrace/internal/recognizers/personname"
	"casetrace/internal/recognizers/phone"
	"casetrace/internal/scoring"
)

// checkOrder fixes the recognizer execution order so bundles are stable
// across runs regardless of which checks are enabled.
var checkOrder = []string{
	"PERSON_NAME",
	"ADDRESS",
	"DATE",
	"PHONE",
	"IP_ADDRESS",
	"EMAIL",
	"CASE_ID",
	"ACCOUNT",
}

// checkTypes maps check names to the entity type they emit, used when
// applying scoring overrides from configuration.
var checkTypes = map[string]detector.EntityType{
	"PERSON_NAME": detector.EntityPerson,
	"ADDRESS":     detector.EntityAddress,
	"DATE":        detector.EntityDate,
	"PHONE":       detector.EntityPhone,
	"IP_ADDRESS":  detector.EntityIP,
	"EMAIL":       detector.EntityEmail,
	"CASE_ID":     detector.EntityCaseID,
	"ACCOUNT":     detector.EntityAccount,
}

// BuildRecognizerSet constructs the recognizers for the enabled checks, in
// fixed order.
func BuildRecognizerSet(enabledChecks map[string]bool) []detector.Recognizer {
	var result []detector.Recognizer

	for _, name := range checkOrder {
		if !enabledChecks[name] {
			continue
		}
		switch name {
		case "PERSON_NAME":
			result = append(result, personname.NewRecognizer())
		case "ADDRESS":
			result = append(result, address.NewRecognizer())
		case "DATE":
			result = append(result, datetime.NewRecognizer())
		case "PHONE":
			result = append(result, phone.NewRecognizer())
		case "IP_ADDRESS":
			result = append(result, ipaddress.NewRecognizer())
		case "EMAIL":
			result = append(result, email.NewRecognizer())
		case "CASE_ID":
			result = append(result, caseid.NewRecognizer())
		case "ACCOUNT":
			result = append(result, account.NewRecognizer())
		}
	}

	return result
}

// ParseChecksToRun converts a slice of check names into an enabled-checks
// map. An empty slice or ["all"] enables every check.
func ParseChecksToRun(checks []string) map[string]bool {
	result := make(map[string]bool, len(checkOrder))
	for _, name := range checkOrder {
		result[name] = false
	}

	if len(checks) == 0 || (len(checks) == 1 && checks[0] == "all") {
		for key := range result {
			result[key] = true
		}
		return result
	}

	for _, check := range checks {
		if checkStr := strings.TrimSpace(check); checkStr != "" {
			if _, exists := result[checkStr]; exists {
				result[checkStr] = true
			}
		}
	}

	return result
}

// ParseConfidenceLevels converts a comma-separated confidence level string
// into a map. "all" or empty string enables every level.
func ParseConfidenceLevels(levels string) map[string]bool {
	result := map[string]bool{
		"high":   false,
		"medium": false,
		"low":    false,
	}

	if levels == "all" || levels == "" {
		for key := range result {
			result[key] = true
		}
		return result
	}

	for _, level := range strings.Split(levels, ",") {
		switch strings.ToLower(strings.TrimSpace(level)) {
		case "high", "medium", "low":
			result[strings.ToLower(strings.TrimSpace(level))] = true
		}
	}

	return result
}

// ApplyScoringOverrides pushes configuration calibration into the scoring
// table. Unknown type names are ignored.
func ApplyScoringOverrides(overrides map[string]config.ScoreOverride) {
	for name, override := range overrides {
		entityType, ok := typeByName(name)
		if !ok {
			continue
		}
		scoring.Calibrate(entityType, override.Risk, override.Confidence)
	}
}

func typeByName(name string) (detector.EntityType, bool) {
	for _, t := range checkTypes {
		if string(t) == name {
			return t, true
		}
	}
	return detector.EntityOther, false
}
