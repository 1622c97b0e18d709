// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package scoring centralizes every default risk, strength, and confidence
// constant used by the analysis pipeline. Keeping them in one table gives a
// single calibration point; no recognizer or rule embeds its own literals.
package scoring

import "casetrace/internal/detector"

// TypeScore holds the default scores assigned to every candidate of one
// entity type. Scores are on a 0..100 scale.
type TypeScore struct {
	Risk       float64
	Confidence float64
}

// EntityDefaults maps entity types to their default scores.
var EntityDefaults = map[detector.EntityType]TypeScore{
	detector.EntityPerson:  {Risk: 0, Confidence: 85},
	detector.EntityAddress: {Risk: 0, Confidence: 90},
	detector.EntityDate:    {Risk: 0, Confidence: 80},
	detector.EntityPhone:   {Risk: 10, Confidence: 95},
	detector.EntityIP:      {Risk: 25, Confidence: 98},
	detector.EntityEmail:   {Risk: 15, Confidence: 97},
	detector.EntityCaseID:  {Risk: 5, Confidence: 99},
	detector.EntityAccount: {Risk: 30, Confidence: 92},
	detector.EntityOther:   {Risk: 0, Confidence: 50},
}

// EntityScore returns the default scores for an entity type, falling back
// to the "other" row for unknown types.
func EntityScore(t detector.EntityType) TypeScore {
	if s, ok := EntityDefaults[t]; ok {
		return s
	}
	return EntityDefaults[detector.EntityOther]
}

// Calibrate overrides the default scores for one entity type. Nil fields
// keep the current value. Intended for startup-time configuration; not
// safe to call concurrently with analysis.
func Calibrate(t detector.EntityType, risk, confidence *float64) {
	s := EntityScore(t)
	if risk != nil {
		s.Risk = *risk
	}
	if confidence != nil {
		s.Confidence = *confidence
	}
	EntityDefaults[t] = s
}

// RelationRule scores one relationship basis.
type RelationRule struct {
	Basis      string
	Strength   float64
	Confidence float64
}

// Relationship rule constants. The reasoner evaluates them in its documented
// priority order; the order of this block is not load-bearing.
var (
	RelFinancial = RelationRule{Basis: "financial transfer", Strength: 90, Confidence: 85}
	RelComms     = RelationRule{Basis: "suspicious communication", Strength: 95, Confidence: 90}
	RelProximity = RelationRule{Basis: "high-proximity co-occurrence", Strength: 60, Confidence: 65}
	RelNarrative = RelationRule{Basis: "incident narrative co-occurrence", Strength: 75, Confidence: 70}
)

// Window and distance limits for the reasoner.
const (
	// PairWindowChars is the half-width added around the span covering both
	// mentions when scanning for contextual keywords.
	PairWindowChars = 200

	// ProximityMaxDistance is the maximum first-mention distance, in bytes,
	// for the proximity fallback to propose a link.
	ProximityMaxDistance = 500
)

// InsightRule scores one synthesizer rule.
type InsightRule struct {
	Severity   detector.Severity
	Confidence float64
}

// Insight rule constants.
var (
	InsightToxicology = InsightRule{Severity: detector.SeverityCritical, Confidence: 95}
	InsightTrauma     = InsightRule{Severity: detector.SeverityHigh, Confidence: 90}
	InsightFinancial  = InsightRule{Severity: detector.SeverityMedium, Confidence: 80}
	InsightHomicide   = InsightRule{Severity: detector.SeverityCritical, Confidence: 97}
)
