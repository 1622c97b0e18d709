// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "strings"

// EntityType classifies an entity candidate surfaced from a document.
type EntityType string

const (
	EntityPerson  EntityType = "person"
	EntityPhone   EntityType = "phone"
	EntityEmail   EntityType = "email"
	EntityIP      EntityType = "ip"
	EntityAddress EntityType = "address"
	EntityDate    EntityType = "date"
	EntityCaseID  EntityType = "case_id"
	EntityAccount EntityType = "account_id"
	EntityOther   EntityType = "other"
)

// Severity levels for insight findings, lowest to highest.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// EntityCandidate is a transient entity surfaced from one document. Durable
// identity is assigned downstream; the pipeline keys on Label+Type only.
type EntityCandidate struct {
	Label           string     `json:"label"`
	Type            EntityType `json:"type"`
	RiskScore       float64    `json:"risk_score"`
	ConfidenceScore float64    `json:"confidence_score"`
}

// RelationshipCandidate is a proposed link between two entity candidates.
// Source/Target are entity labels; pairs are proposed once in canonical
// order, so SourceLabel always sorts before TargetLabel within one document.
type RelationshipCandidate struct {
	SourceLabel     string  `json:"source_label"`
	TargetLabel     string  `json:"target_label"`
	Basis           string  `json:"basis"`
	StrengthScore   float64 `json:"strength_score"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// InsightFinding is a severity-tagged synthesis result. Summary and
// Explanation are fixed per rule, not derived per document.
type InsightFinding struct {
	Severity        Severity `json:"severity"`
	Summary         string   `json:"summary"`
	Explanation     string   `json:"explanation"`
	ConfidenceScore float64  `json:"confidence_score"`
}

// Provenance carries document-level metadata recovered during discovery
// (PDF info dictionary, image EXIF). Informational only; never hashed.
type Provenance struct {
	Producer string `json:"producer,omitempty"`
	Author   string `json:"author,omitempty"`
	Title    string `json:"title,omitempty"`
	Created  string `json:"created,omitempty"`
	Modified string `json:"modified,omitempty"`
	GPS      string `json:"gps,omitempty"`
	Camera   string `json:"camera,omitempty"`
}

// FindingsBundle is the unified result of one document analysis pass.
// Immutable after return. A populated SkippedReason means the document
// could not be analyzed; that is a no-op for callers, not an error.
type FindingsBundle struct {
	Entities      []EntityCandidate       `json:"entities"`
	Relationships []RelationshipCandidate `json:"relationships"`
	Insights      []InsightFinding        `json:"insights"`
	SkippedReason string                  `json:"skipped_reason,omitempty"`
	Provenance    *Provenance             `json:"provenance,omitempty"`
}

// Skipped reports whether the document was skipped rather than analyzed.
func (b *FindingsBundle) Skipped() bool {
	return b.SkippedReason != ""
}

// Empty reports whether the bundle carries no findings of any kind.
func (b *FindingsBundle) Empty() bool {
	return len(b.Entities) == 0 && len(b.Relationships) == 0 && len(b.Insights) == 0
}

// Recognizer is implemented by each pattern recognizer. Recognize must be
// pure, deterministic, and total: malformed text yields fewer candidates,
// never an error. Implementations must not retain state between calls so
// one recognizer instance can serve concurrent documents.
type Recognizer interface {
	Recognize(text string) []EntityCandidate

	// Name returns the recognizer's check name (e.g. "PERSON_NAME").
	Name() string
}

// SuppressedEntity is an entity candidate withheld from the bundle by an
// analyst suppression rule.
type SuppressedEntity struct {
	Entity       EntityCandidate `json:"entity"`
	SuppressedBy string          `json:"suppressed_by"`
	RuleReason   string          `json:"rule_reason"`
}

// Window returns the substring of text spanning [start,end) clamped to the
// text bounds. Recognizers and the reasoner use it for contextual checks.
func Window(text string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start >= end {
		return ""
	}
	return text[start:end]
}

// FirstOccurrence returns the byte offset of the first occurrence of label
// in text, or -1. Proximity scoring keys on first mentions only.
func FirstOccurrence(text, label string) int {
	return strings.Index(text, label)
}
