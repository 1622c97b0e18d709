// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	stdjson "encoding/json"
	"testing"

	"casetrace/internal/detector"
	"casetrace/internal/formatters"
)

func sampleResults() []formatters.Result {
	return []formatters.Result{
		{
			FilePath: "report.txt",
			Bundle: &detector.FindingsBundle{
				Entities: []detector.EntityCandidate{
					{Label: "John Smith", Type: detector.EntityPerson, ConfidenceScore: 85},
					{Label: "2024-HOM-0041", Type: detector.EntityCaseID, RiskScore: 5, ConfidenceScore: 99},
				},
				Relationships: []detector.RelationshipCandidate{
					{SourceLabel: "Jane Doe", TargetLabel: "John Smith", Basis: "financial transfer",
						StrengthScore: 90, ConfidenceScore: 85},
				},
				Insights: []detector.InsightFinding{
					{Severity: detector.SeverityMedium, Summary: "Financial Transfer Activity", ConfidenceScore: 80},
				},
			},
		},
	}
}

func TestFormat_ValidJSON(t *testing.T) {
	out, err := NewFormatter().Format(sampleResults(), formatters.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		Documents []struct {
			FilePath      string                           `json:"file_path"`
			Entities      []detector.EntityCandidate       `json:"entities"`
			Relationships []detector.RelationshipCandidate `json:"relationships"`
			Insights      []detector.InsightFinding        `json:"insights"`
		} `json:"documents"`
	}
	if err := stdjson.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(decoded.Documents) != 1 {
		t.Fatalf("expected 1 document, got %d", len(decoded.Documents))
	}
	doc := decoded.Documents[0]
	if doc.FilePath != "report.txt" {
		t.Errorf("file path = %q", doc.FilePath)
	}
	if len(doc.Entities) != 2 || len(doc.Relationships) != 1 || len(doc.Insights) != 1 {
		t.Errorf("counts: entities=%d relationships=%d insights=%d",
			len(doc.Entities), len(doc.Relationships), len(doc.Insights))
	}
	if doc.Relationships[0].Basis != "financial transfer" {
		t.Errorf("relationship basis = %q", doc.Relationships[0].Basis)
	}
}

func TestFormat_ConfidenceFilter(t *testing.T) {
	options := formatters.Options{ConfidenceLevel: map[string]bool{"high": true}}
	out, err := NewFormatter().Format(sampleResults(), options)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		Documents []struct {
			Entities []detector.EntityCandidate `json:"entities"`
		} `json:"documents"`
	}
	if err := stdjson.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	// Only the 99-confidence case id survives the high-only filter.
	if len(decoded.Documents[0].Entities) != 1 {
		t.Fatalf("expected 1 entity after filtering, got %d", len(decoded.Documents[0].Entities))
	}
	if decoded.Documents[0].Entities[0].Type != detector.EntityCaseID {
		t.Errorf("wrong entity survived: %s", decoded.Documents[0].Entities[0].Label)
	}
}

func TestFormat_SkippedDocument(t *testing.T) {
	results := []formatters.Result{
		{FilePath: "empty.txt", Bundle: &detector.FindingsBundle{SkippedReason: "empty content"}},
	}
	out, err := NewFormatter().Format(results, formatters.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := stdjson.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	docs := decoded["documents"].([]any)
	doc := docs[0].(map[string]any)
	if doc["skipped_reason"] != "empty content" {
		t.Errorf("skipped_reason = %v", doc["skipped_reason"])
	}
	// Arrays stay non-null for stable consumers.
	if doc["entities"] == nil {
		t.Error("entities should serialize as an empty array, not null")
	}
}
