// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package personname

import (
	"testing"

	"casetrace/internal/detector"
)

func TestRecognize_BasicNames(t *testing.T) {
	r := NewRecognizer()
	candidates := r.Recognize("John Smith met Jane Doe near the river.")

	labels := make(map[string]bool)
	for _, c := range candidates {
		if c.Type != detector.EntityPerson {
			t.Errorf("expected person type, got %s", c.Type)
		}
		labels[c.Label] = true
	}

	if !labels["John Smith"] {
		t.Error("expected John Smith to be recognized")
	}
	if !labels["Jane Doe"] {
		t.Error("expected Jane Doe to be recognized")
	}
}

func TestRecognize_DenylistedHeader(t *testing.T) {
	r := NewRecognizer()
	candidates := r.Recognize("Medical Examiner notes follow.")

	for _, c := range candidates {
		if c.Label == "Medical Examiner" {
			t.Error("denylisted phrase should not be emitted as a person")
		}
	}
}

func TestRecognize_LabelTokenRejected(t *testing.T) {
	r := NewRecognizer()
	candidates := r.Recognize("Date Reported and Name Unknown appear as headers.")

	if len(candidates) != 0 {
		t.Errorf("expected no candidates for form-field phrases, got %v", candidates)
	}
}

func TestRecognize_Deduplication(t *testing.T) {
	r := NewRecognizer()
	candidates := r.Recognize("John Smith spoke. John Smith left. John Smith returned.")

	if len(candidates) != 1 {
		t.Errorf("expected a single deduplicated candidate, got %d", len(candidates))
	}
}

func TestRecognize_EmptyText(t *testing.T) {
	r := NewRecognizer()
	if candidates := r.Recognize(""); len(candidates) != 0 {
		t.Errorf("expected no candidates for empty text, got %d", len(candidates))
	}
}

func TestRecognize_DefaultScores(t *testing.T) {
	r := NewRecognizer()
	candidates := r.Recognize("Alice Walker attended.")
	if len(candidates) != 1 {
		t.Fatalf("expected one candidate, got %d", len(candidates))
	}
	if candidates[0].ConfidenceScore != 85 {
		t.Errorf("expected default confidence 85, got %.0f", candidates[0].ConfidenceScore)
	}
	if candidates[0].RiskScore != 0 {
		t.Errorf("expected default risk 0, got %.0f", candidates[0].RiskScore)
	}
}
