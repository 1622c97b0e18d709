// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package suppressions

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"casetrace/internal/detector"
)

func writeRules(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suppressions.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewManager_MissingFileIsEmpty(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent.yaml"))
	if m.RuleCount() != 0 {
		t.Errorf("expected empty rule set, got %d rules", m.RuleCount())
	}

	ok, _ := m.IsSuppressed(detector.EntityCandidate{Label: "John Smith", Type: detector.EntityPerson})
	if ok {
		t.Error("empty manager should suppress nothing")
	}
}

func TestNewManager_MalformedFileIsEmpty(t *testing.T) {
	path := writeRules(t, "rules: [not: valid: yaml")
	m := NewManager(path)
	if m.RuleCount() != 0 {
		t.Errorf("expected empty rule set for malformed file, got %d rules", m.RuleCount())
	}
}

func TestIsSuppressed(t *testing.T) {
	path := writeRules(t, `version: "1.0"
rules:
  - id: SUP-00000001
    label: Medical Examiner Office
    reason: institutional term
    enabled: true
  - id: SUP-00000002
    label: 555-100-2000
    type: phone
    reason: station desk line
    enabled: true
  - id: SUP-00000003
    label: Jane Doe
    reason: retired rule
    enabled: false
`)
	m := NewManager(path)
	if m.RuleCount() != 3 {
		t.Fatalf("expected 3 rules, got %d", m.RuleCount())
	}

	tests := []struct {
		name   string
		entity detector.EntityCandidate
		want   bool
		ruleID string
	}{
		{
			name:   "label match any type",
			entity: detector.EntityCandidate{Label: "Medical Examiner Office", Type: detector.EntityPerson},
			want:   true,
			ruleID: "SUP-00000001",
		},
		{
			name:   "label and type match",
			entity: detector.EntityCandidate{Label: "555-100-2000", Type: detector.EntityPhone},
			want:   true,
			ruleID: "SUP-00000002",
		},
		{
			name:   "type mismatch",
			entity: detector.EntityCandidate{Label: "555-100-2000", Type: detector.EntityAccount},
			want:   false,
		},
		{
			name:   "disabled rule never matches",
			entity: detector.EntityCandidate{Label: "Jane Doe", Type: detector.EntityPerson},
			want:   false,
		},
		{
			name:   "unlisted label",
			entity: detector.EntityCandidate{Label: "John Smith", Type: detector.EntityPerson},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, rule := m.IsSuppressed(tt.entity)
			if ok != tt.want {
				t.Fatalf("IsSuppressed=%v, want %v", ok, tt.want)
			}
			if ok && rule.ID != tt.ruleID {
				t.Errorf("matched rule %s, want %s", rule.ID, tt.ruleID)
			}
		})
	}
}

func TestIsSuppressed_ExpiredRule(t *testing.T) {
	past := time.Now().Add(-24 * time.Hour).UTC().Format(time.RFC3339)
	path := writeRules(t, `version: "1.0"
rules:
  - id: SUP-00000001
    label: John Smith
    reason: provisional
    enabled: true
    expires_at: `+past+`
`)
	m := NewManager(path)

	ok, _ := m.IsSuppressed(detector.EntityCandidate{Label: "John Smith", Type: detector.EntityPerson})
	if ok {
		t.Error("expired rule should not match")
	}
}

func TestApply(t *testing.T) {
	path := writeRules(t, `version: "1.0"
rules:
  - id: SUP-00000001
    label: Police Department
    reason: institutional term
    enabled: true
`)
	m := NewManager(path)

	entities := []detector.EntityCandidate{
		{Label: "John Smith", Type: detector.EntityPerson},
		{Label: "Police Department", Type: detector.EntityPerson},
		{Label: "Jane Doe", Type: detector.EntityPerson},
	}

	kept, suppressed := m.Apply(entities)
	if len(kept) != 2 {
		t.Errorf("expected 2 kept entities, got %d", len(kept))
	}
	if len(suppressed) != 1 {
		t.Fatalf("expected 1 suppressed entity, got %d", len(suppressed))
	}
	if suppressed[0].Entity.Label != "Police Department" {
		t.Errorf("wrong entity suppressed: %s", suppressed[0].Entity.Label)
	}
	if suppressed[0].SuppressedBy != "SUP-00000001" {
		t.Errorf("wrong rule attribution: %s", suppressed[0].SuppressedBy)
	}
	// Order of kept entities is preserved.
	if kept[0].Label != "John Smith" || kept[1].Label != "Jane Doe" {
		t.Errorf("kept order changed: %s, %s", kept[0].Label, kept[1].Label)
	}
}

func TestAddRule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suppressions.yaml")
	m := NewManager(path)

	rule, err := m.AddRule("Main Street Precinct", "address", "station address", "det. reyes", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rule.ID != "SUP-00000001" {
		t.Errorf("expected first rule ID SUP-00000001, got %s", rule.ID)
	}
	if !rule.Enabled {
		t.Error("new rules must be enabled")
	}

	// Duplicates rejected.
	if _, err := m.AddRule("Main Street Precinct", "address", "again", "det. reyes", nil); err == nil {
		t.Error("expected duplicate rule error")
	}

	// Sequential IDs.
	second, err := m.AddRule("Oak Street Annex", "address", "station annex", "det. reyes", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != "SUP-00000002" {
		t.Errorf("expected SUP-00000002, got %s", second.ID)
	}

	// Rules persist across reload.
	reloaded := NewManager(path)
	if reloaded.RuleCount() != 2 {
		t.Errorf("expected 2 persisted rules, got %d", reloaded.RuleCount())
	}
	ok, _ := reloaded.IsSuppressed(detector.EntityCandidate{Label: "Main Street Precinct", Type: detector.EntityAddress})
	if !ok {
		t.Error("persisted rule should suppress after reload")
	}
}
