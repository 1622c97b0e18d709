// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import "testing"

func TestConfidenceLevel(t *testing.T) {
	tests := []struct {
		confidence float64
		want       string
	}{
		{100, "HIGH"},
		{90, "HIGH"},
		{89.9, "MEDIUM"},
		{60, "MEDIUM"},
		{59.9, "LOW"},
		{0, "LOW"},
	}

	for _, tt := range tests {
		if got := ConfidenceLevel(tt.confidence); got != tt.want {
			t.Errorf("ConfidenceLevel(%.1f) = %s, want %s", tt.confidence, got, tt.want)
		}
	}
}

func TestLevelEnabled(t *testing.T) {
	// Nil map enables everything.
	if !LevelEnabled(Options{}, 10) {
		t.Error("nil level map should enable all levels")
	}

	options := Options{ConfidenceLevel: map[string]bool{"high": true, "medium": false, "low": false}}
	if !LevelEnabled(options, 95) {
		t.Error("high-confidence score should be enabled")
	}
	if LevelEnabled(options, 75) {
		t.Error("medium-confidence score should be filtered")
	}
}

type stubFormatter struct{ name string }

func (s stubFormatter) Format(results []Result, options Options) (string, error) { return "", nil }
func (s stubFormatter) Name() string                                             { return s.name }
func (s stubFormatter) Description() string                                      { return "stub" }
func (s stubFormatter) FileExtension() string                                    { return ".stub" }

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	registry.Register(stubFormatter{name: "stub"})

	if _, exists := registry.Get("stub"); !exists {
		t.Error("registered formatter not found")
	}
	if _, exists := registry.Get("missing"); exists {
		t.Error("unregistered formatter found")
	}
	if names := registry.List(); len(names) != 1 || names[0] != "stub" {
		t.Errorf("unexpected registry listing: %v", names)
	}
}
