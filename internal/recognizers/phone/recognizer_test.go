// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import "testing"

func TestRecognize_Formats(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"dashed", "Call placed to 555-867-5309 at 0214."},
		{"parenthesized", "Subscriber (212) 555-0147 answered."},
		{"dotted", "Logged outbound to 646.555.0199."},
		{"country prefix", "International record +1 305-555-0123 present."},
	}

	r := NewRecognizer()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if candidates := r.Recognize(tc.text); len(candidates) != 1 {
				t.Errorf("expected one candidate, got %d", len(candidates))
			}
		})
	}
}

func TestRecognize_DefaultRisk(t *testing.T) {
	r := NewRecognizer()
	candidates := r.Recognize("555-867-5309")
	if len(candidates) != 1 {
		t.Fatalf("expected one candidate, got %d", len(candidates))
	}
	if candidates[0].RiskScore != 10 {
		t.Errorf("expected default risk 10, got %.0f", candidates[0].RiskScore)
	}
}

func TestRecognize_NoMatch(t *testing.T) {
	r := NewRecognizer()
	if candidates := r.Recognize("No callbacks were recorded."); len(candidates) != 0 {
		t.Errorf("expected no candidates, got %d", len(candidates))
	}
}
