// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package caseid

import "testing"

func TestRecognize_IdentifierShapes(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"year first", "Cross-referenced 2023-HOM-00412 in the filing system.", "2023-HOM-00412"},
		{"unit first", "Docket CR-2024-1187 remains open.", "CR-2024-1187"},
	}

	r := NewRecognizer()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candidates := r.Recognize(tc.text)
			if len(candidates) != 1 {
				t.Fatalf("expected one candidate, got %d", len(candidates))
			}
			if candidates[0].Label != tc.want {
				t.Errorf("expected label %q, got %q", tc.want, candidates[0].Label)
			}
		})
	}
}

func TestRecognize_NoMatch(t *testing.T) {
	r := NewRecognizer()
	if candidates := r.Recognize("No case number was assigned yet."); len(candidates) != 0 {
		t.Errorf("expected no candidates, got %d", len(candidates))
	}
}
