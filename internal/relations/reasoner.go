// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package relations infers links between entity candidates from the text
// they were extracted from. Inference is a fixed-priority rule cascade per
// entity pair; the first matching rule decides the link's basis and scores,
// so a pair never carries more than one relationship.
package relations

import (
	"sort"
	"strings"

	"casetrace/internal/detector"
	"casetrace/internal/scoring"
)

// Keyword triggers per rule. Checked against lowercased text.
var (
	financialKeywords = []string{"transfer", "money", "$", "€", "£"}
	commsKeywords     = []string{"reported", "threatening", "text message"}
	narrativeKeywords = []string{"altercation", "incident"}
)

// Reasoner infers relationships between entity candidates. It holds no
// per-document state; one instance may serve concurrent documents.
type Reasoner struct{}

// NewReasoner creates a relationship reasoner.
func NewReasoner() *Reasoner {
	return &Reasoner{}
}

// mention is an entity whose label occurs in the source text, with the byte
// offset and length of its first occurrence. Offsets are computed on the
// lowercased text the keyword windows slice, since lowercasing can change
// byte lengths for some code points. Entities that never appear are excluded
// from pairing, which bounds the pairwise cost on documents whose
// recognizers over-generate.
type mention struct {
	entity detector.EntityCandidate
	pos    int
	length int
}

// Infer proposes at most one relationship per unordered entity pair.
// Deterministic given the same entity set and text: pairs are walked in
// canonical label order regardless of extraction order.
//
// Priority per pair, first match wins:
//  1. financial context in the window spanning both mentions
//  2. suspicious-communication context in the same window
//  3. first-mention proximity under the distance cap
//  4. document-wide incident narrative
func (r *Reasoner) Infer(entities []detector.EntityCandidate, text string) []detector.RelationshipCandidate {
	if len(entities) < 2 || text == "" {
		return nil
	}

	lower := strings.ToLower(text)

	// Locate first occurrences independent of entity scan order.
	mentions := make([]mention, 0, len(entities))
	seen := make(map[string]bool)
	for _, e := range entities {
		if seen[e.Label] {
			continue
		}
		seen[e.Label] = true

		label := strings.ToLower(e.Label)
		pos := detector.FirstOccurrence(lower, label)
		if pos < 0 {
			continue
		}
		mentions = append(mentions, mention{entity: e, pos: pos, length: len(label)})
	}

	// Canonical pair order: sort by label so source < target per pair.
	sort.Slice(mentions, func(i, j int) bool {
		return mentions[i].entity.Label < mentions[j].entity.Label
	})

	hasNarrative := containsAny(lower, narrativeKeywords)

	var relationships []detector.RelationshipCandidate
	for i := 0; i < len(mentions); i++ {
		for j := i + 1; j < len(mentions); j++ {
			if rel, ok := r.evaluatePair(mentions[i], mentions[j], lower, hasNarrative); ok {
				relationships = append(relationships, rel)
			}
		}
	}

	return relationships
}

// evaluatePair runs the rule cascade for one canonical pair.
func (r *Reasoner) evaluatePair(a, b mention, lower string, hasNarrative bool) (detector.RelationshipCandidate, bool) {
	window := pairWindow(lower, a, b)

	var rule scoring.RelationRule
	switch {
	case containsAny(window, financialKeywords):
		rule = scoring.RelFinancial
	case containsAny(window, commsKeywords):
		rule = scoring.RelComms
	case firstMentionDistance(a, b) < scoring.ProximityMaxDistance:
		rule = scoring.RelProximity
	case hasNarrative:
		rule = scoring.RelNarrative
	default:
		return detector.RelationshipCandidate{}, false
	}

	return detector.RelationshipCandidate{
		SourceLabel:     a.entity.Label,
		TargetLabel:     b.entity.Label,
		Basis:           rule.Basis,
		StrengthScore:   rule.Strength,
		ConfidenceScore: rule.Confidence,
	}, true
}

// pairWindow returns the lowercased text spanning both first mentions,
// widened by scoring.PairWindowChars on each side.
func pairWindow(lower string, a, b mention) string {
	start := a.pos
	end := b.pos + b.length
	if b.pos < a.pos {
		start = b.pos
		end = a.pos + a.length
	}
	return detector.Window(lower, start-scoring.PairWindowChars, end+scoring.PairWindowChars)
}

// firstMentionDistance is the absolute distance between first occurrences.
// Later occurrences are ignored even when closer; this mirrors how scores
// were originally calibrated.
func firstMentionDistance(a, b mention) int {
	d := a.pos - b.pos
	if d < 0 {
		d = -d
	}
	return d
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
