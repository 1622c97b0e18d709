// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package insights synthesizes severity-tagged findings from document text
// using a fixed keyword rule table. Rules are independent and may co-fire;
// each rule fires at most once per document. Severity, confidence, and
// explanation are constants per rule rather than computed from evidence
// strength, which keeps every finding reproducible and auditable.
package insights

import (
	"strings"

	"casetrace/internal/detector"
	"casetrace/internal/scoring"
)

// Rule is one synthesizer trigger. A rule fires when any keyword from each
// keyword group is present; a group is a logical AND against other groups,
// while keywords inside a group are OR'd.
type Rule struct {
	Name          string
	KeywordGroups [][]string
	Summary       string
	Explanation   string
	Score         scoring.InsightRule
}

// RuleTable is the fixed set of synthesizer rules. Evaluation order does not
// affect output; findings are appended in table order for stable results.
var RuleTable = []Rule{
	{
		Name:          "toxicology",
		KeywordGroups: [][]string{{"positive", "cocaine", "morphine", "heroin", "oxycodone", "fentanyl"}},
		Summary:       "Positive Toxicology Detected",
		Explanation:   "Document indicates positive results for controlled substances (Cocaine/Morphine group).",
		Score:         scoring.InsightToxicology,
	},
	{
		Name:          "trauma",
		KeywordGroups: [][]string{{"abrasion", "contusion", "laceration", "fracture"}},
		Summary:       "Recent Physical Trauma Observed",
		Explanation:   "Medical report identifies multiple trauma points suggesting a physical altercation.",
		Score:         scoring.InsightTrauma,
	},
	{
		Name:          "financial",
		KeywordGroups: [][]string{{"transfer", "transferred", "wired"}, {"$", "money", "funds", "payment"}},
		Summary:       "Financial Transfer Activity",
		Explanation:   "Document describes movement of funds between parties relevant to the investigation.",
		Score:         scoring.InsightFinancial,
	},
	{
		Name:          "homicide",
		KeywordGroups: [][]string{{"homicide", "manner of death", "strangulation", "gunshot wound"}},
		Summary:       "Homicide Indicators Present",
		Explanation:   "Document contains manner-of-death language consistent with a homicide determination.",
		Score:         scoring.InsightHomicide,
	},
}

// Synthesizer evaluates the rule table against document text. Stateless;
// one instance may serve concurrent documents.
type Synthesizer struct {
	rules []Rule
}

// NewSynthesizer creates a synthesizer over the standard rule table.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{rules: RuleTable}
}

// Synthesize evaluates every rule against the case-insensitive text and
// returns one finding per fired rule.
func (s *Synthesizer) Synthesize(text string) []detector.InsightFinding {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var findings []detector.InsightFinding
	for _, rule := range s.rules {
		if !rule.fires(lower) {
			continue
		}
		findings = append(findings, detector.InsightFinding{
			Severity:        rule.Score.Severity,
			Summary:         rule.Summary,
			Explanation:     rule.Explanation,
			ConfidenceScore: rule.Score.Confidence,
		})
	}

	return findings
}

// fires reports whether every keyword group contains at least one hit.
func (r Rule) fires(lower string) bool {
	for _, group := range r.KeywordGroups {
		hit := false
		for _, kw := range group {
			if strings.Contains(lower, kw) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}
