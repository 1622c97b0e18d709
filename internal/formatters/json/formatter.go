// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package json renders analysis results as structured JSON for
// programmatic consumption and evidentiary export.
package json

import (
	"encoding/json"
	"fmt"

	"casetrace/internal/detector"
	"casetrace/internal/formatters"
)

func init() {
	formatters.Register(NewFormatter())
}

// Formatter implements JSON output formatting.
type Formatter struct{}

// NewFormatter creates a new JSON formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

// document is the per-file JSON layout.
type document struct {
	FilePath      string                           `json:"file_path"`
	Entities      []detector.EntityCandidate       `json:"entities"`
	Relationships []detector.RelationshipCandidate `json:"relationships"`
	Insights      []detector.InsightFinding        `json:"insights"`
	SkippedReason string                           `json:"skipped_reason,omitempty"`
	Provenance    *detector.Provenance             `json:"provenance,omitempty"`
	Suppressed    []detector.SuppressedEntity      `json:"suppressed,omitempty"`
}

type response struct {
	Documents []document `json:"documents"`
}

func (f *Formatter) Format(results []formatters.Result, options formatters.Options) (string, error) {
	out := response{Documents: make([]document, 0, len(results))}

	for _, result := range results {
		bundle := result.Bundle
		doc := document{
			FilePath:      result.FilePath,
			Entities:      filterEntities(bundle.Entities, options),
			Relationships: bundle.Relationships,
			Insights:      bundle.Insights,
			SkippedReason: bundle.SkippedReason,
			Provenance:    bundle.Provenance,
			Suppressed:    result.Suppressed,
		}
		// Keep arrays non-null in output for stable consumers.
		if doc.Entities == nil {
			doc.Entities = []detector.EntityCandidate{}
		}
		if doc.Relationships == nil {
			doc.Relationships = []detector.RelationshipCandidate{}
		}
		if doc.Insights == nil {
			doc.Insights = []detector.InsightFinding{}
		}
		out.Documents = append(out.Documents, doc)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("formatting JSON: %w", err)
	}
	return string(data), nil
}

func filterEntities(entities []detector.EntityCandidate, options formatters.Options) []detector.EntityCandidate {
	var filtered []detector.EntityCandidate
	for _, entity := range entities {
		if formatters.LevelEnabled(options, entity.ConfidenceScore) {
			filtered = append(filtered, entity)
		}
	}
	return filtered
}
