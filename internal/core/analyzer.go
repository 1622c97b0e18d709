// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core wires the analysis pipeline together for the CLI and any
// embedding caller: recognizer selection, orchestration, suppression, and
// the shared parsing helpers for checks and confidence levels.
package core

import (
	"fmt"
	"os"

	"casetrace/internal/config"
	"casetrace/internal/detector"
	"casetrace/internal/discovery"
	"casetrace/internal/observability"
	"casetrace/internal/suppressions"
)

// AnalyzeConfig holds configuration for one analysis run.
type AnalyzeConfig struct {
	FilePath string
	Checks   []string
	Debug    bool

	// Config and Profile supply scoring overrides. They mutate the shared
	// scoring table, so they are applied once via CalibrateScoring before
	// analysis starts, never per document.
	Config  *config.Config
	Profile *config.Profile

	// SuppressionManager, when non-nil, is applied to extracted entities
	// before the result is returned.
	SuppressionManager *suppressions.Manager

	// Observer, when non-nil, receives operation timings and diagnostics.
	Observer *observability.Observer
}

// AnalyzeResult is the outcome of analyzing one document.
type AnalyzeResult struct {
	Bundle            *detector.FindingsBundle
	SuppressedCount   int
	SuppressedEntries []detector.SuppressedEntity
}

// CalibrateScoring applies the scoring overrides carried by cfg, profile
// overrides on top of config-file ones. Overrides write the shared scoring
// table, so this must complete before any concurrent analysis begins.
func CalibrateScoring(cfg AnalyzeConfig) {
	if cfg.Config != nil {
		ApplyScoringOverrides(cfg.Config.Scoring)
	}
	if cfg.Profile != nil {
		ApplyScoringOverrides(cfg.Profile.Scoring)
	}
}

// AnalyzeFile reads and analyzes one document. The only error condition is
// an unreadable file; analysis itself never fails, it skips.
func AnalyzeFile(cfg AnalyzeConfig) (*AnalyzeResult, error) {
	documentBytes, err := os.ReadFile(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", cfg.FilePath, err)
	}
	return AnalyzeBytes(cfg, documentBytes, cfg.FilePath)
}

// AnalyzeBytes analyzes in-memory document content. filename is used for
// document-kind detection only.
func AnalyzeBytes(cfg AnalyzeConfig, documentBytes []byte, filename string) (*AnalyzeResult, error) {
	var finish func(bool, ...any)
	if cfg.Observer != nil {
		finish = cfg.Observer.StartTiming("core", "analyze_document", filename)
	}

	orchestrator := discovery.NewOrchestrator(BuildRecognizerSet(ParseChecksToRun(cfg.Checks)))
	bundle := orchestrator.Run(documentBytes, filename)

	result := &AnalyzeResult{Bundle: bundle}
	if cfg.SuppressionManager != nil && len(bundle.Entities) > 0 {
		kept, suppressed := cfg.SuppressionManager.Apply(bundle.Entities)
		if len(suppressed) > 0 {
			// Relationships referencing a suppressed entity go with it.
			bundle.Entities = kept
			bundle.Relationships = filterRelationships(bundle.Relationships, kept)
			result.SuppressedEntries = suppressed
			result.SuppressedCount = len(suppressed)
		}
	}

	if finish != nil {
		finish(true,
			"entities", len(bundle.Entities),
			"relationships", len(bundle.Relationships),
			"insights", len(bundle.Insights),
			"suppressed", result.SuppressedCount,
			"skipped_reason", bundle.SkippedReason,
		)
	}

	return result, nil
}

// filterRelationships drops relationships whose endpoints are no longer in
// the kept entity set.
func filterRelationships(relationships []detector.RelationshipCandidate, kept []detector.EntityCandidate) []detector.RelationshipCandidate {
	labels := make(map[string]bool, len(kept))
	for _, e := range kept {
		labels[e.Label] = true
	}

	var filtered []detector.RelationshipCandidate
	for _, rel := range relationships {
		if labels[rel.SourceLabel] && labels[rel.TargetLabel] {
			filtered = append(filtered, rel)
		}
	}
	return filtered
}
