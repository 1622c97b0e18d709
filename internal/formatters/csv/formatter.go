// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package csv renders analysis results as flat CSV rows, one row per
// finding, for spreadsheet review.
package csv

import (
	"encoding/csv"
	"fmt"
	"strings"

	"casetrace/internal/formatters"
)

func init() {
	formatters.Register(NewFormatter())
}

// Formatter implements CSV output formatting.
type Formatter struct{}

// NewFormatter creates a new CSV formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Flat CSV output, one row per finding"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(results []formatters.Result, options formatters.Options) (string, error) {
	var builder strings.Builder
	w := csv.NewWriter(&builder)

	header := []string{"file", "kind", "label", "detail", "basis_or_severity", "strength", "confidence"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("writing CSV header: %w", err)
	}

	for _, result := range results {
		bundle := result.Bundle
		if bundle.Skipped() {
			record := []string{result.FilePath, "skipped", "", bundle.SkippedReason, "", "", ""}
			if err := w.Write(record); err != nil {
				return "", fmt.Errorf("writing CSV row: %w", err)
			}
			continue
		}

		for _, entity := range bundle.Entities {
			if !formatters.LevelEnabled(options, entity.ConfidenceScore) {
				continue
			}
			record := []string{
				result.FilePath, "entity", entity.Label, string(entity.Type), "",
				fmt.Sprintf("%.0f", entity.RiskScore),
				fmt.Sprintf("%.0f", entity.ConfidenceScore),
			}
			if err := w.Write(record); err != nil {
				return "", fmt.Errorf("writing CSV row: %w", err)
			}
		}

		for _, rel := range bundle.Relationships {
			record := []string{
				result.FilePath, "relationship", rel.SourceLabel, rel.TargetLabel, rel.Basis,
				fmt.Sprintf("%.0f", rel.StrengthScore),
				fmt.Sprintf("%.0f", rel.ConfidenceScore),
			}
			if err := w.Write(record); err != nil {
				return "", fmt.Errorf("writing CSV row: %w", err)
			}
		}

		for _, insight := range bundle.Insights {
			record := []string{
				result.FilePath, "insight", insight.Summary, insight.Explanation, string(insight.Severity),
				"",
				fmt.Sprintf("%.0f", insight.ConfidenceScore),
			}
			if err := w.Write(record); err != nil {
				return "", fmt.Errorf("writing CSV row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing CSV: %w", err)
	}
	return builder.String(), nil
}
