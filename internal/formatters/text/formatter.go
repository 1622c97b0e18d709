// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package text renders analysis results as human-readable terminal output.
package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"casetrace/internal/detector"
	"casetrace/internal/formatters"
)

func init() {
	formatters.Register(NewFormatter())
}

// Formatter implements text-based output formatting.
type Formatter struct {
	severityColors map[detector.Severity]*color.Color
}

// NewFormatter creates a new text formatter.
func NewFormatter() *Formatter {
	return &Formatter{
		severityColors: map[detector.Severity]*color.Color{
			detector.SeverityLow:      color.New(color.FgCyan),
			detector.SeverityMedium:   color.New(color.FgYellow),
			detector.SeverityHigh:     color.New(color.FgRed),
			detector.SeverityCritical: color.New(color.FgRed, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(results []formatters.Result, options formatters.Options) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder
	for _, result := range results {
		f.formatResult(&builder, result, options)
	}

	if builder.Len() == 0 {
		return "No findings.", nil
	}
	return builder.String(), nil
}

func (f *Formatter) formatResult(builder *strings.Builder, result formatters.Result, options formatters.Options) {
	header := color.New(color.FgWhite, color.Bold)
	fmt.Fprintf(builder, "%s\n", header.Sprint(result.FilePath))

	bundle := result.Bundle
	if bundle.Skipped() {
		fmt.Fprintf(builder, "  skipped: %s\n", bundle.SkippedReason)
		f.formatProvenance(builder, bundle.Provenance)
		builder.WriteString("\n")
		return
	}

	for _, entity := range bundle.Entities {
		if !formatters.LevelEnabled(options, entity.ConfidenceScore) {
			continue
		}
		fmt.Fprintf(builder, "  [%-10s] %-40s confidence=%.0f risk=%.0f\n",
			entity.Type, entity.Label, entity.ConfidenceScore, entity.RiskScore)
	}

	for _, rel := range bundle.Relationships {
		if !formatters.LevelEnabled(options, rel.ConfidenceScore) {
			continue
		}
		fmt.Fprintf(builder, "  %s <-> %s\n", rel.SourceLabel, rel.TargetLabel)
		fmt.Fprintf(builder, "      basis=%q strength=%.0f confidence=%.0f\n",
			rel.Basis, rel.StrengthScore, rel.ConfidenceScore)
	}

	for _, insight := range bundle.Insights {
		severity := f.severityColors[insight.Severity]
		if severity == nil {
			severity = color.New(color.FgWhite)
		}
		fmt.Fprintf(builder, "  %s %s (confidence=%.0f)\n",
			severity.Sprintf("[%s]", strings.ToUpper(string(insight.Severity))),
			insight.Summary, insight.ConfidenceScore)
		if options.Verbose {
			fmt.Fprintf(builder, "      %s\n", insight.Explanation)
		}
	}

	if options.Verbose {
		for _, s := range result.Suppressed {
			fmt.Fprintf(builder, "  suppressed: %s (%s) by %s: %s\n",
				s.Entity.Label, s.Entity.Type, s.SuppressedBy, s.RuleReason)
		}
		f.formatProvenance(builder, bundle.Provenance)
	}

	builder.WriteString("\n")
}

func (f *Formatter) formatProvenance(builder *strings.Builder, p *detector.Provenance) {
	if p == nil {
		return
	}
	if p.Author != "" {
		fmt.Fprintf(builder, "  provenance: author=%q\n", p.Author)
	}
	if p.Producer != "" {
		fmt.Fprintf(builder, "  provenance: producer=%q\n", p.Producer)
	}
	if p.Created != "" {
		fmt.Fprintf(builder, "  provenance: created=%s\n", p.Created)
	}
	if p.GPS != "" {
		fmt.Fprintf(builder, "  provenance: gps=%s\n", p.GPS)
	}
	if p.Camera != "" {
		fmt.Fprintf(builder, "  provenance: camera=%q\n", p.Camera)
	}
}
