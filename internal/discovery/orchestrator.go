// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package discovery coordinates the document analysis pipeline: it detects
// the document kind, extracts plain text, and runs the extractor, the
// relationship reasoner, and the insight synthesizer in sequence over one
// document. Analysis never fails: unextractable content produces an empty
// bundle with a skip reason so a bad document in a batch is a no-op for
// its caller, not an error.
package discovery

import (
	"bytes"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"casetrace/internal/detector"
	"casetrace/internal/insights"
	"casetrace/internal/relations"
)

// Skip reasons reported on bundles that could not be analyzed.
const (
	SkipEmptyContent     = "empty content"
	SkipNoTextExtraction = "missing text-extraction capability"
	SkipImageContent     = "image content; no text layer"
)

var pdfSignature = []byte("%PDF-")

// imageExtensions lists evidence file types routed to EXIF provenance
// capture instead of text analysis.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tif":  true,
	".tiff": true,
}

// imageSignatures are checked alongside extensions so renamed image
// evidence still gets its EXIF provenance captured.
var imageSignatures = [][]byte{
	{0xff, 0xd8, 0xff},          // JPEG
	[]byte("\x89PNG\r\n\x1a\n"), // PNG
	[]byte("II*\x00"),           // TIFF little-endian
	[]byte("MM\x00*"),           // TIFF big-endian
}

func hasImageSignature(documentBytes []byte) bool {
	for _, signature := range imageSignatures {
		if bytes.HasPrefix(documentBytes, signature) {
			return true
		}
	}
	return false
}

// Orchestrator runs the full pipeline over one document. Stateless apart
// from its recognizer set; independent documents may be analyzed
// concurrently on the same instance.
type Orchestrator struct {
	recognizers []detector.Recognizer
	reasoner    *relations.Reasoner
	synthesizer *insights.Synthesizer
}

// NewOrchestrator creates an orchestrator over the given recognizer set.
func NewOrchestrator(recognizers []detector.Recognizer) *Orchestrator {
	return &Orchestrator{
		recognizers: recognizers,
		reasoner:    relations.NewReasoner(),
		synthesizer: insights.NewSynthesizer(),
	}
}

// Run detects the document kind from content and filename, extracts plain
// text, and analyzes it. The returned bundle is never nil and Run never
// returns an error: extraction problems surface as a skip reason.
func (o *Orchestrator) Run(documentBytes []byte, filename string) *detector.FindingsBundle {
	if len(documentBytes) == 0 {
		return &detector.FindingsBundle{SkippedReason: SkipEmptyContent}
	}

	ext := strings.ToLower(filepath.Ext(filename))

	switch {
	case bytes.HasPrefix(documentBytes, pdfSignature) || ext == ".pdf":
		return o.runPDF(documentBytes)

	case imageExtensions[ext] || hasImageSignature(documentBytes):
		// Images carry no text layer; capture EXIF provenance only.
		bundle := &detector.FindingsBundle{SkippedReason: SkipImageContent}
		bundle.Provenance = ExtractImageProvenance(documentBytes)
		return bundle

	default:
		return o.runPlainText(documentBytes)
	}
}

// AnalyzeText is the primary entry for collaborators that already hold
// plain text. It runs extractor, reasoner, and synthesizer in sequence.
func (o *Orchestrator) AnalyzeText(text string) *detector.FindingsBundle {
	if strings.TrimSpace(text) == "" {
		return &detector.FindingsBundle{SkippedReason: SkipEmptyContent}
	}

	bundle := &detector.FindingsBundle{}
	seen := make(map[string]bool)
	for _, recognizer := range o.recognizers {
		for _, candidate := range recognizer.Recognize(text) {
			// Label+type dedup across recognizers.
			key := string(candidate.Type) + "\x00" + candidate.Label
			if seen[key] {
				continue
			}
			seen[key] = true
			bundle.Entities = append(bundle.Entities, candidate)
		}
	}

	bundle.Relationships = o.reasoner.Infer(bundle.Entities, text)
	bundle.Insights = o.synthesizer.Synthesize(text)
	return bundle
}

// runPDF extracts the PDF text layer and analyzes it. Document metadata is
// attached as provenance whether or not text extraction succeeds.
func (o *Orchestrator) runPDF(documentBytes []byte) *detector.FindingsBundle {
	provenance := ExtractPDFProvenance(documentBytes)

	text, err := ExtractPDFText(documentBytes)
	if err != nil {
		return &detector.FindingsBundle{
			SkippedReason: SkipNoTextExtraction,
			Provenance:    provenance,
		}
	}

	bundle := o.AnalyzeText(text)
	bundle.Provenance = provenance
	return bundle
}

// runPlainText decodes bytes as UTF-8 text and analyzes them. Content that
// is not valid text is skipped rather than half-decoded.
func (o *Orchestrator) runPlainText(documentBytes []byte) *detector.FindingsBundle {
	if !utf8.Valid(documentBytes) {
		return &detector.FindingsBundle{SkippedReason: SkipNoTextExtraction}
	}
	return o.AnalyzeText(string(documentBytes))
}
