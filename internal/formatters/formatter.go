// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package formatters renders analysis results for terminals and downstream
// tooling. Formatters register themselves with the default registry from
// their package init, mirroring how the CLI imports them blank.
package formatters

import (
	"fmt"
	"strings"

	"casetrace/internal/detector"
)

// Result pairs one analyzed document with its findings.
type Result struct {
	FilePath   string
	Bundle     *detector.FindingsBundle
	Suppressed []detector.SuppressedEntity
}

// Options defines configuration options for formatters.
type Options struct {
	ConfidenceLevel map[string]bool // Which confidence levels to display
	Verbose         bool            // Whether to display detailed information
	NoColor         bool            // Whether to disable colored output
}

// Formatter is implemented by every output format.
type Formatter interface {
	Format(results []Result, options Options) (string, error)

	// Name returns the formatter name (e.g. "json", "text", "csv").
	Name() string

	// Description returns a brief description of the output.
	Description() string

	// FileExtension returns the recommended file extension.
	FileExtension() string
}

// Registry holds registered formatters.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates an empty formatter registry.
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[string]Formatter)}
}

// Register adds a formatter to the registry.
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name.
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names.
func (r *Registry) List() []string {
	var names []string
	for name := range r.formatters {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter to the default registry.
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get retrieves a formatter from the default registry.
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List lists all formatters in the default registry.
func List() []string {
	return DefaultRegistry.List()
}

// Export formats results with the named formatter.
func Export(format string, results []Result, options Options) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		return "", fmt.Errorf("unsupported format %q. Available formats: %s", format, strings.Join(List(), ", "))
	}
	return formatter.Format(results, options)
}

// ConfidenceLevel buckets a 0..100 confidence score the way every
// formatter displays it.
func ConfidenceLevel(confidence float64) string {
	switch {
	case confidence >= 90:
		return "HIGH"
	case confidence >= 60:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// LevelEnabled checks a confidence score against the enabled-levels map.
// A nil map enables everything.
func LevelEnabled(options Options, confidence float64) bool {
	if options.ConfidenceLevel == nil {
		return true
	}
	return options.ConfidenceLevel[strings.ToLower(ConfidenceLevel(confidence))]
}
