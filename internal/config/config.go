// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the YAML application configuration: output defaults,
// enabled checks, scoring calibration overrides, and named profiles for
// recurring scan scenarios.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ScoreOverride adjusts the default risk/confidence for one entity type.
// Nil fields leave the built-in default untouched.
type ScoreOverride struct {
	Risk       *float64 `yaml:"risk,omitempty"`
	Confidence *float64 `yaml:"confidence,omitempty"`
}

// Config represents the application configuration.
type Config struct {
	Defaults struct {
		Format           string `yaml:"format"`
		ConfidenceLevels string `yaml:"confidence_levels"`
		Checks           string `yaml:"checks"`
		Verbose          bool   `yaml:"verbose"`
		Debug            bool   `yaml:"debug"`
		NoColor          bool   `yaml:"no_color"`
		SuppressionFile  string `yaml:"suppression_file"`
	} `yaml:"defaults"`

	// Scoring calibration overrides, keyed by entity type name
	// (person, phone, email, ip, address, date, case_id, account_id).
	Scoring map[string]ScoreOverride `yaml:"scoring"`

	// Profiles for different analysis scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents an analysis profile with specific settings.
type Profile struct {
	Format           string                   `yaml:"format"`
	ConfidenceLevels string                   `yaml:"confidence_levels"`
	Checks           string                   `yaml:"checks"`
	Verbose          bool                     `yaml:"verbose"`
	Debug            bool                     `yaml:"debug"`
	NoColor          bool                     `yaml:"no_color"`
	SuppressionFile  string                   `yaml:"suppression_file"`
	Description      string                   `yaml:"description"`
	Scoring          map[string]ScoreOverride `yaml:"scoring"`
}

// LoadConfig loads configuration from the specified file path. An empty
// path or a missing file yields the built-in defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: make(map[string]Profile),
		Scoring:  make(map[string]ScoreOverride),
	}

	config.Defaults.Format = "text"
	config.Defaults.ConfidenceLevels = "all"
	config.Defaults.Checks = "all"

	// Triage profile: identifiers only, high signal, no narrative heuristics.
	config.Profiles["triage"] = Profile{
		Format:           "text",
		ConfidenceLevels: "high,medium",
		Checks:           "PHONE,EMAIL,IP_ADDRESS,CASE_ID,ACCOUNT",
		Description:      "Fast identifier triage for call logs and financial records",
	}

	// Court profile: everything, machine-readable, no terminal styling.
	config.Profiles["court"] = Profile{
		Format:           "json",
		ConfidenceLevels: "all",
		Checks:           "all",
		NoColor:          true,
		Description:      "Full analysis with JSON output for evidentiary export",
	}

	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", configPath, err)
	}

	return config, nil
}

// FindConfigFile searches standard locations for a configuration file and
// returns the first found, or empty string.
func FindConfigFile() string {
	candidates := []string{
		"config.yaml",
		"casetrace.yaml",
		"casetrace.yml",
		".casetrace.yaml",
		".casetrace.yml",
	}
	for _, name := range candidates {
		if fileExists(name) {
			return name
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		standard := filepath.Join(home, ".config", "casetrace", "config.yaml")
		if fileExists(standard) {
			return standard
		}
	}

	return ""
}

// GetProfile returns a named profile from the configuration.
func (c *Config) GetProfile(name string) (*Profile, error) {
	profile, exists := c.Profiles[name]
	if !exists {
		return nil, fmt.Errorf("profile %q not found", name)
	}
	return &profile, nil
}

// ProfileNames lists the configured profile names.
func (c *Config) ProfileNames() []string {
	var names []string
	for name := range c.Profiles {
		names = append(names, name)
	}
	return names
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
