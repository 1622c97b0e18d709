// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package suppressions applies analyst-maintained rules that withhold
// known-benign entity candidates from analysis output: recurring agency
// names, station addresses, department phone numbers. Rules live in a YAML
// file alongside the case files and match on entity label, optionally
// narrowed by type, with an optional expiry for provisional suppressions.
package suppressions

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"casetrace/internal/detector"
)

// DefaultFile is the suppression file name searched for in the working
// directory when no explicit path is configured.
const DefaultFile = ".casetrace-suppressions.yaml"

// Rule suppresses entity candidates matching a label (and optionally a
// type). Disabled and expired rules are kept in the file for audit history
// but never match.
type Rule struct {
	ID        string     `yaml:"id"`
	Label     string     `yaml:"label"`
	Type      string     `yaml:"type,omitempty"`
	Reason    string     `yaml:"reason"`
	Enabled   bool       `yaml:"enabled"`
	CreatedBy string     `yaml:"created_by,omitempty"`
	CreatedAt time.Time  `yaml:"created_at"`
	ExpiresAt *time.Time `yaml:"expires_at,omitempty"`
}

// Config is the suppression file layout.
type Config struct {
	Version string `yaml:"version"`
	Rules   []Rule `yaml:"rules"`
}

// Manager loads and applies suppression rules.
type Manager struct {
	configPath string
	config     *Config
}

// NewManager creates a manager from the given file path. An empty path
// falls back to DefaultFile in the working directory; a missing or
// unreadable file yields an empty rule set rather than an error so a scan
// never fails because of suppression bookkeeping.
func NewManager(configPath string) *Manager {
	if configPath == "" {
		configPath = DefaultFile
	}

	m := &Manager{configPath: configPath}
	m.loadConfig()
	return m
}

func (m *Manager) loadConfig() {
	empty := &Config{Version: "1.0"}

	data, err := os.ReadFile(filepath.Clean(m.configPath))
	if err != nil {
		m.config = empty
		return
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		m.config = empty
		return
	}

	m.config = &config
}

// RuleCount returns the number of loaded rules, active or not.
func (m *Manager) RuleCount() int {
	return len(m.config.Rules)
}

// IsSuppressed checks an entity candidate against the active rules.
func (m *Manager) IsSuppressed(entity detector.EntityCandidate) (bool, *Rule) {
	now := time.Now()
	for i := range m.config.Rules {
		rule := &m.config.Rules[i]
		if !rule.Enabled {
			continue
		}
		if rule.ExpiresAt != nil && now.After(*rule.ExpiresAt) {
			continue
		}
		if rule.Label != entity.Label {
			continue
		}
		if rule.Type != "" && rule.Type != string(entity.Type) {
			continue
		}
		return true, rule
	}
	return false, nil
}

// Apply splits candidates into kept and suppressed sets, preserving order.
func (m *Manager) Apply(entities []detector.EntityCandidate) ([]detector.EntityCandidate, []detector.SuppressedEntity) {
	var kept []detector.EntityCandidate
	var suppressed []detector.SuppressedEntity

	for _, entity := range entities {
		if ok, rule := m.IsSuppressed(entity); ok {
			suppressed = append(suppressed, detector.SuppressedEntity{
				Entity:       entity,
				SuppressedBy: rule.ID,
				RuleReason:   rule.Reason,
			})
			continue
		}
		kept = append(kept, entity)
	}

	return kept, suppressed
}

// AddRule appends a suppression rule and persists the file. Rule IDs are
// sequential SUP-NNNNNNNN identifiers.
func (m *Manager) AddRule(label, entityType, reason, createdBy string, expiresAt *time.Time) (*Rule, error) {
	for _, rule := range m.config.Rules {
		if rule.Label == label && rule.Type == entityType {
			return nil, fmt.Errorf("suppression rule already exists for %q", label)
		}
	}

	maxID := 0
	for _, rule := range m.config.Rules {
		var num int
		if _, err := fmt.Sscanf(rule.ID, "SUP-%08d", &num); err == nil && num > maxID {
			maxID = num
		}
	}

	rule := Rule{
		ID:        fmt.Sprintf("SUP-%08d", maxID+1),
		Label:     label,
		Type:      entityType,
		Reason:    reason,
		Enabled:   true,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
		ExpiresAt: expiresAt,
	}
	m.config.Rules = append(m.config.Rules, rule)

	if err := m.save(); err != nil {
		return nil, err
	}
	return &m.config.Rules[len(m.config.Rules)-1], nil
}

func (m *Manager) save() error {
	data, err := yaml.Marshal(m.config)
	if err != nil {
		return fmt.Errorf("encoding suppression config: %w", err)
	}
	if err := os.WriteFile(m.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing suppression config: %w", err)
	}
	return nil
}
