// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package integrity

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ManifestFile records one exported file and its content digest.
type ManifestFile struct {
	Name   string `json:"name"`
	SHA256 string `json:"sha256"`
}

// Manifest is the integrity anchor for a case export: every file in the
// export listed with its digest. GeneratedUTC is informational metadata;
// it is never part of any digest, so regenerating a manifest over
// unchanged files yields identical per-file hashes.
type Manifest struct {
	CaseID       string         `json:"case_id"`
	GeneratedUTC string         `json:"generated_utc"`
	Files        []ManifestFile `json:"files"`
	Meta         map[string]any `json:"meta,omitempty"`
}

// BuildManifest hashes every file and assembles the export manifest.
// Files are listed in the order given. A missing file is a hard error.
func BuildManifest(caseID string, files []string, meta map[string]any) (*Manifest, error) {
	m := &Manifest{
		CaseID:       caseID,
		GeneratedUTC: time.Now().UTC().Format(time.RFC3339),
		Meta:         meta,
	}

	for _, path := range files {
		digest, err := SHA256File(path)
		if err != nil {
			return nil, fmt.Errorf("building manifest for case %s: %w", caseID, err)
		}
		m.Files = append(m.Files, ManifestFile{
			Name:   filepath.Base(path),
			SHA256: digest,
		})
	}

	return m, nil
}

// WriteManifest serializes the manifest as indented JSON next to the
// export files and returns the written path.
func WriteManifest(dir string, m *Manifest) (string, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding manifest: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("manifest_%s.json", m.CaseID))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("writing manifest: %w", err)
	}

	return path, nil
}

// ReadManifest loads a previously written manifest.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest %s: %w", path, err)
	}

	return &m, nil
}

// Mismatch describes one manifest entry whose recomputed digest differs
// from the recorded one.
type Mismatch struct {
	Name     string
	Recorded string
	Actual   string
}

// VerifyManifest recomputes the digest of every listed file under dir and
// returns the entries that no longer match. An empty slice means the
// export is intact. A listed file that cannot be read is a hard error,
// not a mismatch.
func VerifyManifest(dir string, m *Manifest) ([]Mismatch, error) {
	var mismatches []Mismatch

	for _, f := range m.Files {
		actual, err := SHA256File(filepath.Join(dir, f.Name))
		if err != nil {
			return nil, fmt.Errorf("verifying manifest for case %s: %w", m.CaseID, err)
		}
		if actual != f.SHA256 {
			mismatches = append(mismatches, Mismatch{
				Name:     f.Name,
				Recorded: f.SHA256,
				Actual:   actual,
			})
		}
	}

	return mismatches, nil
}
