// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package integrity computes the deterministic digests that anchor the
// evidentiary record: content hashes for evidence items and uploads,
// recomputable case fingerprints for tamper detection, and export
// manifests. Every function here is a pure function of its inputs; no
// salt, timestamp, or randomness is ever mixed into a digest.
package integrity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
)

// fileChunkSize is the read size for streamed file hashing.
const fileChunkSize = 1 << 20

// SHA256Bytes returns the lowercase 64-hex SHA-256 digest of b. Total over
// any byte sequence, including empty input.
func SHA256Bytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// SHA256String returns the digest of the UTF-8 bytes of s.
func SHA256String(s string) string {
	return SHA256Bytes([]byte(s))
}

// SHA256File returns the digest of a file's contents, read in 1 MiB chunks
// so large evidence files never load fully into memory. A missing or
// unreadable file is a hard error: an absent hash breaks the evidentiary
// guarantee and must surface to the caller.
func SHA256File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	buf := make([]byte, fileChunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// CaseFingerprint derives a tamper-detection digest from a case's identity
// fields. Encoding is fixed and documented: the three fields joined with
// "|", with the integrity score formatted to two decimals. Recompute and
// compare against a recorded value to detect edits to the displayed case
// summary; any change to title or score changes the fingerprint.
func CaseFingerprint(caseID, title string, integrityScore float64) string {
	score := strconv.FormatFloat(integrityScore, 'f', 2, 64)
	return SHA256String(caseID + "|" + title + "|" + score)
}

// EvidenceHash derives the content hash stored with an evidence item,
// bound to the case, the evidence type, and the description text. The
// persistence layer enforces uniqueness over this value.
func EvidenceHash(caseID, evidenceType, description string) string {
	return SHA256String(caseID + evidenceType + description)
}
