// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package integrity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256Bytes_KnownVector(t *testing.T) {
	// FIPS 180-2 test vector for "abc".
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	assert.Equal(t, want, SHA256Bytes([]byte("abc")))
	assert.Equal(t, want, SHA256String("abc"))
}

func TestSHA256Bytes_EmptyInput(t *testing.T) {
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	assert.Equal(t, want, SHA256Bytes(nil))
	assert.Equal(t, want, SHA256Bytes([]byte{}))
	assert.Equal(t, want, SHA256String(""))
}

func TestSHA256Bytes_Deterministic(t *testing.T) {
	input := []byte("autopsy report, case 2024-HOM-0041")
	first := SHA256Bytes(input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, SHA256Bytes(input))
	}
	assert.Len(t, first, 64)
}

func TestSHA256File_MatchesByteHash(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "evidence.txt")
	content := []byte("scene photograph log\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	got, err := SHA256File(path)
	require.NoError(t, err)
	assert.Equal(t, SHA256Bytes(content), got)
}

func TestSHA256File_LargerThanChunk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "large.bin")
	content := make([]byte, fileChunkSize+4096)
	for i := range content {
		content[i] = byte(i % 251)
	}
	require.NoError(t, os.WriteFile(path, content, 0o600))

	got, err := SHA256File(path)
	require.NoError(t, err)
	assert.Equal(t, SHA256Bytes(content), got)
}

func TestSHA256File_Missing(t *testing.T) {
	_, err := SHA256File(filepath.Join(t.TempDir(), "absent.bin"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCaseFingerprint_FieldSensitivity(t *testing.T) {
	base := CaseFingerprint("2024-HOM-0041", "Riverside Homicide", 87.5)

	assert.Equal(t, base, CaseFingerprint("2024-HOM-0041", "Riverside Homicide", 87.5))
	assert.NotEqual(t, base, CaseFingerprint("2024-HOM-0042", "Riverside Homicide", 87.5))
	assert.NotEqual(t, base, CaseFingerprint("2024-HOM-0041", "Riverside Homicide (amended)", 87.5))
	assert.NotEqual(t, base, CaseFingerprint("2024-HOM-0041", "Riverside Homicide", 87.51))
}

func TestCaseFingerprint_ScoreFormatting(t *testing.T) {
	// Two-decimal formatting: numerically equal scores hash identically.
	assert.Equal(t,
		CaseFingerprint("C-1", "Title", 90),
		CaseFingerprint("C-1", "Title", 90.0))
	assert.Equal(t,
		CaseFingerprint("C-1", "Title", 90.5),
		CaseFingerprint("C-1", "Title", 90.50))
}

func TestEvidenceHash(t *testing.T) {
	want := SHA256String("2024-HOM-0041" + "photo" + "rear entrance, north angle")
	got := EvidenceHash("2024-HOM-0041", "photo", "rear entrance, north angle")
	assert.Equal(t, want, got)

	assert.NotEqual(t, got, EvidenceHash("2024-HOM-0041", "photo", "rear entrance, south angle"))
	assert.NotEqual(t, got, EvidenceHash("2024-HOM-0041", "document", "rear entrance, north angle"))
}
