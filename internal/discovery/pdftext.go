// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxPDFPages caps per-document page processing. Documents beyond the cap
// are truncated, not rejected; analysis remains best-effort.
const maxPDFPages = 50

// ExtractPDFText extracts the text layer from PDF bytes using
// ledongthuc/pdf. Pages that fail to decode are skipped; the error return
// is reserved for documents no page could be read from. The parser panics
// on some malformed inputs, so extraction recovers and reports those as
// errors.
func ExtractPDFText(documentBytes []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("parsing pdf: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(documentBytes), int64(len(documentBytes)))
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}

	pageCount := reader.NumPage()
	if pageCount > maxPDFPages {
		pageCount = maxPDFPages
	}

	var builder strings.Builder
	extracted := 0
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if builder.Len() > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(text)
		extracted++
	}

	if extracted == 0 {
		return "", fmt.Errorf("no extractable pages in %d-page document", reader.NumPage())
	}

	return builder.String(), nil
}
