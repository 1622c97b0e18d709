// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"bytes"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"casetrace/internal/detector"
)

// ExtractPDFProvenance pulls the info dictionary from PDF bytes via pdfcpu.
// Provenance is informational chain-of-custody context, so failures here
// return nil rather than affecting analysis.
func ExtractPDFProvenance(documentBytes []byte) *detector.Provenance {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	info, err := api.PDFInfo(bytes.NewReader(documentBytes), "", nil, conf)
	if err != nil {
		return nil
	}

	p := &detector.Provenance{
		Title:    info.Title,
		Author:   info.Author,
		Producer: info.Producer,
		Created:  info.CreationDate,
		Modified: info.ModificationDate,
	}

	if *p == (detector.Provenance{}) {
		return nil
	}
	return p
}
