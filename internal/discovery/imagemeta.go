// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"bytes"
	"fmt"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"casetrace/internal/detector"
)

// ExtractImageProvenance decodes EXIF data from image bytes: capture
// timestamp, GPS position, and camera model. Image evidence has no text
// layer to analyze, but its EXIF block is chain-of-custody material.
// Returns nil when no EXIF data is present.
func ExtractImageProvenance(documentBytes []byte) *detector.Provenance {
	x, err := exif.Decode(bytes.NewReader(documentBytes))
	if err != nil {
		return nil
	}

	p := &detector.Provenance{}

	if dt, err := x.DateTime(); err == nil {
		p.Created = dt.UTC().Format(time.RFC3339)
	}

	if lat, long, err := x.LatLong(); err == nil {
		p.GPS = fmt.Sprintf("%.6f,%.6f", lat, long)
	}

	if tag, err := x.Get(exif.Model); err == nil {
		if model, err := tag.StringVal(); err == nil {
			p.Camera = model
		}
	}

	if *p == (detector.Provenance{}) {
		return nil
	}
	return p
}
