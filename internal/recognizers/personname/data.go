// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package personname

// Denylist holds capitalized phrases that match the two-token name pattern
// but are known document headers, form labels, or institutional terms in
// incident reports, autopsy notes, and call logs. Entries are exact matches
// against the captured phrase.
var Denylist = map[string]bool{
	"Medical Examiner":  true,
	"Police Department": true,
	"Case Number":       true,
	"Incident Report":   true,
	"Call Log":          true,
	"Crime Scene":       true,
	"District Attorney": true,
	"Cause Of":          true,
	"Date Of":           true,
	"Time Of":           true,
	"Social Security":   true,
	"United States":     true,
	"New York":          true,
	"Los Angeles":       true,
	"Main Street":       true,
	"Report Date":       true,
	"File Number":       true,
	"Evidence Item":     true,
	"Toxicology Report": true,
	"Autopsy Report":    true,
}

// LabelTokens holds single form-field labels that frequently start a
// capitalized phrase in structured reports ("Date Reported", "Name Unknown").
// A candidate containing one of these tokens is rejected.
var LabelTokens = map[string]bool{
	"Date":  true,
	"Name":  true,
	"Sex":   true,
	"Age":   true,
	"DOB":   true,
	"Eyes":  true,
	"Hair":  true,
	"Teeth": true,
}
