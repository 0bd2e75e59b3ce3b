// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"strings"
	"testing"

	"license-scan/internal/formatters"
	"license-scan/internal/jurisdiction"
	"license-scan/internal/license"
)

func sampleRecord() *license.Record {
	return &license.Record{
		LastName:      &license.Field{Value: "Smith", Confidence: 0.9, Method: "pattern_match"},
		LicenseNumber: &license.Field{Value: "D1234560", Confidence: 0.97, Method: "pattern_match", Corrections: 2},
		Jurisdiction:  jurisdiction.CA,
		Source:        "ocr",
		Diagnostics: []license.Diagnostic{
			{Field: "dateOfBirth", Value: "1990-01-15", Confidence: 0.66, Reason: "confidence below threshold"},
		},
	}
}

func TestFormat_RowsPerField(t *testing.T) {
	out, err := NewFormatter().Format(sampleRecord(), formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 field rows, got %d rows", len(rows))
	}

	header := rows[0]
	if header[0] != "field" || header[4] != "corrections" {
		t.Errorf("unexpected header: %v", header)
	}

	if rows[1][0] != "lastName" || rows[1][1] != "Smith" {
		t.Errorf("first field row: %v", rows[1])
	}
	if rows[2][0] != "licenseNumber" || rows[2][4] != "2" {
		t.Errorf("license row: %v", rows[2])
	}
}

func TestFormat_VerboseIncludesRejected(t *testing.T) {
	out, err := NewFormatter().Format(sampleRecord(), formatters.FormatterOptions{Verbose: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header, 2 field rows, and 1 rejected row, got %d", len(rows))
	}
	last := rows[3]
	if last[0] != "dateOfBirth (rejected)" || last[3] != "confidence below threshold" {
		t.Errorf("rejected row: %v", last)
	}
}

func TestRegisteredByInit(t *testing.T) {
	if _, err := formatters.Get("csv"); err != nil {
		t.Fatalf("csv formatter not registered: %v", err)
	}
}
