// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"testing"

	"license-scan/internal/formatters"
	"license-scan/internal/jurisdiction"
	"license-scan/internal/license"
)

func sampleRecord() *license.Record {
	record := &license.Record{
		LastName:      &license.Field{Value: "Smith", Confidence: 0.9, Method: "pattern_match"},
		LicenseNumber: &license.Field{Value: "D1234560", Confidence: 0.97, Method: "pattern_match", Corrections: 2},
		Jurisdiction:  jurisdiction.CA,
		Source:        "ocr",
		Diagnostics: []license.Diagnostic{
			{Field: "dateOfBirth", Value: "1990-01-15", Confidence: 0.66, Reason: "confidence below threshold"},
		},
	}
	record.ComputeOverallConfidence()
	return record
}

func TestFormat_PlainOutput(t *testing.T) {
	out, err := NewFormatter().Format(sampleRecord(), formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Jurisdiction: CA", "Source:       ocr", "lastName", "Smith", "licenseNumber", "D1234560"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Rejected fields") {
		t.Error("diagnostics section must be verbose-only")
	}
}

func TestFormat_VerboseShowsDiagnosticsAndMethods(t *testing.T) {
	out, err := NewFormatter().Format(sampleRecord(), formatters.FormatterOptions{Verbose: true, NoColor: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Rejected fields", "dateOfBirth", "confidence below threshold", "method=pattern_match", "corrections=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("verbose output missing %q:\n%s", want, out)
		}
	}
}

func TestFormat_EmptyRecord(t *testing.T) {
	record := &license.Record{Jurisdiction: jurisdiction.Generic, Source: "ocr"}
	out, err := NewFormatter().Format(record, formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "No fields extracted.") {
		t.Errorf("expected empty-record notice:\n%s", out)
	}
}

func TestRegisteredByInit(t *testing.T) {
	f, err := formatters.Get("text")
	if err != nil {
		t.Fatalf("text formatter not registered: %v", err)
	}
	if f.FileExtension() != ".txt" {
		t.Errorf("extension = %q", f.FileExtension())
	}
}
