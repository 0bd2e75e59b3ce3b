// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"strings"
	"testing"

	goyaml "gopkg.in/yaml.v3"

	"license-scan/internal/formatters"
	"license-scan/internal/jurisdiction"
	"license-scan/internal/license"
)

func TestFormat_RoundTrips(t *testing.T) {
	record := &license.Record{
		LastName:     &license.Field{Value: "Smith", Confidence: 0.9, Method: "pattern_match"},
		Jurisdiction: jurisdiction.CA,
		Source:       "barcode",
		Diagnostics: []license.Diagnostic{
			{Field: "weight", Value: "1800", Confidence: 0.9, Reason: "format check failed"},
		},
	}

	out, err := NewFormatter().Format(record, formatters.FormatterOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]interface{}
	if err := goyaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded["issuing_jurisdiction"] != "CA" {
		t.Errorf("issuing_jurisdiction = %v", decoded["issuing_jurisdiction"])
	}
	if strings.Contains(out, "diagnostics") {
		t.Error("diagnostics must be omitted without verbose")
	}

	verbose, err := NewFormatter().Format(record, formatters.FormatterOptions{Verbose: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(verbose, "diagnostics") {
		t.Error("verbose output must include diagnostics")
	}
}

func TestRegisteredByInit(t *testing.T) {
	if _, err := formatters.Get("yaml"); err != nil {
		t.Fatalf("yaml formatter not registered: %v", err)
	}
}
