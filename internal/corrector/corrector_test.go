// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package corrector

import (
	"testing"

	"license-scan/internal/extractor"
	"license-scan/internal/jurisdiction"
)

func fieldMap(field extractor.Field, value string, conf float64) map[extractor.Field]extractor.FieldValue {
	return map[extractor.Field]extractor.FieldValue{
		field: {Value: value, Confidence: conf, Method: extractor.MethodPatternMatch},
	}
}

func TestCorrect_LicenseNumberShapeForcing(t *testing.T) {
	// CA's shape is one letter then seven digits. The misread
	// "DI23456O" has a letter in a digit position twice; each position
	// is forced toward the class the shape demands.
	out := Correct(fieldMap(extractor.FieldLicenseNumber, "DI23456O", 0.75), jurisdiction.CA)

	fv := out[extractor.FieldLicenseNumber]
	if fv.Value != "D1234560" {
		t.Errorf("corrected license = %q, want D1234560", fv.Value)
	}
	if fv.Corrections != 2 {
		t.Errorf("corrections = %d, want 2", fv.Corrections)
	}
	// Edit ratio 2/8 sits between the boost and penalty bands;
	// confidence is unchanged.
	if fv.Confidence != 0.75 {
		t.Errorf("confidence = %v, want 0.75 unchanged", fv.Confidence)
	}
}

func TestCorrect_LicenseNumberWithoutShape(t *testing.T) {
	// The generic pattern yields no per-position template; mixed
	// alphanumerics must pass through untouched rather than being
	// blindly substituted.
	out := Correct(fieldMap(extractor.FieldLicenseNumber, "DI23456O", 0.75), jurisdiction.Generic)
	if fv := out[extractor.FieldLicenseNumber]; fv.Value != "DI23456O" {
		t.Errorf("license without shape = %q, want unchanged", fv.Value)
	}
}

func TestCorrect_LicenseNumberLengthMismatch(t *testing.T) {
	out := Correct(fieldMap(extractor.FieldLicenseNumber, "DI23", 0.75), jurisdiction.CA)
	if fv := out[extractor.FieldLicenseNumber]; fv.Value != "DI23" {
		t.Errorf("length-mismatched license = %q, want unchanged", fv.Value)
	}
}

func TestCorrect_NamePrefersLetters(t *testing.T) {
	out := Correct(fieldMap(extractor.FieldLastName, "SM1TH", 0.70), jurisdiction.Generic)

	fv := out[extractor.FieldLastName]
	if fv.Value != "SMITH" {
		t.Errorf("corrected name = %q, want SMITH", fv.Value)
	}
	if fv.Corrections != 1 {
		t.Errorf("corrections = %d, want 1", fv.Corrections)
	}
	// Edit ratio 1/5 is a small repair; confidence gets the boost.
	if diff := fv.Confidence - 0.80; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("confidence = %v, want 0.80", fv.Confidence)
	}
}

func TestCorrect_NumericPrefersDigits(t *testing.T) {
	out := Correct(fieldMap(extractor.FieldWeight, "1B5", 0.80), jurisdiction.Generic)
	if fv := out[extractor.FieldWeight]; fv.Value != "185" {
		t.Errorf("corrected weight = %q, want 185", fv.Value)
	}
}

func TestCorrect_EnumConfusions(t *testing.T) {
	tests := []struct {
		field extractor.Field
		in    string
		want  string
	}{
		{extractor.FieldSex, "N", "M"},
		{extractor.FieldEyeColor, "8RN", "BRN"},
		{extractor.FieldHairColor, "8LK", "BLK"},
		{extractor.FieldLicenseClass, "C0L", "CDL"},
		{extractor.FieldEyeColor, "BRN", "BRN"}, // already canonical
	}
	for _, tt := range tests {
		out := Correct(fieldMap(tt.field, tt.in, 0.8), jurisdiction.Generic)
		if fv := out[tt.field]; fv.Value != tt.want {
			t.Errorf("%s: %q corrected to %q, want %q", tt.field, tt.in, fv.Value, tt.want)
		}
	}
}

func TestCorrect_StreetSuffixRepair(t *testing.T) {
	out := Correct(fieldMap(extractor.FieldAddressStreet, "I23 MA1N 5T", 0.80), jurisdiction.Generic)

	fv := out[extractor.FieldAddressStreet]
	if fv.Value != "123 MA1N ST" {
		t.Errorf("corrected street = %q, want \"123 MA1N ST\"", fv.Value)
	}
}

func TestCorrect_LargeEditPenalty(t *testing.T) {
	// A single-character enum rewrite is a whole-value edit; ratio
	// 1/1 exceeds the penalty band.
	out := Correct(fieldMap(extractor.FieldSex, "N", 0.80), jurisdiction.Generic)

	fv := out[extractor.FieldSex]
	if fv.Value != "M" {
		t.Fatalf("corrected sex = %q, want M", fv.Value)
	}
	if diff := fv.Confidence - 0.70; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("confidence = %v, want 0.70 after penalty", fv.Confidence)
	}
}

func TestCorrect_ConfidenceClamped(t *testing.T) {
	out := Correct(fieldMap(extractor.FieldLastName, "SM1TH", 0.95), jurisdiction.Generic)
	if fv := out[extractor.FieldLastName]; fv.Confidence != 1.0 {
		t.Errorf("boosted confidence should clamp at 1.0, got %v", fv.Confidence)
	}
}

func TestCorrect_Idempotent(t *testing.T) {
	once := Correct(fieldMap(extractor.FieldLicenseNumber, "DI23456O", 0.75), jurisdiction.CA)
	twice := Correct(once, jurisdiction.CA)

	a := once[extractor.FieldLicenseNumber]
	b := twice[extractor.FieldLicenseNumber]
	if a.Value != b.Value || a.Confidence != b.Confidence || a.Corrections != b.Corrections {
		t.Errorf("second pass changed the field: %+v vs %+v", a, b)
	}
}

func TestCorrect_InputNotMutated(t *testing.T) {
	in := fieldMap(extractor.FieldLastName, "SM1TH", 0.70)
	Correct(in, jurisdiction.Generic)
	if in[extractor.FieldLastName].Value != "SM1TH" {
		t.Error("input map must not be mutated")
	}
}

func TestShapeTemplate(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{`^[A-Z]\d{7}$`, "A9999999"},
		{`^\d{8}$`, "99999999"},
		{`^[A-Z]{2}\d{6}$`, "AA999999"},
		// Broad classes, separators, and literal prefixes are too
		// complex to expand; they yield no template.
		{`^[A-Z0-9]{4,14}$`, ""},
		{`^\d{2}-\d{3}-\d{4}$`, ""},
		{`^S\d{8}$`, ""},
	}
	for _, tt := range tests {
		got := string(shapeTemplate(tt.pattern))
		if got != tt.want {
			t.Errorf("shapeTemplate(%q) = %q, want %q", tt.pattern, got, tt.want)
		}
	}
}
