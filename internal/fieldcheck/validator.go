// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package fieldcheck is the final gate before record assembly: it
// cleans accepted values and applies per-field length/format/
// confidence thresholds. Rejected fields stay visible for diagnostics;
// the orchestrator omits them from the externally-visible record.
package fieldcheck

import (
	"regexp"
	"strings"

	"license-scan/internal/extractor"
)

// Result is the validator's verdict for one field.
type Result struct {
	Field       extractor.Field
	Value       string
	Confidence  float64
	Method      extractor.Method
	Corrections int
	Valid       bool
	Reason      string
}

// Acceptance thresholds per field. Critical identity fields demand
// 0.7-0.8; descriptive fields 0.5-0.6.
var thresholds = map[extractor.Field]float64{
	extractor.FieldFirstName:      0.70,
	extractor.FieldMiddleName:     0.60,
	extractor.FieldLastName:       0.70,
	extractor.FieldSuffix:         0.50,
	extractor.FieldLicenseNumber:  0.70,
	extractor.FieldDateOfBirth:    0.75,
	extractor.FieldIssueDate:      0.65,
	extractor.FieldExpirationDate: 0.70,
	extractor.FieldSex:            0.60,
	extractor.FieldEyeColor:       0.50,
	extractor.FieldHairColor:      0.50,
	extractor.FieldHeight:         0.50,
	extractor.FieldWeight:         0.50,
	extractor.FieldAddressStreet:  0.60,
	extractor.FieldAddressCity:    0.60,
	extractor.FieldAddressState:   0.60,
	extractor.FieldAddressPostal:  0.60,
	extractor.FieldLicenseClass:   0.55,
	extractor.FieldRestrictions:   0.50,
	extractor.FieldEndorsements:   0.50,
}

const defaultThreshold = 0.60

// Per-field format gates. Values failing these are rejected even when
// their confidence clears the threshold.
var formatGates = map[extractor.Field]*regexp.Regexp{
	extractor.FieldFirstName:      regexp.MustCompile(`^[A-Za-z' -]{1,40}$`),
	extractor.FieldMiddleName:     regexp.MustCompile(`^[A-Za-z' -]{1,40}$`),
	extractor.FieldLastName:       regexp.MustCompile(`^[A-Za-z' -]{1,40}$`),
	extractor.FieldSuffix:         regexp.MustCompile(`^(JR|SR|II|III|IV|V)$`),
	extractor.FieldLicenseNumber:  regexp.MustCompile(`^[A-Z0-9-]{4,14}$`),
	extractor.FieldDateOfBirth:    regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	extractor.FieldIssueDate:      regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	extractor.FieldExpirationDate: regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	extractor.FieldSex:            regexp.MustCompile(`^[MFX]$`),
	extractor.FieldEyeColor:       regexp.MustCompile(`^[A-Z]{2,3}$`),
	extractor.FieldHairColor:      regexp.MustCompile(`^[A-Z]{2,3}$`),
	extractor.FieldWeight:         regexp.MustCompile(`^\d{2,3}$`),
	extractor.FieldAddressState:   regexp.MustCompile(`^[A-Z]{2}$`),
	extractor.FieldAddressPostal:  regexp.MustCompile(`^\d{5}(-\d{4})?$`),
	extractor.FieldLicenseClass:   regexp.MustCompile(`^[A-Z0-9]{1,3}$`),
}

// Threshold returns the acceptance threshold for field.
func Threshold(field extractor.Field) float64 {
	if t, ok := thresholds[field]; ok {
		return t
	}
	return defaultThreshold
}

// Validate cleans and gates every field. Overrides, when non-nil, maps
// field names to replacement thresholds from configuration.
func Validate(fields map[extractor.Field]extractor.FieldValue, overrides map[string]float64) map[extractor.Field]Result {
	results := make(map[extractor.Field]Result, len(fields))

	for field, fv := range fields {
		cleaned := clean(field, fv.Value)

		threshold := Threshold(field)
		if overrides != nil {
			if t, ok := overrides[field.String()]; ok {
				threshold = t
			}
		}

		result := Result{
			Field:       field,
			Value:       cleaned,
			Confidence:  fv.Confidence,
			Method:      fv.Method,
			Corrections: fv.Corrections,
			Valid:       true,
		}

		if gate, ok := formatGates[field]; ok && !gate.MatchString(strings.ToUpper(cleaned)) {
			result.Valid = false
			result.Reason = "format check failed"
		} else if fv.Confidence < threshold {
			result.Valid = false
			result.Reason = "confidence below threshold"
		}

		results[field] = result
	}
	return results
}

// clean canonicalizes an accepted value: names are capitalized, the
// license number loses embedded whitespace, enumerated codes are
// uppercased.
func clean(field extractor.Field, value string) string {
	value = strings.TrimSpace(value)

	switch field {
	case extractor.FieldFirstName, extractor.FieldMiddleName, extractor.FieldLastName,
		extractor.FieldAddressCity:
		return capitalizeName(value)
	case extractor.FieldLicenseNumber:
		return strings.ToUpper(strings.ReplaceAll(value, " ", ""))
	case extractor.FieldSex, extractor.FieldEyeColor, extractor.FieldHairColor,
		extractor.FieldSuffix, extractor.FieldLicenseClass, extractor.FieldAddressState:
		return strings.ToUpper(value)
	default:
		return value
	}
}

// capitalizeName converts "SMITH" to "Smith", preserving separators in
// compound names like "O'BRIEN" and "SMITH-JONES".
func capitalizeName(value string) string {
	var b strings.Builder
	b.Grow(len(value))

	upperNext := true
	for _, r := range strings.ToLower(value) {
		if upperNext && r >= 'a' && r <= 'z' {
			b.WriteRune(r - 32)
			upperNext = false
			continue
		}
		b.WriteRune(r)
		if r == ' ' || r == '-' || r == '\'' {
			upperNext = true
		}
	}
	return b.String()
}
