// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractor

import "license-scan/internal/ocr"

// Field identifies one logical field of an identity document.
type Field int

const (
	FieldFirstName Field = iota
	FieldMiddleName
	FieldLastName
	FieldSuffix
	FieldLicenseNumber
	FieldDateOfBirth
	FieldIssueDate
	FieldExpirationDate
	FieldSex
	FieldEyeColor
	FieldHairColor
	FieldHeight
	FieldWeight
	FieldAddressStreet
	FieldAddressCity
	FieldAddressState
	FieldAddressPostal
	FieldLicenseClass
	FieldRestrictions
	FieldEndorsements
)

var fieldNames = map[Field]string{
	FieldFirstName:      "firstName",
	FieldMiddleName:     "middleName",
	FieldLastName:       "lastName",
	FieldSuffix:         "suffix",
	FieldLicenseNumber:  "licenseNumber",
	FieldDateOfBirth:    "dateOfBirth",
	FieldIssueDate:      "issueDate",
	FieldExpirationDate: "expirationDate",
	FieldSex:            "sex",
	FieldEyeColor:       "eyeColor",
	FieldHairColor:      "hairColor",
	FieldHeight:         "height",
	FieldWeight:         "weight",
	FieldAddressStreet:  "addressStreet",
	FieldAddressCity:    "addressCity",
	FieldAddressState:   "addressState",
	FieldAddressPostal:  "addressPostal",
	FieldLicenseClass:   "licenseClass",
	FieldRestrictions:   "restrictions",
	FieldEndorsements:   "endorsements",
}

// String returns the canonical field name.
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// AllFields returns every field in declaration order.
func AllFields() []Field {
	out := make([]Field, 0, len(fieldNames))
	for f := FieldFirstName; f <= FieldEndorsements; f++ {
		out = append(out, f)
	}
	return out
}

// Method records how a field value was obtained.
type Method int

const (
	// MethodPatternMatch means an ordered regex pattern matched token text.
	MethodPatternMatch Method = iota

	// MethodPositional means a positional heuristic selected the value.
	MethodPositional

	// MethodContextual means surrounding tokens identified the value.
	MethodContextual

	// MethodHybrid means more than one strategy contributed.
	MethodHybrid
)

// String returns the string representation of the extraction method.
func (m Method) String() string {
	switch m {
	case MethodPatternMatch:
		return "pattern_match"
	case MethodPositional:
		return "positional"
	case MethodContextual:
		return "contextual"
	case MethodHybrid:
		return "hybrid"
	default:
		return "unknown"
	}
}

// FieldValue is the unit passed between the extractor, corrector,
// scorer, and validator. Each stage produces a new value from the
// previous one; values are never mutated in place.
type FieldValue struct {
	Value      string
	Confidence float64
	Method     Method
	BBox       ocr.Rect

	// Corrections counts character substitutions applied by the
	// corrector. Zero until that stage runs.
	Corrections int
}
