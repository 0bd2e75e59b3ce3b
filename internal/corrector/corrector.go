// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package corrector repairs OCR character-confusion errors in
// extracted field values. The correction strategy is selected by field
// category and, when known, refined by the issuing jurisdiction's
// license-number shape.
package corrector

import (
	"regexp"
	"strconv"
	"strings"

	"license-scan/internal/extractor"
	"license-scan/internal/jurisdiction"
)

// Confidence adjustment thresholds, expressed as normalized edit
// distance between the pre- and post-correction value.
const (
	smallEditRatio = 0.20
	largeEditRatio = 0.50

	smallEditBoost   = 0.10
	largeEditPenalty = 0.10
)

// Correct applies the per-category substitution strategy to every
// extracted field and returns a new field map. Input values are never
// mutated; fields whose value survives unchanged keep their confidence
// untouched.
func Correct(fields map[extractor.Field]extractor.FieldValue, code jurisdiction.Code) map[extractor.Field]extractor.FieldValue {
	rule := jurisdiction.Lookup(code)
	out := make(map[extractor.Field]extractor.FieldValue, len(fields))

	for field, fv := range fields {
		corrected := correctValue(field, fv.Value, rule)
		out[field] = adjusted(fv, corrected)
	}
	return out
}

func correctValue(field extractor.Field, value string, rule jurisdiction.Rule) string {
	switch {
	case isNameField(field):
		return preferLetters(value)
	case field == extractor.FieldLicenseNumber:
		return correctLicenseNumber(value, rule)
	case isNumericField(field):
		return preferDigits(value)
	case isEnumField(field):
		if canonical, ok := enumConfusions[value]; ok {
			return canonical
		}
		return value
	case isAddressField(field):
		return correctAddress(value)
	default:
		return value
	}
}

// adjusted produces the post-correction FieldValue with the
// edit-distance-based confidence delta applied: a small edit nudges
// confidence up, a large edit nudges it down, no correction leaves it
// unchanged. All outputs clamp to [0,1].
func adjusted(fv extractor.FieldValue, corrected string) extractor.FieldValue {
	if corrected == fv.Value {
		return fv
	}

	dist := levenshtein(fv.Value, corrected)
	ratio := float64(dist) / float64(len(fv.Value))

	confidence := fv.Confidence
	switch {
	case ratio <= smallEditRatio:
		confidence += smallEditBoost
	case ratio > largeEditRatio:
		confidence -= largeEditPenalty
	}

	return extractor.FieldValue{
		Value:       corrected,
		Confidence:  clamp01(confidence),
		Method:      fv.Method,
		BBox:        fv.BBox,
		Corrections: fv.Corrections + dist,
	}
}

// preferLetters substitutes digits with their look-alike letters.
// Name fields should never contain digits.
func preferLetters(value string) string {
	b := []byte(value)
	for i, c := range b {
		if letter, ok := digitToLetter[c]; ok {
			b[i] = letter
		}
	}
	return string(b)
}

// preferDigits substitutes letters with their look-alike digits.
func preferDigits(value string) string {
	b := []byte(value)
	for i, c := range b {
		if digit, ok := letterToDigit[c]; ok {
			b[i] = digit
		}
	}
	return string(b)
}

// correctLicenseNumber applies digit preference guided by the
// jurisdiction's license-number shape when one is known: each position
// is forced toward the character class the shape demands. Without a
// usable shape the value is left as matched, since license numbers mix
// letters and digits and a blind substitution would corrupt them.
func correctLicenseNumber(value string, rule jurisdiction.Rule) string {
	template := shapeTemplate(rule.LicenseNumberPattern)
	if template == nil || len(template) != len(value) {
		return value
	}

	b := []byte(value)
	for i, class := range template {
		c := b[i]
		switch class {
		case 'A':
			if letter, ok := digitToLetter[c]; ok && c >= '0' && c <= '9' {
				b[i] = letter
			}
		case '9':
			if digit, ok := letterToDigit[c]; ok && c >= 'A' && c <= 'Z' {
				b[i] = digit
			}
		}
	}
	return string(b)
}

// correctAddress repairs misread street-suffix abbreviations and
// applies digit preference to the leading house number.
func correctAddress(value string) string {
	words := strings.Fields(value)
	for i, w := range words {
		if repaired, ok := streetSuffixRepairs[w]; ok {
			words[i] = repaired
			continue
		}
		// House numbers are the leading all-digit-or-confusable word.
		if i == 0 && looksNumeric(w) {
			words[i] = preferDigits(w)
		}
	}
	return strings.Join(words, " ")
}

// shapeTemplateRe recognizes simple anchored patterns built from
// [A-Z] and \d atoms with optional {n} repeats. More elaborate
// patterns yield no template and skip shape forcing.
var shapeTemplateRe = regexp.MustCompile(`^\^((?:\[A-Z\](?:\{\d+\})?|\\d(?:\{\d+\})?)+)\$$`)

var shapeAtomRe = regexp.MustCompile(`(\[A-Z\]|\\d)(?:\{(\d+)\})?`)

// shapeTemplate converts a license-number pattern into a per-position
// class template: 'A' for an alphabetic position, '9' for a numeric
// one. Returns nil when the pattern is too complex to expand.
func shapeTemplate(pattern string) []byte {
	if !shapeTemplateRe.MatchString(pattern) {
		return nil
	}

	var template []byte
	for _, m := range shapeAtomRe.FindAllStringSubmatch(pattern, -1) {
		count := 1
		if m[2] != "" {
			count, _ = strconv.Atoi(m[2])
		}
		class := byte('9')
		if m[1] == "[A-Z]" {
			class = 'A'
		}
		for i := 0; i < count; i++ {
			template = append(template, class)
		}
	}
	return template
}

func looksNumeric(w string) bool {
	digits := 0
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c >= '0' && c <= '9' {
			digits++
			continue
		}
		if _, ok := letterToDigit[c]; !ok {
			return false
		}
	}
	return digits*2 >= len(w)
}

func isNameField(f extractor.Field) bool {
	switch f {
	case extractor.FieldFirstName, extractor.FieldMiddleName, extractor.FieldLastName,
		extractor.FieldSuffix, extractor.FieldAddressCity:
		return true
	default:
		return false
	}
}

func isNumericField(f extractor.Field) bool {
	switch f {
	case extractor.FieldDateOfBirth, extractor.FieldIssueDate, extractor.FieldExpirationDate,
		extractor.FieldWeight, extractor.FieldAddressPostal:
		return true
	default:
		return false
	}
}

func isEnumField(f extractor.Field) bool {
	switch f {
	case extractor.FieldSex, extractor.FieldEyeColor, extractor.FieldHairColor, extractor.FieldLicenseClass:
		return true
	default:
		return false
	}
}

func isAddressField(f extractor.Field) bool {
	return f == extractor.FieldAddressStreet
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
