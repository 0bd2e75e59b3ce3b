// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package confidence combines five weighted factors into a single
// [0,1] score per extracted field.
package confidence

import (
	"regexp"
	"strings"

	"license-scan/internal/extractor"
	"license-scan/internal/jurisdiction"
	"license-scan/internal/ocr"
)

// Weights holds the multiplier for each scoring factor. The five
// factors always sum their weighted contributions; callers may tune
// individual weights through configuration.
type Weights struct {
	OCR          float64 `yaml:"ocr"`
	Pattern      float64 `yaml:"pattern"`
	Format       float64 `yaml:"format"`
	Jurisdiction float64 `yaml:"jurisdiction"`
	Context      float64 `yaml:"context"`
}

// DefaultWeights returns the standard factor weights.
func DefaultWeights() Weights {
	return Weights{
		OCR:          0.30,
		Pattern:      0.25,
		Format:       0.20,
		Jurisdiction: 0.15,
		Context:      0.10,
	}
}

// labelVocabulary maps field names to the printed labels whose
// adjacency supports a field value.
var labelVocabulary = map[extractor.Field][]string{
	extractor.FieldFirstName:      {"FN", "FIRST"},
	extractor.FieldMiddleName:     {"MN", "MIDDLE"},
	extractor.FieldLastName:       {"LN", "LAST"},
	extractor.FieldLicenseNumber:  {"DL", "DLN", "LIC", "LICENSE", "NO"},
	extractor.FieldDateOfBirth:    {"DOB", "BIRTH"},
	extractor.FieldIssueDate:      {"ISS", "ISSUED"},
	extractor.FieldExpirationDate: {"EXP", "EXPIRES"},
	extractor.FieldSex:            {"SEX", "GENDER"},
	extractor.FieldEyeColor:       {"EYES", "EYE"},
	extractor.FieldHairColor:      {"HAIR"},
	extractor.FieldHeight:         {"HGT", "HEIGHT"},
	extractor.FieldWeight:         {"WGT", "WEIGHT"},
	extractor.FieldLicenseClass:   {"CLASS", "CL"},
	extractor.FieldRestrictions:   {"RESTR", "REST"},
	extractor.FieldEndorsements:   {"END"},
}

// Per-field format expectations used by the format-validation factor.
type formatCheck struct {
	minLen, maxLen int
	charset        *regexp.Regexp
	shape          *regexp.Regexp
}

var formatChecks = map[extractor.Field]formatCheck{
	extractor.FieldFirstName:      {1, 40, reLetters, nil},
	extractor.FieldMiddleName:     {1, 40, reLetters, nil},
	extractor.FieldLastName:       {1, 40, reLetters, nil},
	extractor.FieldSuffix:         {1, 4, reLetters, regexp.MustCompile(`^(JR|SR|II|III|IV|V)$`)},
	extractor.FieldLicenseNumber:  {4, 14, reAlnumDash, nil},
	extractor.FieldDateOfBirth:    {10, 10, reDateISO, reDateISO},
	extractor.FieldIssueDate:      {10, 10, reDateISO, reDateISO},
	extractor.FieldExpirationDate: {10, 10, reDateISO, reDateISO},
	extractor.FieldSex:            {1, 1, nil, regexp.MustCompile(`^[MFX]$`)},
	extractor.FieldEyeColor:       {2, 3, reLetters, nil},
	extractor.FieldHairColor:      {2, 3, reLetters, nil},
	extractor.FieldHeight:         {2, 7, nil, regexp.MustCompile(`^(\d'\s?\d{1,2}"?|\d{2,3}\s?(CM|IN)?)$`)},
	extractor.FieldWeight:         {2, 3, reDigits, nil},
	extractor.FieldAddressStreet:  {5, 80, nil, nil},
	extractor.FieldAddressCity:    {2, 40, nil, nil},
	extractor.FieldAddressState:   {2, 2, reLetters, nil},
	extractor.FieldAddressPostal:  {5, 10, nil, regexp.MustCompile(`^\d{5}(-\d{4})?$`)},
	extractor.FieldLicenseClass:   {1, 3, reAlnum, nil},
	extractor.FieldRestrictions:   {1, 20, nil, nil},
	extractor.FieldEndorsements:   {1, 20, nil, nil},
}

var (
	reLetters   = regexp.MustCompile(`^[A-Z' -]+$`)
	reDigits    = regexp.MustCompile(`^\d+$`)
	reAlnum     = regexp.MustCompile(`^[A-Z0-9]+$`)
	reAlnumDash = regexp.MustCompile(`^[A-Z0-9-]+$`)
	reDateISO   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// labelNearbyDist is the maximum center distance, in normalized page
// coordinates, for a label token to support a field value.
const labelNearbyDist = 0.15

// Score recomputes each field's confidence from the five weighted
// factors and applies the jurisdiction's per-field weight vector. The
// result is a new field map; inputs are not modified.
func Score(fields map[extractor.Field]extractor.FieldValue, tokens []ocr.Token, rule jurisdiction.Rule, w Weights) map[extractor.Field]extractor.FieldValue {
	out := make(map[extractor.Field]extractor.FieldValue, len(fields))

	for field, fv := range fields {
		score := w.OCR*fv.Confidence +
			w.Pattern*patternStrength(field, fv, rule) +
			w.Format*formatScore(field, fv.Value) +
			w.Jurisdiction*jurisdictionScore(field, fv.Value, rule) +
			w.Context*contextScore(field, fv, tokens)

		// Jurisdiction-specific weight vectors override the
		// field-level multiplier afterward, capped at 1.0.
		if boost, ok := rule.ConfidenceWeights[field.String()]; ok {
			score *= 1 + boost
		}

		next := fv
		next.Confidence = clamp01(score)
		out[field] = next
	}
	return out
}

// patternStrength is a method- and field-shape-dependent heuristic.
func patternStrength(field extractor.Field, fv extractor.FieldValue, rule jurisdiction.Rule) float64 {
	var base float64
	switch fv.Method {
	case extractor.MethodPatternMatch:
		base = 0.9
	case extractor.MethodHybrid:
		base = 0.8
	case extractor.MethodContextual:
		base = 0.7
	case extractor.MethodPositional:
		base = 0.6
	}

	if field == extractor.FieldLicenseNumber && rule.MatchesLicenseNumber(fv.Value) {
		base += 0.1
	}
	return clamp01(base)
}

// formatScore runs length, format, and character-set checks, each
// contributing one third.
func formatScore(field extractor.Field, value string) float64 {
	check, ok := formatChecks[field]
	if !ok {
		return 0.5
	}

	score := 0.0
	if len(value) >= check.minLen && len(value) <= check.maxLen {
		score += 1.0 / 3.0
	}
	if check.shape == nil || check.shape.MatchString(value) {
		score += 1.0 / 3.0
	}
	if check.charset == nil || check.charset.MatchString(value) {
		score += 1.0 / 3.0
	}
	return score
}

// jurisdictionScore checks rule compliance where a concrete check
// exists. Only the license number has one today; other fields score a
// placeholder constant.
func jurisdictionScore(field extractor.Field, value string, rule jurisdiction.Rule) float64 {
	if field == extractor.FieldLicenseNumber {
		if rule.MatchesLicenseNumber(value) {
			return 1.0
		}
		return 0.3
	}
	return 0.5
}

// contextScore is boosted when a recognized label token lies near the
// field's bounding box, or when the label shares the field's own
// token.
func contextScore(field extractor.Field, fv extractor.FieldValue, tokens []ocr.Token) float64 {
	labels := labelVocabulary[field]
	if len(labels) == 0 {
		return 0.5
	}

	for _, t := range tokens {
		if !t.BBox.Near(fv.BBox, labelNearbyDist) {
			continue
		}
		for _, label := range labels {
			if containsWord(t.Text, label) {
				return 1.0
			}
		}
	}
	return 0.5
}

func containsWord(text, word string) bool {
	for _, w := range strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ':' || r == '.' || r == '#'
	}) {
		if w == word {
			return true
		}
	}
	return false
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
