// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractor

import "regexp"

// Ordered pattern lists per field. Patterns are matched against
// normalized (uppercased) token text; the first token/pattern match
// wins. Compiled once at package initialization and shared read-only
// across concurrent parses.

const datePattern = `(\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}-\d{2}-\d{2}|\d{8})`

var fieldPatterns = map[Field][]*regexp.Regexp{
	FieldLicenseNumber: compileAll(
		`(?:DLN|DL|LIC|LICENSE|ID)\s*(?:NO|NUM|NUMBER|#)?[:.\s]\s*([A-Z0-9][A-Z0-9-]{3,13})`,
		`(?:NO|NUM|NUMBER|#)[:.\s]\s*([A-Z0-9][A-Z0-9-]{3,13})`,
	),
	FieldLastName: compileAll(
		`(?:LN|LAST\s*NAME)[:.\s]\s*([A-Z][A-Z0-9'-]+)`,
		`^([A-Z][A-Z0-9'-]+),\s*[A-Z]`,
	),
	FieldFirstName: compileAll(
		`(?:FN|FIRST\s*NAME)[:.\s]\s*([A-Z][A-Z0-9'-]+)`,
		`^[A-Z][A-Z0-9'-]+,\s*([A-Z][A-Z0-9'-]+)`,
	),
	FieldMiddleName: compileAll(
		`(?:MN|MIDDLE\s*NAME)[:.\s]\s*([A-Z][A-Z0-9'-]+)`,
		`^[A-Z][A-Z0-9'-]+,\s*[A-Z][A-Z0-9'-]+\s+([A-Z][A-Z0-9'-]+)$`,
	),
	FieldSuffix: compileAll(
		`\b(JR|SR|II|III|IV|V)\b\.?$`,
	),
	FieldDateOfBirth: compileAll(
		`(?:DOB|DATE\s*OF\s*BIRTH|BIRTH\s*DATE|BORN)[:.\s]\s*` + datePattern,
	),
	FieldIssueDate: compileAll(
		`(?:ISS|ISSUED|ISSUE\s*DATE|DATE\s*OF\s*ISSUE)[:.\s]\s*` + datePattern,
	),
	FieldExpirationDate: compileAll(
		`(?:EXP|EXPIRES|EXPIRATION|EXPIRY|VALID\s*(?:THRU|UNTIL|TO))[:.\s]\s*` + datePattern,
	),
	FieldSex: compileAll(
		`(?:SEX|GENDER)[:.\s]\s*([MFX12])\b`,
	),
	FieldEyeColor: compileAll(
		`(?:EYES|EYE|EY)[:.\s]\s*([A-Z0-9]{3})\b`,
	),
	FieldHairColor: compileAll(
		`(?:HAIR|HR)[:.\s]\s*([A-Z0-9]{3})\b`,
	),
	FieldHeight: compileAll(
		`(?:HGT|HEIGHT|HT)[:.\s]\s*(\d['\-]\s?\d{1,2}"?|\d{2,3}\s?(?:CM|IN)?)`,
	),
	FieldWeight: compileAll(
		`(?:WGT|WEIGHT|WT)[:.\s]\s*([0-9OIS]{2,3})\s?(?:LB|LBS|KG)?\b`,
	),
	FieldAddressPostal: compileAll(
		`(?:ZIP|POSTAL)[:.\s]\s*(\d{5}(?:-\d{4})?)\b`,
		`\b(\d{5}-\d{4})\b`,
		`\b[A-Z]{2}\s+(\d{5})\b`,
	),
	FieldAddressState: compileAll(
		`\b([A-Z]{2})\s+\d{5}(?:-\d{4})?\b`,
	),
	FieldAddressCity: compileAll(
		`^([A-Z][A-Z\s]+?),?\s+[A-Z]{2}\s+\d{5}(?:-\d{4})?\b`,
	),
	FieldLicenseClass: compileAll(
		`(?:CLASS|CL)[:.\s]\s*([A-Z0-9]{1,3})\b`,
	),
	FieldRestrictions: compileAll(
		`(?:RESTR|RESTRICTIONS|REST)[:.\s]\s*([A-Z0-9][A-Z0-9,\s]*)`,
	),
	FieldEndorsements: compileAll(
		`(?:END|ENDORSEMENTS|ENDORSEMENT)[:.\s]\s*([A-Z0-9][A-Z0-9,\s]*)`,
	),
}

// streetSuffixRe matches tokens carrying a street-type suffix. Address
// extraction aggregates matching tokens up to the jurisdiction's
// address-line count rather than stopping at the first.
var streetSuffixRe = regexp.MustCompile(
	`\b\d+\s+[A-Z0-9][A-Z0-9\s.]*\b(ST|STREET|AVE|AVENUE|BLVD|BOULEVARD|DR|DRIVE|RD|ROAD|LN|LANE|CT|COURT|WAY|HWY|HIGHWAY|PKWY|PARKWAY|PL|PLACE|CIR|CIRCLE|TER|TERRACE)\b\.?`)

// nameShapedRe filters positional name candidates: alphabetic text,
// optionally comma-separated, at least two characters per word.
var nameShapedRe = regexp.MustCompile(`^[A-Z][A-Z'-]+(,?\s+[A-Z][A-Z'-]+){0,3}$`)

// nameStopWords are label-like tokens that must never be taken for a
// personal name by the positional fallback.
var nameStopWords = map[string]bool{
	"DRIVER":     true,
	"LICENSE":    true,
	"DL":         true,
	"ID":         true,
	"DOB":        true,
	"EXP":        true,
	"ISS":        true,
	"IDENTITY":   true,
	"USA":        true,
	"CLASS":      true,
	"DUPLICATE":  true,
	"COMMERCIAL": true,
	"VETERAN":    true,
	"DONOR":      true,
	"ORGAN":      true,
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)`+p))
	}
	return out
}
