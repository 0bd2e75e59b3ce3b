// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package jurisdiction

import (
	"regexp"
	"sort"
	"strings"

	"license-scan/internal/ocr"
)

// Detection strategies, tried in order until one succeeds:
//
//  1. explicit jurisdiction name or abbreviation in a token
//  2. license-number shape match against each registered rule
//     (registration order is significant, first match wins)
//  3. jurisdiction name adjacent to an address keyword token
//  4. name-order layout heuristic ("LAST, FIRST MIDDLE" implies a
//     last-first jurisdiction)
//
// Detection can fail without being an error: downstream stages operate
// on the generic rule row when no jurisdiction is known.

var (
	candidateNumberRe = regexp.MustCompile(`\b([A-Z]?\d[A-Z0-9-]{4,13})\b`)
	lastFirstLayoutRe = regexp.MustCompile(`^[A-Z'-]{2,},\s*[A-Z'-]{2,}(\s+[A-Z'-]{1,})?$`)

	addressKeywords = []string{"ADDRESS", "ADDR", "RESIDENCE", "CITY", "STATE"}
)

// Detect infers the issuing jurisdiction from normalized token
// content. The second return value is false when every strategy fails.
func Detect(tokens []ocr.Token) (Code, bool) {
	if len(tokens) == 0 {
		return Generic, false
	}

	if code, ok := detectByName(tokens); ok {
		return code, ok
	}
	if code, ok := detectByLicenseShape(tokens); ok {
		return code, ok
	}
	if code, ok := detectByAddressContext(tokens); ok {
		return code, ok
	}
	if code, ok := detectByNameLayout(tokens); ok {
		return code, ok
	}

	return Generic, false
}

// namesByLength holds the jurisdiction names longest first, so that
// "WASHINGTON DC" wins over its "WASHINGTON" prefix.
var namesByLength = func() []string {
	names := make([]string, 0, len(jurisdictionNames))
	for name := range jurisdictionNames {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}()

// detectByName looks for an explicit jurisdiction name substring.
func detectByName(tokens []ocr.Token) (Code, bool) {
	for _, t := range tokens {
		for _, name := range namesByLength {
			if strings.Contains(t.Text, name) {
				return jurisdictionNames[name], true
			}
		}
	}
	return Generic, false
}

// detectByLicenseShape matches number-shaped substrings against each
// registered jurisdiction's license pattern. The first registered rule
// satisfied wins; ambiguous shapes therefore resolve to the
// earliest-registered jurisdiction.
func detectByLicenseShape(tokens []ocr.Token) (Code, bool) {
	for _, t := range tokens {
		for _, candidate := range candidateNumberRe.FindAllString(t.Text, -1) {
			for _, code := range ruleOrder {
				if rules[code].MatchesLicenseNumber(candidate) {
					return code, true
				}
			}
		}
	}
	return Generic, false
}

// detectByAddressContext looks for a 2-letter jurisdiction code on a
// token that also carries an address keyword, or on a token adjacent
// to one.
func detectByAddressContext(tokens []ocr.Token) (Code, bool) {
	for i, t := range tokens {
		if !containsAny(t.Text, addressKeywords) {
			continue
		}
		if code, ok := stateAbbreviation(t.Text); ok {
			return code, true
		}
		// Check the following token as well: labels and values are
		// frequently split by the OCR engine.
		if i+1 < len(tokens) {
			if code, ok := stateAbbreviation(tokens[i+1].Text); ok {
				return code, true
			}
		}
	}
	return Generic, false
}

// detectByNameLayout treats a "LAST, FIRST MIDDLE" token as evidence
// of a last-first-ordered jurisdiction. The layout alone cannot single
// out one state, so the earliest registered last-first rule is chosen.
func detectByNameLayout(tokens []ocr.Token) (Code, bool) {
	for _, t := range tokens {
		if !lastFirstLayoutRe.MatchString(t.Text) {
			continue
		}
		for _, code := range ruleOrder {
			if rules[code].NameOrder == OrderLastFirst {
				return code, true
			}
		}
	}
	return Generic, false
}

var stateAbbrRe = regexp.MustCompile(`\b([A-Z]{2})\b`)

func stateAbbreviation(text string) (Code, bool) {
	for _, m := range stateAbbrRe.FindAllString(text, -1) {
		code := Code(m)
		if _, ok := rules[code]; ok {
			return code, true
		}
		for _, known := range jurisdictionNames {
			if known == code {
				return code, true
			}
		}
	}
	return Generic, false
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
