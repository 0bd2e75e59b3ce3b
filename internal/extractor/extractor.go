// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extractor pulls logical document fields out of normalized
// OCR tokens using ordered pattern rules plus positional heuristics.
package extractor

import (
	"sort"
	"strings"

	"license-scan/internal/jurisdiction"
	"license-scan/internal/ocr"
)

// Extract applies every field's ordered pattern list over the token
// list and returns the fields that produced a value. Pattern matches
// win over heuristics; name fields fall back to positional selection
// when no pattern matches; address street lines are aggregated from
// all street-suffix tokens.
func Extract(tokens []ocr.Token, rule jurisdiction.Rule) map[Field]FieldValue {
	fields := make(map[Field]FieldValue)

	for _, field := range AllFields() {
		if field == FieldAddressStreet {
			if fv, ok := extractAddress(tokens, rule); ok {
				fields[field] = fv
			}
			continue
		}
		if fv, ok := extractByPattern(field, tokens, rule); ok {
			fields[field] = fv
		}
	}

	// Positional fallback applies to name fields only: tokens in the
	// upper region of the frame, filtered to name-shaped text, ranked
	// by confidence then vertical position.
	fillMissingNames(fields, tokens, rule)

	return fields
}

// extractByPattern runs the field's ordered pattern list against each
// token; the first token/pattern combination that matches wins.
func extractByPattern(field Field, tokens []ocr.Token, rule jurisdiction.Rule) (FieldValue, bool) {
	patterns := fieldPatterns[field]
	for _, t := range tokens {
		for _, re := range patterns {
			m := re.FindStringSubmatch(t.Text)
			if m == nil {
				continue
			}
			value := strings.TrimSpace(m[len(m)-1])
			if value == "" {
				continue
			}

			if isDateField(field) {
				iso, ok := normalizeDate(value, rule.DateFormat)
				if !ok {
					// A match that fails date validation is a
					// non-match, not a malformed value.
					continue
				}
				value = iso
			}

			return FieldValue{
				Value:      value,
				Confidence: t.Confidence,
				Method:     MethodPatternMatch,
				BBox:       t.BBox,
			}, true
		}
	}
	return FieldValue{}, false
}

// extractAddress aggregates tokens matching the street-suffix pattern
// into one combined value with the union of their bounding boxes and
// the mean of their confidences. The jurisdiction's address-line count
// caps the aggregation: extra street-suffix hits beyond the layout's
// line budget are almost always false matches elsewhere on the card.
func extractAddress(tokens []ocr.Token, rule jurisdiction.Rule) (FieldValue, bool) {
	maxLines := rule.AddressLineCount
	if maxLines <= 0 {
		maxLines = 2
	}

	var (
		parts []string
		sum   float64
		bbox  ocr.Rect
		found bool
	)

	for _, t := range tokens {
		if len(parts) == maxLines {
			break
		}
		if !streetSuffixRe.MatchString(t.Text) {
			continue
		}
		parts = append(parts, strings.TrimSpace(t.Text))
		sum += t.Confidence
		if !found {
			bbox = t.BBox
			found = true
		} else {
			bbox = bbox.Union(t.BBox)
		}
	}

	if !found {
		return FieldValue{}, false
	}

	return FieldValue{
		Value:      strings.Join(parts, " "),
		Confidence: sum / float64(len(parts)),
		Method:     MethodPatternMatch,
		BBox:       bbox,
	}, true
}

// fillMissingNames applies the positional heuristic for name fields
// that produced no pattern match.
func fillMissingNames(fields map[Field]FieldValue, tokens []ocr.Token, rule jurisdiction.Rule) {
	_, haveFirst := fields[FieldFirstName]
	_, haveLast := fields[FieldLastName]
	if haveFirst && haveLast {
		return
	}

	candidates := nameCandidates(tokens)
	if len(candidates) == 0 {
		return
	}

	best := candidates[0]
	words := strings.Fields(strings.ReplaceAll(best.Text, ",", " "))
	if len(words) == 0 {
		return
	}

	lastFirst := strings.Contains(best.Text, ",") || rule.NameOrder == jurisdiction.OrderLastFirst
	first, middle, last := splitName(words, lastFirst)

	assignName := func(field Field, value string) {
		if value == "" {
			return
		}
		if _, exists := fields[field]; exists {
			return
		}
		fields[field] = FieldValue{
			Value:      value,
			Confidence: best.Confidence,
			Method:     MethodPositional,
			BBox:       best.BBox,
		}
	}
	assignName(FieldFirstName, first)
	assignName(FieldMiddleName, middle)
	assignName(FieldLastName, last)
}

// nameCandidates returns name-shaped tokens from the upper region of
// the frame, ranked by confidence then vertical position.
func nameCandidates(tokens []ocr.Token) []ocr.Token {
	var candidates []ocr.Token
	for _, t := range tokens {
		if t.BBox.CenterY() > 0.5 {
			continue
		}
		if !nameShapedRe.MatchString(t.Text) {
			continue
		}
		if hasStopWord(t.Text) {
			continue
		}
		candidates = append(candidates, t)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Confidence != candidates[j].Confidence {
			return candidates[i].Confidence > candidates[j].Confidence
		}
		return candidates[i].BBox.Y < candidates[j].BBox.Y
	})
	return candidates
}

// splitName splits word lists into (first, middle, last) according to
// the detected ordering.
func splitName(words []string, lastFirst bool) (first, middle, last string) {
	switch len(words) {
	case 1:
		return "", "", words[0]
	case 2:
		if lastFirst {
			return words[1], "", words[0]
		}
		return words[0], "", words[1]
	default:
		if lastFirst {
			return words[1], strings.Join(words[2:], " "), words[0]
		}
		return words[0], strings.Join(words[1:len(words)-1], " "), words[len(words)-1]
	}
}

func hasStopWord(text string) bool {
	for _, w := range strings.Fields(strings.ReplaceAll(text, ",", " ")) {
		if nameStopWords[w] {
			return true
		}
	}
	return false
}

func isDateField(field Field) bool {
	switch field {
	case FieldDateOfBirth, FieldIssueDate, FieldExpirationDate:
		return true
	default:
		return false
	}
}
