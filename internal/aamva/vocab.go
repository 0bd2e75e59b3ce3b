// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package aamva

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Closed-vocabulary normalizers for enumerated and unit-bearing
// elements. Unrecognized tokens pass through unchanged rather than
// erroring, to avoid discarding partially-useful data.

// normalizeSex maps the AAMVA sex codes and printed variants to
// M/F/X.
func normalizeSex(value string) string {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "1", "M", "MALE":
		return "M"
	case "2", "F", "FEMALE":
		return "F"
	case "9", "X", "NOT SPECIFIED":
		return "X"
	default:
		return value
	}
}

// normalizeFlag interprets a boolean element (organ donor, veteran,
// REAL ID compliance). The second return value is false for
// unrecognized tokens, which leave the record flag unset.
func normalizeFlag(value string) (bool, bool) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "1", "Y", "T", "TRUE", "F": // DDA compliance "F" means fully compliant
		return true, true
	case "0", "N", "FALSE", "U", "N/A":
		return false, true
	default:
		return false, false
	}
}

// normalizeHeight converts the AAMVA height element ("069 in",
// "175 cm") to a display form: feet-and-inches for imperial values,
// "<n> CM" for metric. Unrecognized formats pass through.
func normalizeHeight(value string) string {
	v := strings.ToUpper(strings.TrimSpace(value))

	if n, ok := parseUnitNumber(v, "CM"); ok {
		return fmt.Sprintf("%d CM", n)
	}
	if n, ok := parseUnitNumber(v, "IN"); ok {
		return fmt.Sprintf("%d'%02d\"", n/12, n%12)
	}
	// Bare three-digit values are inches per the pre-2000 layouts.
	if n, err := strconv.Atoi(v); err == nil && n >= 36 && n <= 95 {
		return fmt.Sprintf("%d'%02d\"", n/12, n%12)
	}
	return value
}

// normalizeWeight strips the unit suffix from a weight element,
// keeping pounds as the implied unit. Unrecognized formats pass
// through.
func normalizeWeight(value string) string {
	v := strings.ToUpper(strings.TrimSpace(value))
	for _, unit := range []string{"LBS", "LB", "KG"} {
		v = strings.TrimSpace(strings.TrimSuffix(v, unit))
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return strconv.Itoa(n)
	}
	return value
}

func parseUnitNumber(v, unit string) (int, bool) {
	if !strings.HasSuffix(v, unit) {
		return 0, false
	}
	num := strings.TrimSpace(strings.TrimSuffix(v, unit))
	n, err := strconv.Atoi(num)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// normalizeDate converts the AAMVA date layouts (MMDDCCYY for US
// documents, CCYYMMDD for Canadian and version-1 documents) to ISO
// 8601. Unparseable dates pass through unchanged.
func normalizeDate(value string) string {
	v := strings.TrimSpace(value)
	if len(v) != 8 {
		return value
	}
	for _, layout := range []string{"01022006", "20060102"} {
		if t, err := time.Parse(layout, v); err == nil {
			year := t.Year()
			if year >= 1900 && year <= time.Now().Year()+30 {
				return t.Format("2006-01-02")
			}
		}
	}
	return value
}
