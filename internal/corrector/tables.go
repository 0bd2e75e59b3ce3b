// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package corrector

// Character substitution tables for OCR-ambiguous glyphs. The maps are
// bidirectional pairs: digitToLetter is applied to fields that should
// be alphabetic, letterToDigit to fields that should be numeric.
// Process-wide, read-only, initialized once.

var digitToLetter = map[byte]byte{
	'0': 'O',
	'1': 'I',
	'2': 'Z',
	'3': 'E',
	'4': 'A',
	'5': 'S',
	'6': 'G',
	'8': 'B',
}

var letterToDigit = map[byte]byte{
	'O': '0',
	'Q': '0',
	'D': '0',
	'I': '1',
	'L': '1',
	'Z': '2',
	'E': '3',
	'A': '4',
	'S': '5',
	'G': '6',
	'B': '8',
}

// enumConfusions maps frequently misread enumerated values (sex codes,
// eye/hair color codes, license classes) to their canonical form.
// Exact lookup only; unrecognized values pass through unchanged.
var enumConfusions = map[string]string{
	// Sex codes
	"N":      "M",
	"W":      "M",
	"1":      "M",
	"2":      "F",
	"P":      "F",
	"NALE":   "MALE",
	"FENALE": "FEMALE",

	// Eye colors
	"8RO": "BRO",
	"8RN": "BRN",
	"8LU": "BLU",
	"8LK": "BLK",
	"6RN": "GRN",
	"6RY": "GRY",
	"HA2": "HAZ",
	"HAE": "HAZ",

	// Hair colors
	"8AL": "BAL",
	"8LN": "BLN",
	"RF0": "RED",
	"6R":  "GR",
	"WH1": "WHI",

	// License classes
	"C0L": "CDL",
	"CD1": "CDL",
	"0":   "D",
	"8":   "B",
}

// streetSuffixRepairs maps misread street-type abbreviations to their
// canonical spelling.
var streetSuffixRepairs = map[string]string{
	"5T":     "ST",
	"S7":     "ST",
	"STREFT": "STREET",
	"AVF":    "AVE",
	"4VE":    "AVE",
	"8LVD":   "BLVD",
	"DRIVF":  "DRIVE",
	"R0":     "RD",
	"R0AD":   "ROAD",
	"1N":     "LN",
	"LANF":   "LANE",
	"C7":     "CT",
	"P1":     "PL",
	"HWV":    "HWY",
}
