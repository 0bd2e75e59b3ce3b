// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package aamva

import (
	"regexp"
	"strings"
)

// Data-element tags carried by the DL subfile. A tag is three
// characters: "D" followed by two alphanumerics.
const (
	tagLicenseNumber  = "DAQ"
	tagLastName       = "DCS"
	tagFirstName      = "DAC"
	tagMiddleName     = "DAD"
	tagSuffix         = "DCU"
	tagDateOfBirth    = "DBB"
	tagExpirationDate = "DBA"
	tagIssueDate      = "DBD"
	tagSex            = "DBC"
	tagEyeColor       = "DAY"
	tagHairColor      = "DAZ"
	tagHeight         = "DAU"
	tagWeight         = "DAW"
	tagStreet         = "DAG"
	tagStreet2        = "DAH"
	tagCity           = "DAI"
	tagState          = "DAJ"
	tagPostalCode     = "DAK"
	tagCountry        = "DCG"
	tagClass          = "DCA"
	tagRestrictions   = "DCB"
	tagEndorsements   = "DCD"
	tagDiscriminator  = "DCF"

	// Version-gated elements
	tagAuditInfo  = "DCJ"
	tagOrganDonor = "DDK"
	tagVeteran    = "DDL"
	tagCompliance = "DDA" // REAL ID compliance type
)

// elementMinVersion gates fields introduced by later AAMVA revisions:
// the element is populated only when the parsed format version is at
// least the introducing version.
var elementMinVersion = map[string]int{
	tagAuditInfo:  2,
	tagOrganDonor: 5,
	tagVeteran:    8,
	tagCompliance: 8,
}

var tagRe = regexp.MustCompile(`^D[A-Z0-9]{2}`)

// parseElements tokenizes a subfile body into its tag -> value map.
// Lines whose first three characters do not form a tag are skipped,
// not fatal: barcode damage routinely clips individual elements. If
// the barcode repeats a tag the last occurrence wins; a duplicate tag
// is a malformed-input condition the element map cannot represent
// twice.
func parseElements(body string) map[string]string {
	elements := make(map[string]string)

	for _, line := range splitElementLines(body) {
		if len(line) < 3 || !tagRe.MatchString(line) {
			continue
		}
		tag := line[:3]
		value := strings.TrimSpace(line[3:])
		elements[tag] = value
	}
	return elements
}

// splitElementLines splits a subfile body on the element separator
// (LF) and segment terminator (CR).
func splitElementLines(body string) []string {
	return strings.FieldsFunc(body, func(r rune) bool {
		return r == '\n' || r == '\r' || r == '\x1e'
	})
}
