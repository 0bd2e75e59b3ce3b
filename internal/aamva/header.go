// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package aamva

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"license-scan/internal/jurisdiction"
	"license-scan/internal/license"
)

// Header holds the fields recognized by the fixed-grammar scan over
// the first bytes of the payload: compliance marker, issuer
// identification number, format version, and subfile entry count.
type Header struct {
	IssuerID      string
	Version       int
	EntryCount    int
	Jurisdiction  jurisdiction.Code
	KnownIssuer   bool
	SubfileOffset int // index into the payload where subfile scanning starts
}

// Subfile is one self-describing segment of the payload. Every
// payload carries exactly one mandatory DL subfile; additional
// subfiles (ZC and other jurisdiction-specific segments) are optional.
type Subfile struct {
	Kind   string
	Length int
	Body   string
}

// headerRe recognizes the grammar
//
//	ANSI <6-digit issuer><2-digit version><2-digit entry count>
//
// tolerating stray spaces between header fields: physical barcode
// readers routinely inject them.
var headerRe = regexp.MustCompile(`ANSI\s?(\d{6})\s?(\d{2})\s?(\d{2})\s?`)

// subfileRe recognizes a subfile designator: a 2-letter kind code
// followed by a 4-digit length.
var subfileRe = regexp.MustCompile(`([A-Z]{2})(\d{4})`)

// maxKnownVersion is the highest AAMVA DL/ID card design standard
// revision this parser understands (version 10, the 2020 standard).
// Element semantics of later revisions are unknown, so payloads
// declaring one are rejected rather than misread.
const maxKnownVersion = 10

// parseHeader validates the payload preconditions and extracts the
// header fields.
func parseHeader(raw string) (*Header, error) {
	if !strings.HasPrefix(raw, "@") || !strings.Contains(raw, "ANSI") {
		return nil, license.NewParseError(license.ErrInvalidFormat,
			"payload is not an AAMVA barcode")
	}

	loc := headerRe.FindStringSubmatchIndex(raw)
	if loc == nil {
		return nil, license.NewParseError(license.ErrInvalidHeader,
			"compliance header did not match the AAMVA grammar")
	}
	m := headerRe.FindStringSubmatch(raw)

	version, _ := strconv.Atoi(m[2])
	if version < 1 || version > maxKnownVersion {
		return nil, license.NewParseError(license.ErrUnsupportedVersion,
			fmt.Sprintf("format version %02d is outside the known revisions 01-%02d", version, maxKnownVersion))
	}

	entryCount, _ := strconv.Atoi(m[3])

	code, known := resolveIssuer(m[1])
	return &Header{
		IssuerID:      m[1],
		Version:       version,
		EntryCount:    entryCount,
		Jurisdiction:  code,
		KnownIssuer:   known,
		SubfileOffset: loc[1],
	}, nil
}

// parseSubfiles slices the payload into subfiles starting at the
// header's subfile offset. The declared length of each subfile is
// clamped to the available data, never read out of bounds. Trailing
// bytes are rescanned for further designators until the input is
// exhausted; absence of additional subfiles is not an error.
func parseSubfiles(raw string, offset int) []Subfile {
	var subfiles []Subfile

	rest := raw[offset:]
	for {
		loc := subfileRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}

		kind := rest[loc[2]:loc[3]]
		declared, _ := strconv.Atoi(rest[loc[4]:loc[5]])

		body := rest[loc[1]:]
		length := declared
		if length > len(body) {
			length = len(body)
		}

		subfiles = append(subfiles, Subfile{
			Kind:   kind,
			Length: declared,
			Body:   body[:length],
		})

		rest = body[length:]
	}
	return subfiles
}

// findSubfile returns the first subfile of the given kind.
func findSubfile(subfiles []Subfile, kind string) (Subfile, bool) {
	for _, sf := range subfiles {
		if sf.Kind == kind {
			return sf, true
		}
	}
	return Subfile{}, false
}
