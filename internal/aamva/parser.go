// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package aamva parses the machine-readable barcode payload carried on
// North American driver's licenses and ID cards: header grammar,
// subfile layout, and data-element tokenization, with version-gated
// field mapping.
package aamva

import (
	"strings"

	"license-scan/internal/license"
)

// barcodeConfidence is assigned to every field read from the machine-
// readable zone. Barcode data is decoded, not recognized, so the only
// residual uncertainty is physical damage to the symbol.
const barcodeConfidence = 0.98

const methodBarcode = "barcode"

// Parse decodes a raw AAMVA payload into a license record. The three
// header-level failures (InvalidFormat, InvalidHeader,
// MissingSubfile) are fatal for the whole parse; callers fall back to
// the OCR pipeline on any of them. Within a recognized DL subfile,
// malformed individual elements are skipped, never fatal.
func Parse(raw string) (*license.Record, error) {
	header, err := parseHeader(raw)
	if err != nil {
		return nil, err
	}

	subfiles := parseSubfiles(raw, header.SubfileOffset)
	dl, ok := findSubfile(subfiles, "DL")
	if !ok {
		// Some issuers emit ID instead of DL for identification cards;
		// the element grammar is identical.
		dl, ok = findSubfile(subfiles, "ID")
	}
	if !ok {
		return nil, license.NewParseError(license.ErrMissingSubfile,
			"payload has no DL subfile")
	}

	elements := parseElements(dl.Body)
	record := mapElements(elements, header)
	record.ComputeOverallConfidence()
	return record, nil
}

// mapElements converts the tag map into the assembled record,
// applying the closed-vocabulary normalizers and version gating.
func mapElements(elements map[string]string, header *Header) *license.Record {
	record := &license.Record{
		Jurisdiction: header.Jurisdiction,
		Source:       "barcode",
	}

	field := func(tag string) *license.Field {
		value, ok := elements[tag]
		if !ok || value == "" {
			return nil
		}
		return &license.Field{
			Value:      value,
			Confidence: barcodeConfidence,
			Method:     methodBarcode,
		}
	}
	dateField := func(tag string) *license.Field {
		f := field(tag)
		if f == nil {
			return nil
		}
		f.Value = normalizeDate(f.Value)
		return f
	}

	record.LicenseNumber = field(tagLicenseNumber)
	record.LastName = field(tagLastName)
	record.FirstName = field(tagFirstName)
	record.MiddleName = field(tagMiddleName)
	record.Suffix = field(tagSuffix)

	record.DateOfBirth = dateField(tagDateOfBirth)
	record.ExpirationDate = dateField(tagExpirationDate)
	record.IssueDate = dateField(tagIssueDate)

	if f := field(tagSex); f != nil {
		f.Value = normalizeSex(f.Value)
		record.Sex = f
	}
	record.EyeColor = field(tagEyeColor)
	record.HairColor = field(tagHairColor)
	if f := field(tagHeight); f != nil {
		f.Value = normalizeHeight(f.Value)
		record.Height = f
	}
	if f := field(tagWeight); f != nil {
		f.Value = normalizeWeight(f.Value)
		record.Weight = f
	}

	record.Address.Street = field(tagStreet)
	if second := field(tagStreet2); second != nil {
		if record.Address.Street == nil {
			record.Address.Street = second
		} else {
			record.Address.Street.Value += " " + second.Value
		}
	}
	record.Address.City = field(tagCity)
	record.Address.State = field(tagState)
	record.Address.PostalCode = field(tagPostalCode)
	record.Address.Country = field(tagCountry)

	record.LicenseClass = field(tagClass)
	record.Restrictions = field(tagRestrictions)
	record.Endorsements = field(tagEndorsements)
	record.DocumentDiscriminator = field(tagDiscriminator)

	// Version-gated elements: populated only when the parsed format
	// version is at least the element's introducing revision.
	gated := func(tag string) *license.Field {
		if header.Version < elementMinVersion[tag] {
			return nil
		}
		return field(tag)
	}
	record.AuditInformation = gated(tagAuditInfo)

	flag := func(tag string) *bool {
		f := gated(tag)
		if f == nil {
			return nil
		}
		v, ok := normalizeFlag(f.Value)
		if !ok {
			return nil
		}
		return &v
	}
	record.OrganDonor = flag(tagOrganDonor)
	record.Veteran = flag(tagVeteran)
	record.RealID = flag(tagCompliance)

	// Postal codes are zero-padded to nine digits in the barcode;
	// trim the filler for display.
	if record.Address.PostalCode != nil {
		record.Address.PostalCode.Value = trimPostalFiller(record.Address.PostalCode.Value)
	}

	return record
}

// trimPostalFiller drops the trailing "0000" filler AAMVA appends to
// five-digit ZIP codes.
func trimPostalFiller(value string) string {
	v := strings.TrimSpace(value)
	if len(v) == 9 && strings.HasSuffix(v, "0000") {
		return v[:5]
	}
	return v
}
