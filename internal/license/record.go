// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package license defines the assembled record produced by both parse
// paths and the shared error taxonomy.
package license

import "license-scan/internal/jurisdiction"

// Field is one accepted document field with its diagnostic metadata
// co-located: confidence, extraction method, and the number of
// character corrections applied.
type Field struct {
	Value       string  `json:"value" yaml:"value"`
	Confidence  float64 `json:"confidence" yaml:"confidence"`
	Method      string  `json:"method" yaml:"method"`
	Corrections int     `json:"corrections,omitempty" yaml:"corrections,omitempty"`
}

// Address groups the address component fields.
type Address struct {
	Street     *Field `json:"street,omitempty" yaml:"street,omitempty"`
	City       *Field `json:"city,omitempty" yaml:"city,omitempty"`
	State      *Field `json:"state,omitempty" yaml:"state,omitempty"`
	PostalCode *Field `json:"postal_code,omitempty" yaml:"postal_code,omitempty"`
	Country    *Field `json:"country,omitempty" yaml:"country,omitempty"`
}

// Diagnostic reports a field that was extracted but rejected by the
// validator. Rejected fields never appear in the record proper.
type Diagnostic struct {
	Field      string  `json:"field" yaml:"field"`
	Value      string  `json:"value" yaml:"value"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
	Reason     string  `json:"reason" yaml:"reason"`
}

// Record is the final assembled structure for one parsed document.
// Every field is optional; absent fields are nil. All entities are
// created fresh per parse call and never shared.
type Record struct {
	FirstName  *Field `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	MiddleName *Field `json:"middle_name,omitempty" yaml:"middle_name,omitempty"`
	LastName   *Field `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	Suffix     *Field `json:"suffix,omitempty" yaml:"suffix,omitempty"`

	LicenseNumber *Field `json:"license_number,omitempty" yaml:"license_number,omitempty"`

	DateOfBirth    *Field `json:"date_of_birth,omitempty" yaml:"date_of_birth,omitempty"`
	IssueDate      *Field `json:"issue_date,omitempty" yaml:"issue_date,omitempty"`
	ExpirationDate *Field `json:"expiration_date,omitempty" yaml:"expiration_date,omitempty"`

	Sex       *Field `json:"sex,omitempty" yaml:"sex,omitempty"`
	EyeColor  *Field `json:"eye_color,omitempty" yaml:"eye_color,omitempty"`
	HairColor *Field `json:"hair_color,omitempty" yaml:"hair_color,omitempty"`
	Height    *Field `json:"height,omitempty" yaml:"height,omitempty"`
	Weight    *Field `json:"weight,omitempty" yaml:"weight,omitempty"`

	Address Address `json:"address" yaml:"address"`

	LicenseClass *Field `json:"license_class,omitempty" yaml:"license_class,omitempty"`
	Restrictions *Field `json:"restrictions,omitempty" yaml:"restrictions,omitempty"`
	Endorsements *Field `json:"endorsements,omitempty" yaml:"endorsements,omitempty"`

	DocumentDiscriminator *Field `json:"document_discriminator,omitempty" yaml:"document_discriminator,omitempty"`
	AuditInformation      *Field `json:"audit_information,omitempty" yaml:"audit_information,omitempty"`

	RealID     *bool `json:"real_id,omitempty" yaml:"real_id,omitempty"`
	Veteran    *bool `json:"veteran,omitempty" yaml:"veteran,omitempty"`
	OrganDonor *bool `json:"organ_donor,omitempty" yaml:"organ_donor,omitempty"`

	Jurisdiction      jurisdiction.Code `json:"issuing_jurisdiction" yaml:"issuing_jurisdiction"`
	OverallConfidence float64           `json:"overall_confidence" yaml:"overall_confidence"`
	Source            string            `json:"source" yaml:"source"`

	Diagnostics []Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// PresentFields returns every populated field keyed by its canonical
// name, in a stable order.
func (r *Record) PresentFields() []NamedField {
	var out []NamedField
	add := func(name string, f *Field) {
		if f != nil {
			out = append(out, NamedField{Name: name, Field: *f})
		}
	}

	add("firstName", r.FirstName)
	add("middleName", r.MiddleName)
	add("lastName", r.LastName)
	add("suffix", r.Suffix)
	add("licenseNumber", r.LicenseNumber)
	add("dateOfBirth", r.DateOfBirth)
	add("issueDate", r.IssueDate)
	add("expirationDate", r.ExpirationDate)
	add("sex", r.Sex)
	add("eyeColor", r.EyeColor)
	add("hairColor", r.HairColor)
	add("height", r.Height)
	add("weight", r.Weight)
	add("addressStreet", r.Address.Street)
	add("addressCity", r.Address.City)
	add("addressState", r.Address.State)
	add("addressPostal", r.Address.PostalCode)
	add("addressCountry", r.Address.Country)
	add("licenseClass", r.LicenseClass)
	add("restrictions", r.Restrictions)
	add("endorsements", r.Endorsements)
	add("documentDiscriminator", r.DocumentDiscriminator)
	add("auditInformation", r.AuditInformation)
	return out
}

// NamedField pairs a field with its canonical name for formatting.
type NamedField struct {
	Name  string
	Field Field
}

// FieldCount returns the number of populated fields.
func (r *Record) FieldCount() int {
	return len(r.PresentFields())
}

// ComputeOverallConfidence sets OverallConfidence to the mean of the
// populated fields' confidences (zero when no field is present).
func (r *Record) ComputeOverallConfidence() {
	fields := r.PresentFields()
	if len(fields) == 0 {
		r.OverallConfidence = 0
		return
	}
	var sum float64
	for _, nf := range fields {
		sum += nf.Field.Confidence
	}
	r.OverallConfidence = sum / float64(len(fields))
}
