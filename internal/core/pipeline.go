// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core sequences the extraction pipeline for both entry
// points: normalization, jurisdiction detection, extraction,
// correction, scoring, validation, and record assembly.
package core

import (
	"license-scan/internal/aamva"
	"license-scan/internal/confidence"
	"license-scan/internal/config"
	"license-scan/internal/corrector"
	"license-scan/internal/extractor"
	"license-scan/internal/fieldcheck"
	"license-scan/internal/jurisdiction"
	"license-scan/internal/license"
	"license-scan/internal/observability"
	"license-scan/internal/ocr"
)

// Pipeline runs parses against a fixed configuration. A Pipeline is
// stateless with respect to its inputs and safe for concurrent use:
// the rule and substitution tables it consults are process-wide and
// read-only.
type Pipeline struct {
	weights    confidence.Weights
	thresholds map[string]float64
	observer   *observability.StandardObserver
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithObserver attaches an observability component.
func WithObserver(observer *observability.StandardObserver) Option {
	return func(p *Pipeline) {
		p.observer = observer
	}
}

// WithConfig applies scoring-weight and threshold overrides from the
// application configuration.
func WithConfig(cfg *config.Config) Option {
	return func(p *Pipeline) {
		if cfg == nil {
			return
		}
		if cfg.Scoring.OCR > 0 {
			p.weights.OCR = cfg.Scoring.OCR
		}
		if cfg.Scoring.Pattern > 0 {
			p.weights.Pattern = cfg.Scoring.Pattern
		}
		if cfg.Scoring.Format > 0 {
			p.weights.Format = cfg.Scoring.Format
		}
		if cfg.Scoring.Jurisdiction > 0 {
			p.weights.Jurisdiction = cfg.Scoring.Jurisdiction
		}
		if cfg.Scoring.Context > 0 {
			p.weights.Context = cfg.Scoring.Context
		}
		if len(cfg.Thresholds) > 0 {
			p.thresholds = cfg.Thresholds
		}
	}
}

// New creates a Pipeline with default weights and thresholds.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		weights: confidence.DefaultWeights(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseBarcode decodes an AAMVA barcode payload.
func (p *Pipeline) ParseBarcode(payload string) (*license.Record, error) {
	var finish func(bool, map[string]interface{})
	if p.observer != nil {
		finish = p.observer.StartTiming("pipeline", "parse_barcode")
	}

	record, err := aamva.Parse(payload)
	if finish != nil {
		meta := map[string]interface{}{}
		if record != nil {
			meta["field_count"] = record.FieldCount()
		}
		finish(err == nil, meta)
	}
	return record, err
}

// ParseOCR runs the full OCR pipeline over raw tokens and assembles
// the accepted fields into a record. Zero fields meeting their
// acceptance threshold is the only total failure on this path.
func (p *Pipeline) ParseOCR(rawTokens []ocr.Token) (*license.Record, error) {
	var finish func(bool, map[string]interface{})
	if p.observer != nil {
		finish = p.observer.StartTiming("pipeline", "parse_ocr")
	}

	tokens := ocr.Normalize(rawTokens)

	code, detected := jurisdiction.Detect(tokens)
	rule := jurisdiction.GenericRule()
	if detected {
		rule = jurisdiction.Lookup(code)
	}

	fields := extractor.Extract(tokens, rule)
	fields = corrector.Correct(fields, code)
	fields = confidence.Score(fields, tokens, rule, p.weights)
	results := fieldcheck.Validate(fields, p.thresholds)

	record := assemble(results, code, detected)
	if record.FieldCount() == 0 {
		err := license.NewParseError(license.ErrNoFieldsExtracted,
			"no fields met their acceptance threshold")
		if finish != nil {
			finish(false, map[string]interface{}{"token_count": len(tokens)})
		}
		return nil, err
	}

	record.ComputeOverallConfidence()
	if finish != nil {
		finish(true, map[string]interface{}{
			"token_count": len(tokens),
			"field_count": record.FieldCount(),
		})
	}
	return record, nil
}

// assemble maps validated fields into the record. Invalid fields are
// reported only through diagnostics; it is this layer's job to keep
// them out of the externally-visible record.
func assemble(results map[extractor.Field]fieldcheck.Result, code jurisdiction.Code, detected bool) *license.Record {
	record := &license.Record{
		Jurisdiction: jurisdiction.Generic,
		Source:       "ocr",
	}
	if detected {
		record.Jurisdiction = code
	}

	for _, result := range results {
		if !result.Valid {
			record.Diagnostics = append(record.Diagnostics, license.Diagnostic{
				Field:      result.Field.String(),
				Value:      result.Value,
				Confidence: result.Confidence,
				Reason:     result.Reason,
			})
			continue
		}

		field := &license.Field{
			Value:       result.Value,
			Confidence:  result.Confidence,
			Method:      result.Method.String(),
			Corrections: result.Corrections,
		}

		switch result.Field {
		case extractor.FieldFirstName:
			record.FirstName = field
		case extractor.FieldMiddleName:
			record.MiddleName = field
		case extractor.FieldLastName:
			record.LastName = field
		case extractor.FieldSuffix:
			record.Suffix = field
		case extractor.FieldLicenseNumber:
			record.LicenseNumber = field
		case extractor.FieldDateOfBirth:
			record.DateOfBirth = field
		case extractor.FieldIssueDate:
			record.IssueDate = field
		case extractor.FieldExpirationDate:
			record.ExpirationDate = field
		case extractor.FieldSex:
			record.Sex = field
		case extractor.FieldEyeColor:
			record.EyeColor = field
		case extractor.FieldHairColor:
			record.HairColor = field
		case extractor.FieldHeight:
			record.Height = field
		case extractor.FieldWeight:
			record.Weight = field
		case extractor.FieldAddressStreet:
			record.Address.Street = field
		case extractor.FieldAddressCity:
			record.Address.City = field
		case extractor.FieldAddressState:
			record.Address.State = field
		case extractor.FieldAddressPostal:
			record.Address.PostalCode = field
		case extractor.FieldLicenseClass:
			record.LicenseClass = field
		case extractor.FieldRestrictions:
			record.Restrictions = field
		case extractor.FieldEndorsements:
			record.Endorsements = field
		}
	}

	return record
}
