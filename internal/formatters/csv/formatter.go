// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"license-scan/internal/formatters"
	"license-scan/internal/license"
)

// Formatter implements CSV output formatting: one row per populated
// field, with confidence, method, and correction-count columns.
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "CSV output, one row per extracted field"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(record *license.Record, options formatters.FormatterOptions) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"field", "value", "confidence", "method", "corrections"}); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, nf := range record.PresentFields() {
		row := []string{
			nf.Name,
			nf.Field.Value,
			strconv.FormatFloat(nf.Field.Confidence, 'f', 2, 64),
			nf.Field.Method,
			strconv.Itoa(nf.Field.Corrections),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	if options.Verbose {
		for _, d := range record.Diagnostics {
			row := []string{
				d.Field + " (rejected)",
				d.Value,
				strconv.FormatFloat(d.Confidence, 'f', 2, 64),
				d.Reason,
				"",
			}
			if err := w.Write(row); err != nil {
				return "", fmt.Errorf("error writing CSV row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV output: %w", err)
	}
	return sb.String(), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
