// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"license-scan/internal/formatters"
	"license-scan/internal/license"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(record *license.Record, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder

	f.colors["white"].Fprintf(&builder, "Driver License Extraction\n")
	builder.WriteString(strings.Repeat("=", 40) + "\n")
	fmt.Fprintf(&builder, "Source:       %s\n", record.Source)
	fmt.Fprintf(&builder, "Jurisdiction: %s\n", record.Jurisdiction)
	overall := f.confidenceColor(record.OverallConfidence)
	fmt.Fprintf(&builder, "Confidence:   %s\n\n", overall.Sprintf("%.2f", record.OverallConfidence))

	present := record.PresentFields()
	if len(present) == 0 {
		builder.WriteString("No fields extracted.\n")
	}
	for _, nf := range present {
		c := f.confidenceColor(nf.Field.Confidence)
		fmt.Fprintf(&builder, "  %-16s %-24s %s", nf.Name, nf.Field.Value,
			c.Sprintf("%.2f", nf.Field.Confidence))
		if options.Verbose {
			fmt.Fprintf(&builder, "  method=%s", nf.Field.Method)
			if nf.Field.Corrections > 0 {
				fmt.Fprintf(&builder, " corrections=%d", nf.Field.Corrections)
			}
		}
		builder.WriteString("\n")
	}

	if options.Verbose && len(record.Diagnostics) > 0 {
		builder.WriteString("\n")
		f.colors["yellow"].Fprintf(&builder, "Rejected fields:\n")
		for _, d := range record.Diagnostics {
			fmt.Fprintf(&builder, "  %-16s %-24s %.2f  %s\n", d.Field, d.Value, d.Confidence, d.Reason)
		}
	}

	return builder.String(), nil
}

// confidenceColor maps a score to a display color using the same
// bands the validator thresholds cluster around.
func (f *Formatter) confidenceColor(score float64) *color.Color {
	switch {
	case score >= 0.85:
		return f.colors["green"]
	case score >= 0.60:
		return f.colors["yellow"]
	default:
		return f.colors["red"]
	}
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
