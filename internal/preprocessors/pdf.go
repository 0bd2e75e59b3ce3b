// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocessors converts document inputs into OCR tokens so
// the extraction pipeline has a single entry shape regardless of
// where the text came from.
package preprocessors

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"license-scan/internal/ocr"
)

// PDFExtractor pulls text lines out of a PDF and synthesizes tokens
// from them. PDFs carry no recognition scores, so every token gets
// the configured default confidence.
type PDFExtractor struct {
	MaxPages          int
	DefaultConfidence float64
}

// NewPDFExtractor creates an extractor with the given limits. Zero
// values fall back to conservative defaults.
func NewPDFExtractor(maxPages int, defaultConfidence float64) *PDFExtractor {
	if maxPages <= 0 {
		maxPages = 10
	}
	if defaultConfidence <= 0 || defaultConfidence > 1 {
		defaultConfidence = 0.9
	}
	return &PDFExtractor{
		MaxPages:          maxPages,
		DefaultConfidence: defaultConfidence,
	}
}

// ExtractTokens reads the PDF at filePath and returns one token per
// text line. Geometry is synthetic: lines are stacked top to bottom
// in document order so positional extraction heuristics still apply.
func (e *PDFExtractor) ExtractTokens(filePath string) ([]ocr.Token, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	pageCount := r.NumPage()
	if pageCount > e.MaxPages {
		pageCount = e.MaxPages
	}

	var lines []string
	for i := 1; i <= pageCount; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		pageLines, err := extractPageLines(p)
		if err != nil {
			// A single unreadable page should not sink the document.
			continue
		}
		lines = append(lines, pageLines...)
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("no text content found in %s", filePath)
	}

	return e.tokensFromLines(lines), nil
}

// extractPageLines returns the page's text rows in reading order.
func extractPageLines(p pdf.Page) ([]string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, row := range rows {
		var parts []string
		for _, word := range row.Content {
			s := strings.TrimSpace(word.S)
			if s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			lines = append(lines, strings.Join(parts, " "))
		}
	}
	return lines, nil
}

// tokensFromLines stacks one token per line down the unit square.
func (e *PDFExtractor) tokensFromLines(lines []string) []ocr.Token {
	lineHeight := 1.0 / float64(len(lines))
	tokens := make([]ocr.Token, 0, len(lines))
	for i, line := range lines {
		tokens = append(tokens, ocr.Token{
			Text:       line,
			Confidence: e.DefaultConfidence,
			BBox: ocr.Rect{
				X: 0,
				Y: float64(i) * lineHeight,
				W: 1,
				H: lineHeight,
			},
		})
	}
	return tokens
}
