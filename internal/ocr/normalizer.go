// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ocr

import "strings"

// Normalize converts raw OCR tuples into the canonical token list the
// rest of the pipeline operates on: whitespace trimmed, text
// uppercased, confidence and bounding box clamped to [0,1]. Tokens with
// empty text are dropped.
//
// No character substitution happens here. Substitution is always
// field-context-aware: a blind "0 -> O" pass would corrupt valid
// license numbers, so it is deferred to the corrector.
func Normalize(tokens []Token) []Token {
	normalized := make([]Token, 0, len(tokens))

	for _, t := range tokens {
		text := strings.ToUpper(strings.TrimSpace(t.Text))
		if text == "" {
			continue
		}

		normalized = append(normalized, Token{
			Text:       text,
			Confidence: clamp01(t.Confidence),
			BBox: Rect{
				X: clamp01(t.BBox.X),
				Y: clamp01(t.BBox.Y),
				W: clamp01(t.BBox.W),
				H: clamp01(t.BBox.H),
			},
		})
	}

	return normalized
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
