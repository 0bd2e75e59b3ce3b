// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package jurisdiction

import (
	"testing"

	"license-scan/internal/ocr"
)

func tokens(texts ...string) []ocr.Token {
	out := make([]ocr.Token, len(texts))
	for i, text := range texts {
		out[i] = ocr.Token{Text: text, Confidence: 0.9}
	}
	return out
}

func TestDetect_ByName(t *testing.T) {
	tests := []struct {
		text string
		want Code
	}{
		{"CALIFORNIA", CA},
		{"STATE OF TEXAS", TX},
		{"DRIVER LICENSE NEW YORK", NY},
		{"ONTARIO", ON},
	}
	for _, tt := range tests {
		code, ok := Detect(tokens(tt.text))
		if !ok || code != tt.want {
			t.Errorf("Detect(%q) = %s, %v, want %s", tt.text, code, ok, tt.want)
		}
	}
}

func TestDetect_NameOverlap(t *testing.T) {
	// "WASHINGTON DC" must resolve to DC, never to its WASHINGTON
	// prefix.
	code, ok := Detect(tokens("WASHINGTON DC"))
	if !ok || code != DC {
		t.Errorf("Detect(WASHINGTON DC) = %s, %v, want DC", code, ok)
	}
}

func TestDetect_ByLicenseShape(t *testing.T) {
	tests := []struct {
		text string
		want Code
	}{
		// Letter plus seven digits is CA's shape.
		{"D1234567", CA},
		// Eight digits is ambiguous between TX and PA; TX registered
		// first and wins.
		{"12345678", TX},
		{"DLN 123456789", NY},
	}
	for _, tt := range tests {
		code, ok := Detect(tokens(tt.text))
		if !ok || code != tt.want {
			t.Errorf("Detect(%q) = %s, %v, want %s", tt.text, code, ok, tt.want)
		}
	}
}

func TestDetect_ByAddressContext(t *testing.T) {
	code, ok := Detect(tokens("ADDRESS", "TX 75001"))
	if !ok || code != TX {
		t.Errorf("expected TX from address-adjacent abbreviation, got %s, %v", code, ok)
	}

	code, ok = Detect(tokens("STATE CA"))
	if !ok || code != CA {
		t.Errorf("expected CA from same-token abbreviation, got %s, %v", code, ok)
	}
}

func TestDetect_ByNameLayout(t *testing.T) {
	// "LAST, FIRST" layout implies a last-first jurisdiction; the
	// earliest registered last-first rule is CA.
	code, ok := Detect(tokens("SMITH, JOHN"))
	if !ok || code != CA {
		t.Errorf("expected CA from name layout, got %s, %v", code, ok)
	}
}

func TestDetect_Failure(t *testing.T) {
	for _, texts := range [][]string{
		nil,
		{"HELLO"},
		{"SOME RANDOM WORDS"},
	} {
		code, ok := Detect(tokens(texts...))
		if ok {
			t.Errorf("Detect(%v) unexpectedly succeeded with %s", texts, code)
		}
		if code != Generic {
			t.Errorf("failed detection must return the generic code, got %s", code)
		}
	}
}

func TestDetect_StrategyOrder(t *testing.T) {
	// An explicit name outranks a conflicting license shape.
	code, ok := Detect(tokens("TEXAS", "D1234567"))
	if !ok || code != TX {
		t.Errorf("explicit name should win over license shape, got %s, %v", code, ok)
	}
}
