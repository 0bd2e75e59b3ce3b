// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package corrector

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "ABC", 3},
		{"ABC", "", 3},
		{"ABC", "ABC", 0},
		{"SM1TH", "SMITH", 1},
		{"DI23456O", "D1234560", 2},
		{"KITTEN", "SITTING", 3},
		{"AB", "BA", 2},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLevenshtein_Symmetric(t *testing.T) {
	if levenshtein("FLAW", "LAWN") != levenshtein("LAWN", "FLAW") {
		t.Error("distance must be symmetric")
	}
}
