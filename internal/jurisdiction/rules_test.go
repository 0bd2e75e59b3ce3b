// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package jurisdiction

import "testing"

func TestLookup_Registered(t *testing.T) {
	rule := Lookup(CA)
	if rule.Code != CA {
		t.Errorf("expected CA rule, got %s", rule.Code)
	}
	if rule.NameOrder != OrderLastFirst {
		t.Errorf("expected last-first ordering for CA, got %s", rule.NameOrder)
	}
}

func TestLookup_Total(t *testing.T) {
	// Lookups must be total: unknown codes and Generic itself resolve
	// to the generic row rather than failing.
	for _, code := range []Code{Generic, "ZZ", ""} {
		rule := Lookup(code)
		if rule.Code != Generic {
			t.Errorf("Lookup(%q) should fall back to the generic rule, got %s", code, rule.Code)
		}
		if rule.LicenseNumberPattern == "" {
			t.Errorf("Lookup(%q) returned an empty pattern", code)
		}
	}
}

func TestMatchesLicenseNumber(t *testing.T) {
	tests := []struct {
		code  Code
		value string
		want  bool
	}{
		{CA, "D1234567", true},
		{CA, "12345678", false},
		{CA, "D123456", false},
		{TX, "12345678", true},
		{TX, "D1234567", false},
		{NY, "123456789", true},
		{FL, "S123456789012", true},
		{OH, "AB123456", true},
		{CO, "12-345-6789", true},
		{ON, "A1234-56789-01234", true},
		{BC, "1234567", true},
		{Generic, "ABCD", true},
		{Generic, "AB", false},
	}
	for _, tt := range tests {
		rule := Lookup(tt.code)
		if got := rule.MatchesLicenseNumber(tt.value); got != tt.want {
			t.Errorf("%s.MatchesLicenseNumber(%q) = %v, want %v", tt.code, tt.value, got, tt.want)
		}
	}
}

func TestRegisteredCodes_OrderStable(t *testing.T) {
	codes := RegisteredCodes()
	if len(codes) == 0 {
		t.Fatal("expected registered rules")
	}
	// Registration order resolves ambiguous shapes; CA must stay
	// first so that letter-plus-seven-digit numbers resolve to it.
	if codes[0] != CA {
		t.Errorf("expected CA registered first, got %s", codes[0])
	}

	// The returned slice is a copy; mutating it must not affect the
	// process-wide table.
	codes[0] = "ZZ"
	if RegisteredCodes()[0] != CA {
		t.Error("RegisteredCodes should return a defensive copy")
	}
}

func TestRuleConfidenceWeights(t *testing.T) {
	rule := Lookup(CA)
	if rule.ConfidenceWeights["licenseNumber"] != 0.05 {
		t.Errorf("expected CA license-number weight 0.05, got %v", rule.ConfidenceWeights["licenseNumber"])
	}
	if _, ok := rule.ConfidenceWeights["height"]; ok {
		t.Error("unexpected weight entry for height")
	}
}
