// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package jurisdiction

import "regexp"

// Rule is one immutable row of per-jurisdiction configuration: the
// license-number shape, name ordering, expected address-line count,
// date-format preference, and per-field confidence weights applied by
// the scorer. Rows are registered once at package initialization and
// shared read-only across concurrent parses.
type Rule struct {
	Code                 Code
	LicenseNumberPattern string
	NameOrder            NameOrder
	AddressLineCount     int
	DateFormat           DateFormat

	// ConfidenceWeights maps a field name (extractor.Field.String())
	// to a multiplier applied after the weighted-factor score:
	// score *= 1 + weight, capped at 1.0.
	ConfidenceWeights map[string]float64

	regex *regexp.Regexp
}

// MatchesLicenseNumber reports whether value matches this
// jurisdiction's license-number shape.
func (r Rule) MatchesLicenseNumber(value string) bool {
	if r.regex == nil {
		return false
	}
	return r.regex.MatchString(value)
}

var (
	// ruleOrder preserves registration order. Order is significant:
	// ambiguous license-number shapes resolve to the earliest
	// registered jurisdiction.
	ruleOrder []Code
	rules     = map[Code]Rule{}

	genericRule Rule
)

func register(r Rule) {
	r.regex = regexp.MustCompile(r.LicenseNumberPattern)
	ruleOrder = append(ruleOrder, r.Code)
	rules[r.Code] = r
}

func init() {
	genericRule = Rule{
		Code:                 Generic,
		LicenseNumberPattern: `^[A-Z0-9]{4,14}$`,
		NameOrder:            OrderGeneric,
		AddressLineCount:     2,
		DateFormat:           DateMDY,
		ConfidenceWeights:    map[string]float64{},
		regex:                regexp.MustCompile(`^[A-Z0-9]{4,14}$`),
	}

	register(Rule{
		Code:                 CA,
		LicenseNumberPattern: `^[A-Z]\d{7}$`,
		NameOrder:            OrderLastFirst,
		AddressLineCount:     3,
		DateFormat:           DateMDY,
		ConfidenceWeights: map[string]float64{
			"licenseNumber": 0.05,
			"lastName":      0.03,
			"dateOfBirth":   0.03,
		},
	})
	register(Rule{
		Code:                 TX,
		LicenseNumberPattern: `^\d{8}$`,
		NameOrder:            OrderFirstLast,
		AddressLineCount:     2,
		DateFormat:           DateMDY,
		ConfidenceWeights: map[string]float64{
			"licenseNumber": 0.05,
		},
	})
	register(Rule{
		Code:                 NY,
		LicenseNumberPattern: `^\d{9}$`,
		NameOrder:            OrderFirstLast,
		AddressLineCount:     2,
		DateFormat:           DateMDY,
		ConfidenceWeights: map[string]float64{
			"licenseNumber": 0.04,
		},
	})
	register(Rule{
		Code:                 FL,
		LicenseNumberPattern: `^[A-Z]\d{12}$`,
		NameOrder:            OrderLastFirst,
		AddressLineCount:     2,
		DateFormat:           DateMDY,
		ConfidenceWeights: map[string]float64{
			"licenseNumber": 0.05,
		},
	})
	register(Rule{
		Code:                 IL,
		LicenseNumberPattern: `^[A-Z]\d{11}$`,
		NameOrder:            OrderFirstLast,
		AddressLineCount:     2,
		DateFormat:           DateMDY,
		ConfidenceWeights:    map[string]float64{},
	})
	register(Rule{
		Code:                 PA,
		LicenseNumberPattern: `^\d{8}$`,
		NameOrder:            OrderFirstLast,
		AddressLineCount:     2,
		DateFormat:           DateMDY,
		ConfidenceWeights:    map[string]float64{},
	})
	register(Rule{
		Code:                 OH,
		LicenseNumberPattern: `^[A-Z]{2}\d{6}$`,
		NameOrder:            OrderFirstLast,
		AddressLineCount:     2,
		DateFormat:           DateMDY,
		ConfidenceWeights:    map[string]float64{},
	})
	register(Rule{
		Code:                 GA,
		LicenseNumberPattern: `^\d{9}$`,
		NameOrder:            OrderFirstLast,
		AddressLineCount:     2,
		DateFormat:           DateMDY,
		ConfidenceWeights:    map[string]float64{},
	})
	register(Rule{
		Code:                 MI,
		LicenseNumberPattern: `^[A-Z]\d{12}$`,
		NameOrder:            OrderLastFirst,
		AddressLineCount:     2,
		DateFormat:           DateMDY,
		ConfidenceWeights:    map[string]float64{},
	})
	register(Rule{
		Code:                 NJ,
		LicenseNumberPattern: `^[A-Z]\d{14}$`,
		NameOrder:            OrderLastFirst,
		AddressLineCount:     2,
		DateFormat:           DateMDY,
		ConfidenceWeights: map[string]float64{
			"licenseNumber": 0.05,
		},
	})
	register(Rule{
		Code:                 VA,
		LicenseNumberPattern: `^[A-Z]\d{8}$`,
		NameOrder:            OrderFirstLast,
		AddressLineCount:     2,
		DateFormat:           DateMDY,
		ConfidenceWeights:    map[string]float64{},
	})
	register(Rule{
		Code:                 WA,
		LicenseNumberPattern: `^[A-Z]{3,5}[A-Z*]{0,2}\d{3}[A-Z0-9]{2}$`,
		NameOrder:            OrderLastFirst,
		AddressLineCount:     2,
		DateFormat:           DateMDY,
		ConfidenceWeights:    map[string]float64{},
	})
	register(Rule{
		Code:                 AZ,
		LicenseNumberPattern: `^[A-Z]\d{8}$`,
		NameOrder:            OrderFirstLast,
		AddressLineCount:     2,
		DateFormat:           DateMDY,
		ConfidenceWeights:    map[string]float64{},
	})
	register(Rule{
		Code:                 MA,
		LicenseNumberPattern: `^S\d{8}$`,
		NameOrder:            OrderFirstLast,
		AddressLineCount:     2,
		DateFormat:           DateMDY,
		ConfidenceWeights:    map[string]float64{},
	})
	register(Rule{
		Code:                 CO,
		LicenseNumberPattern: `^\d{2}-\d{3}-\d{4}$`,
		NameOrder:            OrderFirstLast,
		AddressLineCount:     2,
		DateFormat:           DateMDY,
		ConfidenceWeights:    map[string]float64{},
	})
	register(Rule{
		Code:                 ON,
		LicenseNumberPattern: `^[A-Z]\d{4}-?\d{5}-?\d{5}$`,
		NameOrder:            OrderLastFirst,
		AddressLineCount:     3,
		DateFormat:           DateYMD,
		ConfidenceWeights: map[string]float64{
			"licenseNumber": 0.05,
		},
	})
	register(Rule{
		Code:                 BC,
		LicenseNumberPattern: `^\d{7}$`,
		NameOrder:            OrderLastFirst,
		AddressLineCount:     3,
		DateFormat:           DateYMD,
		ConfidenceWeights:    map[string]float64{},
	})
}

// Lookup returns the rule row for code. Lookups are total: any code
// without a registered row, including Generic itself, resolves to the
// generic row.
func Lookup(code Code) Rule {
	if r, ok := rules[code]; ok {
		return r
	}
	return genericRule
}

// GenericRule returns the fallback rule row.
func GenericRule() Rule {
	return genericRule
}

// RegisteredCodes returns the rule table's codes in registration order.
func RegisteredCodes() []Code {
	out := make([]Code, len(ruleOrder))
	copy(out, ruleOrder)
	return out
}
