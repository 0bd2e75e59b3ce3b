// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package jurisdiction

// Code identifies an issuing jurisdiction (US state/territory or
// Canadian province) by its postal abbreviation. Generic is the
// fallback for unknown or undetected issuers.
type Code string

const (
	Generic Code = "US"

	AL Code = "AL"
	AK Code = "AK"
	AZ Code = "AZ"
	AR Code = "AR"
	CA Code = "CA"
	CO Code = "CO"
	CT Code = "CT"
	DE Code = "DE"
	DC Code = "DC"
	FL Code = "FL"
	GA Code = "GA"
	HI Code = "HI"
	ID Code = "ID"
	IL Code = "IL"
	IN Code = "IN"
	IA Code = "IA"
	KS Code = "KS"
	KY Code = "KY"
	LA Code = "LA"
	ME Code = "ME"
	MD Code = "MD"
	MA Code = "MA"
	MI Code = "MI"
	MN Code = "MN"
	MS Code = "MS"
	MO Code = "MO"
	MT Code = "MT"
	NE Code = "NE"
	NV Code = "NV"
	NH Code = "NH"
	NJ Code = "NJ"
	NM Code = "NM"
	NY Code = "NY"
	NC Code = "NC"
	ND Code = "ND"
	OH Code = "OH"
	OK Code = "OK"
	OR Code = "OR"
	PA Code = "PA"
	RI Code = "RI"
	SC Code = "SC"
	SD Code = "SD"
	TN Code = "TN"
	TX Code = "TX"
	UT Code = "UT"
	VT Code = "VT"
	VA Code = "VA"
	WA Code = "WA"
	WV Code = "WV"
	WI Code = "WI"
	WY Code = "WY"

	// Canadian provinces that issue AAMVA-compliant documents
	AB Code = "AB"
	BC Code = "BC"
	MB Code = "MB"
	NB Code = "NB"
	NL Code = "NL"
	NS Code = "NS"
	ON Code = "ON"
	PE Code = "PE"
	QC Code = "QC"
	SK Code = "SK"
)

// jurisdictionNames maps the full printed name of each jurisdiction to
// its code. Used by the detector for explicit-name matching.
var jurisdictionNames = map[string]Code{
	"ALABAMA":        AL,
	"ALASKA":         AK,
	"ARIZONA":        AZ,
	"ARKANSAS":       AR,
	"CALIFORNIA":     CA,
	"COLORADO":       CO,
	"CONNECTICUT":    CT,
	"DELAWARE":       DE,
	"FLORIDA":        FL,
	"GEORGIA":        GA,
	"HAWAII":         HI,
	"IDAHO":          ID,
	"ILLINOIS":       IL,
	"INDIANA":        IN,
	"IOWA":           IA,
	"KANSAS":         KS,
	"KENTUCKY":       KY,
	"LOUISIANA":      LA,
	"MAINE":          ME,
	"MARYLAND":       MD,
	"MASSACHUSETTS":  MA,
	"MICHIGAN":       MI,
	"MINNESOTA":      MN,
	"MISSISSIPPI":    MS,
	"MISSOURI":       MO,
	"MONTANA":        MT,
	"NEBRASKA":       NE,
	"NEVADA":         NV,
	"NEW HAMPSHIRE":  NH,
	"NEW JERSEY":     NJ,
	"NEW MEXICO":     NM,
	"NEW YORK":       NY,
	"NORTH CAROLINA": NC,
	"NORTH DAKOTA":   ND,
	"OHIO":           OH,
	"OKLAHOMA":       OK,
	"OREGON":         OR,
	"PENNSYLVANIA":   PA,
	"RHODE ISLAND":   RI,
	"SOUTH CAROLINA": SC,
	"SOUTH DAKOTA":   SD,
	"TENNESSEE":      TN,
	"TEXAS":          TX,
	"UTAH":           UT,
	"VERMONT":        VT,
	"VIRGINIA":       VA,
	"WASHINGTON":     WA,
	"WEST VIRGINIA":  WV,
	"WISCONSIN":      WI,
	"WYOMING":        WY,

	"ALBERTA":          AB,
	"BRITISH COLUMBIA": BC,
	"MANITOBA":         MB,
	"NEW BRUNSWICK":    NB,
	"NEWFOUNDLAND":     NL,
	"NOVA SCOTIA":      NS,
	"ONTARIO":          ON,
	"QUEBEC":           QC,
	"SASKATCHEWAN":     SK,

	// District of Columbia appears in several printed forms
	"DISTRICT OF COLUMBIA": DC,
	"WASHINGTON DC":        DC,
}

// NameOrder describes how a jurisdiction prints the cardholder name on
// the document face.
type NameOrder int

const (
	// OrderGeneric means no reliable ordering convention is known.
	OrderGeneric NameOrder = iota

	// OrderLastFirst prints "LAST, FIRST MIDDLE" or labels the last
	// name ahead of the first.
	OrderLastFirst

	// OrderFirstLast prints "FIRST MIDDLE LAST" as a single line.
	OrderFirstLast
)

// String returns the string representation of the name order.
func (n NameOrder) String() string {
	switch n {
	case OrderLastFirst:
		return "last_first"
	case OrderFirstLast:
		return "first_last"
	default:
		return "generic"
	}
}

// DateFormat is the date-format preference a jurisdiction prints on the
// document face.
type DateFormat string

const (
	DateMDY DateFormat = "MDY"
	DateDMY DateFormat = "DMY"
	DateYMD DateFormat = "YMD"
)
