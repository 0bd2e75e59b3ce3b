// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package aamva

import "license-scan/internal/jurisdiction"

// issuerJurisdictions maps AAMVA issuer identification numbers to the
// issuing jurisdiction. Unknown issuers resolve to the generic code
// rather than failing: a readable barcode with an unlisted issuer is
// still worth parsing.
var issuerJurisdictions = map[string]jurisdiction.Code{
	"636000": jurisdiction.VA,
	"636001": jurisdiction.NY,
	"636002": jurisdiction.MA,
	"636003": jurisdiction.MD,
	"636004": jurisdiction.NC,
	"636005": jurisdiction.SC,
	"636006": jurisdiction.CT,
	"636007": jurisdiction.LA,
	"636008": jurisdiction.MT,
	"636009": jurisdiction.NM,
	"636010": jurisdiction.FL,
	"636011": jurisdiction.DE,
	"636012": jurisdiction.ON,
	"636013": jurisdiction.NS,
	"636014": jurisdiction.CA,
	"636015": jurisdiction.TX,
	"636016": jurisdiction.NL,
	"636017": jurisdiction.NB,
	"636018": jurisdiction.IA,
	"636019": jurisdiction.GA,
	"636020": jurisdiction.UT,
	"636021": jurisdiction.AR,
	"636022": jurisdiction.KS,
	"636023": jurisdiction.OH,
	"636024": jurisdiction.VT,
	"636025": jurisdiction.PA,
	"636026": jurisdiction.AZ,
	"636028": jurisdiction.BC,
	"636029": jurisdiction.OR,
	"636030": jurisdiction.MO,
	"636031": jurisdiction.WI,
	"636032": jurisdiction.MI,
	"636033": jurisdiction.AL,
	"636034": jurisdiction.ND,
	"636035": jurisdiction.IL,
	"636036": jurisdiction.NJ,
	"636037": jurisdiction.IN,
	"636038": jurisdiction.MN,
	"636039": jurisdiction.NH,
	"636040": jurisdiction.UT,
	"636041": jurisdiction.HI,
	"636042": jurisdiction.WV,
	"636043": jurisdiction.DC,
	"636044": jurisdiction.MB,
	"636045": jurisdiction.WA,
	"636046": jurisdiction.TN,
	"636047": jurisdiction.WY,
	"636048": jurisdiction.OK,
	"636049": jurisdiction.ME,
	"636050": jurisdiction.TN,
	"636051": jurisdiction.SD,
	"636052": jurisdiction.CO,
	"636053": jurisdiction.AK,
	"636054": jurisdiction.NV,
	"636055": jurisdiction.KY,
	"636056": jurisdiction.MS,
	"636057": jurisdiction.PE,
	"636058": jurisdiction.ID,
	"636059": jurisdiction.SK,
	"636060": jurisdiction.AB,
	"636061": jurisdiction.NE,
	"636062": jurisdiction.RI,
	"604427": jurisdiction.QC,
}

// resolveIssuer looks up the issuer identification number. The second
// return value reports whether the issuer was recognized.
func resolveIssuer(issuerID string) (jurisdiction.Code, bool) {
	if code, ok := issuerJurisdictions[issuerID]; ok {
		return code, true
	}
	return jurisdiction.Generic, false
}
