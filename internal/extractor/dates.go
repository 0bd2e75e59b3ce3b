// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractor

import (
	"strings"
	"time"

	"license-scan/internal/jurisdiction"
)

// isoDate is the canonical output layout for every date field.
const isoDate = "2006-01-02"

// layoutsByPreference lists candidate input layouts per jurisdiction
// date-format preference, most specific first. The preferred set is
// tried before the remaining sets so that ambiguous dates (01/02/2006)
// resolve the way the issuing jurisdiction prints them.
var layoutsByPreference = map[jurisdiction.DateFormat][]string{
	jurisdiction.DateMDY: {"01/02/2006", "01-02-2006", "01/02/06", "01022006"},
	jurisdiction.DateDMY: {"02/01/2006", "02-01-2006", "02/01/06", "02012006"},
	jurisdiction.DateYMD: {"2006-01-02", "2006/01/02", "20060102"},
}

// normalizeDate validates a matched date substring and reformats it to
// ISO 8601. The boolean is false when no candidate layout parses; a
// match that fails date validation is treated as no match.
func normalizeDate(raw string, preference jurisdiction.DateFormat) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	preferred := layoutsByPreference[preference]
	if preferred == nil {
		preferred = layoutsByPreference[jurisdiction.DateMDY]
	}
	layouts := append([]string(nil), preferred...)
	for _, format := range []jurisdiction.DateFormat{jurisdiction.DateMDY, jurisdiction.DateDMY, jurisdiction.DateYMD} {
		if format == preference {
			continue
		}
		layouts = append(layouts, layoutsByPreference[format]...)
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if !plausibleDocumentDate(t) {
			continue
		}
		return t.Format(isoDate), true
	}
	return "", false
}

// plausibleDocumentDate rejects parses that are syntactically valid
// but cannot appear on an identity document (births before 1900,
// expirations decades out).
func plausibleDocumentDate(t time.Time) bool {
	year := t.Year()
	return year >= 1900 && year <= time.Now().Year()+30
}
