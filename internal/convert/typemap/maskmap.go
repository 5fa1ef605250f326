// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package typemap

import "strings"

// exactMasks maps common source display masks straight to target masks.
var exactMasks = map[string]string{
	// numeric and currency
	"0":                   "990",
	"0.00":                "990D00",
	"#,##0":               "999G999G990",
	"#,##0.00":            "999G999G990D00",
	"$#,##0.00":           "L999G999G990D00",
	"-$#,##0.00":          "L999G999G990D00MI",
	"($#,##0.00)":         "L999G999G990D00PR",
	"#,##0.00;(#,##0.00)": "999G999G990D00PR",

	// dates
	"MM/dd/yyyy":   "MM/DD/YYYY",
	"dd/MM/yyyy":   "DD/MM/YYYY",
	"yyyy-MM-dd":   "YYYY-MM-DD",
	"dd-MMM-yyyy":  "DD-MON-YYYY",
	"MMMM d, yyyy": "MONTH DD, YYYY",
	"MMM yyyy":     "MON YYYY",

	// times
	"HH:mm":       "HH24:MI",
	"HH:mm:ss":    "HH24:MI:SS",
	"hh:mm tt":    "HH12:MI AM",
	"hh:mm:ss tt": "HH12:MI:SS AM",

	"MM/dd/yyyy HH:mm": "MM/DD/YYYY HH24:MI",
}

type maskToken struct {
	src, dst string
}

// Date tokens run before time tokens: date output is all uppercase, so
// the lowercase time tokens can never re-match produced text.
var dateTokens = []maskToken{
	{"dddd", "DAY"},
	{"ddd", "DY"},
	{"dd", "DD"},
	{"d", "DD"},
	{"MMMM", "MONTH"},
	{"MMM", "MON"},
	{"MM", "MM"},
	{"M", "MM"},
	{"yyyy", "YYYY"},
	{"yy", "YY"},
}

var timeTokens = []maskToken{
	{"HH", "HH24"},
	{"hh", "HH12"},
	{"mm", "MI"},
	{"ss", "SS"},
	{"tt", "AM"},
}

// MapFormatMask translates a source display mask. Exact matches against
// the curated table win; otherwise the mask goes through ordered component
// substitution. ok is false when nothing was recognized — the result would
// equal the input — so callers never treat an untranslated mask as mapped.
func MapFormatMask(mask string) (string, bool) {
	if mask == "" {
		return "", false
	}
	if target, ok := exactMasks[mask]; ok {
		return target, true
	}

	out := substituteTokens(mask, dateTokens)
	out = substituteTokens(out, timeTokens)
	if out == mask {
		return "", false
	}
	return out, true
}

// substituteTokens rewrites s in one left-to-right scan, trying tokens in
// listed order at each position so longer tokens win and produced text is
// never rescanned.
func substituteTokens(s string, tokens []maskToken) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		matched := false
		for _, tok := range tokens {
			if strings.HasPrefix(s[i:], tok.src) {
				b.WriteString(tok.dst)
				i += len(tok.src)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(s[i])
			i++
		}
	}
	return b.String()
}
