package beer

import (
	"regexp"
	"strings"
)

// Leading ordinal on menu headers, e.g. "12. Minute of Angle MOA".
var ordinalRe = regexp.MustCompile(`^\s*\d+\.\s*`)

// ParseEntryHeader extracts the beverage name and an optional inline style
// hint from an entry header line. The leading ordinal is always stripped.
// When commaStyle is set, text after the first comma is treated as a style
// hint: "1. Plain Old Lager (P.O.L.), Lager - Vienna" yields
// name "Plain Old Lager (P.O.L.)" and style "Lager - Vienna".
func ParseEntryHeader(text string, commaStyle bool) (name, style string) {
	text = strings.Join(strings.Fields(text), " ")
	text = ordinalRe.ReplaceAllString(text, "")

	if commaStyle {
		if idx := strings.Index(text, ","); idx >= 0 {
			return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+1:])
		}
	}

	return strings.TrimSpace(text), ""
}
