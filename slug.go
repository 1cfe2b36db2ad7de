package beer

import "strings"

// Slugify derives a URL-safe, deterministic slug: lowercase, apostrophes
// removed, every run of non-alphanumeric characters collapsed to a single
// hyphen, no leading or trailing hyphen. Equal inputs always yield equal
// outputs.
func Slugify(text string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
			prevHyphen = false
		case r == '\'' || r == '‘' || r == '’':
			// Apostrophes and smart quotes vanish rather than hyphenate,
			// so "Bill's" becomes "bills" not "bill-s".
		default:
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}

// RecordID builds the stable record identifier from venue and entry name.
// The tap group is deliberately not part of the identifier: a beer that
// moves between sections keeps its ID across runs.
func RecordID(venueName, entryName string) string {
	return Slugify(venueName + " " + entryName)
}

// NormalizeKey reduces a beverage name to a lookup key for cross-source
// matching: lowercase alphanumerics only. "P.O.L. Lager" and "POL Lager"
// normalize to the same key.
func NormalizeKey(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
