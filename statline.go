package beer

import (
	"regexp"
	"strconv"
	"strings"
)

// Plausible IBU range. Values outside it are parser noise (tap numbers,
// years, phone fragments) and are rejected rather than emitted.
const (
	MinIBU = 1
	MaxIBU = 150
)

// StatLine holds the fields extracted from one free-text stat line.
// Any field may be absent.
type StatLine struct {
	ABV      *float64
	IBU      *int
	Style    string
	Producer string
}

var (
	// A decimal number immediately followed by a percent marker, with an
	// optional ABV keyword. No percent marker, no ABV.
	abvRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*%(?:\s*ABV)?`)

	// An explicit IBU keyword adjacent to a digit sequence or the literal
	// "N/A" on either side.
	ibuRe = regexp.MustCompile(`(?i)\b(\d+|N/A)\s*IBU\b|\bIBU\b[:\s]*(\d+|N/A)`)

	// Pipe- or bullet-separated stat segments.
	segmentRe = regexp.MustCompile(`[|\x{2022}]`)
)

// HasStatMarker reports whether a line carries an ABV or IBU marker and is
// therefore a stat candidate.
func HasStatMarker(line string) bool {
	return strings.Contains(line, "%") ||
		strings.Contains(strings.ToUpper(line), "IBU")
}

// ParseABV extracts the first percentage value from a line.
// Returns nil when no percent marker is present.
func ParseABV(line string) *float64 {
	m := abvRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}

// ParseIBU extracts an IBU value from a line. An explicit "N/A" and values
// outside the plausible range both yield nil, not zero.
func ParseIBU(line string) *int {
	m := ibuRe.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	raw := m[1]
	if raw == "" {
		raw = m[2]
	}
	if strings.EqualFold(raw, "N/A") {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < MinIBU || v > MaxIBU {
		return nil
	}
	return &v
}

// ParseStatLine extracts (abv, ibu, style, producer) from one free-text
// stat line such as "5.3% ABV | 22 IBU | Acme Brewing".
//
// The line is split into pipe/bullet-delimited segments. The producer is
// the last segment that is neither an ABV nor an IBU segment and is not a
// placeholder; it defaults to fallbackProducer when no such segment exists.
// A non-stat segment appearing before the ABV segment is the inline style.
func ParseStatLine(line, fallbackProducer string) StatLine {
	stat := StatLine{Producer: fallbackProducer}

	raw := strings.Join(strings.Fields(line), " ")
	stat.ABV = ParseABV(raw)
	stat.IBU = ParseIBU(raw)

	segments := segmentRe.Split(raw, -1)
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}

	abvIdx := -1
	for i, seg := range segments {
		if abvRe.MatchString(seg) {
			abvIdx = i
			break
		}
	}

	// Inline style: a plain-text segment whose delimiter precedes the ABV
	// segment, e.g. "Vienna Lager • 5.3% ABV | 22 IBU".
	styleIdx := -1
	for i := 0; i < abvIdx; i++ {
		if isStatSegment(segments[i]) || isPlaceholderSegment(segments[i]) {
			continue
		}
		stat.Style = segments[i]
		styleIdx = i
		break
	}

	for i := len(segments) - 1; i >= 0; i-- {
		if i == styleIdx || i <= abvIdx {
			break
		}
		if isStatSegment(segments[i]) || isPlaceholderSegment(segments[i]) {
			continue
		}
		stat.Producer = segments[i]
		break
	}

	return stat
}

func isStatSegment(seg string) bool {
	return abvRe.MatchString(seg) ||
		strings.Contains(strings.ToUpper(seg), "IBU")
}

func isPlaceholderSegment(seg string) bool {
	switch strings.ToLower(seg) {
	case "", "-", "n/a":
		return true
	}
	return false
}
