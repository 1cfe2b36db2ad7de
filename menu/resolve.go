package menu

import (
	"strings"

	beer "github.com/lfe011969/local-beer-app"
)

// Style candidates from body lines are kept short to avoid picking up
// descriptions or unrelated page text.
const (
	minStyleLen = 2
	maxStyleLen = 40
)

// resolve merges header-derived hints with the entry's stat fields into a
// candidate record. Precedence: header style over stat-line style over
// body-derived style; explicit stat-line producer over the venue default.
// Returns false when the resolved name is empty; such entries are
// discarded, never emitted with a placeholder.
func resolve(e *entry, venue *beer.Venue) (*beer.Record, bool) {
	p := &venue.Profile

	name, headerStyle := beer.ParseEntryHeader(e.header, p.HeaderStyleAfterComma)
	if name == "" {
		return nil, false
	}

	style := headerStyle
	if style == "" {
		style = e.stat.Style
	}
	if style == "" && p.StyleFromBody {
		style = bodyStyle(e.body)
	}

	producer := e.stat.Producer
	if producer == "" {
		producer = venue.Name
	}

	rec := &beer.Record{
		ProducerName: producer,
		Name:         name,
		ABV:          e.stat.ABV,
		IBU:          e.stat.IBU,
		TapGroup:     e.group,
		Category:     p.CategoryFor(e.group),
	}
	if style != "" {
		rec.Style = &style
	}
	return rec, true
}

// bodyStyle picks a style from free-form body lines. A "|" divider, when
// present, separates the style from the serving-format icons: the nearest
// suitable line before it wins. Without a divider the first suitable line
// wins.
func bodyStyle(body []string) string {
	for i, line := range body {
		if line != "|" {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			if isStyleLine(body[j]) {
				return body[j]
			}
		}
		return ""
	}

	for _, line := range body {
		if isStyleLine(line) {
			return line
		}
	}
	return ""
}

func isStyleLine(line string) bool {
	if line == "|" || strings.Contains(line, "%") {
		return false
	}
	return len(line) >= minStyleLen && len(line) <= maxStyleLen
}
