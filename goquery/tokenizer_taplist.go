package goquery

import (
	"strings"

	beer "github.com/lfe011969/local-beer-app"
)

// Ensure TaplistTokenizer implements beer.Tokenizer at compile time.
var _ beer.Tokenizer = (*TaplistTokenizer)(nil)

// TaplistTokenizer tokenizes flat-text tap list pages where entries carry
// no heading markup. An entry header is recognized positionally: a line
// immediately followed by the venue's brewer-marker line.
type TaplistTokenizer struct{}

// NewTaplistTokenizer creates a new TaplistTokenizer.
func NewTaplistTokenizer() *TaplistTokenizer {
	return &TaplistTokenizer{}
}

// Name returns the tokenizer's identifier.
func (t *TaplistTokenizer) Name() string {
	return "taplist"
}

// Tokenize flattens the document into normalized lines and classifies each
// one. The brewer-marker line itself is consumed by the header match and
// not emitted.
func (t *TaplistTokenizer) Tokenize(rawHTML string, venue *beer.Venue) ([]beer.Token, error) {
	lines, err := DocumentLines(rawHTML)
	if err != nil {
		return nil, err
	}

	marker := venue.Profile.BrewerMarker
	var tokens []beer.Token

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if venue.Profile.IsNoise(line) {
			continue
		}

		if venue.Profile.IsGroupHeading(line) {
			tokens = append(tokens, beer.Token{Role: beer.RoleHeading, Text: line})
			continue
		}

		if marker != "" && i+1 < len(lines) && strings.EqualFold(lines[i+1], marker) {
			tokens = append(tokens, beer.Token{Role: beer.RoleEntryHeader, Text: line})
			i++ // the marker line carries no information of its own
			continue
		}

		tokens = append(tokens, beer.Token{Role: classifyLine(line), Text: line})
	}

	return tokens, nil
}
