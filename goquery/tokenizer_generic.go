package goquery

import (
	beer "github.com/lfe011969/local-beer-app"
)

// Ensure GenericTokenizer implements beer.Tokenizer at compile time.
var _ beer.Tokenizer = (*GenericTokenizer)(nil)

// GenericTokenizer is the fallback for unknown menu formats. It flattens the
// document into lines and relies on content alone: group-keyword lines are
// headings, ABV/IBU-marker lines are stat candidates, and a plain line
// immediately preceding a stat candidate is promoted to an entry header.
type GenericTokenizer struct{}

// NewGenericTokenizer creates a new GenericTokenizer.
func NewGenericTokenizer() *GenericTokenizer {
	return &GenericTokenizer{}
}

// Name returns the tokenizer's identifier.
func (t *GenericTokenizer) Name() string {
	return "generic"
}

// Tokenize classifies normalized lines, then promotes body lines that
// directly precede a stat candidate to entry headers.
func (t *GenericTokenizer) Tokenize(rawHTML string, venue *beer.Venue) ([]beer.Token, error) {
	lines, err := DocumentLines(rawHTML)
	if err != nil {
		return nil, err
	}

	var tokens []beer.Token
	for _, line := range lines {
		if venue.Profile.IsNoise(line) {
			continue
		}
		role := classifyLine(line)
		if venue.Profile.IsGroupHeading(line) {
			role = beer.RoleHeading
		}
		tokens = append(tokens, beer.Token{Role: role, Text: line})
	}

	for i := 0; i < len(tokens)-1; i++ {
		if tokens[i].Role == beer.RoleBodyText && tokens[i+1].Role == beer.RoleStatCandidate {
			tokens[i].Role = beer.RoleEntryHeader
		}
	}

	return tokens, nil
}
