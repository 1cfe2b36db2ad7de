package goquery

import (
	"strings"

	beer "github.com/lfe011969/local-beer-app"
)

// Ensure WordPressTokenizer implements beer.Tokenizer at compile time.
var _ beer.Tokenizer = (*WordPressTokenizer)(nil)

// WordPressTokenizer tokenizes taproom pages where the tap list is one
// section of a larger page: an anchor heading (e.g. "What's On Tap")
// starts the section, a terminator heading ends it, and a separator line
// (e.g. "* * *") divides entry blocks. The first content line of each
// block is the beer name.
type WordPressTokenizer struct{}

// NewWordPressTokenizer creates a new WordPressTokenizer.
func NewWordPressTokenizer() *WordPressTokenizer {
	return &WordPressTokenizer{}
}

// Name returns the tokenizer's identifier.
func (t *WordPressTokenizer) Name() string {
	return "wordpress"
}

// Tokenize returns an empty stream when the section anchor is missing:
// a page with a temporarily empty or redesigned menu is a valid, degraded
// state, not an error.
func (t *WordPressTokenizer) Tokenize(rawHTML string, venue *beer.Venue) ([]beer.Token, error) {
	lines, err := DocumentLines(rawHTML)
	if err != nil {
		return nil, err
	}

	p := &venue.Profile
	section := sliceSection(lines, p.SectionStart, p.SectionEnd)
	if section == nil {
		return nil, nil
	}

	var tokens []beer.Token
	atBlockStart := true

	for _, line := range section {
		if p.BlockSeparator != "" && line == p.BlockSeparator {
			atBlockStart = true
			continue
		}
		if p.IsNoise(line) {
			continue
		}

		if atBlockStart {
			tokens = append(tokens, beer.Token{Role: beer.RoleEntryHeader, Text: line})
			atBlockStart = false
			continue
		}

		tokens = append(tokens, beer.Token{Role: classifyLine(line), Text: line})
	}

	return tokens, nil
}

// sliceSection returns the lines strictly between the start anchor and the
// end terminator. Returns nil when the anchor is absent; an absent
// terminator means the section runs to the end of the document.
func sliceSection(lines []string, start, end string) []string {
	from := -1
	if start == "" {
		from = 0
	} else {
		for i, line := range lines {
			if strings.EqualFold(line, start) {
				from = i + 1
				break
			}
		}
	}
	if from < 0 {
		return nil
	}

	to := len(lines)
	if end != "" {
		for i := from; i < len(lines); i++ {
			if strings.EqualFold(lines[i], end) {
				to = i
				break
			}
		}
	}

	return lines[from:to]
}
