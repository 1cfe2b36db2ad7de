package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	beer "github.com/lfe011969/local-beer-app"
)

// Ensure UntappdTokenizer implements beer.Tokenizer at compile time.
var _ beer.Tokenizer = (*UntappdTokenizer)(nil)

// UntappdTokenizer tokenizes heading-structured menu pages:
// h2 elements carry tap-group labels, h3 elements carry one beer header
// each, and the text between headings carries the stat lines.
type UntappdTokenizer struct{}

// NewUntappdTokenizer creates a new UntappdTokenizer.
func NewUntappdTokenizer() *UntappdTokenizer {
	return &UntappdTokenizer{}
}

// Name returns the tokenizer's identifier.
func (t *UntappdTokenizer) Name() string {
	return "untappd"
}

// Tokenize walks the DOM in document order. Heading elements become
// heading/entryHeader tokens; other text becomes statCandidate or bodyText
// tokens depending on whether it carries an ABV/IBU marker.
func (t *UntappdTokenizer) Tokenize(rawHTML string, venue *beer.Venue) ([]beer.Token, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, beer.Errorf(beer.EINVALID, "failed to parse HTML: %v", err)
	}

	var tokens []beer.Token
	for _, node := range doc.Nodes {
		t.walk(node, venue, &tokens)
	}
	return tokens, nil
}

func (t *UntappdTokenizer) walk(n *html.Node, venue *beer.Venue, tokens *[]beer.Token) {
	switch n.Type {
	case html.TextNode:
		if line := collapseSpace(n.Data); line != "" && !venue.Profile.IsNoise(line) {
			*tokens = append(*tokens, beer.Token{Role: classifyLine(line), Text: line})
		}
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "template", "iframe", "head":
			return
		case "h1", "h2":
			if text := nodeText(n); text != "" {
				*tokens = append(*tokens, beer.Token{Role: beer.RoleHeading, Text: text})
			}
			return
		case "h3":
			if text := nodeText(n); text != "" {
				*tokens = append(*tokens, beer.Token{Role: beer.RoleEntryHeader, Text: text})
			}
			return
		case "p", "li":
			// Emit leaf blocks as single lines so stat segments separated
			// by inline markup stay on one token.
			if line := nodeText(n); line != "" && !venue.Profile.IsNoise(line) {
				*tokens = append(*tokens, beer.Token{Role: classifyLine(line), Text: line})
			}
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		t.walk(c, venue, tokens)
	}
}
