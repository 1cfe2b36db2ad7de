package mock

import (
	beer "github.com/lfe011969/local-beer-app"
)

var _ beer.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is a mock implementation of beer.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(html string, venue *beer.Venue) ([]beer.Token, error)
	NameFn     func() string
}

func (t *Tokenizer) Tokenize(html string, venue *beer.Venue) ([]beer.Token, error) {
	return t.TokenizeFn(html, venue)
}

func (t *Tokenizer) Name() string {
	if t.NameFn == nil {
		return "mock"
	}
	return t.NameFn()
}
