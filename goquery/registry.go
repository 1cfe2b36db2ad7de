package goquery

import (
	beer "github.com/lfe011969/local-beer-app"
)

var _ beer.TokenizerRegistry = (*Registry)(nil)

// Registry manages format-specific tokenizers. Venue formats are static
// configuration, so lookup is by declared format with a generic fallback
// for formats nothing is registered for.
type Registry struct {
	fallback   beer.Tokenizer
	tokenizers map[beer.Format]beer.Tokenizer
}

// NewRegistry creates a new Registry with the given fallback tokenizer.
func NewRegistry(fallback beer.Tokenizer) *Registry {
	return &Registry{
		fallback:   fallback,
		tokenizers: make(map[beer.Format]beer.Tokenizer),
	}
}

// NewDefaultRegistry creates a Registry with all known format tokenizers
// registered and the generic tokenizer as fallback.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NewGenericTokenizer())
	r.Register(beer.FormatUntappd, NewUntappdTokenizer())
	r.Register(beer.FormatTaplist, NewTaplistTokenizer())
	r.Register(beer.FormatWordPress, NewWordPressTokenizer())
	return r
}

// Get returns the tokenizer for a specific format.
// Returns nil if no tokenizer is registered for the format.
func (r *Registry) Get(format beer.Format) beer.Tokenizer {
	return r.tokenizers[format]
}

// GetForVenue returns the tokenizer for the venue's declared format,
// falling back to the generic tokenizer.
func (r *Registry) GetForVenue(venue *beer.Venue) beer.Tokenizer {
	if tokenizer, ok := r.tokenizers[venue.Format]; ok {
		return tokenizer
	}
	return r.fallback
}

// Register adds a tokenizer for a format.
// If a tokenizer is already registered for the format, it is replaced.
func (r *Registry) Register(format beer.Format, tokenizer beer.Tokenizer) {
	r.tokenizers[format] = tokenizer
}

// List returns all registered formats.
func (r *Registry) List() []beer.Format {
	formats := make([]beer.Format, 0, len(r.tokenizers))
	for f := range r.tokenizers {
		formats = append(formats, f)
	}
	return formats
}
