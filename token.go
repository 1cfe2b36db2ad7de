package beer

// TokenRole classifies a line of menu text by its structural role.
// Tokenizing the document once, up front, decouples markup-shape quirks
// from the extraction state machine.
type TokenRole string

// Token roles emitted by tokenizers.
const (
	RoleHeading       TokenRole = "heading"
	RoleEntryHeader   TokenRole = "entryHeader"
	RoleStatCandidate TokenRole = "statCandidate"
	RoleBodyText      TokenRole = "bodyText"
)

// Token is one element of the flat, ordered token stream produced from a
// menu document. Order follows the source document.
type Token struct {
	Role TokenRole
	Text string
}

// Tokenizer converts a venue's rendered HTML into a role-tagged token
// stream according to the venue's extraction profile.
type Tokenizer interface {
	// Tokenize parses HTML and returns tokens in document order.
	// A page missing its structural anchor yields an empty stream,
	// not an error.
	Tokenize(html string, venue *Venue) ([]Token, error)

	// Name returns the tokenizer's identifier (e.g., "untappd", "generic").
	Name() string
}

// TokenizerRegistry manages format-specific tokenizers.
type TokenizerRegistry interface {
	// Get returns the tokenizer for a specific format.
	// Returns nil if no tokenizer is registered for the format.
	Get(format Format) Tokenizer

	// GetForVenue returns the tokenizer for the venue's format, falling
	// back to a generic tokenizer for unknown formats.
	GetForVenue(venue *Venue) Tokenizer

	// Register adds a tokenizer for a format.
	Register(format Format, tokenizer Tokenizer)

	// List returns all registered formats.
	List() []Format
}
