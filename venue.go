package beer

import "strings"

// Format identifies the markup shape of a venue's menu page.
type Format string

// Supported menu page formats.
const (
	FormatUnknown   Format = ""
	FormatUntappd   Format = "untappd"
	FormatTaplist   Format = "taplist"
	FormatWordPress Format = "wordpress"
)

// DefaultLookahead bounds the number of body lines scanned after an entry
// header before a pending entry is abandoned. Keeps malformed pages from
// swallowing the rest of the document into one entry.
const DefaultLookahead = 8

// CategoryRule maps a tap-group keyword to a record category.
// Rules are evaluated in order; the first keyword contained in the group
// label wins.
type CategoryRule struct {
	Keyword  string
	Category string
}

// Profile is a declarative extraction descriptor for one venue's markup
// shape. A single generic engine interprets profiles instead of each venue
// getting a bespoke procedure.
type Profile struct {
	// GroupKeywords mark a heading as a tap-group boundary. Headings that
	// contain none of these are ignored and do not change scanner state.
	GroupKeywords []string

	// CategoryRules derive the record category from the tap-group label.
	CategoryRules []CategoryRule

	// DefaultGroup is the tap-group label before any group heading is seen.
	DefaultGroup string

	// BrewerMarker, when non-empty, identifies entry headers in flat-line
	// formats: a line immediately followed by this marker line is a header.
	BrewerMarker string

	// SectionStart and SectionEnd bound the menu section in formats where
	// the tap list is embedded in a larger page. Matching is
	// case-insensitive. An empty SectionStart means the whole document.
	SectionStart string
	SectionEnd   string

	// BlockSeparator, when non-empty, separates entry blocks in flat-line
	// formats (e.g. "* * *").
	BlockSeparator string

	// NoiseLines and NoisePrefixes filter boilerplate from the line stream.
	NoiseLines    []string
	NoisePrefixes []string

	// MaxLookahead overrides DefaultLookahead when positive.
	MaxLookahead int

	// HeaderStyleAfterComma splits entry headers on the first comma into
	// name and inline style hint. Off for formats where names may contain
	// commas.
	HeaderStyleAfterComma bool

	// StyleFromBody derives a missing style from short non-stat body lines
	// (used by block formats that list the style on its own line).
	StyleFromBody bool
}

// CategoryFor derives the record category from a tap-group label using the
// profile's ordered rules. Falls back to CategoryOnTap.
func (p *Profile) CategoryFor(group string) string {
	for _, rule := range p.CategoryRules {
		if containsFold(group, rule.Keyword) {
			return rule.Category
		}
	}
	return CategoryOnTap
}

// IsGroupHeading reports whether a heading label marks a tap-group boundary.
func (p *Profile) IsGroupHeading(text string) bool {
	for _, kw := range p.GroupKeywords {
		if containsFold(text, kw) {
			return true
		}
	}
	return false
}

// IsNoise reports whether a line is boilerplate to be dropped.
func (p *Profile) IsNoise(line string) bool {
	for _, n := range p.NoiseLines {
		if strings.EqualFold(line, n) {
			return true
		}
	}
	for _, prefix := range p.NoisePrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// Lookahead returns the entry body scan budget.
func (p *Profile) Lookahead() int {
	if p.MaxLookahead > 0 {
		return p.MaxLookahead
	}
	return DefaultLookahead
}

// Group returns the initial tap-group label.
func (p *Profile) Group() string {
	if p.DefaultGroup != "" {
		return p.DefaultGroup
	}
	return "On Tap"
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Venue describes one establishment whose menu is extracted: identity
// fields copied onto every record plus the extraction profile for its
// markup shape. Venue configuration is static; nothing is derived from
// the document.
type Venue struct {
	Name      string
	City      string
	SourceURL string

	// EnrichmentURL points at an optional secondary document used to fill
	// style/ABV fields the primary page omits. Empty disables enrichment.
	EnrichmentURL string

	// RequiresJS indicates the page needs a browser to render (the static
	// HTML is an empty shell).
	RequiresJS bool

	Format  Format
	Profile Profile
}

// Validate returns an error if the venue configuration is incomplete.
func (v *Venue) Validate() error {
	if v.Name == "" {
		return Errorf(EINVALID, "venue name required")
	}
	if v.SourceURL == "" {
		return Errorf(EINVALID, "venue source URL required")
	}
	return nil
}

// Slug returns the venue's URL-safe identifier, used for output file names.
func (v *Venue) Slug() string {
	return Slugify(v.Name)
}
