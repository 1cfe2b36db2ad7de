package beer

// DefaultVenues returns the configured venue set. Venue configuration is a
// static constant set: display name, city, canonical source URL, and the
// extraction profile for that venue's markup shape.
func DefaultVenues() []*Venue {
	return []*Venue{
		{
			Name:      "1700 Brewing",
			City:      "Newport News",
			SourceURL: "https://untappd.com/v/1700-brewing/10975639",
			Format:    FormatUntappd,
			Profile: Profile{
				GroupKeywords: []string{"Taps", "Reserves", "Coming Soon"},
				CategoryRules: []CategoryRule{
					{Keyword: "Reserves", Category: CategoryGuestNA},
					{Keyword: "Coming Soon", Category: CategoryComingSoon},
				},
				HeaderStyleAfterComma: true,
			},
		},
		{
			Name:       "Billsburg Brewery",
			City:       "Williamsburg",
			SourceURL:  "https://taplist.io/taplist-739667",
			RequiresJS: true,
			Format:     FormatTaplist,
			Profile: Profile{
				GroupKeywords: []string{"Coming Soon"},
				CategoryRules: []CategoryRule{
					{Keyword: "Coming Soon", Category: CategoryComingSoon},
				},
				BrewerMarker: "Billsburg Brewery",
				NoiseLines:   []string{"Taplist.io"},
				NoisePrefixes: []string{
					"Last Updated:",
					"Powered by",
					"#",
				},
			},
		},
		{
			Name:      "Tradition Brewing Company",
			City:      "Newport News",
			SourceURL: "https://traditionbrewing.com/location/taproom/",
			Format:    FormatWordPress,
			Profile: Profile{
				SectionStart:   "What's On Tap",
				SectionEnd:     "WEEKLY LINEUP",
				BlockSeparator: "* * *",
				NoiseLines: []string{
					// Serving-format legend icons rendered as text.
					"draft", "can", "bottle", "growler", "crowler",
					// Page navigation that bleeds into the text stream.
					"Taproom", "Visit Us", "Location", "Hours",
				},
				StyleFromBody: true,
			},
		},
	}
}

// FindVenue returns the configured venue whose name or slug matches,
// case-insensitively. Returns ENOTFOUND if no venue matches.
func FindVenue(venues []*Venue, name string) (*Venue, error) {
	want := Slugify(name)
	for _, v := range venues {
		if v.Slug() == want {
			return v, nil
		}
	}
	return nil, Errorf(ENOTFOUND, "venue %q not found", name)
}
