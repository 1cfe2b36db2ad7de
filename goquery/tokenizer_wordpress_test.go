package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	beer "github.com/lfe011969/local-beer-app"
	"github.com/lfe011969/local-beer-app/goquery"
)

func wordpressVenue() *beer.Venue {
	return &beer.Venue{
		Name:      "Tradition Brewing Company",
		SourceURL: "https://traditionbrewing.com/location/taproom/",
		Format:    beer.FormatWordPress,
		Profile: beer.Profile{
			SectionStart:   "What's On Tap",
			SectionEnd:     "WEEKLY LINEUP",
			BlockSeparator: "* * *",
			NoiseLines:     []string{"draft", "can"},
			StyleFromBody:  true,
		},
	}
}

func TestWordPressTokenizer(t *testing.T) {
	t.Parallel()

	tokenizer := goquery.NewWordPressTokenizer()

	t.Run("blocks between anchors become entries", func(t *testing.T) {
		t.Parallel()

		html := `<body>
			<p>Welcome to the taproom</p>
			<h2>What's On Tap</h2>
			<p>Minute of Angle MOA</p>
			<p>Double IPA</p>
			<p>8.5%</p>
			<p>* * *</p>
			<p>Angry Red</p>
			<p>Irish Red Ale</p>
			<p>5.6%</p>
			<h2>WEEKLY LINEUP</h2>
			<p>Trivia Tuesday</p>
		</body>`

		tokens, err := tokenizer.Tokenize(html, wordpressVenue())
		require.NoError(t, err)

		want := []beer.Token{
			{Role: beer.RoleEntryHeader, Text: "Minute of Angle MOA"},
			{Role: beer.RoleBodyText, Text: "Double IPA"},
			{Role: beer.RoleStatCandidate, Text: "8.5%"},
			{Role: beer.RoleEntryHeader, Text: "Angry Red"},
			{Role: beer.RoleBodyText, Text: "Irish Red Ale"},
			{Role: beer.RoleStatCandidate, Text: "5.6%"},
		}
		assert.Equal(t, want, tokens)
	})

	t.Run("missing anchor yields an empty stream", func(t *testing.T) {
		t.Parallel()

		html := `<body><p>Under construction</p></body>`

		tokens, err := tokenizer.Tokenize(html, wordpressVenue())
		require.NoError(t, err)
		assert.Empty(t, tokens)
	})

	t.Run("missing terminator runs to end of document", func(t *testing.T) {
		t.Parallel()

		html := `<body>
			<h2>What's On Tap</h2>
			<p>Angry Red</p>
			<p>5.6%</p>
		</body>`

		tokens, err := tokenizer.Tokenize(html, wordpressVenue())
		require.NoError(t, err)

		require.Len(t, tokens, 2)
		assert.Equal(t, beer.RoleEntryHeader, tokens[0].Role)
		assert.Equal(t, beer.RoleStatCandidate, tokens[1].Role)
	})

	t.Run("legend noise does not open a block", func(t *testing.T) {
		t.Parallel()

		html := `<body>
			<h2>What's On Tap</h2>
			<p>* * *</p>
			<p>draft</p>
			<p>Angry Red</p>
		</body>`

		tokens, err := tokenizer.Tokenize(html, wordpressVenue())
		require.NoError(t, err)

		require.Len(t, tokens, 1)
		assert.Equal(t, beer.Token{Role: beer.RoleEntryHeader, Text: "Angry Red"}, tokens[0])
	})
}
