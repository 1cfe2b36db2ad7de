package beer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	beer "github.com/lfe011969/local-beer-app"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	t.Run("lowercases and hyphenates", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "golden-ale", beer.Slugify("Golden Ale"))
	})

	t.Run("collapses non-alphanumeric runs to one hyphen", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "plain-old-lager-p-o-l", beer.Slugify("Plain Old Lager (P.O.L.)"))
	})

	t.Run("strips apostrophes and smart quotes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "bills-best", beer.Slugify("Bill's Best"))
		assert.Equal(t, "bills-best", beer.Slugify("Bill’s Best"))
	})

	t.Run("no leading or trailing hyphen", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "schwarz-brr", beer.Slugify("  SchWARz Brr! "))
	})

	t.Run("deterministic on repeated calls", func(t *testing.T) {
		t.Parallel()

		in := "1700 Brewing Minute of Angle MOA"
		assert.Equal(t, beer.Slugify(in), beer.Slugify(in))
	})

	t.Run("output contains only lowercase alphanumerics and hyphens", func(t *testing.T) {
		t.Parallel()

		out := beer.Slugify("Weird\tName • 100% Grüße!!")
		for _, r := range out {
			ok := r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
			assert.True(t, ok, "unexpected rune %q in %q", r, out)
		}
		assert.NotEmpty(t, out)
		assert.NotContains(t, out, "--")
	})
}

func TestRecordID(t *testing.T) {
	t.Parallel()

	t.Run("combines venue and entry name", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "1700-brewing-golden-ale", beer.RecordID("1700 Brewing", "Golden Ale"))
	})

	t.Run("different entry names yield different ids", func(t *testing.T) {
		t.Parallel()

		assert.NotEqual(t,
			beer.RecordID("1700 Brewing", "Golden Ale"),
			beer.RecordID("1700 Brewing", "Amber Ale"),
		)
	})
}

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	t.Run("keeps lowercase alphanumerics only", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "pollager", beer.NormalizeKey("P.O.L. Lager"))
		assert.Equal(t, "pollager", beer.NormalizeKey("POL Lager"))
	})

	t.Run("empty input yields empty key", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, beer.NormalizeKey("  ..!  "))
	})
}
