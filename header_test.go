package beer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	beer "github.com/lfe011969/local-beer-app"
)

func TestParseEntryHeader(t *testing.T) {
	t.Parallel()

	t.Run("strips the leading ordinal", func(t *testing.T) {
		t.Parallel()

		name, style := beer.ParseEntryHeader("12. Minute of Angle MOA", true)

		assert.Equal(t, "Minute of Angle MOA", name)
		assert.Empty(t, style)
	})

	t.Run("splits name and style on the first comma", func(t *testing.T) {
		t.Parallel()

		name, style := beer.ParseEntryHeader("1. Plain Old Lager (P.O.L.), Lager - Vienna", true)

		assert.Equal(t, "Plain Old Lager (P.O.L.)", name)
		assert.Equal(t, "Lager - Vienna", style)
	})

	t.Run("keeps commas in the name when comma style is off", func(t *testing.T) {
		t.Parallel()

		name, style := beer.ParseEntryHeader("Big, Bold Stout", false)

		assert.Equal(t, "Big, Bold Stout", name)
		assert.Empty(t, style)
	})

	t.Run("collapses internal whitespace", func(t *testing.T) {
		t.Parallel()

		name, _ := beer.ParseEntryHeader("  8.   SchWARz   Brr ", true)

		assert.Equal(t, "SchWARz Brr", name)
	})

	t.Run("only the first comma splits", func(t *testing.T) {
		t.Parallel()

		name, style := beer.ParseEntryHeader("2. Twofer, Lager, Dark", true)

		assert.Equal(t, "Twofer", name)
		assert.Equal(t, "Lager, Dark", style)
	})
}
