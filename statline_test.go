package beer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	beer "github.com/lfe011969/local-beer-app"
)

func TestParseStatLine(t *testing.T) {
	t.Parallel()

	t.Run("pipe-delimited with producer", func(t *testing.T) {
		t.Parallel()

		stat := beer.ParseStatLine("5.3% ABV | 22 IBU | Acme Brewing", "Venue")

		require.NotNil(t, stat.ABV)
		assert.InDelta(t, 5.3, *stat.ABV, 0.001)
		require.NotNil(t, stat.IBU)
		assert.Equal(t, 22, *stat.IBU)
		assert.Equal(t, "Acme Brewing", stat.Producer)
	})

	t.Run("bullet-delimited with N/A IBU and trailing delimiter", func(t *testing.T) {
		t.Parallel()

		stat := beer.ParseStatLine("4% ABV • N/A IBU • Acme Brewing •", "Venue")

		require.NotNil(t, stat.ABV)
		assert.InDelta(t, 4.0, *stat.ABV, 0.001)
		assert.Nil(t, stat.IBU, "N/A yields an absent value, not zero")
		assert.Equal(t, "Acme Brewing", stat.Producer)
	})

	t.Run("implausible IBU is rejected", func(t *testing.T) {
		t.Parallel()

		stat := beer.ParseStatLine("6.0% ABV | 999 IBU | Acme Brewing", "Venue")

		require.NotNil(t, stat.ABV)
		assert.Nil(t, stat.IBU)
	})

	t.Run("producer defaults to the venue when absent", func(t *testing.T) {
		t.Parallel()

		stat := beer.ParseStatLine("5.3% ABV | 22 IBU", "1700 Brewing")

		assert.Equal(t, "1700 Brewing", stat.Producer)
	})

	t.Run("style segment before the ABV segment", func(t *testing.T) {
		t.Parallel()

		stat := beer.ParseStatLine("Vienna Lager • 5.3% ABV | 22 IBU", "Venue")

		assert.Equal(t, "Vienna Lager", stat.Style)
		assert.Equal(t, "Venue", stat.Producer, "a pre-ABV segment is a style, not a producer")
	})

	t.Run("first percent marker wins", func(t *testing.T) {
		t.Parallel()

		stat := beer.ParseStatLine("5.5% ABV | 7.2% something", "Venue")

		require.NotNil(t, stat.ABV)
		assert.InDelta(t, 5.5, *stat.ABV, 0.001)
	})

	t.Run("keyword-first forms parse", func(t *testing.T) {
		t.Parallel()

		stat := beer.ParseStatLine("ABV 5.3% IBU 15", "Venue")

		require.NotNil(t, stat.ABV)
		assert.InDelta(t, 5.3, *stat.ABV, 0.001)
		require.NotNil(t, stat.IBU)
		assert.Equal(t, 15, *stat.IBU)
	})

	t.Run("no percent marker means no ABV", func(t *testing.T) {
		t.Parallel()

		stat := beer.ParseStatLine("ABV 5.3 | 22 IBU", "Venue")

		assert.Nil(t, stat.ABV)
	})

	t.Run("placeholder segments are skipped", func(t *testing.T) {
		t.Parallel()

		stat := beer.ParseStatLine("5.0% ABV | 10 IBU | N/A | Acme Brewing | -", "Venue")

		assert.Equal(t, "Acme Brewing", stat.Producer)
	})
}

func TestParseIBU(t *testing.T) {
	t.Parallel()

	t.Run("boundary values", func(t *testing.T) {
		t.Parallel()

		require.NotNil(t, beer.ParseIBU("1 IBU"))
		require.NotNil(t, beer.ParseIBU("150 IBU"))
		assert.Nil(t, beer.ParseIBU("0 IBU"))
		assert.Nil(t, beer.ParseIBU("151 IBU"))
	})

	t.Run("requires the keyword", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, beer.ParseIBU("22"))
	})
}

func TestHasStatMarker(t *testing.T) {
	t.Parallel()

	assert.True(t, beer.HasStatMarker("5.3% ABV"))
	assert.True(t, beer.HasStatMarker("ibu 15"))
	assert.False(t, beer.HasStatMarker("Hazy IPA"))
}
