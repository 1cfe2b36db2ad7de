package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	beer "github.com/lfe011969/local-beer-app"
	"github.com/lfe011969/local-beer-app/fs"
)

func testVenue() *beer.Venue {
	return &beer.Venue{
		Name:      "1700 Brewing",
		City:      "Newport News",
		SourceURL: "https://example.com/menu",
	}
}

func TestWriter_Path(t *testing.T) {
	t.Parallel()

	w := fs.NewWriter("data")
	assert.Equal(t, filepath.Join("data", "1700-brewing.json"), w.Path(testVenue()))
}

func TestWriter_WriteRecords(t *testing.T) {
	t.Parallel()

	t.Run("writes records with null optionals", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		abv := 5.0
		rec := &beer.Record{
			ID:           "1700-brewing-golden-ale",
			BreweryName:  "1700 Brewing",
			BreweryCity:  "Newport News",
			ProducerName: "1700 Brewing",
			Name:         "Golden Ale",
			ABV:          &abv,
			TapGroup:     "On Tap",
			Category:     beer.CategoryOnTap,
			SourceURL:    "https://example.com/menu",
			LastScraped:  "2026-08-26T12:00:00Z",
		}

		venue := testVenue()
		require.NoError(t, w.WriteRecords(context.Background(), venue, []*beer.Record{rec}))

		payload, err := os.ReadFile(w.Path(venue))
		require.NoError(t, err)

		out := string(payload)
		assert.Contains(t, out, `"id": "1700-brewing-golden-ale"`)
		assert.Contains(t, out, `"abv": 5`)
		assert.Contains(t, out, `"style": null`)
		assert.Contains(t, out, `"ibu": null`)
	})

	t.Run("empty record set writes an empty array", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		venue := testVenue()
		require.NoError(t, w.WriteRecords(context.Background(), venue, nil))

		payload, err := os.ReadFile(w.Path(venue))
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(payload))
	})

	t.Run("unchanged content does not rewrite the file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		venue := testVenue()
		records := []*beer.Record{{ID: "a", BreweryName: "B", Name: "N"}}

		require.NoError(t, w.WriteRecords(context.Background(), venue, records))

		before, err := os.Stat(w.Path(venue))
		require.NoError(t, err)

		// Make the next mtime distinguishable even on coarse clocks.
		past := time.Now().Add(-time.Hour)
		require.NoError(t, os.Chtimes(w.Path(venue), past, past))

		require.NoError(t, w.WriteRecords(context.Background(), venue, records))

		after, err := os.Stat(w.Path(venue))
		require.NoError(t, err)
		assert.True(t, after.ModTime().Before(before.ModTime()), "file must not be rewritten when content is unchanged")
	})

	t.Run("changed content rewrites the file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)
		venue := testVenue()

		require.NoError(t, w.WriteRecords(context.Background(), venue, []*beer.Record{{ID: "a", BreweryName: "B", Name: "N"}}))
		require.NoError(t, w.WriteRecords(context.Background(), venue, []*beer.Record{{ID: "b", BreweryName: "B", Name: "M"}}))

		payload, err := os.ReadFile(w.Path(venue))
		require.NoError(t, err)
		assert.Contains(t, string(payload), `"id": "b"`)
	})

	t.Run("creates the base directory on demand", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "out")
		w := fs.NewWriter(dir)

		require.NoError(t, w.WriteRecords(context.Background(), testVenue(), nil))

		_, err := os.Stat(filepath.Join(dir, "1700-brewing.json"))
		assert.NoError(t, err)
	})

	t.Run("canceled context is rejected", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		w := fs.NewWriter(t.TempDir())
		assert.Error(t, w.WriteRecords(ctx, testVenue(), nil))
	})
}
