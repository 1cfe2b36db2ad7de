package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lfe011969/local-beer-app/goquery"
)

func TestDocumentLines(t *testing.T) {
	t.Parallel()

	t.Run("flattens text in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<h2>On Tap</h2>
			<div><p>Golden Ale</p><p>5.0% ABV</p></div>
		</body></html>`

		lines, err := goquery.DocumentLines(html)
		require.NoError(t, err)

		assert.Equal(t, []string{"On Tap", "Golden Ale", "5.0% ABV"}, lines)
	})

	t.Run("collapses whitespace runs", func(t *testing.T) {
		t.Parallel()

		lines, err := goquery.DocumentLines("<p>  Hop \n\t Harvest   IPA  </p>")
		require.NoError(t, err)

		assert.Equal(t, []string{"Hop Harvest IPA"}, lines)
	})

	t.Run("skips script and style subtrees", func(t *testing.T) {
		t.Parallel()

		html := `<body>
			<script>var x = "not content";</script>
			<style>.menu { color: red }</style>
			<noscript>enable javascript</noscript>
			<p>Amber Lager</p>
		</body>`

		lines, err := goquery.DocumentLines(html)
		require.NoError(t, err)

		assert.Equal(t, []string{"Amber Lager"}, lines)
	})

	t.Run("empty document yields no lines", func(t *testing.T) {
		t.Parallel()

		lines, err := goquery.DocumentLines("<html><body></body></html>")
		require.NoError(t, err)

		assert.Empty(t, lines)
	})
}
