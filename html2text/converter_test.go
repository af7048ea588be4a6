package html2text_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/maildoc"
	"github.com/fwojciec/maildoc/html2text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements maildoc.Converter at compile time.
var _ maildoc.Converter = (*html2text.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("separates paragraphs by line breaks", func(t *testing.T) {
		t.Parallel()

		text, err := html2text.NewConverter().Convert(`<p>Hello</p><p>World</p>`)

		require.NoError(t, err)
		assert.Contains(t, text, "Hello\n")
		assert.Contains(t, text, "World")
		assert.NotContains(t, text, "<p>")
	})

	t.Run("keeps explicit line breaks", func(t *testing.T) {
		t.Parallel()

		text, err := html2text.NewConverter().Convert(`<p>first<br>second</p>`)

		require.NoError(t, err)
		assert.Contains(t, text, "first\nsecond")
	})

	t.Run("does not wrap long lines", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("word ", 60)

		text, err := html2text.NewConverter().Convert("<p>" + long + "</p>")

		require.NoError(t, err)
		assert.NotContains(t, strings.TrimSpace(text), "\n")
	})

	t.Run("includes link targets by default", func(t *testing.T) {
		t.Parallel()

		text, err := html2text.NewConverter().Convert(`<p><a href="https://example.com/pay">Pay now</a></p>`)

		require.NoError(t, err)
		assert.Contains(t, text, "Pay now")
		assert.Contains(t, text, "https://example.com/pay")
	})

	t.Run("omits link targets when configured", func(t *testing.T) {
		t.Parallel()

		text, err := html2text.NewConverter(html2text.WithOmitLinks()).Convert(`<p><a href="https://example.com/pay">Pay now</a></p>`)

		require.NoError(t, err)
		assert.Contains(t, text, "Pay now")
		assert.NotContains(t, text, "https://example.com/pay")
	})

	t.Run("returns empty text for empty input", func(t *testing.T) {
		t.Parallel()

		text, err := html2text.NewConverter().Convert("  ")

		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		html := `<html><head></head><body><p><span style="font-weight:bold">Hi</span></p><br/><p>Bye</p></body></html>`
		conv := html2text.NewConverter()

		first, err := conv.Convert(html)
		require.NoError(t, err)
		second, err := conv.Convert(html)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
