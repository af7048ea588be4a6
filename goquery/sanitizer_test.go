package goquery_test

import (
	"testing"

	"github.com/fwojciec/maildoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style string
		want  string
	}{
		{
			name:  "keeps allowed declarations in order",
			style: "font-weight:bold; color:red; margin:10px",
			want:  "font-weight:bold; color:red",
		},
		{
			name:  "matches property names case-insensitively",
			style: "FONT-STYLE: italic;Text-Decoration: underline",
			want:  "FONT-STYLE: italic; Text-Decoration: underline",
		},
		{
			name:  "drops properties that only contain an allowed name",
			style: "background-color:#fff;color:#000;border-color:red",
			want:  "color:#000",
		},
		{
			name:  "drops everything outside the allow-list",
			style: "margin:0;padding:0;font-size:11pt;font-family:Arial",
			want:  "",
		},
		{
			name:  "ignores empty and malformed declarations",
			style: ";;color;font-weight: ;color:blue;",
			want:  "color:blue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, goquery.FilterStyle(tt.style))
		})
	}
}

func TestSanitizer_Sanitize(t *testing.T) {
	t.Parallel()

	t.Run("narrows inline styles to the allow-list", func(t *testing.T) {
		t.Parallel()

		out, err := goquery.NewSanitizer().Sanitize(`<p><span style="font-weight:bold; color:red; margin:10px">Hi</span></p>`)

		require.NoError(t, err)
		assert.Contains(t, out, `<span style="font-weight:bold; color:red">Hi</span>`)
		assert.NotContains(t, out, "margin")
	})

	t.Run("keeps empty style attribute", func(t *testing.T) {
		t.Parallel()

		out, err := goquery.NewSanitizer().Sanitize(`<div style="padding:4px">x</div>`)

		require.NoError(t, err)
		assert.Contains(t, out, `<div style="">x</div>`)
	})

	t.Run("replaces paragraph with single blank span by line break", func(t *testing.T) {
		t.Parallel()

		out, err := goquery.NewSanitizer().Sanitize(`<p>One</p><p class="c1"><span class="c2"> </span></p><p>Two</p>`)

		require.NoError(t, err)
		assert.Contains(t, out, "<p>One</p><br/><p>Two</p>")
		assert.NotContains(t, out, "c2")
	})

	t.Run("replaces paragraph with empty span by line break", func(t *testing.T) {
		t.Parallel()

		out, err := goquery.NewSanitizer().Sanitize(`<p><span></span></p>`)

		require.NoError(t, err)
		assert.Equal(t, "<html><head></head><body><br/></body></html>", out)
	})

	t.Run("leaves paragraphs with content unchanged", func(t *testing.T) {
		t.Parallel()

		src := `<p><span>Text</span></p><p><span> </span>tail</p><p><span> </span><span> </span></p><p><span><img src="x.png"/></span></p>`

		out, err := goquery.NewSanitizer().Sanitize(src)

		require.NoError(t, err)
		assert.Equal(t, "<html><head></head><body>"+src+"</body></html>", out)
	})

	t.Run("filters styles inside kept paragraphs", func(t *testing.T) {
		t.Parallel()

		out, err := goquery.NewSanitizer().Sanitize(`<p style="margin:0"><span style="font-style:italic;font-size:9pt">a</span></p>`)

		require.NoError(t, err)
		assert.Contains(t, out, `<p style=""><span style="font-style:italic">a</span></p>`)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			`<p><span style="font-weight:bold; color:red; margin:10px">Hi</span></p><p><span> </span></p>`,
			`<html><head><style>p{}</style></head><body><table><tr><td style="border:1px">x</td></tr></table></body></html>`,
			`plain text`,
			``,
		}
		s := goquery.NewSanitizer()

		for _, in := range inputs {
			once, err := s.Sanitize(in)
			require.NoError(t, err)
			twice, err := s.Sanitize(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		}
	})
}
