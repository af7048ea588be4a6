// Package html2text renders mail HTML as plain text using
// github.com/jaytaylor/html2text.
package html2text

import (
	"strings"

	"github.com/fwojciec/maildoc"
	"github.com/jaytaylor/html2text"
)

// Ensure Converter implements maildoc.Converter at compile time.
var _ maildoc.Converter = (*Converter)(nil)

// Converter converts HTML to plain text. Lines are never wrapped, so the
// explicit line breaks and block structure of the HTML are kept as-is.
type Converter struct {
	opts html2text.Options
}

// Option configures a Converter.
type Option func(*Converter)

// WithOmitLinks drops link targets and keeps only the link text.
func WithOmitLinks() Option {
	return func(c *Converter) {
		c.opts.OmitLinks = true
	}
}

// WithPrettyTables renders tables with ASCII borders.
func WithPrettyTables() Option {
	return func(c *Converter) {
		c.opts.PrettyTables = true
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms HTML content into plain text.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	text, err := html2text.FromString(html, c.opts)
	if err != nil {
		return "", maildoc.Errorf(maildoc.EINVALID, "failed to convert HTML to text: %v", err)
	}
	return text, nil
}
