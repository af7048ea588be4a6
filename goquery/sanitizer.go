package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/maildoc"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Sanitizer implements maildoc.Sanitizer at compile time.
var _ maildoc.Sanitizer = (*Sanitizer)(nil)

// allowedStyleProperties lists the inline style properties that survive sanitation.
var allowedStyleProperties = map[string]bool{
	"font-weight":     true,
	"text-decoration": true,
	"font-style":      true,
	"color":           true,
}

// Sanitizer strips inline styling that mail clients render inconsistently.
type Sanitizer struct{}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{}
}

// Sanitize filters every style attribute through FilterStyle and replaces
// paragraphs holding a single empty span with a line break.
// Returns the whole serialized document.
func (s *Sanitizer) Sanitize(src string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return "", maildoc.Errorf(maildoc.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("[style]").Each(func(_ int, sel *goquery.Selection) {
		style, _ := sel.Attr("style")
		sel.SetAttr("style", FilterStyle(style))
	})

	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		if isEmptyParagraph(p) {
			p.ReplaceWithNodes(&html.Node{Type: html.ElementNode, Data: "br", DataAtom: atom.Br})
		}
	})

	return doc.Html()
}

// FilterStyle keeps the declarations of an inline style whose property is
// allowed and joins them with "; ". Declarations keep their original text.
// Returns an empty string if nothing is kept.
func FilterStyle(style string) string {
	var kept []string
	for _, decl := range strings.Split(style, ";") {
		decl = strings.TrimSpace(decl)
		name, value, ok := strings.Cut(decl, ":")
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		if allowedStyleProperties[strings.ToLower(strings.TrimSpace(name))] {
			kept = append(kept, decl)
		}
	}
	return strings.Join(kept, "; ")
}

// isEmptyParagraph reports whether p contains nothing but one span whose
// content is whitespace. This is how exported documents encode blank lines.
func isEmptyParagraph(p *goquery.Selection) bool {
	var span *html.Node
	for c := p.Nodes[0].FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return false
			}
		case html.CommentNode:
		case html.ElementNode:
			if span != nil || c.DataAtom != atom.Span {
				return false
			}
			span = c
		default:
			return false
		}
	}
	if span == nil {
		return false
	}

	sel := p.ChildrenFiltered("span")
	return sel.Children().Length() == 0 && strings.TrimSpace(sel.Text()) == ""
}
