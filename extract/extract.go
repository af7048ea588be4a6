// Package extract assembles MailRecords from exported documents.
// It coordinates table lookup, template rendering, sanitation and
// plain-text conversion, and wraps them with document export and
// storage of the exported copy.
package extract

import (
	"fmt"
	"html"
	"regexp"

	"github.com/fwojciec/maildoc"
)

// mustacheRe matches Handlebars expressions in serialized HTML.
var mustacheRe = regexp.MustCompile(`(?s)\{\{.*?\}\}`)

// Extractor turns one exported document into a MailRecord.
// It holds no per-call state and may be reused.
type Extractor struct {
	Parser    maildoc.TableParser
	Renderer  maildoc.Renderer
	Sanitizer maildoc.Sanitizer
	Converter maildoc.Converter
}

// Extract reads the addressing, subject and message rows of html and
// renders the subject and message for locale against vars.
//
// Missing rows are not errors: absent address rows leave the list nil and
// absent subject or message rows render as empty strings.
func (e *Extractor) Extract(html string, locale maildoc.Locale, vars map[string]any) (*maildoc.MailRecord, error) {
	table, err := e.Parser.ParseTable(html)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	rec := &maildoc.MailRecord{}
	if rec.To, err = addresses(table, maildoc.LabelTo); err != nil {
		return nil, err
	}
	if rec.CC, err = addresses(table, maildoc.LabelCC); err != nil {
		return nil, err
	}
	if rec.BCC, err = addresses(table, maildoc.LabelBCC); err != nil {
		return nil, err
	}

	subject, _, err := table.FindValue(locale.SubjectLabel(), maildoc.ModeText)
	if err != nil {
		return nil, fmt.Errorf("read subject: %w", err)
	}
	message, _, err := table.FindValue(locale.MessageLabel(), maildoc.ModeHTML)
	if err != nil {
		return nil, fmt.Errorf("read message: %w", err)
	}

	if rec.Subject, err = e.Renderer.Render(subject, vars); err != nil {
		return nil, fmt.Errorf("render subject: %w", err)
	}

	body, err := e.Renderer.Render(TemplateSource(message), vars)
	if err != nil {
		return nil, fmt.Errorf("render message: %w", err)
	}
	if body == "" {
		return rec, nil
	}

	if rec.MessageHTML, err = e.Sanitizer.Sanitize(body); err != nil {
		return nil, fmt.Errorf("sanitize message: %w", err)
	}
	if rec.MessagePlainText, err = e.Converter.Convert(rec.MessageHTML); err != nil {
		return nil, fmt.Errorf("convert message: %w", err)
	}

	return rec, nil
}

func addresses(table maildoc.Table, label string) ([]string, error) {
	v, ok, err := table.FindValue(label, maildoc.ModeText)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", label, err)
	}
	if !ok {
		return nil, nil
	}
	return maildoc.ParseAddresses(v), nil
}

// TemplateSource undoes HTML escaping inside Handlebars expressions of
// serialized HTML. Serializing a parsed document escapes quotes in text,
// which would otherwise turn {{createLink url "x"}} into an invalid
// expression. Markup outside the expressions is left untouched.
func TemplateSource(serialized string) string {
	return mustacheRe.ReplaceAllStringFunc(serialized, html.UnescapeString)
}
