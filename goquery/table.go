// Package goquery implements maildoc's HTML table lookup and sanitation
// on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/maildoc"
)

// Ensure types implement maildoc interfaces at compile time.
var (
	_ maildoc.TableParser = (*TableParser)(nil)
	_ maildoc.Table       = (*Table)(nil)
)

// TableParser parses exported documents into Tables.
type TableParser struct {
	converter maildoc.Converter
}

// NewTableParser creates a new TableParser. The converter is used for
// maildoc.ModeLayout lookups and may be nil if that mode is never requested.
func NewTableParser(converter maildoc.Converter) *TableParser {
	return &TableParser{converter: converter}
}

// ParseTable parses html and collects the rows of all tables in document order.
func (p *TableParser) ParseTable(html string) (maildoc.Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, maildoc.Errorf(maildoc.EINVALID, "failed to parse HTML: %v", err)
	}
	return newTable(doc.Selection, p.converter), nil
}

// row holds the cells of one table row.
type row []*goquery.Selection

// Table is an immutable snapshot of the rows of a parsed document.
type Table struct {
	rows      []row
	converter maildoc.Converter
}

func newTable(doc *goquery.Selection, converter maildoc.Converter) *Table {
	t := &Table{converter: converter}
	doc.Find("table tr").Each(func(_ int, tr *goquery.Selection) {
		var cells row
		tr.ChildrenFiltered("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, td)
		})
		t.rows = append(t.rows, cells)
	})
	return t
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// FindValue returns the value of the first row whose first cell reads key.
//
// The value is the row's second cell. When the row has no second cell, or
// the second cell is blank, the label is taken to sit on its own row and the
// value is read from the next row if that row has exactly one cell.
func (t *Table) FindValue(key string, mode maildoc.ValueMode) (string, bool, error) {
	for i, r := range t.rows {
		if len(r) == 0 || strings.TrimSpace(r[0].Text()) != key {
			continue
		}

		if len(r) > 1 && !isBlank(r[1]) {
			v, err := t.read(r[1], mode)
			return v, true, err
		}
		if i+1 < len(t.rows) && len(t.rows[i+1]) == 1 {
			v, err := t.read(t.rows[i+1][0], mode)
			return v, true, err
		}
		if len(r) > 1 {
			v, err := t.read(r[1], mode)
			return v, true, err
		}
		return "", false, nil
	}
	return "", false, nil
}

func (t *Table) read(cell *goquery.Selection, mode maildoc.ValueMode) (string, error) {
	switch mode {
	case maildoc.ModeText:
		return strings.TrimSpace(cell.Text()), nil
	case maildoc.ModeHTML:
		html, err := cell.Html()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(html), nil
	case maildoc.ModeLayout:
		if t.converter == nil {
			return "", maildoc.Errorf(maildoc.EINVALID, "layout mode requires a converter")
		}
		html, err := cell.Html()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(html) == "" {
			return "", nil
		}
		return t.converter.Convert(html)
	default:
		return "", maildoc.Errorf(maildoc.EINVALID, "unknown value mode %d", int(mode))
	}
}

// isBlank reports whether a cell holds no visible content.
func isBlank(cell *goquery.Selection) bool {
	return strings.TrimSpace(cell.Text()) == "" && cell.Find("img").Length() == 0
}
