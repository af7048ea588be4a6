package mock

import "github.com/fwojciec/maildoc"

// Compile-time interface verification.
var (
	_ maildoc.TableParser = (*TableParser)(nil)
	_ maildoc.Table       = (*Table)(nil)
)

// TableParser is a mock implementation of maildoc.TableParser.
type TableParser struct {
	ParseTableFn func(html string) (maildoc.Table, error)
}

func (p *TableParser) ParseTable(html string) (maildoc.Table, error) {
	return p.ParseTableFn(html)
}

// Table is a mock implementation of maildoc.Table.
type Table struct {
	FindValueFn func(key string, mode maildoc.ValueMode) (string, bool, error)
}

func (t *Table) FindValue(key string, mode maildoc.ValueMode) (string, bool, error) {
	return t.FindValueFn(key, mode)
}
