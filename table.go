package maildoc

// ValueMode selects how a cell value is read.
type ValueMode int

const (
	// ModeText returns the trimmed visible text of the cell.
	ModeText ValueMode = iota

	// ModeHTML returns the trimmed inner HTML of the cell.
	ModeHTML

	// ModeLayout returns the inner HTML converted to plain text with
	// line breaks and block structure preserved (no line wrapping).
	ModeLayout
)

// String returns the name of the mode.
func (m ValueMode) String() string {
	switch m {
	case ModeText:
		return "text"
	case ModeHTML:
		return "html"
	case ModeLayout:
		return "layout"
	default:
		return "unknown"
	}
}

// Table is a parsed snapshot of the table rows of a document.
type Table interface {
	// FindValue returns the value associated with the row labeled key.
	// The label is matched exactly against the trimmed text of a row's
	// first cell; the first matching row wins.
	// Returns false if no row carries the label.
	FindValue(key string, mode ValueMode) (string, bool, error)
}

// TableParser parses HTML documents into tables.
type TableParser interface {
	ParseTable(html string) (Table, error)
}
