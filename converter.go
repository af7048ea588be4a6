package maildoc

// Converter converts HTML to a plain-text rendering.
type Converter interface {
	// Convert transforms HTML content into text.
	// The result depends only on the input, never on prior calls.
	Convert(html string) (string, error)
}
