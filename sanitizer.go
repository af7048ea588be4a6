package maildoc

// Sanitizer prepares rendered HTML for mail clients.
type Sanitizer interface {
	// Sanitize narrows inline styles to an allow-list and normalizes
	// empty paragraphs. Sanitizing already sanitized HTML is a no-op.
	Sanitize(html string) (string, error)
}
