package maildoc

import "context"

// MIMETypeHTML is the export format of documents read by maildoc.
const MIMETypeHTML = "text/html"

// Exporter exports documents from a document store.
type Exporter interface {
	// Export returns the document with the given ID rendered in mimeType.
	// Store failures (authentication, not found, network) are returned as-is.
	Export(ctx context.Context, documentID string, mimeType string) (string, error)
}
