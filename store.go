package maildoc

import (
	"context"
	"strings"
	"time"
)

// TemplateStore keeps copies of exported documents for inspection.
type TemplateStore interface {
	// Save stores html as the latest copy of the document and returns
	// a description of where it was written.
	Save(ctx context.Context, documentID string, html string) (location string, err error)

	// Load returns the latest stored copy of the document.
	// Returns ENOTFOUND if no copy has been saved.
	Load(ctx context.Context, documentID string) (string, error)
}

// ValidateDocumentID returns an error if id cannot identify a document.
// IDs are used to derive file names, so path separators are rejected.
func ValidateDocumentID(id string) error {
	if strings.TrimSpace(id) == "" {
		return Errorf(EINVALID, "document ID required")
	}
	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return Errorf(EINVALID, "invalid document ID %q", id)
	}
	return nil
}

// TemplateCopy describes one stored copy of a document.
type TemplateCopy struct {
	ID          string    `json:"id"`
	DocumentID  string    `json:"documentId"`
	ContentHash string    `json:"contentHash"`
	Size        int       `json:"size"`
	SavedAt     time.Time `json:"savedAt"`
}

// TemplateHistory lists the copies kept by stores that retain every save.
type TemplateHistory interface {
	// FindCopies returns copies of the document, newest first.
	// A limit of zero returns all copies.
	FindCopies(ctx context.Context, documentID string, limit int) ([]*TemplateCopy, error)
}
