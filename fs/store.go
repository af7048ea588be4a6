// Package fs provides file-based storage for exported mail templates.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/maildoc"
)

// DefaultDir is the directory templates are written to by default,
// relative to the working directory.
const DefaultDir = "mail_templates"

// Ensure TemplateStore implements maildoc.TemplateStore at compile time.
var _ maildoc.TemplateStore = (*TemplateStore)(nil)

// TemplateStore keeps one HTML file per document, named <documentID>.html.
// Files are written to a temporary name first and renamed into place, so
// readers never observe a partially written template.
type TemplateStore struct {
	baseDir string
}

// NewTemplateStore creates a new TemplateStore writing to baseDir.
func NewTemplateStore(baseDir string) *TemplateStore {
	return &TemplateStore{baseDir: baseDir}
}

// Path returns the file path of the document's copy.
func (s *TemplateStore) Path(documentID string) string {
	return filepath.Join(s.baseDir, documentID+".html")
}

// Save writes html to the document's file and returns the file path.
func (s *TemplateStore) Save(ctx context.Context, documentID string, html string) (string, error) {
	if err := maildoc.ValidateDocumentID(documentID); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", err
	}

	path := s.Path(documentID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(html), 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}

	return path, nil
}

// Load reads the document's file.
func (s *TemplateStore) Load(ctx context.Context, documentID string) (string, error) {
	if err := maildoc.ValidateDocumentID(documentID); err != nil {
		return "", err
	}

	b, err := os.ReadFile(s.Path(documentID))
	if errors.Is(err, fs.ErrNotExist) {
		return "", maildoc.Errorf(maildoc.ENOTFOUND, "template %q not downloaded", documentID)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}
