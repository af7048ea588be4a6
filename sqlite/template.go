package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/maildoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ maildoc.TemplateStore   = (*TemplateStore)(nil)
	_ maildoc.TemplateHistory = (*TemplateStore)(nil)
)

// TemplateStore implements maildoc.TemplateStore as an append-only log:
// every Save adds a copy and Load returns the newest one.
type TemplateStore struct {
	db *DB
}

// NewTemplateStore creates a new TemplateStore.
func NewTemplateStore(db *DB) *TemplateStore {
	return &TemplateStore{db: db}
}

// Save appends a copy of the document and returns "sqlite:<db path>#<copy ID>".
func (s *TemplateStore) Save(ctx context.Context, documentID string, html string) (string, error) {
	if err := maildoc.ValidateDocumentID(documentID); err != nil {
		return "", err
	}

	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO template_copies (id, document_id, html, content_hash, size, saved_at, seq)
		VALUES (?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM template_copies WHERE document_id = ?))
	`, id, documentID, html, hashContent(html), len(html), time.Now().UTC().Format(time.RFC3339Nano), documentID)
	if err != nil {
		return "", err
	}

	return "sqlite:" + s.db.Path() + "#" + id, nil
}

// Load returns the newest copy of the document.
func (s *TemplateStore) Load(ctx context.Context, documentID string) (string, error) {
	var html string
	err := s.db.QueryRowContext(ctx, `
		SELECT html FROM template_copies
		WHERE document_id = ?
		ORDER BY seq DESC
		LIMIT 1
	`, documentID).Scan(&html)

	if errors.Is(err, sql.ErrNoRows) {
		return "", maildoc.Errorf(maildoc.ENOTFOUND, "template %q not downloaded", documentID)
	}
	if err != nil {
		return "", err
	}
	return html, nil
}

// FindCopies returns the stored copies of the document, newest first.
func (s *TemplateStore) FindCopies(ctx context.Context, documentID string, limit int) ([]*maildoc.TemplateCopy, error) {
	query := `
		SELECT id, document_id, content_hash, size, saved_at FROM template_copies
		WHERE document_id = ?
		ORDER BY seq DESC`
	args := []any{documentID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var copies []*maildoc.TemplateCopy
	for rows.Next() {
		var c maildoc.TemplateCopy
		var savedAt string
		if err := rows.Scan(&c.ID, &c.DocumentID, &c.ContentHash, &c.Size, &savedAt); err != nil {
			return nil, err
		}
		if c.SavedAt, err = parseRFC3339(savedAt, "saved_at"); err != nil {
			return nil, err
		}
		copies = append(copies, &c)
	}

	return copies, rows.Err()
}
