package mock

import (
	"context"

	"github.com/fwojciec/maildoc"
)

var _ maildoc.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of maildoc.Exporter.
type Exporter struct {
	ExportFn func(ctx context.Context, documentID string, mimeType string) (string, error)
}

func (e *Exporter) Export(ctx context.Context, documentID string, mimeType string) (string, error) {
	return e.ExportFn(ctx, documentID, mimeType)
}
