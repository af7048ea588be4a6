// Package slog wraps maildoc services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/maildoc"
)

// Ensure LoggingExporter implements maildoc.Exporter.
var _ maildoc.Exporter = (*LoggingExporter)(nil)

// LoggingExporter wraps an Exporter with logging.
type LoggingExporter struct {
	next   maildoc.Exporter
	logger *slog.Logger
}

// NewLoggingExporter creates a new LoggingExporter.
func NewLoggingExporter(next maildoc.Exporter, logger *slog.Logger) *LoggingExporter {
	return &LoggingExporter{next: next, logger: logger}
}

// Export delegates to the wrapped exporter and logs the operation.
func (e *LoggingExporter) Export(ctx context.Context, documentID string, mimeType string) (html string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("export",
			"document", documentID,
			"mime", mimeType,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Export(ctx, documentID, mimeType)
}
