package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/maildoc"
)

// Ensure LoggingTemplateStore implements maildoc.TemplateStore.
var _ maildoc.TemplateStore = (*LoggingTemplateStore)(nil)

// LoggingTemplateStore wraps a TemplateStore with debug logging.
type LoggingTemplateStore struct {
	next   maildoc.TemplateStore
	logger *slog.Logger
}

// NewLoggingTemplateStore creates a new LoggingTemplateStore.
func NewLoggingTemplateStore(next maildoc.TemplateStore, logger *slog.Logger) *LoggingTemplateStore {
	return &LoggingTemplateStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the operation.
func (s *LoggingTemplateStore) Save(ctx context.Context, documentID string, html string) (location string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("template save",
			"document", documentID,
			"location", location,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, documentID, html)
}

// Load delegates to the wrapped store and logs the operation.
func (s *LoggingTemplateStore) Load(ctx context.Context, documentID string) (html string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("template load",
			"document", documentID,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx, documentID)
}
