package extract

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/maildoc"
)

// Service extracts mail data from one document in a document store.
type Service struct {
	// DocumentID identifies the document in the store.
	DocumentID string

	Exporter  maildoc.Exporter
	Store     maildoc.TemplateStore // optional
	Extractor *Extractor
	Logger    *slog.Logger // optional
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.Logger
}

// Download exports the document and stores a copy of it.
// Returns the location of the stored copy.
func (s *Service) Download(ctx context.Context) (string, error) {
	if err := maildoc.ValidateDocumentID(s.DocumentID); err != nil {
		return "", err
	}
	if s.Store == nil {
		return "", maildoc.Errorf(maildoc.EINVALID, "no template store configured")
	}

	html, err := s.Exporter.Export(ctx, s.DocumentID, maildoc.MIMETypeHTML)
	if err != nil {
		return "", err
	}

	return s.Store.Save(ctx, s.DocumentID, html)
}

// MailData exports the document and extracts the mail for locale.
//
// Export errors are returned unchanged. The exported copy is stored before
// extraction; a storage failure is logged and does not fail the call.
func (s *Service) MailData(ctx context.Context, locale maildoc.Locale, vars map[string]any) (*maildoc.MailRecord, error) {
	if err := maildoc.ValidateDocumentID(s.DocumentID); err != nil {
		return nil, err
	}
	if err := locale.Validate(); err != nil {
		return nil, err
	}

	html, err := s.Exporter.Export(ctx, s.DocumentID, maildoc.MIMETypeHTML)
	if err != nil {
		return nil, err
	}

	if s.Store != nil {
		if _, err := s.Store.Save(ctx, s.DocumentID, html); err != nil {
			s.logger().Warn("failed to store template copy",
				"document", s.DocumentID,
				"err", err,
			)
		}
	}

	return s.Extractor.Extract(html, locale, vars)
}

// MailDataFromStore extracts the mail for locale from the stored copy of
// the document without contacting the document store.
// Returns ENOTFOUND if the document was never downloaded.
func (s *Service) MailDataFromStore(ctx context.Context, locale maildoc.Locale, vars map[string]any) (*maildoc.MailRecord, error) {
	if err := maildoc.ValidateDocumentID(s.DocumentID); err != nil {
		return nil, err
	}
	if err := locale.Validate(); err != nil {
		return nil, err
	}
	if s.Store == nil {
		return nil, maildoc.Errorf(maildoc.EINVALID, "no template store configured")
	}

	html, err := s.Store.Load(ctx, s.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("load template copy: %w", err)
	}

	return s.Extractor.Extract(html, locale, vars)
}
