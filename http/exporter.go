// Package http provides an HTTP-based implementation of maildoc.Exporter
// for documents shared publicly by link. No credentials are needed.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/maildoc"
)

// DefaultBaseURL is the prefix of public Google Docs document URLs.
const DefaultBaseURL = "https://docs.google.com/document/d/"

// DefaultExportTimeout is the default timeout for export requests.
const DefaultExportTimeout = 30 * time.Second

// exportFormats maps MIME types to the format parameter of export links.
var exportFormats = map[string]string{
	maildoc.MIMETypeHTML: "html",
	"text/plain":         "txt",
}

// Ensure Exporter implements maildoc.Exporter at compile time.
var _ maildoc.Exporter = (*Exporter)(nil)

// Exporter downloads documents through their public export links.
type Exporter struct {
	client  *http.Client
	timeout time.Duration
	baseURL string
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithTimeout sets the timeout for export requests.
// Defaults to DefaultExportTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(e *Exporter) {
		e.timeout = d
	}
}

// WithBaseURL sets the URL prefix documents are exported from.
// Defaults to DefaultBaseURL if not specified.
func WithBaseURL(u string) Option {
	return func(e *Exporter) {
		e.baseURL = u
	}
}

// NewExporter creates a new HTTP-based Exporter.
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{
		timeout: DefaultExportTimeout,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.client = &http.Client{
		Timeout: e.timeout,
	}

	return e
}

// ExportURL returns the export link of the document.
func (e *Exporter) ExportURL(documentID string, format string) string {
	return e.baseURL + url.PathEscape(documentID) + "/export?format=" + url.QueryEscape(format)
}

// Export downloads the document in the given MIME type.
// Returns ENOTFOUND if the document does not exist or is not shared publicly.
func (e *Exporter) Export(ctx context.Context, documentID string, mimeType string) (string, error) {
	format, ok := exportFormats[mimeType]
	if !ok {
		return "", maildoc.Errorf(maildoc.EINVALID, "unsupported export type %q", mimeType)
	}

	exportURL := e.ExportURL(documentID, format)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, exportURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", maildoc.Errorf(maildoc.ENOTFOUND, "document %q not found", documentID)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, exportURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
