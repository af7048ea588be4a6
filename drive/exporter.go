// Package drive exports documents through the Google Drive API using
// service account credentials.
package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/maildoc"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Credentials holds the service account fields needed to sign tokens.
// It is read from the JSON key file downloaded for the service account.
type Credentials struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// Validate returns an error if the credentials are incomplete.
func (c *Credentials) Validate() error {
	if c.ClientEmail == "" {
		return maildoc.Errorf(maildoc.EINVALID, "credentials client_email required")
	}
	if c.PrivateKey == "" {
		return maildoc.Errorf(maildoc.EINVALID, "credentials private_key required")
	}
	return nil
}

// ParseCredentials parses a service account JSON key.
func ParseCredentials(data []byte) (*Credentials, error) {
	var c Credentials
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, maildoc.Errorf(maildoc.EINVALID, "invalid credentials JSON: %v", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ReadCredentials reads and parses a service account JSON key file.
func ReadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	return ParseCredentials(data)
}

// Ensure Exporter implements maildoc.Exporter at compile time.
var _ maildoc.Exporter = (*Exporter)(nil)

// Exporter exports documents with the Drive files.export call.
type Exporter struct {
	service *drive.Service
}

// NewExporter creates an Exporter authenticated as the service account.
// The account only requests read-only Drive access.
func NewExporter(ctx context.Context, creds *Credentials, opts ...option.ClientOption) (*Exporter, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	conf := &jwt.Config{
		Email:      creds.ClientEmail,
		PrivateKey: []byte(creds.PrivateKey),
		Scopes:     []string{drive.DriveReadonlyScope},
		TokenURL:   google.JWTTokenURL,
	}

	opts = append([]option.ClientOption{option.WithHTTPClient(conf.Client(ctx))}, opts...)
	service, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return NewExporterWithService(service), nil
}

// NewExporterWithService creates an Exporter using an existing Drive service.
func NewExporterWithService(service *drive.Service) *Exporter {
	return &Exporter{service: service}
}

// Export downloads the document converted to mimeType.
// Drive API errors are returned unchanged (see googleapi.Error).
func (e *Exporter) Export(ctx context.Context, documentID string, mimeType string) (string, error) {
	resp, err := e.service.Files.Export(documentID, mimeType).Context(ctx).Download()
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
