package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/maildoc"
	"github.com/fwojciec/maildoc/drive"
	"github.com/fwojciec/maildoc/fs"
	"github.com/fwojciec/maildoc/goquery"
	"github.com/fwojciec/maildoc/html2text"
	"github.com/fwojciec/maildoc/htmltomarkdown"
	mailhttp "github.com/fwojciec/maildoc/http"
	"github.com/fwojciec/maildoc/raymond"
	mailslog "github.com/fwojciec/maildoc/slog"
	"github.com/fwojciec/maildoc/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Exporter replaces the exporter built from configuration.
	// Used for end-to-end testing.
	Exporter maildoc.Exporter

	// Now returns the date stamped on eml output.
	Now func() time.Time

	// SQLite database, opened only for the sqlite template store.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Now: time.Now,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Now:    m.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("maildoc"),
		kong.Description("Extract e-mail templates from exported documents."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'maildoc --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := m.openStore(cli, deps); err != nil {
		return err
	}
	defer m.Close()

	if cmd == "download" || (cmd == "render" && !cli.Render.Offline) {
		exporter, err := m.exporter(ctx, cli, stderr)
		if err != nil {
			return err
		}
		deps.Exporter = mailslog.NewLoggingExporter(exporter, deps.Logger)
	}

	layout := html2text.NewConverter(html2text.WithPrettyTables())
	deps.Parser = goquery.NewTableParser(layout)
	deps.Renderer = raymond.NewRenderer()
	deps.Sanitizer = goquery.NewSanitizer()
	deps.Converters = map[string]maildoc.Converter{
		PlainText:     html2text.NewConverter(),
		PlainMarkdown: htmltomarkdown.NewConverter(),
	}

	return kongCtx.Run(deps)
}

// openStore wires the configured template store into deps.
func (m *Main) openStore(cli *CLI, deps *Dependencies) error {
	switch cli.Store {
	case StoreSQLite:
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(deps.Stderr, "Hint: Set MAILDOC_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		store := sqlite.NewTemplateStore(m.DB)
		deps.Store = mailslog.NewLoggingTemplateStore(store, deps.Logger)
		deps.History = store
	default:
		store := fs.NewTemplateStore(cli.TemplateDir)
		deps.Store = mailslog.NewLoggingTemplateStore(store, deps.Logger)
	}
	return nil
}

// exporter builds the exporter for the configured document source.
func (m *Main) exporter(ctx context.Context, cli *CLI, stderr io.Writer) (maildoc.Exporter, error) {
	if m.Exporter != nil {
		return m.Exporter, nil
	}
	if cli.Public {
		return mailhttp.NewExporter(), nil
	}
	if cli.Credentials == "" {
		fmt.Fprintln(stderr, "Hint: Set MAILDOC_CREDENTIALS to a service account key file, or pass --public for link-shared documents")
		return nil, fmt.Errorf("no credentials configured")
	}

	creds, err := drive.ReadCredentials(cli.Credentials)
	if err != nil {
		return nil, err
	}
	exporter, err := drive.NewExporter(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Google Drive: %w", err)
	}
	return exporter, nil
}
