package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/maildoc"
)

// Template store kinds.
const (
	StoreFS     = "fs"
	StoreSQLite = "sqlite"
)

// Plain-text renditions of the message body.
const (
	PlainText     = "text"
	PlainMarkdown = "markdown"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Now    func() time.Time

	Exporter maildoc.Exporter
	Store    maildoc.TemplateStore
	History  maildoc.TemplateHistory

	Parser     maildoc.TableParser
	Renderer   maildoc.Renderer
	Sanitizer  maildoc.Sanitizer
	Converters map[string]maildoc.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Credentials string `env:"MAILDOC_CREDENTIALS" help:"Service account key file for Google Drive"`
	Public      bool   `env:"MAILDOC_PUBLIC" help:"Export link-shared documents without credentials"`
	TemplateDir string `env:"MAILDOC_TEMPLATE_DIR" default:"mail_templates" type:"path" help:"Directory for downloaded template copies"`
	Store       string `env:"MAILDOC_STORE" default:"fs" enum:"fs,sqlite" help:"Template copy store (fs, sqlite)"`
	DB          string `env:"MAILDOC_DB" default:"maildoc.db" type:"path" help:"SQLite database path for --store=sqlite"`
	Verbose     bool   `short:"v" help:"Enable debug logging"`

	Download DownloadCmd `cmd:"" help:"Export a document and store a copy of it"`
	Render   RenderCmd   `cmd:"" help:"Render the e-mail described by a document"`
	History  HistoryCmd  `cmd:"" help:"List stored copies of a document (sqlite store)"`
}

// DownloadCmd is the "download" subcommand.
type DownloadCmd struct {
	DocumentID string `arg:"" name:"doc-id" help:"Document ID"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	DocumentID string            `arg:"" name:"doc-id" help:"Document ID"`
	Locale     string            `short:"l" default:"cs" enum:"cs,en,sk,pl,de" help:"Locale of the subject and message rows"`
	Vars       map[string]string `name:"var" mapsep:"none" help:"Template variable as key=value (repeatable)"`
	Data       string            `type:"path" help:"YAML or JSON file with template variables"`
	Offline    bool              `help:"Render from the stored copy without exporting"`
	Format     string            `default:"json" enum:"json,text,eml" help:"Output format (json, text, eml)"`
	Plain      string            `default:"text" enum:"text,markdown" help:"Plain-text rendition (text, markdown)"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	DocumentID string `arg:"" name:"doc-id" help:"Document ID"`
	Limit      int    `short:"n" default:"10" help:"Maximum number of copies to list (0 for all)"`
}
