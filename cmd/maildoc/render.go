package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/maildoc"
	"github.com/fwojciec/maildoc/extract"
	"github.com/fwojciec/maildoc/message"
	"gopkg.in/yaml.v3"
)

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	vars, err := LoadVars(c.Data, c.Vars)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", maildoc.ErrorMessage(err))
		return err
	}

	plain := c.Plain
	if plain == "" {
		plain = PlainText
	}
	converter, ok := deps.Converters[plain]
	if !ok {
		err := maildoc.Errorf(maildoc.EINVALID, "unknown plain-text rendition %q", plain)
		fmt.Fprintf(deps.Stderr, "error: %s\n", maildoc.ErrorMessage(err))
		return err
	}

	svc := &extract.Service{
		DocumentID: c.DocumentID,
		Exporter:   deps.Exporter,
		Store:      deps.Store,
		Logger:     deps.Logger,
		Extractor: &extract.Extractor{
			Parser:    deps.Parser,
			Renderer:  deps.Renderer,
			Sanitizer: deps.Sanitizer,
			Converter: converter,
		},
	}

	locale := maildoc.Locale(c.Locale)
	var rec *maildoc.MailRecord
	if c.Offline {
		rec, err = svc.MailDataFromStore(deps.Ctx, locale, vars)
	} else {
		rec, err = svc.MailData(deps.Ctx, locale, vars)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", maildoc.ErrorMessage(err))
		if maildoc.ErrorCode(err) == maildoc.ENOTFOUND && c.Offline {
			fmt.Fprintf(deps.Stderr, "Hint: Run 'maildoc download %s' first\n", c.DocumentID)
		}
		return err
	}

	return c.write(deps, rec)
}

func (c *RenderCmd) write(deps *Dependencies, rec *maildoc.MailRecord) error {
	switch c.Format {
	case "eml":
		return message.Write(deps.Stdout, rec, deps.Now())
	case "text":
		return writeText(deps.Stdout, rec)
	default:
		enc := json.NewEncoder(deps.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}
}

func writeText(w io.Writer, rec *maildoc.MailRecord) error {
	var b strings.Builder
	fmt.Fprintf(&b, "To: %s\n", strings.Join(rec.To, ", "))
	if len(rec.CC) > 0 {
		fmt.Fprintf(&b, "Cc: %s\n", strings.Join(rec.CC, ", "))
	}
	if len(rec.BCC) > 0 {
		fmt.Fprintf(&b, "Bcc: %s\n", strings.Join(rec.BCC, ", "))
	}
	fmt.Fprintf(&b, "Subject: %s\n\n", rec.Subject)
	b.WriteString(rec.MessagePlainText)
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// LoadVars builds the template variables from an optional YAML or JSON data
// file overlaid with key=value pairs from the command line.
func LoadVars(dataPath string, overrides map[string]string) (map[string]any, error) {
	vars := make(map[string]any)

	if dataPath != "" {
		data, err := os.ReadFile(dataPath)
		if err != nil {
			return nil, maildoc.Errorf(maildoc.EINVALID, "cannot read data file %q: %v", dataPath, err)
		}
		if err := yaml.Unmarshal(data, &vars); err != nil {
			return nil, maildoc.Errorf(maildoc.EINVALID, "cannot parse data file %q: %v", dataPath, err)
		}
		if vars == nil {
			vars = make(map[string]any)
		}
	}

	for k, v := range overrides {
		vars[k] = v
	}
	return vars, nil
}
