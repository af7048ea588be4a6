package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/maildoc"
	main "github.com/fwojciec/maildoc/cmd/maildoc"
	"github.com/fwojciec/maildoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockDependencies wires an extractor whose collaborators echo the
// rendered template data.
func mockDependencies(stdout, stderr *bytes.Buffer, gotVars *map[string]any) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Now:    time.Now,
		Exporter: &mock.Exporter{
			ExportFn: func(context.Context, string, string) (string, error) {
				return "<table></table>", nil
			},
		},
		Parser: &mock.TableParser{
			ParseTableFn: func(string) (maildoc.Table, error) {
				return &mock.Table{
					FindValueFn: func(key string, _ maildoc.ValueMode) (string, bool, error) {
						switch key {
						case maildoc.LabelTo:
							return "x@y.cz", true, nil
						case maildoc.LocaleCS.SubjectLabel():
							return "subject", true, nil
						case maildoc.LocaleCS.MessageLabel():
							return "<p>body</p>", true, nil
						}
						return "", false, nil
					},
				}, nil
			},
		},
		Renderer: &mock.Renderer{
			RenderFn: func(source string, data map[string]any) (string, error) {
				if gotVars != nil {
					*gotVars = data
				}
				return source, nil
			},
		},
		Sanitizer: &mock.Sanitizer{
			SanitizeFn: func(html string) (string, error) { return html, nil },
		},
		Converters: map[string]maildoc.Converter{
			main.PlainText: &mock.Converter{
				ConvertFn: func(string) (string, error) { return "plain", nil },
			},
			main.PlainMarkdown: &mock.Converter{
				ConvertFn: func(string) (string, error) { return "**markdown**", nil },
			},
		},
	}
}

func TestRenderCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints json record", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		cmd := &main.RenderCmd{DocumentID: "doc-1", Locale: "cs", Format: "json", Plain: "text"}

		err := cmd.Run(mockDependencies(stdout, stderr, nil))

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"to": [`)
		assert.Contains(t, stdout.String(), `"messageHtml": "<p>body</p>"`)
		assert.Contains(t, stdout.String(), `"messagePlainText": "plain"`)
	})

	t.Run("uses markdown rendition", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		cmd := &main.RenderCmd{DocumentID: "doc-1", Locale: "cs", Format: "text", Plain: "markdown"}

		err := cmd.Run(mockDependencies(stdout, stderr, nil))

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "**markdown**")
	})

	t.Run("passes merged variables to the renderer", func(t *testing.T) {
		t.Parallel()

		data := filepath.Join(t.TempDir(), "vars.yaml")
		require.NoError(t, os.WriteFile(data, []byte("name: Jan\ncount: 3\n"), 0o644))

		var got map[string]any
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		cmd := &main.RenderCmd{
			DocumentID: "doc-1",
			Locale:     "cs",
			Data:       data,
			Vars:       map[string]string{"name": "Eva"},
		}

		err := cmd.Run(mockDependencies(stdout, stderr, &got))

		require.NoError(t, err)
		assert.Equal(t, "Eva", got["name"])
		assert.Equal(t, 3, got["count"])
	})

	t.Run("rejects unsupported locale", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		cmd := &main.RenderCmd{DocumentID: "doc-1", Locale: "fr"}

		err := cmd.Run(mockDependencies(stdout, stderr, nil))

		require.Error(t, err)
		assert.Equal(t, maildoc.EINVALID, maildoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "unsupported locale")
	})
}

func TestLoadVars(t *testing.T) {
	t.Parallel()

	t.Run("returns empty map without inputs", func(t *testing.T) {
		t.Parallel()

		vars, err := main.LoadVars("", nil)

		require.NoError(t, err)
		assert.Empty(t, vars)
		assert.NotNil(t, vars)
	})

	t.Run("reads json data files", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "vars.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"order": {"id": "42"}, "url": "https://x.cz"}`), 0o644))

		vars, err := main.LoadVars(path, map[string]string{"extra": "1"})

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"id": "42"}, vars["order"])
		assert.Equal(t, "https://x.cz", vars["url"])
		assert.Equal(t, "1", vars["extra"])
	})

	t.Run("rejects malformed data files", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "vars.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: [unclosed"), 0o644))

		_, err := main.LoadVars(path, nil)

		assert.Equal(t, maildoc.EINVALID, maildoc.ErrorCode(err))
	})

	t.Run("rejects missing data files", func(t *testing.T) {
		t.Parallel()

		_, err := main.LoadVars(filepath.Join(t.TempDir(), "nope.yaml"), nil)

		require.Error(t, err)
		assert.False(t, errors.Is(err, os.ErrNotExist))
		assert.Equal(t, maildoc.EINVALID, maildoc.ErrorCode(err))
	})
}

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires a history store", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr}

		err := (&main.HistoryCmd{DocumentID: "doc-1"}).Run(deps)

		assert.Equal(t, maildoc.EINVALID, maildoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--store=sqlite")
	})
}
