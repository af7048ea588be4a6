package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/maildoc"
	"github.com/fwojciec/maildoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("writes html named after the document", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewTemplateStore(dir)

		path, err := store.Save(context.Background(), "doc-1", "<table></table>")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "doc-1.html"), path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<table></table>", string(content))
	})

	t.Run("creates the directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), fs.DefaultDir)
		store := fs.NewTemplateStore(dir)

		_, err := store.Save(context.Background(), "doc-1", "<p>x</p>")

		require.NoError(t, err)
		assert.DirExists(t, dir)
	})

	t.Run("overwrites previous copy without leaving temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewTemplateStore(dir)
		ctx := context.Background()

		_, err := store.Save(ctx, "doc-1", "old")
		require.NoError(t, err)
		_, err = store.Save(ctx, "doc-1", "new")
		require.NoError(t, err)

		got, err := store.Load(ctx, "doc-1")
		require.NoError(t, err)
		assert.Equal(t, "new", got)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("rejects IDs that escape the directory", func(t *testing.T) {
		t.Parallel()

		store := fs.NewTemplateStore(t.TempDir())

		_, err := store.Save(context.Background(), "../doc", "x")

		require.Error(t, err)
		assert.Equal(t, maildoc.EINVALID, maildoc.ErrorCode(err))
	})

	t.Run("returns error when directory cannot be created", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
		store := fs.NewTemplateStore(filepath.Join(file, "sub"))

		_, err := store.Save(context.Background(), "doc-1", "x")

		require.Error(t, err)
	})
}

func TestTemplateStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("returns not found for unknown document", func(t *testing.T) {
		t.Parallel()

		store := fs.NewTemplateStore(t.TempDir())

		_, err := store.Load(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, maildoc.ENOTFOUND, maildoc.ErrorCode(err))
	})
}
