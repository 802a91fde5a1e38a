package upload

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreValidatesInputs(t *testing.T) {
	t.Parallel()

	_, err := NewStore("", slog.Default())
	assert.Error(t, err)

	_, err = NewStore(t.TempDir(), nil)
	assert.Error(t, err)
}

func TestNewStoreCreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewStore(dir, slog.Default())

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveWritesContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := NewStore(dir, slog.Default())
	require.NoError(t, err)

	path, err := store.Save("notes.txt", strings.NewReader("hello extraction"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, dir))
	assert.True(t, strings.HasSuffix(path, "_notes.txt"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello extraction", string(content))
}

func TestSaveAvoidsCollisions(t *testing.T) {
	t.Parallel()

	store, err := NewStore(t.TempDir(), slog.Default())
	require.NoError(t, err)

	first, err := store.Save("paper.pdf", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save("paper.pdf", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSaveSanitizesFilename(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := NewStore(dir, slog.Default())
	require.NoError(t, err)

	path, err := store.Save("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, "_passwd"))

	path, err = store.Save("", strings.NewReader("y"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "_upload"))
}
