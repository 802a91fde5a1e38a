package gemini

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takshila/paperbank-api/internal/config"
	"github.com/takshila/paperbank-api/internal/extraction"
)

func testConfig() config.GeminiConfig {
	return config.GeminiConfig{
		APIKey:    "test-api-key",
		ModelName: "gemini-2.0-flash",
	}
}

func newTestExtractor(t *testing.T) *GeminiExtractor {
	t.Helper()
	extractor, err := NewGeminiExtractor(context.Background(), slog.Default(), testConfig())
	require.NoError(t, err)
	require.NotNil(t, extractor)
	return extractor
}

func TestNewGeminiExtractor_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("nil logger", func(t *testing.T) {
		t.Parallel()
		extractor, err := NewGeminiExtractor(ctx, nil, testConfig())
		assert.Error(t, err)
		assert.Nil(t, extractor)
		assert.Contains(t, err.Error(), "logger cannot be nil")
	})

	t.Run("empty API key", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig()
		cfg.APIKey = ""
		extractor, err := NewGeminiExtractor(ctx, slog.Default(), cfg)
		assert.ErrorIs(t, err, extraction.ErrInvalidConfig)
		assert.Nil(t, extractor)
	})

	t.Run("empty model name", func(t *testing.T) {
		t.Parallel()
		cfg := testConfig()
		cfg.ModelName = ""
		extractor, err := NewGeminiExtractor(ctx, slog.Default(), cfg)
		assert.ErrorIs(t, err, extraction.ErrInvalidConfig)
		assert.Nil(t, extractor)
	})

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		extractor, err := NewGeminiExtractor(ctx, slog.Default(), testConfig())
		require.NoError(t, err)
		assert.NotNil(t, extractor)
	})
}

func TestExtract_PlainText(t *testing.T) {
	t.Parallel()
	extractor := newTestExtractor(t)
	ctx := context.Background()

	t.Run("reads file contents", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("Midterm covers chapters 1 through 4."), 0o600))

		text, err := extractor.Extract(ctx, path, extraction.FileTypeText)
		require.NoError(t, err)
		assert.Equal(t, "Midterm covers chapters 1 through 4.", text)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "missing.txt")

		text, err := extractor.Extract(ctx, path, extraction.FileTypeText)
		assert.ErrorIs(t, err, extraction.ErrExtractionFailed)
		assert.Empty(t, text)
	})

	t.Run("whitespace-only file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "blank.txt")
		require.NoError(t, os.WriteFile(path, []byte("  \n\t\n"), 0o600))

		text, err := extractor.Extract(ctx, path, extraction.FileTypeText)
		assert.ErrorIs(t, err, extraction.ErrEmptyResult)
		assert.Empty(t, text)
	})
}

func TestExtract_UnsupportedType(t *testing.T) {
	t.Parallel()
	extractor := newTestExtractor(t)

	text, err := extractor.Extract(context.Background(), "/tmp/out.docx", "docx")
	assert.ErrorIs(t, err, extraction.ErrUnsupportedFileType)
	assert.Contains(t, err.Error(), "docx")
	assert.Empty(t, text)
}

func TestExtract_PDFReadFailure(t *testing.T) {
	t.Parallel()
	extractor := newTestExtractor(t)

	// A missing file fails before any network call is attempted.
	path := filepath.Join(t.TempDir(), "missing.pdf")
	text, err := extractor.Extract(context.Background(), path, extraction.FileTypePDF)
	assert.ErrorIs(t, err, extraction.ErrExtractionFailed)
	assert.Empty(t, text)
}
