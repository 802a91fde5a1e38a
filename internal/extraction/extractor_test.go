package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFileType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		want     string
	}{
		{"paper.pdf", FileTypePDF},
		{"Paper.PDF", FileTypePDF},
		{"notes.txt", FileTypeText},
		{"notes.text", FileTypeText},
		{"readme.md", FileTypeText},
		{"archive.tar.gz", "gz"},
		{"image.png", "png"},
		{"noextension", "unknown"},
		{"", "unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, DetectFileType(tc.filename))
		})
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	t.Parallel()

	assert.NotErrorIs(t, ErrUnsupportedFileType, ErrExtractionFailed)
	assert.NotErrorIs(t, ErrEmptyResult, ErrExtractionFailed)
}
