// Package extraction defines the boundary between the application core and
// the external text-extraction service.
package extraction

import (
	"context"
	"path/filepath"
	"strings"
)

// Extractor defines the interface for extracting text from stored files.
// This interface serves as a boundary between the application core and
// external extraction services, following the hexagonal architecture pattern.
type Extractor interface {
	// Extract returns the text content of the file at path, selecting the
	// extraction strategy by fileType (see DetectFileType).
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - path: Filesystem location of the stored upload
	//   - fileType: The declared file type recorded on the task
	//
	// Returns:
	//   - The extracted text
	//   - An error if extraction fails for any reason (see errors.go for specific types)
	Extract(ctx context.Context, path, fileType string) (string, error)
}

// File types recognized by DetectFileType. Anything else is passed through
// as the bare extension and fails inside Extract.
const (
	FileTypePDF  = "pdf"
	FileTypeText = "text"
)

// DetectFileType classifies an uploaded file by its name. It never fails:
// unrecognized extensions are returned as-is (without the leading dot) so
// the accept path can record them on the task, and the extraction attempt
// reports the unsupported type. A file without an extension is "unknown".
func DetectFileType(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "pdf":
		return FileTypePDF
	case "txt", "text", "md":
		return FileTypeText
	case "":
		return "unknown"
	default:
		return ext
	}
}
