package extraction

import "errors"

// Common errors returned by the extraction package
var (
	// ErrExtractionFailed is returned when text extraction fails for any general reason
	ErrExtractionFailed = errors.New("failed to extract text from file")

	// ErrUnsupportedFileType is returned when no extraction strategy exists for the file type
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrEmptyResult is returned when extraction succeeds but produces no text
	ErrEmptyResult = errors.New("extraction produced no text")

	// ErrInvalidConfig is returned when the extractor configuration is invalid
	ErrInvalidConfig = errors.New("invalid extractor configuration")
)
