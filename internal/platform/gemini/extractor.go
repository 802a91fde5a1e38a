// Package gemini provides a text extractor backed by Google's Gemini API.
// Plain-text uploads are read directly from disk; PDF uploads are sent to
// the model as inline bytes together with a fixed extraction instruction.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/takshila/paperbank-api/internal/config"
	"github.com/takshila/paperbank-api/internal/extraction"
)

// extractionPrompt is the fixed instruction sent to the model alongside the
// document bytes. The model is asked for the raw text only, so the result
// can be stored verbatim on the task record.
const extractionPrompt = "Extract the complete text content of the attached document. " +
	"Return only the extracted text, without any commentary, summaries, or formatting of your own."

// GeminiExtractor implements extraction.Extractor using the Gemini API.
type GeminiExtractor struct {
	logger *slog.Logger
	client *genai.Client
	model  string
}

// Compile-time check that GeminiExtractor satisfies the interface.
var _ extraction.Extractor = (*GeminiExtractor)(nil)

// NewGeminiExtractor creates a GeminiExtractor from the given configuration.
// It returns an error wrapping extraction.ErrInvalidConfig when the API key
// or model name is missing, and fails if the underlying client cannot be
// constructed.
func NewGeminiExtractor(ctx context.Context, logger *slog.Logger, cfg config.GeminiConfig) (*GeminiExtractor, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", extraction.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: gemini model name cannot be empty", extraction.ErrInvalidConfig)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiExtractor{
		logger: logger.With(slog.String("component", "gemini_extractor")),
		client: client,
		model:  cfg.ModelName,
	}, nil
}

// Extract implements extraction.Extractor.Extract. The strategy is chosen
// from the recorded file type, not from the path, so the decision made at
// upload time is the one that sticks.
func (e *GeminiExtractor) Extract(ctx context.Context, path, fileType string) (string, error) {
	switch fileType {
	case extraction.FileTypeText:
		return e.extractPlainText(ctx, path)
	case extraction.FileTypePDF:
		return e.extractPDF(ctx, path)
	default:
		return "", fmt.Errorf("%w: %s", extraction.ErrUnsupportedFileType, fileType)
	}
}

// extractPlainText reads the file contents directly. No model call is made
// for plain text.
func (e *GeminiExtractor) extractPlainText(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", extraction.ErrExtractionFailed, path, err)
	}

	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", extraction.ErrEmptyResult
	}

	e.logger.DebugContext(ctx, "Extracted plain text file",
		slog.String("path", path),
		slog.Int("bytes", len(data)))
	return text, nil
}

// extractPDF sends the document to Gemini as inline bytes and returns the
// model's text response.
func (e *GeminiExtractor) extractPDF(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", extraction.ErrExtractionFailed, path, err)
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(data, "application/pdf"),
		genai.NewPartFromText(extractionPrompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	e.logger.InfoContext(ctx, "Requesting PDF text extraction from Gemini",
		slog.String("model", e.model),
		slog.Int("bytes", len(data)))

	resp, err := e.client.Models.GenerateContent(ctx, e.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("%w: gemini request: %v", extraction.ErrExtractionFailed, err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", extraction.ErrEmptyResult
	}

	e.logger.DebugContext(ctx, "Gemini extraction completed",
		slog.Int("characters", len(text)))
	return text, nil
}
