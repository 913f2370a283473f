// Package ingestion reads job descriptions and resumes from disk and turns
// them into cleaned plain text ready for extraction. Plain text, PDF, and
// HTML documents are supported.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SupportedExtensions lists the file extensions ReadDocument understands.
var SupportedExtensions = []string{".txt", ".md", ".pdf", ".html", ".htm"}

// ReadDocument reads a document from disk, converts it to plain text based on
// its file extension, and cleans it. Unknown extensions are treated as plain
// text.
func ReadDocument(path string) (string, *Metadata, error) {
	var (
		text   string
		format string
		err    error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		format = "pdf"
		text, err = readPDF(path)
	case ".html", ".htm":
		format = "html"
		text, err = readHTML(path)
	default:
		format = "text"
		text, err = readText(path)
	}
	if err != nil {
		return "", nil, err
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", nil, fmt.Errorf("document is empty: %s", path)
	}

	return cleaned, NewMetadata(cleaned, path, format), nil
}

func readText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(content), nil
}
