package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Metadata describes an ingested document.
type Metadata struct {
	SourcePath string `json:"source_path"`
	Format     string `json:"format"` // "text", "pdf", or "html"
	Timestamp  string `json:"timestamp"`
	Hash       string `json:"hash"` // SHA256 hex digest of the cleaned text
	CharCount  int    `json:"char_count"`
	WordCount  int    `json:"word_count"`
}

// NewMetadata creates Metadata for cleaned document content.
func NewMetadata(content, sourcePath, format string) *Metadata {
	return &Metadata{
		SourcePath: sourcePath,
		Format:     format,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Hash:       computeHash(content),
		CharCount:  len(content),
		WordCount:  len(strings.Fields(content)),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
