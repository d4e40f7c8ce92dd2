package model

import (
	"crypto/sha256"
	"encoding/hex"
)

// DocumentChunk is an immutable unit of retrieved context: a piece of
// library documentation plus the metadata needed for citation.
type DocumentChunk struct {
	Content  string                 // Chunk text
	Source   string                 // Source identifier (file, URL)
	Category string                 // Library / category (e.g. "pandas")
	Metadata map[string]interface{} // Additional key-values from the loader
}

// ScoredChunk pairs a chunk with its similarity score.
type ScoredChunk struct {
	Chunk DocumentChunk
	Score float64
}

// ContentHash returns the deterministic fingerprint of the chunk text,
// used for deduplication across query variants.
func (d DocumentChunk) ContentHash() string {
	sum := sha256.Sum256([]byte(d.Content))
	return hex.EncodeToString(sum[:])
}
