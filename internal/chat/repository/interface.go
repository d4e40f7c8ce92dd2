package repository

import (
	"context"

	"python-docs-copilot/internal/model"
)

// VectorRepository handles vector store operations (Qdrant).
type VectorRepository interface {
	// EnsureCollection creates the collection if it does not exist.
	EnsureCollection(ctx context.Context) error

	// AddDocuments embeds and upserts document chunks, returning how
	// many were stored.
	AddDocuments(ctx context.Context, chunks []model.DocumentChunk) (int, error)

	// SimilaritySearch returns the k nearest chunks for the query.
	SimilaritySearch(ctx context.Context, query string, k int) ([]model.DocumentChunk, error)

	// SimilaritySearchWithScore returns the k nearest chunks with
	// their similarity scores.
	SimilaritySearchWithScore(ctx context.Context, query string, k int) ([]model.ScoredChunk, error)
}
