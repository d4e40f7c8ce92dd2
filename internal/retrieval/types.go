package retrieval

import (
	"context"

	"python-docs-copilot/internal/model"
)

// Retrieval strategy names surfaced in chat responses.
const (
	StrategyMultiQuery    = "multi-query"
	StrategyDecomposition = "decomposition"
)

// decompositionWordThreshold is the question length, in words, beyond
// which decomposition replaces multi-query expansion.
const decompositionWordThreshold = 15

// Searcher is the vector store surface the engine retrieves against.
type Searcher interface {
	SimilaritySearch(ctx context.Context, query string, k int) ([]model.DocumentChunk, error)
	SimilaritySearchWithScore(ctx context.Context, query string, k int) ([]model.ScoredChunk, error)
}

// Result is the outcome of a hybrid retrieval pass.
type Result struct {
	Documents  []model.DocumentChunk
	Scored     []model.ScoredChunk
	Strategy   string
	NumResults int
}
