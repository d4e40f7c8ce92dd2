package qdrant

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"python-docs-copilot/internal/chat/repository"
	"python-docs-copilot/internal/model"
	pkgLog "python-docs-copilot/pkg/log"
	pkgQdrant "python-docs-copilot/pkg/qdrant"
	"python-docs-copilot/pkg/voyage"
)

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       voyage.IVoyage
	collectionName string
	vectorSize     int
	l              pkgLog.Logger
}

// New creates a new Qdrant-backed vector repository.
func New(client *pkgQdrant.Client, embedder voyage.IVoyage, collectionName string, vectorSize int, l pkgLog.Logger) repository.VectorRepository {
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		vectorSize:     vectorSize,
		l:              l,
	}
}

// EnsureCollection creates the collection when missing.
func (r *implRepository) EnsureCollection(ctx context.Context) error {
	exists, err := r.client.CollectionExists(ctx, r.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		return nil
	}

	req := pkgQdrant.CreateCollectionRequest{
		Name: r.collectionName,
		Vectors: pkgQdrant.VectorsConfig{
			Size:     r.vectorSize,
			Distance: "Cosine",
		},
	}
	if err := r.client.CreateCollection(ctx, req); err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	r.l.Infof(ctx, "qdrant repository: created collection %s", r.collectionName)
	return nil
}

// AddDocuments embeds the chunks in one batch and upserts them.
// Point IDs are derived from content, so re-ingesting the same chunk
// overwrites rather than duplicates.
func (r *implRepository) AddDocuments(ctx context.Context, chunks []model.DocumentChunk) (int, error) {
	if len(chunks) == 0 {
		return 0, nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Content
	}

	vectors, err := r.embedder.Embed(ctx, texts)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to generate embeddings: %v", err)
		return 0, fmt.Errorf("failed to generate embeddings: %w", err)
	}
	if len(vectors) != len(chunks) {
		return 0, fmt.Errorf("embedding count mismatch: %d vectors for %d chunks", len(vectors), len(chunks))
	}

	points := make([]pkgQdrant.Point, len(chunks))
	for i, chunk := range chunks {
		payload := map[string]interface{}{
			"content":  chunk.Content,
			"source":   chunk.Source,
			"category": chunk.Category,
		}
		for k, v := range chunk.Metadata {
			payload[k] = v
		}

		points[i] = pkgQdrant.Point{
			ID:      chunkID(chunk),
			Vector:  vectors[i],
			Payload: payload,
		}
	}

	req := pkgQdrant.UpsertPointsRequest{Points: points}
	if err := r.client.UpsertPoints(ctx, r.collectionName, req); err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to upsert points: %v", err)
		return 0, fmt.Errorf("failed to upsert points: %w", err)
	}

	r.l.Infof(ctx, "qdrant repository: stored %d chunks", len(points))
	return len(points), nil
}

// SimilaritySearch returns the k nearest chunks for the query.
func (r *implRepository) SimilaritySearch(ctx context.Context, query string, k int) ([]model.DocumentChunk, error) {
	hits, err := r.search(ctx, query, k)
	if err != nil {
		return nil, err
	}

	chunks := make([]model.DocumentChunk, len(hits))
	for i, hit := range hits {
		chunks[i] = chunkFromPayload(hit.Payload)
	}
	return chunks, nil
}

// SimilaritySearchWithScore returns the k nearest chunks with scores.
func (r *implRepository) SimilaritySearchWithScore(ctx context.Context, query string, k int) ([]model.ScoredChunk, error) {
	hits, err := r.search(ctx, query, k)
	if err != nil {
		return nil, err
	}

	scored := make([]model.ScoredChunk, len(hits))
	for i, hit := range hits {
		scored[i] = model.ScoredChunk{
			Chunk: chunkFromPayload(hit.Payload),
			Score: hit.Score,
		}
	}
	return scored, nil
}

func (r *implRepository) search(ctx context.Context, query string, k int) ([]pkgQdrant.ScoredPoint, error) {
	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to embed query: %v", err)
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(vectors) == 0 {
		r.l.Errorf(ctx, "qdrant repository: embedder returned no vector for query")
		return nil, errors.New("embedder returned no vector for query")
	}

	req := pkgQdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       k,
		WithPayload: true,
	}
	resp, err := r.client.SearchPoints(ctx, r.collectionName, req)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: search failed: %v", err)
		return nil, fmt.Errorf("search failed: %w", err)
	}

	return resp.Result, nil
}

// chunkID derives a deterministic UUID from the chunk identity.
// Qdrant requires point IDs to be UUIDs or unsigned integers.
func chunkID(chunk model.DocumentChunk) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(chunk.Source+"\x00"+chunk.ContentHash())).String()
}

func chunkFromPayload(payload map[string]interface{}) model.DocumentChunk {
	chunk := model.DocumentChunk{
		Content:  stringFromPayload(payload, "content"),
		Source:   stringFromPayload(payload, "source"),
		Category: stringFromPayload(payload, "category"),
	}

	metadata := make(map[string]interface{})
	for k, v := range payload {
		switch k {
		case "content", "source", "category":
		default:
			metadata[k] = v
		}
	}
	if len(metadata) > 0 {
		chunk.Metadata = metadata
	}
	return chunk
}

func stringFromPayload(payload map[string]interface{}, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}
