package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"python-docs-copilot/config"
	chatRepo "python-docs-copilot/internal/chat/repository/qdrant"
	"python-docs-copilot/internal/model"
	"python-docs-copilot/pkg/log"
	pkgQdrant "python-docs-copilot/pkg/qdrant"
	"python-docs-copilot/pkg/voyage"
)

// docInput is one documentation page in the input file. Pages are split
// into overlapping chunks before embedding.
type docInput struct {
	Content  string                 `json:"content"`
	Source   string                 `json:"source"`
	Category string                 `json:"category"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/ingest-docs/main.go <path/to/docs.json>")
		fmt.Println("Example: go run scripts/ingest-docs/main.go data/docs.json")
		os.Exit(1)
	}
	docsPath := os.Args[1]

	// Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize Logger
	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	// Initialize clients
	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)
	embeddingClient, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", err)
	}
	vectorRepo := chatRepo.New(qdrantClient, embeddingClient, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, logger)

	if err := vectorRepo.EnsureCollection(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to ensure collection: %v", err)
	}

	// Read documentation pages
	raw, err := os.ReadFile(docsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read %s: %v", docsPath, err)
	}

	var pages []docInput
	if err := json.Unmarshal(raw, &pages); err != nil {
		logger.Fatalf(ctx, "Failed to parse %s: %v", docsPath, err)
	}

	logger.Infof(ctx, "Loaded %d documentation pages, chunking with size=%d overlap=%d",
		len(pages), cfg.Retrieval.ChunkSize, cfg.Retrieval.ChunkOverlap)

	// Chunk every page
	var chunks []model.DocumentChunk
	for _, page := range pages {
		for _, piece := range splitText(page.Content, cfg.Retrieval.ChunkSize, cfg.Retrieval.ChunkOverlap) {
			chunks = append(chunks, model.DocumentChunk{
				Content:  piece,
				Source:   page.Source,
				Category: page.Category,
				Metadata: page.Metadata,
			})
		}
	}

	logger.Infof(ctx, "Embedding %d chunks into collection %q...", len(chunks), cfg.Qdrant.CollectionName)

	count, err := vectorRepo.AddDocuments(ctx, chunks)
	if err != nil {
		logger.Fatalf(ctx, "Failed to add documents: %v", err)
	}

	logger.Infof(ctx, "Ingest complete! %d/%d chunks stored.", count, len(chunks))
}
