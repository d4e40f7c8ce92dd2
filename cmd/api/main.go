package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"python-docs-copilot/config"
	_ "python-docs-copilot/docs" // Swagger docs
	chatRepo "python-docs-copilot/internal/chat/repository/qdrant"
	"python-docs-copilot/internal/chat/usecase"
	"python-docs-copilot/internal/httpserver"
	"python-docs-copilot/internal/language"
	"python-docs-copilot/internal/ratelimit"
	"python-docs-copilot/internal/retrieval"
	"python-docs-copilot/internal/sandbox"
	"python-docs-copilot/internal/tooling"
	"python-docs-copilot/pkg/llmprovider"
	"python-docs-copilot/pkg/log"
	"python-docs-copilot/pkg/pypi"
	"python-docs-copilot/pkg/qdrant"
	"python-docs-copilot/pkg/voyage"
)

const cleanupInterval = 10 * time.Minute

// @title       Python Docs Copilot API
// @description Retrieval-augmented chat assistant for Python library documentation with sandboxed code execution and PyPI lookups.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Python Docs Copilot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Qdrant URL: %s", cfg.Qdrant.URL)

	// 3. Knowledge base
	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage client: %v", err)
	}

	qdrantClient := qdrant.NewClient(cfg.Qdrant.URL)
	vectorRepo := chatRepo.New(qdrantClient, embedder, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, logger)
	if err := vectorRepo.EnsureCollection(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to ensure Qdrant collection: %v", err)
	}

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize LLM providers: %v", err)
	}
	llmManager := llmprovider.NewManager(providers, llmprovider.ManagerConfigFrom(&cfg.LLM), logger)
	logger.Infof(ctx, "LLM providers ready: %d configured", len(providers))

	// 5. Retrieval engine
	engine := retrieval.NewEngine(llmManager, vectorRepo, cfg.Retrieval.TopK, logger)

	// 6. Tools
	runner := sandbox.New(time.Duration(cfg.Sandbox.TimeoutSeconds) * time.Second)
	executor := tooling.NewCodeExecutor(runner, cfg.Sandbox.MaxCodeLength, logger)

	pypiClient := pypi.NewClient(pypi.Config{
		BaseURL:           cfg.Registry.BaseURL,
		Timeout:           time.Duration(cfg.Registry.TimeoutSeconds) * time.Second,
		RequestsPerSecond: cfg.Registry.RequestsPerSecond,
	})
	packages := tooling.NewPackageInfoFetcher(pypiClient, logger)
	docs := tooling.NewDocSearcher(cfg.Libraries.Supported, logger)
	tools := tooling.NewRegistry(executor, packages, docs, cfg.Libraries.Supported, logger)

	// 7. Language handling
	languageHandler, err := language.NewHandler(llmManager, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize language handler: %v", err)
	}

	// 8. Chat domain
	history := usecase.NewSessionMemory()
	chatUC := usecase.New(logger, llmManager, engine, tools, languageHandler, history)

	limiter := ratelimit.New(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowSeconds)*time.Second)

	go runCleanup(ctx, logger, history, limiter)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatUseCase: chatUC,
		RateLimiter: limiter,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// runCleanup periodically evicts idle sessions from the conversation
// memory and the rate limiter.
func runCleanup(ctx context.Context, logger log.Logger, history *usecase.SessionMemory, limiter *ratelimit.Limiter) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			expired := history.CleanupExpired(time.Hour)
			stale := limiter.CleanupOldSessions(time.Hour)
			if expired > 0 || stale > 0 {
				logger.Infof(ctx, "Session cleanup: %d histories, %d rate-limit windows evicted", expired, stale)
			}
		}
	}
}
