package usecase

import (
	"context"

	"python-docs-copilot/internal/chat"
	"python-docs-copilot/internal/language"
	"python-docs-copilot/internal/retrieval"
	"python-docs-copilot/internal/tooling"
	"python-docs-copilot/pkg/llmprovider"
	pkgLog "python-docs-copilot/pkg/log"
)

// generator is the slice of the LLM manager the usecase needs.
type generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// retriever produces context documents for a question.
type retriever interface {
	HybridRetrieve(ctx context.Context, question string, forceDecomposition bool) (*retrieval.Result, error)
}

// toolRunner dispatches detected tools against a message.
type toolRunner interface {
	Run(ctx context.Context, toolNames []string, message string) *tooling.Results
}

// translator normalizes queries to English and localizes responses.
type translator interface {
	ProcessQuery(ctx context.Context, message, userLang string) language.QueryResult
	ProcessResponse(ctx context.Context, englishResponse, targetLang string) string
}

type implUseCase struct {
	l       pkgLog.Logger
	llm     generator
	engine  retriever
	tools   toolRunner
	lang    translator
	history *SessionMemory
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	llm generator,
	engine retriever,
	tools toolRunner,
	lang translator,
	history *SessionMemory,
) chat.UseCase {
	return &implUseCase{
		l:       l,
		llm:     llm,
		engine:  engine,
		tools:   tools,
		lang:    lang,
		history: history,
	}
}
