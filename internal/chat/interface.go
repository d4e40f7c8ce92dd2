package chat

import (
	"context"

	"python-docs-copilot/internal/language"
	"python-docs-copilot/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Chat answers a user message with retrieval-augmented generation,
	// optional tool dispatch, and multilingual normalization.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// ClearHistory drops the conversation history for the session.
	ClearHistory(ctx context.Context, sc model.Scope) error

	// Languages lists the supported conversation languages.
	Languages(ctx context.Context) []language.Language
}
