package chat

import "python-docs-copilot/internal/model"

// ChatInput carries one user turn.
type ChatInput struct {
	Message    string
	UseTools   bool
	VisualMode bool
}

// Source identifies where a context chunk came from.
type Source struct {
	Source   string `json:"source"`
	Category string `json:"category"`
}

// ChatOutput is the assistant's answer plus retrieval metadata.
type ChatOutput struct {
	Response          string
	Visual            *model.VisualPayload
	ContextUsed       int
	RetrievalStrategy string
	Sources           []Source
	Language          string
	LanguageName      string
	EnglishQuery      string
}
