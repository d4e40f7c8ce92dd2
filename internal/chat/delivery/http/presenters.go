package http

import (
	"python-docs-copilot/internal/chat"
	"python-docs-copilot/internal/language"
	"python-docs-copilot/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	Message    string `json:"message"     binding:"required,min=1,max=4000"`
	UseTools   *bool  `json:"use_tools"`
	VisualMode bool   `json:"visual_mode"`
	Language   string `json:"language"    binding:"omitempty,len=2"`
}

func (r chatReq) validate() error { return nil }

func (r chatReq) toInput() chat.ChatInput {
	// Tools are on unless the caller switches them off.
	useTools := true
	if r.UseTools != nil {
		useTools = *r.UseTools
	}
	return chat.ChatInput{
		Message:    r.Message,
		UseTools:   useTools,
		VisualMode: r.VisualMode,
	}
}

// --- Response DTOs ---

type chatResp struct {
	Response          string               `json:"response"`
	Visual            *model.VisualPayload `json:"visual,omitempty"`
	ContextUsed       int                  `json:"context_used"`
	RetrievalStrategy string               `json:"retrieval_strategy"`
	Sources           []chat.Source        `json:"sources"`
	Language          string               `json:"language"`
	LanguageName      string               `json:"language_name"`
	EnglishQuery      string               `json:"english_query,omitempty"`
}

func (h *handler) newChatResp(out chat.ChatOutput) chatResp {
	return chatResp{
		Response:          out.Response,
		Visual:            out.Visual,
		ContextUsed:       out.ContextUsed,
		RetrievalStrategy: out.RetrievalStrategy,
		Sources:           out.Sources,
		Language:          out.Language,
		LanguageName:      out.LanguageName,
		EnglishQuery:      out.EnglishQuery,
	}
}

type languagesResp struct {
	Languages []language.Language `json:"languages"`
}

type clearHistoryResp struct {
	Cleared bool `json:"cleared"`
}
