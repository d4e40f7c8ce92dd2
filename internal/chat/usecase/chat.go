package usecase

import (
	"context"
	"fmt"
	"strings"

	"python-docs-copilot/internal/chat"
	"python-docs-copilot/internal/language"
	"python-docs-copilot/internal/model"
	"python-docs-copilot/internal/tooling"
	"python-docs-copilot/pkg/llmprovider"
)

// Chat answers one user turn. Any internal failure degrades into an
// apologetic response instead of an error so the conversation survives
// backend outages.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input chat.ChatInput) (chat.ChatOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.ChatOutput{}, chat.ErrEmptyMessage
	}
	if sc.SessionID == "" {
		return chat.ChatOutput{}, chat.ErrSessionRequired
	}

	query := uc.lang.ProcessQuery(ctx, input.Message, sc.Language)

	output, err := uc.answer(ctx, sc, input, query.EnglishQuery)
	if err != nil {
		uc.l.Errorf(ctx, "chat: answering failed: %v", err)
		return uc.degradedOutput(query, err), nil
	}

	if query.NeedsTranslation {
		output.Response = uc.lang.ProcessResponse(ctx, output.Response, query.DetectedLanguage)
	}
	output.Language = query.DetectedLanguage
	output.LanguageName = query.LanguageName
	output.EnglishQuery = query.EnglishQuery

	return output, nil
}

// ClearHistory drops the conversation history for the session.
func (uc *implUseCase) ClearHistory(ctx context.Context, sc model.Scope) error {
	if sc.SessionID == "" {
		return chat.ErrSessionRequired
	}
	uc.history.Clear(sc.SessionID)
	uc.l.Infof(ctx, "chat: history cleared for session %s", sc.SessionID)
	return nil
}

// Languages lists the supported conversation languages.
func (uc *implUseCase) Languages(ctx context.Context) []language.Language {
	return language.Supported
}

func (uc *implUseCase) answer(ctx context.Context, sc model.Scope, input chat.ChatInput, englishQuery string) (chat.ChatOutput, error) {
	retrieved, err := uc.engine.HybridRetrieve(ctx, englishQuery, false)
	if err != nil {
		return chat.ChatOutput{}, fmt.Errorf("retrieval: %w", err)
	}

	contextBlock := formatContext(retrieved.Documents)

	var systemPrompt string
	if input.VisualMode {
		systemPrompt = createVisualSystemPrompt(contextBlock)
	} else {
		systemPrompt = createSystemPrompt(contextBlock)
	}

	messages := uc.buildMessages(sc.SessionID, englishQuery, input.VisualMode)

	var toolWarning string
	if input.UseTools {
		if toolNames := tooling.DetectIntent(englishQuery); len(toolNames) > 0 {
			results := uc.tools.Run(ctx, toolNames, englishQuery)
			if toolContext := tooling.FormatResults(results); toolContext != "" {
				messages = append(messages, llmprovider.Message{
					Role: "system",
					Text: "Tool Results:\n" + toolContext,
				})
			}
		}
	} else {
		toolWarning = tooling.DisabledToolsWarning(englishQuery)
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Text: systemPrompt},
		Messages:          messages,
		Temperature:       0.7,
	})
	if err != nil {
		return chat.ChatOutput{}, fmt.Errorf("generation: %w", err)
	}

	responseText := resp.Text
	if toolWarning != "" {
		responseText = toolWarning + "\n\n" + responseText
	}

	var visual *model.VisualPayload
	if input.VisualMode {
		responseText, visual = parseVisualResponse(responseText, englishQuery)
	}

	uc.history.Append(sc.SessionID, "user", englishQuery)
	uc.history.Append(sc.SessionID, "assistant", responseText)

	sources := make([]chat.Source, 0, len(retrieved.Documents))
	for _, doc := range retrieved.Documents {
		sources = append(sources, chat.Source{Source: doc.Source, Category: doc.Category})
	}

	return chat.ChatOutput{
		Response:          responseText,
		Visual:            visual,
		ContextUsed:       len(retrieved.Documents),
		RetrievalStrategy: retrieved.Strategy,
		Sources:           sources,
	}, nil
}

// buildMessages assembles prior exchanges plus the current user turn.
func (uc *implUseCase) buildMessages(sessionID, englishQuery string, visualMode bool) []llmprovider.Message {
	recent := uc.history.Recent(sessionID, historyDepth)

	messages := make([]llmprovider.Message, 0, len(recent)+1)
	for _, entry := range recent {
		messages = append(messages, llmprovider.Message{Role: entry.Role, Text: entry.Content})
	}

	current := englishQuery
	if visualMode && looksLikePlotRequest(englishQuery) {
		current += visualNudge
	}
	messages = append(messages, llmprovider.Message{Role: "user", Text: current})

	return messages
}

// degradedOutput is the answer of last resort: the turn still completes
// with an explanation, zero context, and no retrieval strategy.
func (uc *implUseCase) degradedOutput(query language.QueryResult, err error) chat.ChatOutput {
	return chat.ChatOutput{
		Response:          fmt.Sprintf("I encountered an error: %v. Please try rephrasing your question.", err),
		Visual:            nil,
		ContextUsed:       0,
		RetrievalStrategy: "none",
		Sources:           []chat.Source{},
		Language:          query.DetectedLanguage,
		LanguageName:      query.LanguageName,
		EnglishQuery:      query.EnglishQuery,
	}
}
