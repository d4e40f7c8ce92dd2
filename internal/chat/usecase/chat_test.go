package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"python-docs-copilot/internal/chat"
	"python-docs-copilot/internal/model"
	"python-docs-copilot/internal/tooling"
)

func scope(sessionID string) model.Scope {
	return model.Scope{SessionID: sessionID}
}

func pandasChunk() model.DocumentChunk {
	return model.DocumentChunk{Content: "df.merge joins frames", Source: "pandas", Category: "api"}
}

func TestChat(t *testing.T) {
	t.Run("Plain Question", func(t *testing.T) {
		llm := &mockLLM{text: "Use df.merge to join dataframes."}
		engine := &mockRetriever{result: docsResult("multi-query", pandasChunk())}
		uc := New(testLogger{}, llm, engine, &mockToolRunner{}, passthroughTranslator{}, NewSessionMemory())

		out, err := uc.Chat(context.Background(), scope("s1"), chat.ChatInput{Message: "how to merge dataframes", UseTools: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response != "Use df.merge to join dataframes." {
			t.Errorf("unexpected response: %q", out.Response)
		}
		if out.ContextUsed != 1 || out.RetrievalStrategy != "multi-query" {
			t.Errorf("unexpected metadata: %+v", out)
		}
		if len(out.Sources) != 1 || out.Sources[0].Source != "pandas" {
			t.Errorf("unexpected sources: %+v", out.Sources)
		}
	})

	t.Run("Empty Message Rejected", func(t *testing.T) {
		uc := New(testLogger{}, &mockLLM{}, &mockRetriever{}, &mockToolRunner{}, passthroughTranslator{}, NewSessionMemory())
		_, err := uc.Chat(context.Background(), scope("s1"), chat.ChatInput{Message: "   "})
		if !errors.Is(err, chat.ErrEmptyMessage) {
			t.Errorf("expected ErrEmptyMessage, got %v", err)
		}
	})

	t.Run("Missing Session Rejected", func(t *testing.T) {
		uc := New(testLogger{}, &mockLLM{}, &mockRetriever{}, &mockToolRunner{}, passthroughTranslator{}, NewSessionMemory())
		_, err := uc.Chat(context.Background(), model.Scope{}, chat.ChatInput{Message: "hello"})
		if !errors.Is(err, chat.ErrSessionRequired) {
			t.Errorf("expected ErrSessionRequired, got %v", err)
		}
	})

	t.Run("Tool Results Reach The Prompt", func(t *testing.T) {
		llm := &mockLLM{text: "The sum is 45."}
		engine := &mockRetriever{result: docsResult("multi-query")}
		tools := &mockToolRunner{results: &tooling.Results{
			Execution: &tooling.ExecutionResult{Success: true, Output: "45\n"},
		}}
		uc := New(testLogger{}, llm, engine, tools, passthroughTranslator{}, NewSessionMemory())

		out, err := uc.Chat(context.Background(), scope("s1"), chat.ChatInput{
			Message:  "Execute this code and explain: print(sum(range(10)))",
			UseTools: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(tools.calledFor) == 0 || tools.calledFor[0] != tooling.ToolExecuteCode {
			t.Errorf("expected execute_code dispatch, got %v", tools.calledFor)
		}

		req := llm.requests[len(llm.requests)-1]
		last := req.Messages[len(req.Messages)-1]
		if last.Role != "system" || !strings.Contains(last.Text, "45") {
			t.Errorf("tool output must be in the prompt, got %+v", last)
		}
		if !strings.Contains(out.Response, "45") {
			t.Errorf("expected answer to mention the result, got %q", out.Response)
		}
	})

	t.Run("Disabled Tools Warning Prepended", func(t *testing.T) {
		llm := &mockLLM{text: "I cannot run code, but the answer is 45."}
		engine := &mockRetriever{result: docsResult("multi-query")}
		tools := &mockToolRunner{}
		uc := New(testLogger{}, llm, engine, tools, passthroughTranslator{}, NewSessionMemory())

		out, err := uc.Chat(context.Background(), scope("s1"), chat.ChatInput{
			Message:  "run: print(42)",
			UseTools: false,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(out.Response, "**Tool calling is disabled.**") {
			t.Errorf("expected warning prefix, got %q", out.Response)
		}
		if len(tools.calledFor) != 0 {
			t.Errorf("tools must not run when disabled")
		}
	})

	t.Run("Retrieval Failure Degrades Gracefully", func(t *testing.T) {
		llm := &mockLLM{text: "unused"}
		engine := &mockRetriever{err: errors.New("qdrant unreachable")}
		history := NewSessionMemory()
		uc := New(testLogger{}, llm, engine, &mockToolRunner{}, passthroughTranslator{}, history)

		out, err := uc.Chat(context.Background(), scope("s1"), chat.ChatInput{Message: "anything", UseTools: true})
		if err != nil {
			t.Fatalf("degraded path must not return an error, got %v", err)
		}
		if !strings.HasPrefix(out.Response, "I encountered an error:") {
			t.Errorf("unexpected degraded response: %q", out.Response)
		}
		if out.ContextUsed != 0 || out.RetrievalStrategy != "none" || len(out.Sources) != 0 {
			t.Errorf("unexpected degraded metadata: %+v", out)
		}
		if entries := history.Recent("s1", historyDepth); len(entries) != 0 {
			t.Errorf("failed turns must not pollute history, got %d entries", len(entries))
		}
	})

	t.Run("Generation Failure Degrades Gracefully", func(t *testing.T) {
		llm := &mockLLM{err: errors.New("all providers failed")}
		engine := &mockRetriever{result: docsResult("multi-query", pandasChunk())}
		uc := New(testLogger{}, llm, engine, &mockToolRunner{}, passthroughTranslator{}, NewSessionMemory())

		out, err := uc.Chat(context.Background(), scope("s1"), chat.ChatInput{Message: "anything", UseTools: true})
		if err != nil {
			t.Fatalf("degraded path must not return an error, got %v", err)
		}
		if out.RetrievalStrategy != "none" {
			t.Errorf("expected strategy none, got %q", out.RetrievalStrategy)
		}
	})

	t.Run("Response Translated Back", func(t *testing.T) {
		llm := &mockLLM{text: "Use df.merge."}
		engine := &mockRetriever{result: docsResult("multi-query")}
		lang := staticTranslator{detected: "es", englishQuery: "how to merge dataframes"}
		uc := New(testLogger{}, llm, engine, &mockToolRunner{}, lang, NewSessionMemory())

		out, err := uc.Chat(context.Background(), model.Scope{SessionID: "s1", Language: "es"}, chat.ChatInput{
			Message:  "¿cómo uno dos dataframes?",
			UseTools: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response != "[es] Use df.merge." {
			t.Errorf("expected translated response, got %q", out.Response)
		}
		if out.Language != "es" || out.EnglishQuery != "how to merge dataframes" {
			t.Errorf("unexpected language metadata: %+v", out)
		}
	})

	t.Run("History Feeds Next Turn", func(t *testing.T) {
		llm := &mockLLM{text: "answer"}
		engine := &mockRetriever{result: docsResult("multi-query")}
		uc := New(testLogger{}, llm, engine, &mockToolRunner{}, passthroughTranslator{}, NewSessionMemory())

		for i := 0; i < 5; i++ {
			if _, err := uc.Chat(context.Background(), scope("s1"), chat.ChatInput{Message: "hello again"}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		req := llm.requests[len(llm.requests)-1]
		// 6 history entries plus the current user message
		if len(req.Messages) != historyDepth+1 {
			t.Errorf("expected %d messages, got %d", historyDepth+1, len(req.Messages))
		}
	})

	t.Run("Visual Mode Parses JSON Answer", func(t *testing.T) {
		llm := &mockLLM{text: `{"response": "Here is your table.", "visual": {"type": "table", "title": "Versions", "data": {"columns": ["name"], "rows": [["pandas"]]}}}`}
		engine := &mockRetriever{result: docsResult("multi-query")}
		uc := New(testLogger{}, llm, engine, &mockToolRunner{}, passthroughTranslator{}, NewSessionMemory())

		out, err := uc.Chat(context.Background(), scope("s1"), chat.ChatInput{
			Message:    "show a table of versions",
			VisualMode: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Response != "Here is your table." {
			t.Errorf("unexpected response: %q", out.Response)
		}
		if out.Visual == nil || out.Visual.Type != "table" {
			t.Errorf("expected table visual, got %+v", out.Visual)
		}
	})
}

func TestClearHistory(t *testing.T) {
	history := NewSessionMemory()
	history.Append("s1", "user", "hello")
	uc := New(testLogger{}, &mockLLM{}, &mockRetriever{}, &mockToolRunner{}, passthroughTranslator{}, history)

	if err := uc.ClearHistory(context.Background(), scope("s1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries := history.Recent("s1", historyDepth); len(entries) != 0 {
		t.Errorf("expected empty history, got %d entries", len(entries))
	}

	if err := uc.ClearHistory(context.Background(), model.Scope{}); err == nil {
		t.Errorf("expected error for missing session")
	}
}

func TestLanguages(t *testing.T) {
	uc := New(testLogger{}, &mockLLM{}, &mockRetriever{}, &mockToolRunner{}, passthroughTranslator{}, NewSessionMemory())
	langs := uc.Languages(context.Background())
	if len(langs) != 10 || langs[0].Code != "en" {
		t.Errorf("unexpected language list: %+v", langs)
	}
}
