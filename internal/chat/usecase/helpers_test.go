package usecase

import (
	"context"

	"python-docs-copilot/internal/language"
	"python-docs-copilot/internal/model"
	"python-docs-copilot/internal/retrieval"
	"python-docs-copilot/internal/tooling"
	"python-docs-copilot/pkg/llmprovider"
)

type testLogger struct{}

func (testLogger) Debug(ctx context.Context, arg ...any)                    {}
func (testLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Info(ctx context.Context, arg ...any)                     {}
func (testLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (testLogger) Warn(ctx context.Context, arg ...any)                     {}
func (testLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (testLogger) Error(ctx context.Context, arg ...any)                    {}
func (testLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (testLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (testLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (testLogger) Panic(ctx context.Context, arg ...any)                    {}
func (testLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockLLM struct {
	text     string
	err      error
	requests []*llmprovider.Request
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text, Usage: &llmprovider.Usage{}}, nil
}

type mockRetriever struct {
	result *retrieval.Result
	err    error
}

func (m *mockRetriever) HybridRetrieve(ctx context.Context, question string, forceDecomposition bool) (*retrieval.Result, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

type mockToolRunner struct {
	results   *tooling.Results
	calledFor []string
}

func (m *mockToolRunner) Run(ctx context.Context, toolNames []string, message string) *tooling.Results {
	m.calledFor = append(m.calledFor, toolNames...)
	if m.results == nil {
		return &tooling.Results{}
	}
	return m.results
}

// passthroughTranslator treats everything as English
type passthroughTranslator struct{}

func (passthroughTranslator) ProcessQuery(ctx context.Context, message, userLang string) language.QueryResult {
	return language.QueryResult{
		OriginalMessage:  message,
		DetectedLanguage: "en",
		LanguageName:     "English",
		EnglishQuery:     message,
		NeedsTranslation: false,
	}
}

func (passthroughTranslator) ProcessResponse(ctx context.Context, englishResponse, targetLang string) string {
	return englishResponse
}

// staticTranslator reports a fixed detected language and tags
// translated responses so tests can observe the translation step
type staticTranslator struct {
	detected     string
	englishQuery string
}

func (t staticTranslator) ProcessQuery(ctx context.Context, message, userLang string) language.QueryResult {
	return language.QueryResult{
		OriginalMessage:  message,
		DetectedLanguage: t.detected,
		LanguageName:     t.detected,
		EnglishQuery:     t.englishQuery,
		NeedsTranslation: t.detected != "en",
	}
}

func (t staticTranslator) ProcessResponse(ctx context.Context, englishResponse, targetLang string) string {
	return "[" + targetLang + "] " + englishResponse
}

func docsResult(strategy string, docs ...model.DocumentChunk) *retrieval.Result {
	return &retrieval.Result{
		Documents:  docs,
		Strategy:   strategy,
		NumResults: len(docs),
	}
}
