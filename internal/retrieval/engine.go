package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"python-docs-copilot/internal/model"
	"python-docs-copilot/pkg/llmprovider"
	"python-docs-copilot/pkg/log"
)

// generator is the slice of the LLM manager the engine needs.
type generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Engine performs query expansion and hybrid retrieval over the vector
// store. Short questions fan out into rephrased variants, long ones are
// decomposed into sub-questions; both paths deduplicate by content.
type Engine struct {
	llm    generator
	store  Searcher
	topK   int
	logger log.Logger
}

// NewEngine creates a retrieval Engine.
func NewEngine(llm generator, store Searcher, topK int, logger log.Logger) *Engine {
	return &Engine{
		llm:    llm,
		store:  store,
		topK:   topK,
		logger: logger,
	}
}

const translationSystemPrompt = `You are an expert at translating user questions about Python libraries
into optimized search queries. Given a user question, generate 3 different search queries
that would help find relevant documentation. Each query should approach the question from
a different angle.

Return the queries as a JSON array of strings.`

const decompositionSystemPrompt = `You are an expert at breaking down complex questions into simpler sub-questions.
Given a complex question about Python libraries, break it down into 2-3 simpler questions
that, when answered together, would provide a complete answer to the original question.

Return the sub-questions as a JSON array of strings.`

// HybridRetrieve expands the question, collects deduplicated documents
// for every variant, and attaches a scored search on the raw question.
// Vector store failures propagate to the caller.
func (e *Engine) HybridRetrieve(ctx context.Context, question string, forceDecomposition bool) (*Result, error) {
	var docs []model.DocumentChunk
	var strategy string
	var err error

	if forceDecomposition || len(strings.Fields(question)) > decompositionWordThreshold {
		strategy = StrategyDecomposition
		docs, err = e.retrieveWithDecomposition(ctx, question)
	} else {
		strategy = StrategyMultiQuery
		docs, err = e.retrieveWithMultiQuery(ctx, question)
	}
	if err != nil {
		return nil, err
	}

	scored, err := e.store.SimilaritySearchWithScore(ctx, question, e.topK)
	if err != nil {
		return nil, fmt.Errorf("scored search: %w", err)
	}

	return &Result{
		Documents:  docs,
		Scored:     scored,
		Strategy:   strategy,
		NumResults: len(docs),
	}, nil
}

// TranslateQuery rephrases the question into search query variants.
// Any expansion failure falls back to the question itself.
func (e *Engine) TranslateQuery(ctx context.Context, question string) []string {
	return e.expandQuery(ctx, translationSystemPrompt, question)
}

// DecomposeQuery breaks the question into simpler sub-questions.
// Any expansion failure falls back to the question itself.
func (e *Engine) DecomposeQuery(ctx context.Context, question string) []string {
	return e.expandQuery(ctx, decompositionSystemPrompt, question)
}

func (e *Engine) retrieveWithMultiQuery(ctx context.Context, question string) ([]model.DocumentChunk, error) {
	queries := e.TranslateQuery(ctx, question)

	// The literal question always participates, ahead of the variants.
	if !containsString(queries, question) {
		queries = append([]string{question}, queries...)
	}

	return e.collect(ctx, queries)
}

func (e *Engine) retrieveWithDecomposition(ctx context.Context, question string) ([]model.DocumentChunk, error) {
	subQuestions := e.DecomposeQuery(ctx, question)
	return e.collect(ctx, subQuestions)
}

// collect runs a similarity search per query, deduplicating documents
// by content hash and truncating to twice the per-query limit.
func (e *Engine) collect(ctx context.Context, queries []string) ([]model.DocumentChunk, error) {
	var all []model.DocumentChunk
	seen := make(map[string]struct{})

	for _, query := range queries {
		docs, err := e.store.SimilaritySearch(ctx, query, e.topK)
		if err != nil {
			return nil, fmt.Errorf("similarity search for %q: %w", query, err)
		}

		for _, doc := range docs {
			h := doc.ContentHash()
			if _, ok := seen[h]; ok {
				continue
			}
			seen[h] = struct{}{}
			all = append(all, doc)
		}
	}

	e.logger.Debugf(ctx, "retrieved %d unique documents from %d queries", len(all), len(queries))

	if limit := e.topK * 2; len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

var fencedArrayRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\[.*?\\])\\s*```")

// expandQuery asks the LLM for a strict JSON array of strings and
// parses it defensively. Every failure mode collapses to the original
// question so retrieval never stalls on a malformed expansion.
func (e *Engine) expandQuery(ctx context.Context, systemPrompt, question string) []string {
	resp, err := e.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Role: "system", Text: systemPrompt},
		Messages:          []llmprovider.Message{{Role: "user", Text: question}},
		Temperature:       0,
	})
	if err != nil {
		e.logger.Warnf(ctx, "query expansion failed, using original question: %v", err)
		return []string{question}
	}

	content := strings.TrimSpace(resp.Text)
	if strings.HasPrefix(content, "```") {
		if m := fencedArrayRe.FindStringSubmatch(content); m != nil {
			content = m[1]
		}
	}

	var queries []string
	if err := json.Unmarshal([]byte(content), &queries); err != nil || len(queries) == 0 {
		e.logger.Warnf(ctx, "could not parse query expansion, using original question")
		return []string{question}
	}

	return queries
}

func containsString(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
