package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type geminiImpl struct {
	cfg Config
}

func newGeminiImpl(cfg Config) *geminiImpl {
	return &geminiImpl{cfg: cfg}
}

func (g *geminiImpl) Model() string {
	return g.cfg.Model
}

// GenerateContent sends a generation request to the Gemini API.
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, fmt.Errorf("gemini: request has no messages")
	}

	wireReq := g.transformRequest(req)

	bodyBytes, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.cfg.APIURL, g.cfg.Model, g.cfg.APIKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.cfg.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini: API error (%d): %s", resp.StatusCode, string(body))
	}

	var wireResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}

	return g.transformResponse(&wireResp)
}

func (g *geminiImpl) transformRequest(req *Request) *geminiRequest {
	wireReq := &geminiRequest{
		Contents: make([]geminiContent, 0, len(req.Messages)),
	}

	if req.SystemInstruction != nil {
		wireReq.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.SystemInstruction.Text}},
		}
	}

	for _, msg := range req.Messages {
		role := msg.Role
		// Gemini uses "model" for assistant turns
		if role == "assistant" {
			role = "model"
		}
		wireReq.Contents = append(wireReq.Contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: msg.Text}},
		})
	}

	if req.Temperature > 0 || req.MaxTokens > 0 {
		wireReq.GenerationConfig = &generationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	return wireReq
}

func (g *geminiImpl) transformResponse(wireResp *geminiResponse) (*Response, error) {
	if len(wireResp.Candidates) == 0 {
		return nil, fmt.Errorf("gemini: no candidates in response")
	}

	var text string
	for _, part := range wireResp.Candidates[0].Content.Parts {
		text += part.Text
	}

	return &Response{
		Text: text,
		Usage: Usage{
			InputTokens:  wireResp.UsageMetadata.PromptTokenCount,
			OutputTokens: wireResp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  wireResp.UsageMetadata.TotalTokenCount,
		},
	}, nil
}
