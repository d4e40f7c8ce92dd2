package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		cfg := Config{}
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for missing API key")
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		cfg := Config{APIKey: "test-key"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != DefaultModel {
			t.Errorf("expected default model %s, got %s", DefaultModel, cfg.Model)
		}
		if cfg.APIURL != DefaultAPIURL {
			t.Errorf("expected default API URL %s, got %s", DefaultAPIURL, cfg.APIURL)
		}
	})
}

func TestGenerateContent(t *testing.T) {
	t.Run("Successful Generation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req geminiRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if req.SystemInstruction == nil {
				t.Errorf("expected system instruction to be set")
			}
			if len(req.Contents) != 2 {
				t.Errorf("expected 2 contents, got %d", len(req.Contents))
			}
			if req.Contents[1].Role != "model" {
				t.Errorf("expected assistant role mapped to model, got %s", req.Contents[1].Role)
			}

			w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"hello"}]}}],"usageMetadata":{"promptTokenCount":10,"candidatesTokenCount":5,"totalTokenCount":15}}`))
		}))
		defer server.Close()

		client, err := New(Config{APIKey: "test-key", APIURL: server.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resp, err := client.GenerateContent(context.Background(), &Request{
			SystemInstruction: &Message{Role: "system", Text: "be brief"},
			Messages: []Message{
				{Role: "user", Text: "hi"},
				{Role: "assistant", Text: "yes?"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "hello" {
			t.Errorf("expected text 'hello', got %q", resp.Text)
		}
		if resp.Usage.TotalTokens != 15 {
			t.Errorf("expected 15 total tokens, got %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("Empty Request", func(t *testing.T) {
		client, _ := New(Config{APIKey: "test-key"})
		if _, err := client.GenerateContent(context.Background(), &Request{}); err == nil {
			t.Errorf("expected error for empty request")
		}
	})

	t.Run("API Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
		}))
		defer server.Close()

		client, _ := New(Config{APIKey: "test-key", APIURL: server.URL})
		_, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Message{{Role: "user", Text: "hi"}},
		})
		if err == nil {
			t.Errorf("expected error on 429")
		}
	})

	t.Run("No Candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		client, _ := New(Config{APIKey: "test-key", APIURL: server.URL})
		_, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Message{{Role: "user", Text: "hi"}},
		})
		if err == nil {
			t.Errorf("expected error for empty candidates")
		}
	})
}
