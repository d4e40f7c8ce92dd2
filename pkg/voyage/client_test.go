package voyage_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"python-docs-copilot/pkg/voyage"
)

func TestEmbed(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		_, err := voyage.New("")
		if err == nil {
			t.Errorf("expected error for empty API key")
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		client, _ := voyage.New("test-key")
		_, err := client.Embed(context.Background(), nil)
		if err == nil {
			t.Errorf("expected error for empty input")
		}
	})

	t.Run("Successful Embedding", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("unexpected auth header: %s", got)
			}

			var req voyage.EmbedRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if len(req.Input) != 2 {
				t.Errorf("expected 2 inputs, got %d", len(req.Input))
			}

			w.Write([]byte(`{"data":[{"embedding":[0.1,0.2],"index":0},{"embedding":[0.3,0.4],"index":1}],"model":"voyage-3"}`))
		}))
		defer server.Close()

		client, _ := voyage.New("test-key")
		client.WithBaseURL(server.URL)

		vectors, err := client.Embed(context.Background(), []string{"hello", "world"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(vectors) != 2 || len(vectors[0]) != 2 {
			t.Errorf("unexpected embedding shape: %v", vectors)
		}
	})

	t.Run("API Error With Message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"bad key","type":"auth"}}`))
		}))
		defer server.Close()

		client, _ := voyage.New("test-key")
		client.WithBaseURL(server.URL)

		_, err := client.Embed(context.Background(), []string{"x"})
		if err == nil {
			t.Errorf("expected error on 401")
		}
	})
}
