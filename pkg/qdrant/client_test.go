package qdrant_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"python-docs-copilot/pkg/qdrant"
)

func TestSearchPoints(t *testing.T) {
	t.Run("Successful Search", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/collections/tech_docs/points/search" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}

			var req qdrant.SearchRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if !req.WithPayload {
				t.Errorf("expected with_payload to be set")
			}

			json.NewEncoder(w).Encode(qdrant.SearchResponse{
				Result: []qdrant.ScoredPoint{
					{ID: "p1", Score: 0.92, Payload: map[string]interface{}{"content": "DataFrame basics"}},
				},
			})
		}))
		defer server.Close()

		client := qdrant.NewClient(server.URL)
		resp, err := client.SearchPoints(context.Background(), "tech_docs", qdrant.SearchRequest{
			Vector:      make([]float32, 4),
			Limit:       5,
			WithPayload: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Result) != 1 || resp.Result[0].Score != 0.92 {
			t.Errorf("unexpected result: %+v", resp.Result)
		}
	})

	t.Run("API Error Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := qdrant.NewClient(server.URL)
		_, err := client.SearchPoints(context.Background(), "tech_docs", qdrant.SearchRequest{Limit: 5})
		if err == nil {
			t.Errorf("expected error on 500 status")
		}
	})
}

func TestUpsertPoints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		var req qdrant.UpsertPointsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Points) != 2 {
			t.Errorf("expected 2 points, got %d", len(req.Points))
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := qdrant.NewClient(server.URL)
	err := client.UpsertPoints(context.Background(), "tech_docs", qdrant.UpsertPointsRequest{
		Points: []qdrant.Point{
			{ID: "a", Vector: []float32{0.1}},
			{ID: "b", Vector: []float32{0.2}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCollectionExists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/collections/tech_docs/exists" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"result":{"exists":true}}`))
	}))
	defer server.Close()

	client := qdrant.NewClient(server.URL)
	exists, err := client.CollectionExists(context.Background(), "tech_docs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Errorf("expected collection to exist")
	}
}
