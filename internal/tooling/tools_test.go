package tooling

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"python-docs-copilot/internal/sandbox"
	"python-docs-copilot/pkg/pypi"
)

func TestCodeExecutor(t *testing.T) {
	executor := NewCodeExecutor(sandbox.New(2*time.Second), 1000, testLogger{})

	t.Run("Successful Execution", func(t *testing.T) {
		res := executor.Execute(context.Background(), "print(sum(range(10)))")
		if !res.Success {
			t.Fatalf("unexpected failure: %s", res.Error)
		}
		if strings.TrimSpace(res.Output) != "45" {
			t.Errorf("expected '45', got %q", res.Output)
		}
	})

	t.Run("Oversized Code Rejected", func(t *testing.T) {
		big := strings.Repeat("x = 1\n", 200)
		res := executor.Execute(context.Background(), big)
		if res.Success {
			t.Errorf("expected rejection of oversized snippet")
		}
		if !strings.Contains(res.Error, "maximum length") {
			t.Errorf("unexpected error: %s", res.Error)
		}
	})

	t.Run("Empty Code", func(t *testing.T) {
		if res := executor.Execute(context.Background(), ""); res.Success {
			t.Errorf("expected failure for empty code")
		}
	})

	t.Run("No Output Placeholder", func(t *testing.T) {
		res := executor.Execute(context.Background(), "x = 1")
		if !res.Success {
			t.Fatalf("unexpected failure: %s", res.Error)
		}
		if !strings.Contains(res.Output, "no output") {
			t.Errorf("expected placeholder output, got %q", res.Output)
		}
	})
}

func TestPackageInfoFetcher(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"info":{"name":"flask","version":"3.1.0"},"releases":{"3.1.0":[]}}`))
		}))
		defer server.Close()

		fetcher := NewPackageInfoFetcher(pypi.NewClient(pypi.Config{BaseURL: server.URL, RequestsPerSecond: 100}), testLogger{})
		res := fetcher.Fetch(context.Background(), "flask")
		if !res.Success || res.Package.Version != "3.1.0" {
			t.Errorf("unexpected result: %+v", res)
		}
	})

	t.Run("Not Found Is Distinct", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		fetcher := NewPackageInfoFetcher(pypi.NewClient(pypi.Config{BaseURL: server.URL, RequestsPerSecond: 100}), testLogger{})
		res := fetcher.Fetch(context.Background(), "nope")
		if res.Success || !res.NotFound {
			t.Errorf("expected not-found result, got %+v", res)
		}
	})
}

func TestDocSearcher(t *testing.T) {
	searcher := NewDocSearcher(supported, testLogger{})

	t.Run("Base Link Always Present", func(t *testing.T) {
		res := searcher.Search(context.Background(), "pandas", "merge")
		if !res.Success || len(res.Links) != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.Links[0].URL != "https://pandas.pydata.org/docs/" {
			t.Errorf("unexpected URL: %s", res.Links[0].URL)
		}
	})

	t.Run("Install Section", func(t *testing.T) {
		res := searcher.Search(context.Background(), "numpy", "how to install")
		if len(res.Links) != 2 {
			t.Fatalf("expected 2 links, got %d", len(res.Links))
		}
		if res.Links[1].Title != "Installation Guide" {
			t.Errorf("unexpected link: %+v", res.Links[1])
		}
	})

	t.Run("Tutorial And Reference Sections", func(t *testing.T) {
		res := searcher.Search(context.Background(), "fastapi", "tutorial and api reference")
		if len(res.Links) != 3 {
			t.Errorf("expected 3 links, got %d", len(res.Links))
		}
	})

	t.Run("Unsupported Library", func(t *testing.T) {
		res := searcher.Search(context.Background(), "torch", "tensors")
		if res.Success {
			t.Errorf("expected failure for unsupported library")
		}
	})
}

func TestFormatResults(t *testing.T) {
	t.Run("Empty Results", func(t *testing.T) {
		if got := FormatResults(&Results{}); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("Mixed Results", func(t *testing.T) {
		results := &Results{
			Execution: &ExecutionResult{Success: true, Output: "45\n"},
			Package:   &PackageResult{Success: false, Error: "timeout"},
		}
		got := FormatResults(results)
		if !strings.Contains(got, "Code Execution Result:") {
			t.Errorf("missing execution section: %q", got)
		}
		if !strings.Contains(got, "Package Info Error: timeout") {
			t.Errorf("missing package error section: %q", got)
		}
	})
}
