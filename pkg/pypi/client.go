package pypi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the default PyPI registry endpoint
	DefaultBaseURL = "https://pypi.org"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 5 * time.Second

	// recentVersionCount is how many release versions are surfaced
	recentVersionCount = 5
)

// ErrPackageNotFound indicates the registry has no package by that name.
var ErrPackageNotFound = errors.New("package not found")

// Client queries the PyPI JSON API. Outbound calls are throttled by a
// client-side rate limiter so bursts of tool invocations stay polite.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Config holds PyPI client configuration
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
}

// NewClient creates a new PyPI client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 2.0
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
	}
}

// GetPackage fetches metadata for the named package.
// Returns ErrPackageNotFound for unknown packages.
func (c *Client) GetPackage(ctx context.Context, name string) (*Package, error) {
	if name == "" {
		return nil, fmt.Errorf("package name is required")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	reqURL := fmt.Sprintf("%s/pypi/%s/json", c.baseURL, url.PathEscape(name))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call PyPI API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, name)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("PyPI API error: %d", resp.StatusCode)
	}

	var pkgResp packageResponse
	if err := json.NewDecoder(resp.Body).Decode(&pkgResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &Package{
		Name:           pkgResp.Info.Name,
		Version:        pkgResp.Info.Version,
		Summary:        pkgResp.Info.Summary,
		Author:         pkgResp.Info.Author,
		License:        pkgResp.Info.License,
		HomePage:       pkgResp.Info.HomePage,
		RecentVersions: recentVersions(pkgResp.Releases),
	}, nil
}

// recentVersions returns the highest release keys in descending string order.
func recentVersions(releases map[string][]releaseEntry) []string {
	if len(releases) == 0 {
		return nil
	}

	versions := make([]string, 0, len(releases))
	for v := range releases {
		versions = append(versions, v)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(versions)))

	if len(versions) > recentVersionCount {
		versions = versions[:recentVersionCount]
	}
	return versions
}
