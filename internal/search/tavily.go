// Package search finds laptop product pages through Tavily and DuckDuckGo.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/lapwise/internal/models"
)

// DefaultTavilyURL is the Tavily search endpoint.
const DefaultTavilyURL = "https://api.tavily.com/search"

const (
	minResults     = 1
	maxResults     = 10
	defaultTimeout = 15 * time.Second
)

// ErrMissingAPIKey is returned when a search is attempted without an API key.
var ErrMissingAPIKey = errors.New("search API key is required")

// productURLRe matches URLs that name a laptop line.
var productURLRe = regexp.MustCompile(`(?i)\b(laptop|macbook|notebook|xps|thinkpad|spectre|zenbook|vivobook|ideapad)\b`)

// RetailerDomains are searched for structured product hits.
var RetailerDomains = []string{
	"amazon.com", "bestbuy.com", "newegg.com", "dell.com", "hp.com", "lenovo.com", "apple.com",
}

// TavilyClient calls the Tavily search API.
type TavilyClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// TavilyOption configures a TavilyClient.
type TavilyOption func(*TavilyClient)

// WithBaseURL overrides the endpoint.
func WithBaseURL(u string) TavilyOption {
	return func(c *TavilyClient) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) TavilyOption {
	return func(c *TavilyClient) {
		if h != nil {
			c.http = h
		}
	}
}

// WithLogger sets a logger.
func WithLogger(l *zap.Logger) TavilyOption {
	return func(c *TavilyClient) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewTavilyClient creates a client. An empty apiKey is allowed; searches then fail with ErrMissingAPIKey.
func NewTavilyClient(apiKey string, opts ...TavilyOption) *TavilyClient {
	c := &TavilyClient{
		apiKey:  apiKey,
		baseURL: DefaultTavilyURL,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasKey reports whether an API key is configured.
func (c *TavilyClient) HasKey() bool {
	return c != nil && c.apiKey != ""
}

type tavilyRequest struct {
	APIKey         string   `json:"api_key"`
	Query          string   `json:"query"`
	SearchDepth    string   `json:"search_depth"`
	IncludeAnswer  bool     `json:"include_answer"`
	MaxResults     int      `json:"max_results"`
	IncludeDomains []string `json:"include_domains,omitempty"`
}

type tavilyResponse struct {
	Results []models.SearchHit `json:"results"`
}

// Search runs a basic-depth query. limit is clamped to [1, 10].
func (c *TavilyClient) Search(ctx context.Context, query string, limit int, includeDomains []string) ([]models.SearchHit, error) {
	if !c.HasKey() {
		return nil, ErrMissingAPIKey
	}
	body, err := json.Marshal(tavilyRequest{
		APIKey:         c.apiKey,
		Query:          query,
		SearchDepth:    "basic",
		IncludeAnswer:  false,
		MaxResults:     clampLimit(limit),
		IncludeDomains: includeDomains,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("search failed: %d %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	c.logger.Debug("tavily search", zap.String("query", query), zap.Int("results", len(out.Results)))
	if out.Results == nil {
		out.Results = []models.SearchHit{}
	}
	return out.Results, nil
}

// BrandProductURLs searches the brand's site for laptop product pages and
// returns at most limit distinct URLs.
func (c *TavilyClient) BrandProductURLs(ctx context.Context, brand string, limit int) ([]string, error) {
	domain := BrandDomain(brand)
	query := fmt.Sprintf("site:%s (laptop OR notebook) (buy OR product OR shop OR series)", domain)
	hits, err := c.Search(ctx, query, limit*2, []string{domain})
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(hits))
	for _, h := range hits {
		urls = append(urls, h.URL)
	}
	return filterProductURLs(urls, domain, productURLRe, limit), nil
}

// ProductHits searches retailer sites for pages describing the product named by query.
func (c *TavilyClient) ProductHits(ctx context.Context, query string, limit int) ([]models.SearchHit, error) {
	return c.Search(ctx, query+" laptop specifications reviews price", limit, RetailerDomains)
}

func filterProductURLs(urls []string, domain string, keep *regexp.Regexp, limit int) []string {
	out := make([]string, 0, limit)
	seen := make(map[string]bool)
	for _, u := range urls {
		if len(out) >= limit {
			break
		}
		if !strings.Contains(u, domain) || !keep.MatchString(u) {
			continue
		}
		u, _, _ = strings.Cut(u, "#")
		if seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}

func clampLimit(limit int) int {
	if limit < minResults {
		return minResults
	}
	if limit > maxResults {
		return maxResults
	}
	return limit
}

var brandDomains = map[string]string{
	"apple":     "apple.com",
	"dell":      "dell.com",
	"hp":        "hp.com",
	"lenovo":    "lenovo.com",
	"asus":      "asus.com",
	"acer":      "acer.com",
	"msi":       "msi.com",
	"microsoft": "microsoft.com",
	"samsung":   "samsung.com",
}

// BrandDomain returns the manufacturer domain for brand, defaulting to "<brand>.com".
func BrandDomain(brand string) string {
	normalized := strings.ToLower(strings.TrimSpace(brand))
	if d, ok := brandDomains[normalized]; ok {
		return d
	}
	return strings.ReplaceAll(normalized, " ", "") + ".com"
}
