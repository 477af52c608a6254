// Package fetch retrieves product pages, through a CORS-style proxy or directly.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

const (
	defaultTimeout = 10 * time.Second
	defaultSizeCap = 5 << 20
	userAgent      = "lapwise/1.0"
)

// ErrEmptyContent is returned when the page body is empty.
var ErrEmptyContent = errors.New("empty page content")

// Fetcher returns the HTML of a page.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// Client fetches pages. With a proxy URL set, requests go to
// <proxy>?url=<target> and the page is read from the JSON "contents" field.
type Client struct {
	proxyURL string
	http     *http.Client
	timeout  time.Duration
	sizeCap  int64
	logger   *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-call timeout (default 10s).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithLogger sets a logger for request output.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a client. An empty proxyURL fetches pages directly.
func NewClient(proxyURL string, opts ...Option) *Client {
	c := &Client{
		proxyURL: proxyURL,
		http:     &http.Client{},
		timeout:  defaultTimeout,
		sizeCap:  defaultSizeCap,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type proxyResponse struct {
	Contents string `json:"contents"`
}

// Fetch returns the page HTML. Timeouts, non-2xx statuses and decode failures are errors.
func (c *Client) Fetch(ctx context.Context, pageURL string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid url: %q", pageURL)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := pageURL
	if c.proxyURL != "" {
		target = c.proxyURL + "?url=" + url.QueryEscape(pageURL)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if c.proxyURL == "" {
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("failed to fetch %s: http status %d", pageURL, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.sizeCap))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", pageURL, err)
	}
	c.logger.Debug("page fetched",
		zap.String("url", pageURL),
		zap.Bool("proxied", c.proxyURL != ""),
		zap.Int("bytes", len(data)),
		zap.Duration("took", time.Since(start)))

	var content string
	if c.proxyURL != "" {
		var pr proxyResponse
		if err := json.Unmarshal(data, &pr); err != nil {
			return "", fmt.Errorf("failed to decode proxy response: %w", err)
		}
		content = pr.Contents
	} else {
		content, err = DecodeHTML(data, resp.Header.Get("Content-Type"))
		if err != nil {
			return "", fmt.Errorf("failed to decode %s: %w", pageURL, err)
		}
	}
	if content == "" {
		return "", ErrEmptyContent
	}
	return content, nil
}

// DecodeHTML converts a page body to UTF-8 using the Content-Type header and
// any <meta charset> in the document.
func DecodeHTML(data []byte, contentType string) (string, error) {
	enc, _, _ := charset.DetermineEncoding(data, contentType)
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		if !utf8.Valid(data) {
			return "", err
		}
		out = data
	}
	return string(bytes.TrimPrefix(out, []byte("\xef\xbb\xbf"))), nil
}
