package search

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hyperjump/lapwise/internal/fetch"
)

// DefaultDuckDuckGoURL is the HTML-only DuckDuckGo endpoint.
const DefaultDuckDuckGoURL = "https://duckduckgo.com/html/"

var ddgProductRe = regexp.MustCompile(`(?i)\b(laptop|macbook|notebook)\b`)

// DuckDuckGo scrapes DuckDuckGo's HTML results page. Pages are read through
// the fetcher, which normally routes them via the proxy.
type DuckDuckGo struct {
	fetcher fetch.Fetcher
	baseURL string
}

// NewDuckDuckGo creates a scraper. An empty baseURL uses DefaultDuckDuckGoURL.
func NewDuckDuckGo(fetcher fetch.Fetcher, baseURL string) *DuckDuckGo {
	if baseURL == "" {
		baseURL = DefaultDuckDuckGoURL
	}
	return &DuckDuckGo{fetcher: fetcher, baseURL: baseURL}
}

// BrandProductURLs returns at most limit laptop URLs on the brand's domain.
func (d *DuckDuckGo) BrandProductURLs(ctx context.Context, brand string, limit int) ([]string, error) {
	domain := BrandDomain(brand)
	query := fmt.Sprintf("site:%s (laptop OR notebook) (buy OR product OR shop)", domain)
	html, err := d.fetcher.Fetch(ctx, d.baseURL+"?q="+url.QueryEscape(query))
	if err != nil {
		return nil, fmt.Errorf("duckduckgo search failed: %w", err)
	}
	links, err := ResultLinks(html)
	if err != nil {
		return nil, err
	}
	return filterProductURLs(links, domain, ddgProductRe, limit), nil
}

// ResultLinks returns every anchor target in a results page, unwrapping
// DuckDuckGo redirect links via their uddg parameter.
func ResultLinks(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse results page: %w", err)
	}
	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := s.AttrOr("href", "")
		if u, err := url.Parse(href); err == nil {
			if target := u.Query().Get("uddg"); target != "" {
				href = target
			}
		}
		if href != "" {
			links = append(links, href)
		}
	})
	return links, nil
}
