package search

import (
	"context"

	"go.uber.org/zap"
)

// URLSource finds product URLs for a brand.
type URLSource interface {
	BrandProductURLs(ctx context.Context, brand string, limit int) ([]string, error)
}

// Discoverer finds product pages for a brand, trying Tavily first when it
// has a key and then DuckDuckGo. Failures are logged and yield no URLs.
type Discoverer struct {
	tavily   *TavilyClient
	fallback URLSource
	logger   *zap.Logger
}

// NewDiscoverer creates a discoverer. Either source may be nil.
func NewDiscoverer(tavily *TavilyClient, fallback URLSource, logger *zap.Logger) *Discoverer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Discoverer{tavily: tavily, fallback: fallback, logger: logger}
}

// ProductURLs returns up to limit product URLs for brand. An empty result is not an error.
func (d *Discoverer) ProductURLs(ctx context.Context, brand string, limit int) []string {
	if d.tavily.HasKey() {
		urls, err := d.tavily.BrandProductURLs(ctx, brand, limit)
		if err != nil {
			d.logger.Warn("tavily brand search failed", zap.String("brand", brand), zap.Error(err))
		} else if len(urls) > 0 {
			return urls
		}
	}
	if d.fallback != nil {
		urls, err := d.fallback.BrandProductURLs(ctx, brand, limit)
		if err != nil {
			d.logger.Warn("fallback brand search failed", zap.String("brand", brand), zap.Error(err))
			return []string{}
		}
		return urls
	}
	return []string{}
}
