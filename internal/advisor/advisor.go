// Package advisor sequences extraction, matching, mock generation, ranking and
// the LLM providers into the shopping assistant's operations.
package advisor

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/hyperjump/lapwise/internal/catalog"
	"github.com/hyperjump/lapwise/internal/extract"
	"github.com/hyperjump/lapwise/internal/fetch"
	"github.com/hyperjump/lapwise/internal/llm"
	"github.com/hyperjump/lapwise/internal/match"
	"github.com/hyperjump/lapwise/internal/mock"
	"github.com/hyperjump/lapwise/internal/models"
	"github.com/hyperjump/lapwise/internal/ranking"
	"github.com/hyperjump/lapwise/internal/search"
)

// ErrInvalidInput wraps request errors a caller can fix.
var ErrInvalidInput = errors.New("invalid input")

const defaultHitLimit = 3

// ProductSearch finds search hits carrying product data for a query.
type ProductSearch interface {
	HasKey() bool
	ProductHits(ctx context.Context, query string, limit int) ([]models.SearchHit, error)
}

// URLDiscoverer finds product page URLs for a brand.
type URLDiscoverer interface {
	ProductURLs(ctx context.Context, brand string, limit int) []string
}

// Options injects every collaborator. Nil network collaborators disable the
// pipeline stage that needs them; the rest get in-process defaults.
type Options struct {
	// Search supplies structured product data. Nil or keyless skips that stage.
	Search ProductSearch
	// Fetcher retrieves product pages for scraping. Nil skips that stage.
	Fetcher fetch.Fetcher
	// Metadata enriches URL results with page images. Optional.
	Metadata   *fetch.MetadataExtractor
	Discoverer URLDiscoverer
	// LLM summarizes comparisons and answers chat. Nil uses the heuristic paths.
	LLM llm.Provider

	Catalog   match.Catalog
	Extractor *extract.Extractor
	Generator *mock.Generator
	Ranker    *ranking.Ranker

	// HitLimit caps search hits inspected per item (default 3).
	HitLimit int
	Logger   *zap.Logger
}

// Advisor is safe for concurrent use.
type Advisor struct {
	search     ProductSearch
	fetcher    fetch.Fetcher
	metadata   *fetch.MetadataExtractor
	discoverer URLDiscoverer
	llm        llm.Provider
	matcher    *match.Matcher
	extractor  *extract.Extractor
	generator  *mock.Generator
	ranker     *ranking.Ranker
	hitLimit   int
	logger     *zap.Logger
}

// New creates an Advisor from opts.
func New(opts Options) *Advisor {
	if opts.Catalog == nil {
		opts.Catalog = catalog.NewBuiltin()
	}
	if opts.Extractor == nil {
		opts.Extractor = extract.NewExtractor()
	}
	if opts.Generator == nil {
		opts.Generator = mock.NewGenerator()
	}
	if opts.Ranker == nil {
		opts.Ranker = ranking.NewRanker(nil)
	}
	if opts.HitLimit <= 0 {
		opts.HitLimit = defaultHitLimit
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Advisor{
		search:     opts.Search,
		fetcher:    opts.Fetcher,
		metadata:   opts.Metadata,
		discoverer: opts.Discoverer,
		llm:        opts.LLM,
		matcher:    match.NewMatcher(opts.Catalog),
		extractor:  opts.Extractor,
		generator:  opts.Generator,
		ranker:     opts.Ranker,
		hitLimit:   opts.HitLimit,
		logger:     opts.Logger,
	}
}

// Ranker returns the ranker used for persona scoring.
func (a *Advisor) Ranker() *ranking.Ranker {
	return a.ranker
}

// Matcher returns the catalog matcher.
func (a *Advisor) Matcher() *match.Matcher {
	return a.matcher
}

// parsePersona parses an optional persona. ok is false for an empty name.
func parsePersona(name string) (p ranking.Persona, ok bool, err error) {
	if name == "" {
		return 0, false, nil
	}
	p, err = ranking.ParsePersona(name)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return p, true, nil
}

var _ URLDiscoverer = (*search.Discoverer)(nil)
var _ ProductSearch = (*search.TavilyClient)(nil)
