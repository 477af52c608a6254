package advisor

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperjump/lapwise/internal/extract"
	"github.com/hyperjump/lapwise/internal/match"
	"github.com/hyperjump/lapwise/internal/models"
)

// Source is the pipeline stage that produced a laptop.
type Source int

const (
	// SourceStructured came from search-hit content.
	SourceStructured Source = iota
	// SourceScraped came from the fetched product page.
	SourceScraped
	// SourceMatched came from the reference catalog.
	SourceMatched
	// SourceMock was generated.
	SourceMock
)

// String returns the wire name of the source.
func (s Source) String() string {
	switch s {
	case SourceStructured:
		return "structured"
	case SourceScraped:
		return "scraped"
	case SourceMatched:
		return "matched"
	case SourceMock:
		return "mock"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Source) UnmarshalText(text []byte) error {
	for _, candidate := range []Source{SourceStructured, SourceScraped, SourceMatched, SourceMock} {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown source: %q", text)
}

// minScrapedFields is how many fields a scraped page must yield to be used.
const minScrapedFields = 2

// Resolution is one query item resolved to a laptop.
type Resolution struct {
	Query  string             `json:"query"`
	Laptop *models.LaptopSpec `json:"laptop"`
	Source Source             `json:"source"`
	// Match is set when Source is SourceMatched.
	Match *match.Result `json:"match,omitempty"`
}

// Resolve turns one URL or product name into a laptop, trying structured
// search data, then the scraped page, then the catalog, then a mock. It
// always returns a laptop with name, brand, cpu and ram set.
func (a *Advisor) Resolve(ctx context.Context, item string) *Resolution {
	item = strings.TrimSpace(item)
	isURL := extract.IsURL(item)

	res := a.resolve(ctx, item, isURL)
	if isURL && a.metadata != nil && len(res.Laptop.Images) == 0 && res.Source != SourceMatched {
		if meta := a.metadata.PageMetadata(ctx, item); len(meta.Images) > 0 {
			res.Laptop.Images = meta.Images
			res.Laptop.Image = meta.Images[0]
		}
	}
	// URL items keep their URL; text items carry the query.
	res.Laptop.URL = item
	if !isURL {
		res.Laptop.Seller = orDefault(res.Laptop.Seller, "Reference Catalog")
	}
	return res
}

func (a *Advisor) resolve(ctx context.Context, item string, isURL bool) *Resolution {
	if spec := a.structured(ctx, item); spec != nil {
		return &Resolution{Query: item, Laptop: spec, Source: SourceStructured}
	}
	if isURL {
		if spec := a.scraped(ctx, item); spec != nil {
			return &Resolution{Query: item, Laptop: spec, Source: SourceScraped}
		}
		return &Resolution{Query: item, Laptop: a.generator.FromURL(item), Source: SourceMock}
	}
	if spec, result := a.matcher.Match(item); spec != nil {
		if !spec.HasRequiredFields() {
			spec = a.generator.Fill(spec)
		}
		return &Resolution{Query: item, Laptop: spec, Source: SourceMatched, Match: &result}
	}
	return &Resolution{Query: item, Laptop: a.generator.FromBrand(match.ParseQuery(item).Brand), Source: SourceMock}
}

// structured returns the first search hit whose content yields a valid
// extraction, completed from a mock of the same brand.
func (a *Advisor) structured(ctx context.Context, item string) *models.LaptopSpec {
	if a.search == nil || !a.search.HasKey() {
		return nil
	}
	hits, err := a.search.ProductHits(ctx, item, a.hitLimit)
	if err != nil {
		a.logger.Warn("product search failed, falling back", zap.String("query", item), zap.Error(err))
		return nil
	}
	for _, hit := range hits {
		content := "<title>" + hit.Title + "</title>\n" + hit.Content
		r := a.extractor.Extract(content, hit.URL)
		if !r.Valid() {
			continue
		}
		spec := a.generator.Complete(r, hit.URL)
		if len(hit.Images) > 0 {
			spec.Images = hit.Images
			spec.Image = hit.Images[0]
		}
		return spec
	}
	return nil
}

// scraped fetches pageURL and completes its extraction when enough fields matched.
func (a *Advisor) scraped(ctx context.Context, pageURL string) *models.LaptopSpec {
	if a.fetcher == nil {
		return nil
	}
	content, err := a.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		a.logger.Warn("page fetch failed, falling back", zap.String("url", pageURL), zap.Error(err))
		return nil
	}
	r := a.extractor.Extract(content, pageURL)
	if r.FieldCount() < minScrapedFields {
		a.logger.Debug("too little extracted from page", zap.String("url", pageURL), zap.Int("fields", r.FieldCount()))
		return nil
	}
	return a.generator.Complete(r, pageURL)
}

// ResolveAll resolves items concurrently. Results keep the input order and
// get IDs unique to this call.
func (a *Advisor) ResolveAll(ctx context.Context, items []string) []*Resolution {
	results := make([]*Resolution, len(items))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item string) {
			defer wg.Done()
			results[i] = a.Resolve(ctx, item)
		}(i, item)
	}
	wg.Wait()

	for i, r := range results {
		r.Laptop.ID = instanceID(r, i)
	}
	return results
}

// instanceID is "<base>-<index>", where base comes from the URL or the name.
func instanceID(r *Resolution, index int) string {
	base := extract.IDFromURL(r.Query)
	if !extract.IsURL(r.Query) {
		base = slug(r.Laptop.Name)
	}
	base = strings.Trim(base, "-")
	if base == "" {
		base = "laptop-" + uuid.NewString()[:8]
	}
	return fmt.Sprintf("%s-%d", base, index)
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// laptops returns the resolved laptops in order.
func laptops(results []*Resolution) []*models.LaptopSpec {
	out := make([]*models.LaptopSpec, len(results))
	for i, r := range results {
		out[i] = r.Laptop
	}
	return out
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
