package advisor

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/hyperjump/lapwise/internal/llm"
	"github.com/hyperjump/lapwise/internal/models"
	"github.com/hyperjump/lapwise/internal/ranking"
	"github.com/hyperjump/lapwise/internal/search"
)

// Summary sources.
const (
	SummaryAI        = "ai"
	SummaryHeuristic = "heuristic"
)

// Comparison is the outcome of Compare or Discover.
type Comparison struct {
	Results []*Resolution        `json:"results"`
	Laptops []*models.LaptopSpec `json:"laptops"`
	// Persona and Ranked are set when a persona was requested.
	Persona string                  `json:"persona,omitempty"`
	Ranked  []*ranking.ScoredLaptop `json:"ranked,omitempty"`
	Summary string                  `json:"summary,omitempty"`
	// SummarySource is SummaryAI or SummaryHeuristic when Summary is set.
	SummarySource string `json:"summary_source,omitempty"`
}

// Compare resolves every query, ranks the laptops when a persona is set, and
// summarizes them on request. A missing LLM key only fails the call when
// req.RequireAI is set; otherwise the heuristic report is used.
func (a *Advisor) Compare(ctx context.Context, req *models.CompareRequest) (*Comparison, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	persona, hasPersona, err := parsePersona(req.Persona)
	if err != nil {
		return nil, err
	}

	results := a.ResolveAll(ctx, req.Queries)
	cmp := a.newComparison(results, persona, hasPersona)
	if req.Summarize {
		if err := a.summarize(ctx, cmp, req.RequireAI); err != nil {
			return nil, err
		}
	}
	return cmp, nil
}

// Discover finds product pages for a brand and resolves each one. When no
// page is found, mock laptops for the brand stand in.
func (a *Advisor) Discover(ctx context.Context, req *models.DiscoverRequest) (*Comparison, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	persona, hasPersona, err := parsePersona(req.Persona)
	if err != nil {
		return nil, err
	}

	var urls []string
	if a.discoverer != nil {
		urls = a.discoverer.ProductURLs(ctx, req.Brand, req.Limit)
	}
	if len(urls) == 0 {
		a.logger.Info("no product pages found, using mock laptops", zap.String("brand", req.Brand))
		urls = mockURLs(req.Brand, req.Limit)
	}
	return a.newComparison(a.ResolveAll(ctx, urls), persona, hasPersona), nil
}

// mockURLs builds placeholder product URLs on the brand's domain.
func mockURLs(brand string, n int) []string {
	domain := search.BrandDomain(brand)
	urls := make([]string, n)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://www.%s/laptops/laptop-%d", domain, i+1)
	}
	return urls
}

func (a *Advisor) newComparison(results []*Resolution, persona ranking.Persona, hasPersona bool) *Comparison {
	cmp := &Comparison{
		Results: results,
		Laptops: laptops(results),
	}
	if hasPersona {
		cmp.Persona = persona.String()
		cmp.Ranked = a.ranker.Rank(cmp.Laptops, persona)
	}
	return cmp
}

func (a *Advisor) summarize(ctx context.Context, cmp *Comparison, requireAI bool) error {
	if a.llm == nil {
		if requireAI {
			return llm.ErrMissingAPIKey
		}
		cmp.Summary, cmp.SummarySource = Report(cmp.Laptops, cmp.Persona), SummaryHeuristic
		return nil
	}

	prompt := llm.ComparisonPrompt(cmp.Laptops, cmp.Persona)
	reply, err := a.llm.Generate(ctx, []models.Message{{Role: models.RoleUser, Content: prompt}})
	if err == nil {
		cmp.Summary, cmp.SummarySource = reply, SummaryAI
		return nil
	}
	if requireAI && errors.Is(err, llm.ErrMissingAPIKey) {
		return err
	}
	a.logger.Warn("AI summary unavailable, using heuristic report", zap.Error(err))
	cmp.Summary, cmp.SummarySource = Report(cmp.Laptops, cmp.Persona), SummaryHeuristic
	return nil
}
