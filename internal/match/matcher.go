package match

import (
	"fmt"
	"strings"

	"github.com/hyperjump/lapwise/internal/models"
)

const (
	defaultThreshold = 0.3
	maxMatchScore    = 10.0

	brandWeight      = 3.0
	modelWeight      = 2.0
	similarityWeight = 2.0
)

// Strategy records how a match was chosen.
type Strategy int

const (
	// StrategyNone means the catalog was empty.
	StrategyNone Strategy = iota
	// StrategyKeyword means the weighted keyword score cleared the threshold.
	StrategyKeyword
	// StrategySimilarity means name or brand similarity cleared the threshold.
	StrategySimilarity
	// StrategyFallback means nothing cleared the threshold and the first entry was used.
	StrategyFallback
)

// String returns a string representation of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyNone:
		return "none"
	case StrategyKeyword:
		return "keyword"
	case StrategySimilarity:
		return "similarity"
	case StrategyFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	for _, candidate := range []Strategy{StrategyNone, StrategyKeyword, StrategySimilarity, StrategyFallback} {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown strategy: %q", text)
}

// Result describes how the returned laptop was selected.
type Result struct {
	Strategy Strategy `json:"strategy"`
	// Score is the normalized keyword score or the similarity, depending on Strategy.
	Score float64 `json:"score"`
	// Index is the catalog position of the match, or -1.
	Index int `json:"index"`
}

// Catalog supplies the reference laptops to match against.
type Catalog interface {
	Laptops() []*models.LaptopSpec
}

// Matcher picks the closest catalog entry for a free-text query.
type Matcher struct {
	catalog   Catalog
	threshold float64
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithThreshold sets the minimum score accepted before falling back (default 0.3).
func WithThreshold(t float64) MatcherOption {
	return func(m *Matcher) {
		if t > 0 {
			m.threshold = t
		}
	}
}

// NewMatcher creates a matcher over catalog.
func NewMatcher(catalog Catalog, opts ...MatcherOption) *Matcher {
	m := &Matcher{
		catalog:   catalog,
		threshold: defaultThreshold,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match parses q and returns a copy of the best catalog entry. It only
// returns nil when the catalog is empty.
func (m *Matcher) Match(q string) (*models.LaptopSpec, Result) {
	return m.MatchQuery(ParseQuery(q))
}

// MatchQuery is Match for an already parsed query.
func (m *Matcher) MatchQuery(q *Query) (*models.LaptopSpec, Result) {
	laptops := m.catalog.Laptops()
	if len(laptops) == 0 {
		return nil, Result{Strategy: StrategyNone, Index: -1}
	}

	best, bestScore := -1, 0.0
	for i, l := range laptops {
		if s := MatchScore(l, q); s > bestScore {
			best, bestScore = i, s
		}
	}
	if best >= 0 && bestScore >= m.threshold {
		return laptops[best].Clone(), Result{Strategy: StrategyKeyword, Score: bestScore, Index: best}
	}

	best, bestSim := -1, 0.0
	for i, l := range laptops {
		sim := Similarity(q.Normalized, strings.ToLower(l.Name))
		if b := Similarity(q.Normalized, strings.ToLower(l.Brand)); b > sim {
			sim = b
		}
		if sim > bestSim && sim > m.threshold {
			best, bestSim = i, sim
		}
	}
	if best >= 0 {
		return laptops[best].Clone(), Result{Strategy: StrategySimilarity, Score: bestSim, Index: best}
	}

	return laptops[0].Clone(), Result{Strategy: StrategyFallback, Score: bestScore, Index: 0}
}

// MatchScore is the weighted keyword score of laptop for q, normalized to [0, 1].
func MatchScore(laptop *models.LaptopSpec, q *Query) float64 {
	var score float64
	name := strings.ToLower(laptop.Name)

	if q.Brand != "" && strings.Contains(strings.ToLower(laptop.Brand), q.Brand) {
		score += brandWeight
	}
	if q.Model != "" && strings.Contains(name, q.Model) {
		score += modelWeight
	}
	for _, spec := range q.Specs {
		score += specTokenScore(laptop, spec)
	}
	score += similarityWeight * Similarity(q.Normalized, name)

	score /= maxMatchScore
	if score > 1 {
		return 1
	}
	return score
}

func specTokenScore(laptop *models.LaptopSpec, spec string) float64 {
	cpu := strings.ToLower(laptop.CPU)
	switch spec {
	case TokenIntel:
		if strings.Contains(cpu, "intel") {
			return 1
		}
	case TokenAMD:
		if strings.Contains(cpu, "amd") {
			return 1
		}
	case TokenAppleSilicon:
		if strings.Contains(cpu, "m1") || strings.Contains(cpu, "m2") || strings.Contains(cpu, "m3") {
			return 1
		}
	case TokenGaming:
		if laptop.Price > 1000 {
			return 0.5
		}
	case TokenBusiness:
		if strings.Contains(laptop.OS, "Pro") {
			return 0.5
		}
	case TokenStudent:
		if laptop.Price < 1200 {
			return 0.5
		}
	default:
		if amount, ok := strings.CutSuffix(spec, ramTokenSuffix); ok {
			if strings.Contains(strings.ToLower(laptop.RAM), amount+"gb") {
				return 1
			}
		}
	}
	return 0
}
