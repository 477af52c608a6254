package ranking

import (
	"math"
	"sort"

	"github.com/hyperjump/lapwise/internal/models"
	"github.com/hyperjump/lapwise/pkg/utils"
)

// Ranker combines the dimension scorers into persona scores.
// It holds no per-call state and is safe for concurrent use.
type Ranker struct {
	config  *RankingConfig
	scorers map[Dimension]Scorer
}

// NewRanker creates a new Ranker with the given configuration.
func NewRanker(config *RankingConfig) *Ranker {
	if config == nil {
		config = DefaultRankingConfig()
	}
	config.ApplyDefaults()

	r := &Ranker{
		config:  config,
		scorers: make(map[Dimension]Scorer),
	}
	for _, s := range []Scorer{
		NewGPUScorer(),
		NewCPUScorer(),
		NewRAMScorer(config),
		NewStorageScorer(config),
		NewBatteryScorer(config),
		NewWeightScorer(config),
		NewScreenScorer(config),
	} {
		r.scorers[s.Dimension()] = s
	}
	return r
}

// WithScorer replaces the scorer for its dimension.
func (r *Ranker) WithScorer(s Scorer) *Ranker {
	r.scorers[s.Dimension()] = s
	return r
}

// Config returns the ranker's normalization config.
func (r *Ranker) Config() *RankingConfig {
	return r.config
}

// Score returns the laptop's integer score in [0, 100] for persona p.
func (r *Ranker) Score(laptop *models.LaptopSpec, p Persona) int {
	return r.ScoreWithBreakdown(laptop, p).FinalScore
}

// ScoreWithBreakdown returns the score with every contributing sub-score.
// Dimensions the persona does not weight are skipped entirely.
func (r *Ranker) ScoreWithBreakdown(laptop *models.LaptopSpec, p Persona) *ScoreBreakdown {
	if laptop == nil {
		laptop = &models.LaptopSpec{}
	}
	weights := p.Weights()
	breakdown := NewScoreBreakdown(p)

	var sum float64
	for _, d := range Dimensions() {
		w := weights.For(d)
		if w == 0 {
			continue
		}
		scorer, ok := r.scorers[d]
		if !ok {
			continue
		}
		sub := utils.Clamp(scorer.Score(laptop), 0, 100)
		breakdown.SubScores[d.String()] = sub
		sum += sub * w
	}
	breakdown.WeightedSum = sum

	if weights.PricePenalty != 0 {
		breakdown.PricePenalty = r.PricePenalty(laptop.Price, weights.PricePenalty)
	}

	final := math.Round(sum - breakdown.PricePenalty)
	breakdown.FinalScore = int(utils.Clamp(final, 0, 100))
	return breakdown
}

// PricePenalty returns clamp((price-floor)/span, 0, 1) * weight * 100.
func (r *Ranker) PricePenalty(price, weight float64) float64 {
	normalized := utils.Clamp((price-r.config.PriceFloor)/r.config.PriceSpan, 0, 1)
	return normalized * weight * 100
}

// Rank scores every laptop for persona p and sorts descending by score.
// Equal scores keep their input order. Nil entries are skipped.
func (r *Ranker) Rank(laptops []*models.LaptopSpec, p Persona) []*ScoredLaptop {
	return r.rank(laptops, p, false)
}

// RankWithBreakdown is Rank with the per-dimension breakdown attached to each result.
func (r *Ranker) RankWithBreakdown(laptops []*models.LaptopSpec, p Persona) []*ScoredLaptop {
	return r.rank(laptops, p, true)
}

func (r *Ranker) rank(laptops []*models.LaptopSpec, p Persona, withBreakdown bool) []*ScoredLaptop {
	results := make([]*ScoredLaptop, 0, len(laptops))
	for _, l := range laptops {
		if l == nil {
			continue
		}
		b := r.ScoreWithBreakdown(l, p)
		result := &ScoredLaptop{Laptop: l, Score: b.FinalScore}
		if withBreakdown {
			result.Breakdown = b
		}
		results = append(results, result)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// TopN returns the first n ranked results.
func TopN(results []*ScoredLaptop, n int) []*ScoredLaptop {
	if n <= 0 || n >= len(results) {
		return results
	}
	return results[:n]
}

// FilterByMinScore keeps results scoring at least minScore.
func FilterByMinScore(results []*ScoredLaptop, minScore int) []*ScoredLaptop {
	filtered := make([]*ScoredLaptop, 0, len(results))
	for _, r := range results {
		if r.Score >= minScore {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

var defaultRanker = NewRanker(nil)

// CalculateScore scores a laptop for persona p with the default configuration.
func CalculateScore(laptop *models.LaptopSpec, p Persona) int {
	return defaultRanker.Score(laptop, p)
}

// RankLaptops ranks laptops for persona p with the default configuration.
func RankLaptops(laptops []*models.LaptopSpec, p Persona) []*ScoredLaptop {
	return defaultRanker.Rank(laptops, p)
}
