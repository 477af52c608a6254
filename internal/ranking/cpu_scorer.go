package ranking

import (
	"strings"

	"github.com/hyperjump/lapwise/internal/models"
)

const defaultCPUScore = 50

// cpuTier scores a processor family by generation. Generation markers are
// plain substrings of the lowercased CPU string.
type cpuTier struct {
	families  []string
	newestGen []string
	recentGen []string
	// scores for newest, recent and any other generation
	scores [3]float64
}

var cpuTiers = []cpuTier{
	{families: []string{"i9", "ultra 9"}, newestGen: []string{"14", "13"}, recentGen: []string{"12", "11"}, scores: [3]float64{100, 90, 85}},
	{families: []string{"i7", "ultra 7"}, newestGen: []string{"14", "13"}, recentGen: []string{"12", "11"}, scores: [3]float64{90, 80, 75}},
	{families: []string{"i5", "ultra 5"}, newestGen: []string{"14", "13"}, recentGen: []string{"12", "11"}, scores: [3]float64{75, 65, 60}},
	{families: []string{"ryzen 9"}, newestGen: []string{"7000", "8000"}, recentGen: []string{"6000", "5000"}, scores: [3]float64{100, 90, 85}},
	{families: []string{"ryzen 7"}, newestGen: []string{"7000", "8000"}, recentGen: []string{"6000", "5000"}, scores: [3]float64{90, 80, 75}},
	{families: []string{"ryzen 5"}, newestGen: []string{"7000", "8000"}, recentGen: []string{"6000", "5000"}, scores: [3]float64{75, 65, 60}},
}

var appleSiliconScores = []struct {
	marker string
	score  float64
}{
	{"m3", 95},
	{"m2", 85},
	{"m1", 75},
}

// CPUScorer rates the processor using a vendor, tier and generation lookup table.
type CPUScorer struct{}

// NewCPUScorer creates a CPUScorer.
func NewCPUScorer() *CPUScorer {
	return &CPUScorer{}
}

// Dimension returns DimensionCPU.
func (s *CPUScorer) Dimension() Dimension {
	return DimensionCPU
}

// Score returns the CPU sub-score for the laptop.
func (s *CPUScorer) Score(laptop *models.LaptopSpec) float64 {
	return CPUScore(laptop.CPU)
}

// CPUScore maps a free-form CPU description to 0-100. Unrecognized strings score 50.
func CPUScore(cpu string) float64 {
	if cpu == "" {
		return defaultCPUScore
	}
	lower := strings.ToLower(cpu)
	for _, tier := range cpuTiers {
		if !containsAny(lower, tier.families) {
			continue
		}
		switch {
		case containsAny(lower, tier.newestGen):
			return tier.scores[0]
		case containsAny(lower, tier.recentGen):
			return tier.scores[1]
		default:
			return tier.scores[2]
		}
	}
	for _, m := range appleSiliconScores {
		if strings.Contains(lower, m.marker) {
			return m.score
		}
	}
	return defaultCPUScore
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
