package ranking

import (
	"strings"

	"github.com/hyperjump/lapwise/internal/models"
)

const (
	absentGPUScore  = 30
	unknownGPUScore = 40
)

// gpuRule matches when every marker is present in the lowercased GPU string.
type gpuRule struct {
	markers []string
	score   float64
}

// Rules are checked in order; the first hit wins.
var gpuRules = []gpuRule{
	// NVIDIA
	{[]string{"rtx 4090"}, 100},
	{[]string{"rtx 4080"}, 95},
	{[]string{"rtx 4070"}, 90},
	{[]string{"rtx 4060"}, 80},
	{[]string{"rtx 4050"}, 70},
	{[]string{"rtx 3080"}, 85},
	{[]string{"rtx 3070"}, 80},
	{[]string{"rtx 3060"}, 70},
	{[]string{"rtx 3050"}, 60},
	{[]string{"gtx 1650"}, 50},
	// AMD
	{[]string{"rx 7900"}, 95},
	{[]string{"rx 7800"}, 85},
	{[]string{"rx 7700"}, 80},
	{[]string{"rx 7600"}, 70},
	{[]string{"rx 6800"}, 75},
	{[]string{"rx 6700"}, 70},
	{[]string{"rx 6600"}, 60},
	// Integrated
	{[]string{"iris xe"}, 45},
	{[]string{"radeon", "integrated"}, 40},
	{[]string{"intel", "uhd"}, 35},
}

// GPUScorer rates the graphics adapter using a model-number lookup table.
type GPUScorer struct{}

// NewGPUScorer creates a GPUScorer.
func NewGPUScorer() *GPUScorer {
	return &GPUScorer{}
}

// Dimension returns DimensionGPU.
func (s *GPUScorer) Dimension() Dimension {
	return DimensionGPU
}

// Score returns the GPU sub-score for the laptop.
func (s *GPUScorer) Score(laptop *models.LaptopSpec) float64 {
	return GPUScore(laptop.GPU)
}

// GPUScore maps a GPU description to 0-100. An empty string means no GPU
// was listed (30); an unrecognized one scores 40.
func GPUScore(gpu string) float64 {
	if strings.TrimSpace(gpu) == "" {
		return absentGPUScore
	}
	lower := strings.ToLower(gpu)
	for _, rule := range gpuRules {
		if containsAll(lower, rule.markers) {
			return rule.score
		}
	}
	return unknownGPUScore
}

func containsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
