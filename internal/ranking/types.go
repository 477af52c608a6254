// Package ranking scores laptops against buyer personas and ranks them.
package ranking

import (
	"fmt"
	"strings"

	"github.com/hyperjump/lapwise/internal/models"
)

// Persona is a named buyer profile with a fixed weight vector.
type Persona int

const (
	// PersonaGaming favours GPU and CPU.
	PersonaGaming Persona = iota
	// PersonaCreative favours CPU, RAM and GPU for media work.
	PersonaCreative
	// PersonaProgramming favours CPU and RAM with some portability.
	PersonaProgramming
	// PersonaStudent favours low price, low weight and long battery life.
	PersonaStudent
	// PersonaPortable favours weight and battery above all.
	PersonaPortable
)

// String returns the display name of the persona.
func (p Persona) String() string {
	switch p {
	case PersonaGaming:
		return "Gaming"
	case PersonaCreative:
		return "Creative"
	case PersonaProgramming:
		return "Programming"
	case PersonaStudent:
		return "Student"
	case PersonaPortable:
		return "Portable"
	default:
		return "unknown"
	}
}

// Personas returns every persona in declaration order.
func Personas() []Persona {
	return []Persona{PersonaGaming, PersonaCreative, PersonaProgramming, PersonaStudent, PersonaPortable}
}

// ParsePersona accepts a persona name (case-insensitive) or one of its common aliases.
func ParsePersona(s string) (Persona, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gaming", "gamer":
		return PersonaGaming, nil
	case "creative", "creator", "design":
		return PersonaCreative, nil
	case "programming", "programmer", "developer", "coding":
		return PersonaProgramming, nil
	case "student":
		return PersonaStudent, nil
	case "portable", "portability", "travel":
		return PersonaPortable, nil
	default:
		return 0, fmt.Errorf("unknown persona: %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Persona) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Persona) UnmarshalText(text []byte) error {
	parsed, err := ParsePersona(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Dimension is one axis of the laptop score.
type Dimension int

const (
	DimensionGPU Dimension = iota
	DimensionCPU
	DimensionRAM
	DimensionStorage
	DimensionBattery
	DimensionWeight
	DimensionScreen
)

// String returns the lowercase dimension name used in breakdowns.
func (d Dimension) String() string {
	switch d {
	case DimensionGPU:
		return "gpu"
	case DimensionCPU:
		return "cpu"
	case DimensionRAM:
		return "ram"
	case DimensionStorage:
		return "storage"
	case DimensionBattery:
		return "battery"
	case DimensionWeight:
		return "weight"
	case DimensionScreen:
		return "screen"
	default:
		return "unknown"
	}
}

// Dimensions returns every scored dimension in evaluation order.
func Dimensions() []Dimension {
	return []Dimension{
		DimensionGPU, DimensionCPU, DimensionRAM, DimensionStorage,
		DimensionBattery, DimensionWeight, DimensionScreen,
	}
}

// Weights is a persona's weight vector. PricePenalty is applied separately
// as a subtraction, not as part of the weighted sum.
type Weights struct {
	GPU          float64 `json:"gpu,omitempty"`
	CPU          float64 `json:"cpu,omitempty"`
	RAM          float64 `json:"ram,omitempty"`
	Storage      float64 `json:"storage,omitempty"`
	Battery      float64 `json:"battery,omitempty"`
	Weight       float64 `json:"weight,omitempty"`
	Screen       float64 `json:"screen,omitempty"`
	PricePenalty float64 `json:"price_penalty,omitempty"`
}

// For returns the weight of dimension d.
func (w Weights) For(d Dimension) float64 {
	switch d {
	case DimensionGPU:
		return w.GPU
	case DimensionCPU:
		return w.CPU
	case DimensionRAM:
		return w.RAM
	case DimensionStorage:
		return w.Storage
	case DimensionBattery:
		return w.Battery
	case DimensionWeight:
		return w.Weight
	case DimensionScreen:
		return w.Screen
	default:
		return 0
	}
}

// Weights returns the fixed weight vector for the persona.
func (p Persona) Weights() Weights {
	switch p {
	case PersonaGaming:
		return Weights{GPU: 0.40, CPU: 0.25, RAM: 0.15, Storage: 0.05, PricePenalty: 0.15}
	case PersonaCreative:
		return Weights{CPU: 0.30, RAM: 0.25, GPU: 0.20, Storage: 0.15, PricePenalty: 0.10}
	case PersonaProgramming:
		return Weights{CPU: 0.35, RAM: 0.30, Battery: 0.10, Weight: 0.10, PricePenalty: 0.15}
	case PersonaStudent:
		return Weights{PricePenalty: 0.30, Weight: 0.20, Battery: 0.20, RAM: 0.15, Storage: 0.15}
	case PersonaPortable:
		return Weights{Weight: 0.35, Battery: 0.35, Screen: 0.10, RAM: 0.10, PricePenalty: 0.10}
	default:
		return Weights{}
	}
}

// Scorer produces a 0-100 sub-score for one dimension of a laptop.
type Scorer interface {
	// Score rates the laptop on this scorer's dimension.
	Score(laptop *models.LaptopSpec) float64
	// Dimension returns the dimension this scorer rates.
	Dimension() Dimension
}

// ScoredLaptop pairs a laptop with its score for one persona.
type ScoredLaptop struct {
	Laptop    *models.LaptopSpec `json:"laptop"`
	Score     int                `json:"score"`
	Breakdown *ScoreBreakdown    `json:"breakdown,omitempty"`
}

// ScoreBreakdown provides the per-dimension detail behind a score.
type ScoreBreakdown struct {
	Persona Persona `json:"persona"`
	// SubScores holds only the dimensions the persona weights.
	SubScores   map[string]float64 `json:"sub_scores"`
	WeightedSum float64            `json:"weighted_sum"`
	// PricePenalty is the amount subtracted from WeightedSum.
	PricePenalty float64 `json:"price_penalty"`
	FinalScore   int     `json:"final_score"`
}

// NewScoreBreakdown creates an empty breakdown for persona p.
func NewScoreBreakdown(p Persona) *ScoreBreakdown {
	return &ScoreBreakdown{
		Persona:   p,
		SubScores: make(map[string]float64),
	}
}
