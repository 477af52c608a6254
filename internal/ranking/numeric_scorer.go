package ranking

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/hyperjump/lapwise/internal/models"
	"github.com/hyperjump/lapwise/pkg/utils"
)

var (
	firstIntRe     = regexp.MustCompile(`\d+`)
	firstDecimalRe = regexp.MustCompile(`\d+\.?\d*`)
)

// ParseFirstInt returns the first run of digits in s, or def when there is none.
func ParseFirstInt(s string, def float64) float64 {
	m := firstIntRe.FindString(s)
	if m == "" {
		return def
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return def
	}
	return v
}

// ParseFirstDecimal returns the first decimal number in s, or def when there is none.
func ParseFirstDecimal(s string, def float64) float64 {
	m := firstDecimalRe.FindString(s)
	if m == "" {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(m, "."), 64)
	if err != nil {
		return def
	}
	return v
}

// ParseStorageGB reads the first integer of s as gigabytes, multiplying by
// 1024 when the string mentions TB.
func ParseStorageGB(s string, def float64) float64 {
	m := firstIntRe.FindString(s)
	if m == "" {
		return def
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return def
	}
	if strings.Contains(strings.ToLower(s), "tb") {
		v *= 1024
	}
	return v
}

func valueOr(shadow *float64, fallback func() float64) float64 {
	if shadow != nil {
		return *shadow
	}
	return fallback()
}

// RAMScorer scales RAM linearly up to the saturation point.
type RAMScorer struct {
	config *RankingConfig
}

// NewRAMScorer creates a RAMScorer.
func NewRAMScorer(config *RankingConfig) *RAMScorer {
	return &RAMScorer{config: config}
}

// Dimension returns DimensionRAM.
func (s *RAMScorer) Dimension() Dimension { return DimensionRAM }

// Score returns min(100, ram/64*100).
func (s *RAMScorer) Score(laptop *models.LaptopSpec) float64 {
	gb := valueOr(laptop.RAMGB, func() float64 { return ParseFirstInt(laptop.RAM, s.config.DefaultRAMGB) })
	return utils.Clamp(gb/s.config.RAMSaturationGB*100, 0, 100)
}

// StorageScorer scales storage linearly up to the saturation point.
type StorageScorer struct {
	config *RankingConfig
}

// NewStorageScorer creates a StorageScorer.
func NewStorageScorer(config *RankingConfig) *StorageScorer {
	return &StorageScorer{config: config}
}

// Dimension returns DimensionStorage.
func (s *StorageScorer) Dimension() Dimension { return DimensionStorage }

// Score returns min(100, gb/2048*100).
func (s *StorageScorer) Score(laptop *models.LaptopSpec) float64 {
	gb := valueOr(laptop.StorageGB, func() float64 { return ParseStorageGB(laptop.Storage, s.config.DefaultStorageGB) })
	return utils.Clamp(gb/s.config.StorageSaturationGB*100, 0, 100)
}

// BatteryScorer maps battery life onto the configured hour range.
type BatteryScorer struct {
	config *RankingConfig
}

// NewBatteryScorer creates a BatteryScorer.
func NewBatteryScorer(config *RankingConfig) *BatteryScorer {
	return &BatteryScorer{config: config}
}

// Dimension returns DimensionBattery.
func (s *BatteryScorer) Dimension() Dimension { return DimensionBattery }

// Score is 0 at BatteryMinHours and 100 at BatteryMaxHours.
func (s *BatteryScorer) Score(laptop *models.LaptopSpec) float64 {
	hours := valueOr(laptop.BatteryHours, func() float64 { return ParseFirstDecimal(laptop.Battery, s.config.DefaultBatteryHours) })
	span := s.config.BatteryMaxHours - s.config.BatteryMinHours
	return utils.Clamp((hours-s.config.BatteryMinHours)/span*100, 0, 100)
}

// WeightScorer rewards lighter machines.
type WeightScorer struct {
	config *RankingConfig
}

// NewWeightScorer creates a WeightScorer.
func NewWeightScorer(config *RankingConfig) *WeightScorer {
	return &WeightScorer{config: config}
}

// Dimension returns DimensionWeight.
func (s *WeightScorer) Dimension() Dimension { return DimensionWeight }

// Score is 100 at WeightMinKG and 0 at WeightMaxKG.
func (s *WeightScorer) Score(laptop *models.LaptopSpec) float64 {
	kg := valueOr(laptop.WeightKG, func() float64 { return ParseFirstDecimal(laptop.Weight, s.config.DefaultWeightKG) })
	span := s.config.WeightMaxKG - s.config.WeightMinKG
	return utils.Clamp(100-(kg-s.config.WeightMinKG)/span*100, 0, 100)
}

// ScreenScorer peaks at the ideal diagonal.
type ScreenScorer struct {
	config *RankingConfig
}

// NewScreenScorer creates a ScreenScorer.
func NewScreenScorer(config *RankingConfig) *ScreenScorer {
	return &ScreenScorer{config: config}
}

// Dimension returns DimensionScreen.
func (s *ScreenScorer) Dimension() Dimension { return DimensionScreen }

// Score loses ScreenFalloffPerInch points per inch away from the ideal size.
func (s *ScreenScorer) Score(laptop *models.LaptopSpec) float64 {
	in := valueOr(laptop.ScreenIn, func() float64 { return ParseFirstDecimal(laptop.Screen, s.config.DefaultScreenInches) })
	return utils.Clamp(100-math.Abs(in-s.config.ScreenIdealInches)*s.config.ScreenFalloffPerInch, 0, 100)
}
