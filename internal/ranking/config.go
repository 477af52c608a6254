package ranking

import "gopkg.in/yaml.v3"

// RankingConfig holds the normalization bounds used to turn raw specs into sub-scores.
//
// A config built with DefaultRankingConfig or decoded from YAML is complete:
// its zero values are deliberate (a 0h battery floor, a $0 price floor) and
// ApplyDefaults keeps them. In a bare struct literal a zero means unset.
type RankingConfig struct {
	// Linear saturation points
	RAMSaturationGB     float64 `yaml:"ram_saturation_gb"`     // default: 64
	StorageSaturationGB float64 `yaml:"storage_saturation_gb"` // default: 2048

	// Battery scale: MinHours scores 0, MaxHours scores 100
	BatteryMinHours float64 `yaml:"battery_min_hours"` // default: 4
	BatteryMaxHours float64 `yaml:"battery_max_hours"` // default: 20

	// Weight scale (inverted): MinKG scores 100, MaxKG scores 0
	WeightMinKG float64 `yaml:"weight_min_kg"` // default: 0.5
	WeightMaxKG float64 `yaml:"weight_max_kg"` // default: 3.0

	// Screen peaks at IdealInches and loses FalloffPerInch per inch of deviation
	ScreenIdealInches    float64 `yaml:"screen_ideal_inches"`     // default: 15
	ScreenFalloffPerInch float64 `yaml:"screen_falloff_per_inch"` // default: 10

	// Price penalty ramps from PriceFloor to PriceFloor+PriceSpan
	PriceFloor float64 `yaml:"price_floor"` // default: 500
	PriceSpan  float64 `yaml:"price_span"`  // default: 2500

	// Fallbacks when a spec string has no digits
	DefaultRAMGB        float64 `yaml:"default_ram_gb"`        // default: 8
	DefaultStorageGB    float64 `yaml:"default_storage_gb"`    // default: 256
	DefaultBatteryHours float64 `yaml:"default_battery_hours"` // default: 8
	DefaultWeightKG     float64 `yaml:"default_weight_kg"`     // default: 2
	DefaultScreenInches float64 `yaml:"default_screen_inches"` // default: 15

	complete bool
}

// DefaultRankingConfig returns the default ranking configuration.
func DefaultRankingConfig() *RankingConfig {
	return &RankingConfig{
		RAMSaturationGB:     64,
		StorageSaturationGB: 2048,

		BatteryMinHours: 4,
		BatteryMaxHours: 20,

		WeightMinKG: 0.5,
		WeightMaxKG: 3.0,

		ScreenIdealInches:    15,
		ScreenFalloffPerInch: 10,

		PriceFloor: 500,
		PriceSpan:  2500,

		DefaultRAMGB:        8,
		DefaultStorageGB:    256,
		DefaultBatteryHours: 8,
		DefaultWeightKG:     2,
		DefaultScreenInches: 15,

		complete: true,
	}
}

// UnmarshalYAML decodes over the defaults, so keys absent from the document
// keep their default and keys present keep their value, zero included.
func (c *RankingConfig) UnmarshalYAML(value *yaml.Node) error {
	type plain RankingConfig
	p := plain(*DefaultRankingConfig())
	if err := value.Decode(&p); err != nil {
		return err
	}
	*c = RankingConfig(p)
	c.complete = true
	return nil
}

// ApplyDefaults fills unset values with defaults and replaces values that
// would divide by zero or invert a scale.
func (c *RankingConfig) ApplyDefaults() {
	defaults := DefaultRankingConfig()

	if !c.complete {
		fillZero(&c.RAMSaturationGB, defaults.RAMSaturationGB)
		fillZero(&c.StorageSaturationGB, defaults.StorageSaturationGB)
		fillZero(&c.BatteryMinHours, defaults.BatteryMinHours)
		fillZero(&c.BatteryMaxHours, defaults.BatteryMaxHours)
		fillZero(&c.WeightMinKG, defaults.WeightMinKG)
		fillZero(&c.WeightMaxKG, defaults.WeightMaxKG)
		fillZero(&c.ScreenIdealInches, defaults.ScreenIdealInches)
		fillZero(&c.ScreenFalloffPerInch, defaults.ScreenFalloffPerInch)
		fillZero(&c.PriceFloor, defaults.PriceFloor)
		fillZero(&c.PriceSpan, defaults.PriceSpan)
		fillZero(&c.DefaultRAMGB, defaults.DefaultRAMGB)
		fillZero(&c.DefaultStorageGB, defaults.DefaultStorageGB)
		fillZero(&c.DefaultBatteryHours, defaults.DefaultBatteryHours)
		fillZero(&c.DefaultWeightKG, defaults.DefaultWeightKG)
		fillZero(&c.DefaultScreenInches, defaults.DefaultScreenInches)
		c.complete = true
	}

	// Divisors must be positive and ranges non-empty
	if c.RAMSaturationGB <= 0 {
		c.RAMSaturationGB = defaults.RAMSaturationGB
	}
	if c.StorageSaturationGB <= 0 {
		c.StorageSaturationGB = defaults.StorageSaturationGB
	}
	if c.BatteryMaxHours <= c.BatteryMinHours {
		c.BatteryMaxHours = c.BatteryMinHours + (defaults.BatteryMaxHours - defaults.BatteryMinHours)
	}
	if c.WeightMaxKG <= c.WeightMinKG {
		c.WeightMaxKG = c.WeightMinKG + (defaults.WeightMaxKG - defaults.WeightMinKG)
	}
	if c.PriceSpan <= 0 {
		c.PriceSpan = defaults.PriceSpan
	}
}

func fillZero(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}
