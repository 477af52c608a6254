package ranking

import (
	"testing"

	"github.com/hyperjump/lapwise/internal/models"
)

func TestParseHelpers(t *testing.T) {
	if got := ParseFirstInt("16GB LPDDR5", 8); got != 16 {
		t.Errorf("ParseFirstInt = %v, want 16", got)
	}
	if got := ParseFirstInt("Not specified", 8); got != 8 {
		t.Errorf("ParseFirstInt default = %v, want 8", got)
	}
	if got := ParseFirstDecimal(`13.6" Liquid Retina`, 15); got != 13.6 {
		t.Errorf("ParseFirstDecimal = %v, want 13.6", got)
	}
	if got := ParseFirstDecimal("Up to 18 hours", 8); got != 18 {
		t.Errorf("ParseFirstDecimal = %v, want 18", got)
	}
	if got := ParseStorageGB("1TB SSD", 256); got != 1024 {
		t.Errorf("ParseStorageGB(1TB) = %v, want 1024", got)
	}
	if got := ParseStorageGB("512GB PCIe NVMe SSD", 256); got != 512 {
		t.Errorf("ParseStorageGB(512GB) = %v, want 512", got)
	}
	if got := ParseStorageGB("", 256); got != 256 {
		t.Errorf("ParseStorageGB default = %v, want 256", got)
	}
}

func TestRAMScorer(t *testing.T) {
	s := NewRAMScorer(DefaultRankingConfig())
	tests := []struct {
		name   string
		laptop *models.LaptopSpec
		want   float64
	}{
		{"64gb shadow", &models.LaptopSpec{RAMGB: models.Float(64)}, 100},
		{"zero shadow is not absent", &models.LaptopSpec{RAMGB: models.Float(0), RAM: "32GB"}, 0},
		{"128gb saturates", &models.LaptopSpec{RAMGB: models.Float(128)}, 100},
		{"from string", &models.LaptopSpec{RAM: "16GB DDR4"}, 25},
		{"default when no digits", &models.LaptopSpec{RAM: "Not specified"}, 12.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Score(tt.laptop); got != tt.want {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStorageScorer(t *testing.T) {
	s := NewStorageScorer(DefaultRankingConfig())
	tests := []struct {
		storage string
		want    float64
	}{
		{"2TB SSD", 100},
		{"1TB SSD", 50},
		{"512GB SSD", 25},
		{"4TB", 100},
		{"", 12.5},
	}
	for _, tt := range tests {
		t.Run(tt.storage, func(t *testing.T) {
			if got := s.Score(&models.LaptopSpec{Storage: tt.storage}); got != tt.want {
				t.Errorf("Score(%q) = %v, want %v", tt.storage, got, tt.want)
			}
		})
	}
}

func TestBatteryScorer(t *testing.T) {
	s := NewBatteryScorer(DefaultRankingConfig())
	tests := []struct {
		battery string
		want    float64
	}{
		{"Up to 20 hours", 100},
		{"Up to 18 hours", 87.5},
		{"4 hours", 0},
		{"2 hours", 0},
		{"30 hours", 100},
		{"Not specified", 25},
	}
	for _, tt := range tests {
		t.Run(tt.battery, func(t *testing.T) {
			if got := s.Score(&models.LaptopSpec{Battery: tt.battery}); got != tt.want {
				t.Errorf("Score(%q) = %v, want %v", tt.battery, got, tt.want)
			}
		})
	}
}

func TestWeightScorer(t *testing.T) {
	s := NewWeightScorer(DefaultRankingConfig())
	tests := []struct {
		name string
		kg   float64
		want float64
	}{
		{"featherweight", 0.5, 100},
		{"midpoint", 1.75, 50},
		{"heavy", 3.0, 0},
		{"very heavy clamps", 5.0, 0},
		{"lighter than floor clamps", 0.2, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Score(&models.LaptopSpec{WeightKG: models.Float(tt.kg)}); got != tt.want {
				t.Errorf("Score(%v kg) = %v, want %v", tt.kg, got, tt.want)
			}
		})
	}
	if got := s.Score(&models.LaptopSpec{Weight: "n/a"}); got != 40 {
		t.Errorf("Score(default 2kg) = %v, want 40", got)
	}
}

func TestScreenScorer(t *testing.T) {
	s := NewScreenScorer(DefaultRankingConfig())
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"ideal", 15, 100},
		{"13 inch", 13, 80},
		{"17 inch", 17, 80},
		{"implausible clamps", 25, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Score(&models.LaptopSpec{ScreenIn: models.Float(tt.in)}); got != tt.want {
				t.Errorf("Score(%v in) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
	if got := s.Score(&models.LaptopSpec{Screen: `14" FHD Display`}); got != 90 {
		t.Errorf("Score(14 inch string) = %v, want 90", got)
	}
}
