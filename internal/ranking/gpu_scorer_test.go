package ranking

import (
	"testing"

	"github.com/hyperjump/lapwise/internal/models"
)

func TestGPUScore(t *testing.T) {
	tests := []struct {
		name string
		gpu  string
		want float64
	}{
		{"absent", "", 30},
		{"blank", "   ", 30},
		{"rtx 4090", "NVIDIA GeForce RTX 4090 16GB", 100},
		{"rtx 4070", "NVIDIA GeForce RTX 4070", 90},
		{"rtx 3050", "NVIDIA GeForce RTX 3050 Ti", 60},
		{"gtx 1650", "NVIDIA GeForce GTX 1650", 50},
		{"rx 7600", "AMD Radeon RX 7600S", 70},
		{"rx 6800", "AMD Radeon RX 6800M", 75},
		{"iris xe", "Intel Iris Xe Graphics", 45},
		{"radeon integrated", "AMD Radeon integrated graphics", 40},
		{"intel uhd", "Intel UHD Graphics 620", 35},
		{"unknown", "Mystery Graphics 9000", 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GPUScore(tt.gpu); got != tt.want {
				t.Errorf("GPUScore(%q) = %v, want %v", tt.gpu, got, tt.want)
			}
		})
	}
}

func TestGPUScorer(t *testing.T) {
	s := NewGPUScorer()
	if got := s.Score(&models.LaptopSpec{}); got != 30 {
		t.Errorf("Score(no gpu) = %v, want 30", got)
	}
}
