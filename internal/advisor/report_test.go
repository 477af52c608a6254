package advisor

import (
	"strings"
	"testing"

	"github.com/hyperjump/lapwise/internal/catalog"
	"github.com/hyperjump/lapwise/internal/models"
)

func TestValueScore(t *testing.T) {
	tests := []struct {
		name   string
		laptop *models.LaptopSpec
		want   int
	}{
		{
			name:   "capped at ten",
			laptop: &models.LaptopSpec{CPU: "Intel Core i7-1260P", RAM: "16GB", Storage: "512GB SSD", Price: 999, Rating: 4.6},
			want:   10,
		},
		{
			name:   "mid range",
			laptop: &models.LaptopSpec{CPU: "Intel Core i5-1235U", RAM: "8GB", Storage: "256GB SSD", Price: 1500, Rating: 4.2},
			want:   8,
		},
		{
			name:   "expensive and weak",
			laptop: &models.LaptopSpec{CPU: "Intel Celeron N4020", RAM: "4GB", Storage: "64GB eMMC", Price: 2500, Rating: 4.0},
			want:   4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValueScore(tt.laptop); got != tt.want {
				t.Errorf("ValueScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReport(t *testing.T) {
	laptops := catalog.Builtin()[:2]
	report := Report(laptops, "Student")
	for _, want := range []string{
		"# Laptop Comparison for student use",
		"## Top Recommendation: " + laptops[0].Name,
		"### 2. Dell XPS 13 Plus - $1299",
		"**Budget range:** $1099 - $1299",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestReport_Empty(t *testing.T) {
	if got := Report(nil, ""); got != "" {
		t.Errorf("Report(nil) = %q, want empty", got)
	}
}

func TestSpecNumbers(t *testing.T) {
	if got := firstInt("16GB DDR5"); got != 16 {
		t.Errorf("firstInt = %d, want 16", got)
	}
	if got := firstInt("unified memory"); got != 0 {
		t.Errorf("firstInt without digits = %d, want 0", got)
	}
	if got := weightLbs("2.7 lbs"); got != 2.7 {
		t.Errorf("weightLbs = %v, want 2.7", got)
	}
	if got := weightLbs("featherlight"); got != defaultWeightLbs {
		t.Errorf("weightLbs without digits = %v, want %v", got, defaultWeightLbs)
	}
}
