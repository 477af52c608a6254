package ranking

import (
	"math"
	"testing"

	"github.com/hyperjump/lapwise/internal/models"
)

func TestNewRanker(t *testing.T) {
	ranker := NewRanker(nil)
	if ranker == nil || ranker.config == nil {
		t.Fatal("Expected non-nil ranker with config")
	}

	config := &RankingConfig{RAMSaturationGB: 32}
	ranker = NewRanker(config)
	if ranker.config.RAMSaturationGB != 32 {
		t.Errorf("Expected RAMSaturationGB 32, got %v", ranker.config.RAMSaturationGB)
	}
	if ranker.config.PriceFloor != 500 {
		t.Errorf("Expected default PriceFloor 500, got %v", ranker.config.PriceFloor)
	}
	if len(ranker.scorers) != len(Dimensions()) {
		t.Errorf("Expected %d scorers, got %d", len(Dimensions()), len(ranker.scorers))
	}
}

func gamingRig(price float64) *models.LaptopSpec {
	return &models.LaptopSpec{
		Name:      "Rig",
		GPU:       "NVIDIA GeForce RTX 4090",
		CPU:       "Intel Core i9-14900HX",
		RAMGB:     models.Float(64),
		StorageGB: models.Float(2048),
		Price:     price,
	}
}

func TestRanker_Score(t *testing.T) {
	ranker := NewRanker(nil)

	tests := []struct {
		name    string
		laptop  *models.LaptopSpec
		persona Persona
		want    int
	}{
		{"maxed gaming rig at floor price", gamingRig(500), PersonaGaming, 85},
		{"maxed gaming rig with saturated penalty", gamingRig(3000), PersonaGaming, 70},
		{"penalty saturates beyond 3000", gamingRig(9000), PersonaGaming, 70},
		{"cheap price is not a bonus", gamingRig(100), PersonaGaming, 85},
		{"empty laptop for gaming", &models.LaptopSpec{}, PersonaGaming, 27},
		{"nil laptop never panics", nil, PersonaStudent, 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ranker.Score(tt.laptop, tt.persona); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRanker_PricePenalty(t *testing.T) {
	ranker := NewRanker(nil)
	tests := []struct {
		price float64
		want  float64
	}{
		{500, 0},
		{0, 0},
		{1750, 15},
		{3000, 30},
		{6000, 30},
	}
	for _, tt := range tests {
		if got := ranker.PricePenalty(tt.price, 0.30); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("PricePenalty(%v, 0.30) = %v, want %v", tt.price, got, tt.want)
		}
	}
}

func TestRanker_ScoreBounds(t *testing.T) {
	ranker := NewRanker(nil)
	laptops := []*models.LaptopSpec{
		{},
		gamingRig(500),
		gamingRig(100000),
		{CPU: "Apple M1", RAM: "0GB", Storage: "0GB", Battery: "0", Weight: "99 kg", Screen: "99", Price: 5000},
		{RAMGB: models.Float(-10), StorageGB: models.Float(-1), WeightKG: models.Float(-3), Price: -50},
		{RAMGB: models.Float(1e9), BatteryHours: models.Float(1e9), ScreenIn: models.Float(15), WeightKG: models.Float(0)},
	}
	for _, p := range Personas() {
		for i, l := range laptops {
			got := ranker.Score(l, p)
			if got < 0 || got > 100 {
				t.Errorf("Score(laptops[%d], %s) = %d, out of [0,100]", i, p, got)
			}
		}
	}
}

func TestRanker_ScoreWithBreakdown(t *testing.T) {
	ranker := NewRanker(nil)
	b := ranker.ScoreWithBreakdown(gamingRig(3000), PersonaStudent)
	if _, ok := b.SubScores["cpu"]; ok {
		t.Error("Student does not weight cpu; sub-score should be skipped")
	}
	if _, ok := b.SubScores["gpu"]; ok {
		t.Error("Student does not weight gpu; sub-score should be skipped")
	}
	for _, d := range []string{"ram", "storage", "battery", "weight"} {
		if _, ok := b.SubScores[d]; !ok {
			t.Errorf("expected %s sub-score in Student breakdown", d)
		}
	}
	if math.Abs(b.PricePenalty-30) > 1e-9 {
		t.Errorf("PricePenalty = %v, want 30", b.PricePenalty)
	}
	if b.FinalScore != ranker.Score(gamingRig(3000), PersonaStudent) {
		t.Error("breakdown final score differs from Score()")
	}
}

func TestRanker_Rank(t *testing.T) {
	ranker := NewRanker(nil)
	cheap := &models.LaptopSpec{Name: "cheap", RAM: "8GB", Price: 600}
	twinA := &models.LaptopSpec{Name: "twin-a", RAM: "16GB", Price: 1500}
	twinB := &models.LaptopSpec{Name: "twin-b", RAM: "16GB", Price: 1500}
	pricey := &models.LaptopSpec{Name: "pricey", RAM: "16GB", Price: 2900}

	ranked := ranker.Rank([]*models.LaptopSpec{pricey, twinA, nil, twinB, cheap}, PersonaStudent)
	if len(ranked) != 4 {
		t.Fatalf("expected 4 results (nil skipped), got %d", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Score < ranked[i].Score {
			t.Errorf("results not sorted: [%d]=%d < [%d]=%d", i-1, ranked[i-1].Score, i, ranked[i].Score)
		}
	}
	// equal scores keep input order
	var twins []string
	for _, r := range ranked {
		if r.Laptop == twinA || r.Laptop == twinB {
			twins = append(twins, r.Laptop.Name)
		}
	}
	if len(twins) != 2 || twins[0] != "twin-a" || twins[1] != "twin-b" {
		t.Errorf("expected stable order for ties, got %v", twins)
	}
	if ranked[0].Breakdown != nil {
		t.Error("Rank should not attach breakdowns")
	}
}

func TestRanker_RankOrderIndependent(t *testing.T) {
	ranker := NewRanker(nil)
	laptops := []*models.LaptopSpec{
		{Name: "a", CPU: "Apple M2", RAM: "8GB", Price: 1099},
		{Name: "b", CPU: "Intel Core i7-1260P", RAM: "16GB", Price: 1299},
		{Name: "c", CPU: "AMD Ryzen 7 5825U", RAM: "16GB", Price: 899},
	}
	reversed := []*models.LaptopSpec{laptops[2], laptops[1], laptops[0]}
	for _, p := range Personas() {
		forward := scoresByName(ranker.Rank(laptops, p))
		backward := scoresByName(ranker.Rank(reversed, p))
		for name, s := range forward {
			if backward[name] != s {
				t.Errorf("%s: score for %s changed with input order: %d vs %d", p, name, s, backward[name])
			}
		}
	}
}

func scoresByName(results []*ScoredLaptop) map[string]int {
	m := make(map[string]int, len(results))
	for _, r := range results {
		m[r.Laptop.Name] = r.Score
	}
	return m
}

func TestRanker_RankWithBreakdown(t *testing.T) {
	ranked := NewRanker(nil).RankWithBreakdown([]*models.LaptopSpec{gamingRig(500)}, PersonaGaming)
	if len(ranked) != 1 || ranked[0].Breakdown == nil {
		t.Fatal("expected breakdown attached")
	}
	if ranked[0].Breakdown.Persona != PersonaGaming {
		t.Errorf("Persona = %v, want Gaming", ranked[0].Breakdown.Persona)
	}
}

func TestTopNAndFilter(t *testing.T) {
	results := []*ScoredLaptop{{Score: 90}, {Score: 70}, {Score: 40}}
	if got := TopN(results, 2); len(got) != 2 {
		t.Errorf("TopN(2) len = %d", len(got))
	}
	if got := TopN(results, 0); len(got) != 3 {
		t.Errorf("TopN(0) should return all, got %d", len(got))
	}
	if got := FilterByMinScore(results, 70); len(got) != 2 {
		t.Errorf("FilterByMinScore(70) len = %d, want 2", len(got))
	}
}

func TestPackageHelpers(t *testing.T) {
	if got := CalculateScore(gamingRig(500), PersonaGaming); got != 85 {
		t.Errorf("CalculateScore() = %d, want 85", got)
	}
	if got := RankLaptops([]*models.LaptopSpec{gamingRig(3000), gamingRig(500)}, PersonaGaming); got[0].Score != 85 {
		t.Errorf("RankLaptops()[0].Score = %d, want 85", got[0].Score)
	}
}

func TestRanker_StudentPrefersCheaperLighterLongerLasting(t *testing.T) {
	ranker := NewRanker(nil)
	base := func() *models.LaptopSpec {
		return &models.LaptopSpec{
			Name:    "Base",
			CPU:     "Intel Core i5-1335U",
			RAM:     "16GB DDR4",
			Storage: "512GB SSD",
			Screen:  "14 inch",
			Battery: "8 hours",
			Weight:  "1.8 kg",
			Price:   1200,
		}
	}

	tests := []struct {
		name   string
		better func(l *models.LaptopSpec)
	}{
		{"cheaper", func(l *models.LaptopSpec) { l.Price = 700 }},
		{"lighter", func(l *models.LaptopSpec) { l.Weight = "1.1 kg" }},
		{"longer battery", func(l *models.LaptopSpec) { l.Battery = "16 hours" }},
		{"all three", func(l *models.LaptopSpec) {
			l.Price = 700
			l.Weight = "1.1 kg"
			l.Battery = "16 hours"
		}},
		{"price below the floor", func(l *models.LaptopSpec) { l.Price = 300 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			worse := base()
			better := base()
			tt.better(better)

			got, other := ranker.Score(better, PersonaStudent), ranker.Score(worse, PersonaStudent)
			if got < other {
				t.Errorf("Score(%s) = %d, below the baseline's %d", tt.name, got, other)
			}
		})
	}

	strictly := base()
	strictly.Price, strictly.Weight, strictly.Battery = 700, "1.1 kg", "16 hours"
	if ranker.Score(strictly, PersonaStudent) <= ranker.Score(base(), PersonaStudent) {
		t.Error("a cheaper, lighter, longer-lasting laptop should score strictly higher for students")
	}
}
