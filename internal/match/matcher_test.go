package match

import (
	"testing"

	"github.com/hyperjump/lapwise/internal/catalog"
	"github.com/hyperjump/lapwise/internal/models"
)

type staticCatalog []*models.LaptopSpec

func (c staticCatalog) Laptops() []*models.LaptopSpec { return c }

func newTestMatcher(opts ...MatcherOption) *Matcher {
	return NewMatcher(staticCatalog(catalog.Builtin()), opts...)
}

func TestMatcher_Match(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantID       string
		wantStrategy Strategy
	}{
		{
			name:         "brand and model keyword",
			query:        "dell xps",
			wantID:       "dell-xps-13-plus",
			wantStrategy: StrategyKeyword,
		},
		{
			name:         "model keyword with similarity",
			query:        "thinkpad x1 carbon",
			wantID:       "thinkpad-x1-carbon-gen-11",
			wantStrategy: StrategyKeyword,
		},
		{
			name:         "brand with ram token",
			query:        "lenovo 16gb",
			wantID:       "thinkpad-x1-carbon-gen-11",
			wantStrategy: StrategyKeyword,
		},
		{
			name:         "typo falls through to similarity",
			query:        "spektre x360",
			wantID:       "hp-spectre-x360",
			wantStrategy: StrategySimilarity,
		},
		{
			name:         "gibberish uses first entry",
			query:        "qqqq",
			wantID:       "macbook-air-m2",
			wantStrategy: StrategyFallback,
		},
	}

	m := newTestMatcher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, res := m.Match(tt.query)
			if got == nil {
				t.Fatal("Match returned nil")
			}
			if got.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", got.ID, tt.wantID)
			}
			if res.Strategy != tt.wantStrategy {
				t.Errorf("Strategy = %v, want %v", res.Strategy, tt.wantStrategy)
			}
			if res.Index < 0 {
				t.Errorf("Index = %d, want >= 0", res.Index)
			}
		})
	}
}

func TestMatcher_ReturnsCopy(t *testing.T) {
	entries := catalog.Builtin()
	m := NewMatcher(staticCatalog(entries))

	got, _ := m.Match("dell xps")
	got.Name = "changed"
	if entries[1].Name != "Dell XPS 13 Plus" {
		t.Errorf("catalog entry mutated: %q", entries[1].Name)
	}
}

func TestMatcher_EmptyCatalog(t *testing.T) {
	m := NewMatcher(staticCatalog(nil))
	got, res := m.Match("dell xps")
	if got != nil {
		t.Errorf("Match on empty catalog = %v, want nil", got)
	}
	if res.Strategy != StrategyNone || res.Index != -1 {
		t.Errorf("Result = %+v, want StrategyNone/-1", res)
	}
}

func TestMatcher_WithThreshold(t *testing.T) {
	// "dell xps" scores 0.6, so a stricter threshold pushes it past the keyword stage.
	m := newTestMatcher(WithThreshold(0.9))
	_, res := m.Match("dell xps")
	if res.Strategy == StrategyKeyword {
		t.Errorf("Strategy = keyword, want a later stage with threshold 0.9")
	}
}

func TestMatchScore(t *testing.T) {
	laptops := catalog.Builtin()
	air, dell := laptops[0], laptops[1]

	q := ParseQuery("m2")
	if MatchScore(air, q) <= MatchScore(dell, q) {
		t.Errorf("apple silicon token should favour the M2 laptop")
	}

	q = ParseQuery("dell xps")
	got := MatchScore(dell, q)
	if got < 0.59 || got > 0.61 {
		t.Errorf("MatchScore(dell, %q) = %v, want 0.6", q.Original, got)
	}

	for _, l := range laptops {
		if s := MatchScore(l, ParseQuery("dell xps inspiron i7 16gb ssd gaming business")); s < 0 || s > 1 {
			t.Errorf("MatchScore(%s) = %v, want within [0, 1]", l.ID, s)
		}
	}
}

func TestStrategy_String(t *testing.T) {
	tests := []struct {
		s    Strategy
		want string
	}{
		{StrategyNone, "none"},
		{StrategyKeyword, "keyword"},
		{StrategySimilarity, "similarity"},
		{StrategyFallback, "fallback"},
		{Strategy(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestStrategy_UnmarshalText(t *testing.T) {
	for _, want := range []Strategy{StrategyNone, StrategyKeyword, StrategySimilarity, StrategyFallback} {
		var got Strategy
		if err := got.UnmarshalText([]byte(want.String())); err != nil || got != want {
			t.Errorf("UnmarshalText(%q) = %v, %v", want.String(), got, err)
		}
	}
	var s Strategy
	if err := s.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("expected error for unknown strategy")
	}
}
