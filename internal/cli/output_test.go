package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hyperjump/lapwise/internal/advisor"
	"github.com/hyperjump/lapwise/internal/extract"
	"github.com/hyperjump/lapwise/internal/match"
	"github.com/hyperjump/lapwise/internal/models"
	"github.com/hyperjump/lapwise/internal/ranking"
)

func testLaptops() []*models.LaptopSpec {
	return []*models.LaptopSpec{
		{ID: "xps", Name: "Dell XPS 13 Plus", Brand: "Dell", Price: 1299, Currency: "$", CPU: "Intel Core i7-1260P", RAM: "16GB", Storage: "512GB SSD"},
		{ID: "air", Name: "MacBook Air M2", Brand: "Apple", Price: 1099, Currency: "$", CPU: "Apple M2", RAM: "8GB", Storage: "256GB SSD"},
	}
}

func TestWriteComparison(t *testing.T) {
	laptops := testLaptops()
	cmp := &advisor.Comparison{
		Results: []*advisor.Resolution{
			{Query: "dell xps", Laptop: laptops[0], Source: advisor.SourceMatched, Match: &match.Result{Strategy: match.StrategyKeyword, Score: 0.6}},
			{Query: "https://www.apple.com/macbook-air", Laptop: laptops[1], Source: advisor.SourceMock},
		},
		Laptops:       laptops,
		Persona:       "Programming",
		Ranked:        ranking.RankLaptops(laptops, ranking.PersonaProgramming),
		Summary:       "# Laptop Comparison",
		SummarySource: advisor.SummaryHeuristic,
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteComparison(&buf, cmp, OutputText); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		for _, want := range []string{"Resolved 2 laptops", "[matched] dell xps", "Match: keyword (0.60)", "[mock]", "Ranked for Programming", "Summary (heuristic)"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteComparison(&buf, cmp, OutputJSON); err != nil {
			t.Fatal(err)
		}
		var decoded struct {
			Results []struct {
				Source string `json:"source"`
			} `json:"results"`
			Persona string `json:"persona"`
		}
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
		}
		if len(decoded.Results) != 2 || decoded.Results[0].Source != "matched" || decoded.Persona != "Programming" {
			t.Errorf("unexpected decoded comparison: %+v", decoded)
		}
	})
}

func TestWriteRanking(t *testing.T) {
	results := ranking.NewRanker(nil).RankWithBreakdown(testLaptops(), ranking.PersonaStudent)

	var buf bytes.Buffer
	if err := WriteRanking(&buf, ranking.PersonaStudent, results, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Ranked 2 laptops for Student") || !strings.Contains(out, "penalty") {
		t.Errorf("unexpected output:\n%s", out)
	}

	buf.Reset()
	if err := WriteRanking(&buf, ranking.PersonaStudent, results, OutputJSON); err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Persona string `json:"persona"`
		Results []struct {
			Score int `json:"score"`
		} `json:"results"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Persona != "Student" || len(decoded.Results) != 2 || decoded.Results[0].Score != results[0].Score {
		t.Errorf("unexpected decoded ranking: %+v", decoded)
	}
}

func TestWriteMatch(t *testing.T) {
	q := match.ParseQuery("Dell XPS")
	var buf bytes.Buffer
	if err := WriteMatch(&buf, q, testLaptops()[0], match.Result{Strategy: match.StrategyKeyword, Score: 0.6}, OutputText); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, `Matched "Dell XPS" by keyword`) || !strings.Contains(out, "Dell XPS 13 Plus (Dell) - $1299") {
		t.Errorf("unexpected output:\n%s", out)
	}

	buf.Reset()
	if err := WriteMatch(&buf, q, nil, match.Result{Strategy: match.StrategyNone, Index: -1}, OutputText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No catalog entries") {
		t.Errorf("unexpected output for empty catalog: %q", buf.String())
	}
}

func TestWriteExtraction(t *testing.T) {
	res := extract.Extract("<title>Lenovo ThinkPad X1 Carbon Laptop</title> Intel Core i7-1365U, 16GB LPDDR5", "")

	var buf bytes.Buffer
	if err := WriteExtraction(&buf, res, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "valid: true") || !strings.Contains(out, "generic.cpu.intel-core") {
		t.Errorf("unexpected output:\n%s", out)
	}

	buf.Reset()
	if err := WriteExtraction(&buf, extract.Extract("nothing here", ""), OutputText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No laptop fields found") {
		t.Errorf("unexpected output for empty extraction: %q", buf.String())
	}
}

func TestWritePersonas(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePersonas(&buf, OutputText); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 || !strings.HasPrefix(lines[0], "Gaming") || !strings.Contains(lines[0], "gpu 0.40") {
		t.Errorf("unexpected personas output:\n%s", buf.String())
	}

	buf.Reset()
	if err := WritePersonas(&buf, OutputJSON); err != nil {
		t.Fatal(err)
	}
	var decoded []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil || len(decoded) != 5 {
		t.Errorf("decoded %d personas, err %v", len(decoded), err)
	}
}
