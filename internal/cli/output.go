// Package cli provides output writers for the lapwise command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hyperjump/lapwise/internal/advisor"
	"github.com/hyperjump/lapwise/internal/extract"
	"github.com/hyperjump/lapwise/internal/match"
	"github.com/hyperjump/lapwise/internal/models"
	"github.com/hyperjump/lapwise/internal/ranking"
	"github.com/hyperjump/lapwise/pkg/utils"
)

// OutputFormat is the format for command output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

const rule = "─────────────────────────────────────────────────────────"

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteComparison writes a comparison to w in the given format.
func WriteComparison(w io.Writer, cmp *advisor.Comparison, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, cmp)
	}

	fmt.Fprintf(w, "\nResolved %d laptops\n\n", len(cmp.Results))
	for _, r := range cmp.Results {
		fmt.Fprintln(w, rule)
		fmt.Fprintf(w, "[%s] %s\n", r.Source, utils.Truncate(r.Query, 80))
		if r.Match != nil {
			fmt.Fprintf(w, "Match: %s (%.2f)\n", r.Match.Strategy, r.Match.Score)
		}
		writeLaptop(w, r.Laptop)
	}
	if len(cmp.Ranked) > 0 {
		fmt.Fprintf(w, "\n--- Ranked for %s ---\n", cmp.Persona)
		writeRanked(w, cmp.Ranked)
	}
	if cmp.Summary != "" {
		fmt.Fprintf(w, "\n--- Summary (%s) ---\n\n%s\n", cmp.SummarySource, cmp.Summary)
	}
	return nil
}

// WriteRanking writes ranked laptops for persona p to w in the given format.
func WriteRanking(w io.Writer, p ranking.Persona, results []*ranking.ScoredLaptop, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, map[string]interface{}{"persona": p, "results": results})
	}
	fmt.Fprintf(w, "\nRanked %d laptops for %s\n\n", len(results), p)
	writeRanked(w, results)
	return nil
}

func writeRanked(w io.Writer, results []*ranking.ScoredLaptop) {
	for i, r := range results {
		fmt.Fprintf(w, "%2d. %-40s %3d\n", i+1, utils.Truncate(r.Laptop.Name, 40), r.Score)
		if b := r.Breakdown; b != nil {
			parts := make([]string, 0, len(b.SubScores))
			for _, d := range ranking.Dimensions() {
				if v, ok := b.SubScores[d.String()]; ok {
					parts = append(parts, fmt.Sprintf("%s %.0f", d, v))
				}
			}
			fmt.Fprintf(w, "    %s | weighted %.1f - penalty %.1f\n", strings.Join(parts, ", "), b.WeightedSum, b.PricePenalty)
		}
	}
}

// WriteMatch writes a catalog match to w in the given format.
func WriteMatch(w io.Writer, q *match.Query, laptop *models.LaptopSpec, result match.Result, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, map[string]interface{}{"query": q, "laptop": laptop, "match": result})
	}
	if laptop == nil {
		fmt.Fprintln(w, "No catalog entries to match against.")
		return nil
	}
	fmt.Fprintf(w, "\nMatched %q by %s (%.2f)\n", q.Original, result.Strategy, result.Score)
	fmt.Fprintln(w, rule)
	writeLaptop(w, laptop)
	return nil
}

// WriteExtraction writes extracted fields and the rule behind each to w.
func WriteExtraction(w io.Writer, res *extract.Result, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, map[string]interface{}{"result": res, "valid": res.Valid()})
	}
	if res.Empty() {
		fmt.Fprintln(w, "No laptop fields found.")
		return nil
	}
	fmt.Fprintf(w, "\nExtracted %d fields (valid: %t)\n\n", res.FieldCount(), res.Valid())
	for _, m := range res.Matches {
		fmt.Fprintf(w, "%-8s %-40s %s\n", m.Field, utils.Truncate(m.Value, 40), m.RuleID)
	}
	return nil
}

// WritePersonas writes every persona and its weights to w.
func WritePersonas(w io.Writer, format OutputFormat) error {
	if format == OutputJSON {
		type persona struct {
			Name    ranking.Persona `json:"name"`
			Weights ranking.Weights `json:"weights"`
		}
		out := make([]persona, 0, len(ranking.Personas()))
		for _, p := range ranking.Personas() {
			out = append(out, persona{Name: p, Weights: p.Weights()})
		}
		return writeJSON(w, out)
	}
	for _, p := range ranking.Personas() {
		weights := p.Weights()
		parts := []string{}
		for _, d := range ranking.Dimensions() {
			if v := weights.For(d); v != 0 {
				parts = append(parts, fmt.Sprintf("%s %.2f", d, v))
			}
		}
		fmt.Fprintf(w, "%-12s %s, price penalty %.2f\n", p, strings.Join(parts, ", "), weights.PricePenalty)
	}
	return nil
}

func writeLaptop(w io.Writer, l *models.LaptopSpec) {
	if l == nil {
		return
	}
	fmt.Fprintf(w, "%s (%s) - %s%.0f\n", l.Name, l.Brand, l.Currency, l.Price)
	fmt.Fprintf(w, "  CPU: %s | RAM: %s | Storage: %s\n", l.CPU, l.RAM, l.Storage)
	fmt.Fprintf(w, "  Screen: %s | Battery: %s | Weight: %s\n", l.Screen, l.Battery, l.Weight)
	if l.URL != "" {
		fmt.Fprintf(w, "  %s\n", utils.Truncate(l.URL, 100))
	}
}
