package advisor

import (
	"fmt"
	"strings"

	"github.com/hyperjump/lapwise/internal/models"
	"github.com/hyperjump/lapwise/internal/ranking"
	"github.com/hyperjump/lapwise/pkg/utils"
)

const (
	baseValueScore = 5
	maxValueScore  = 10
	maxPros        = 4
	maxCons        = 3
	// defaultWeightLbs is assumed when a weight string has no number.
	defaultWeightLbs = 5
)

// ValueScore rates a laptop's value for money from 0 to 10.
func ValueScore(l *models.LaptopSpec) int {
	score := baseValueScore
	if containsAny(l.CPU, "i7", "Ryzen 7", "M2") {
		score += 2
	}
	if containsAny(l.CPU, "i5", "Ryzen 5", "M1") {
		score++
	}

	switch ram := firstInt(l.RAM); {
	case ram >= 16:
		score += 2
	case ram >= 8:
		score++
	}

	if strings.Contains(l.Storage, "SSD") {
		score++
	}
	if containsAny(l.Storage, "512GB", "1TB") {
		score++
	}

	switch {
	case l.Price < 1000:
		score++
	case l.Price > 2000:
		score--
	}
	if l.Rating >= 4.5 {
		score++
	}
	return utils.ClampInt(score, 0, maxValueScore)
}

// BestValue returns the laptop with the highest value score. Ties go to the
// earlier laptop. It returns nil for an empty list.
func BestValue(laptops []*models.LaptopSpec) *models.LaptopSpec {
	var best *models.LaptopSpec
	bestScore := -1
	for _, l := range laptops {
		if l == nil {
			continue
		}
		if s := ValueScore(l); s > bestScore {
			best, bestScore = l, s
		}
	}
	return best
}

// Report renders a markdown comparison of laptops. persona may be empty.
func Report(laptops []*models.LaptopSpec, persona string) string {
	winner := BestValue(laptops)
	if winner == nil {
		return ""
	}
	scope := ""
	if persona != "" {
		scope = " for " + strings.ToLower(persona) + " use"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Laptop Comparison%s\n\n", scope)
	fmt.Fprintf(&b, "## Top Recommendation: %s\n\n%s\n\n", winner.Name, reasoning(winner))

	b.WriteString("## Specifications\n")
	for i, l := range laptops {
		fmt.Fprintf(&b, "\n### %d. %s - %s\n\n", i+1, l.Name, price(l))
		fmt.Fprintf(&b, "- **CPU:** %s\n- **RAM:** %s\n- **Storage:** %s\n", l.CPU, l.RAM, l.Storage)
		fmt.Fprintf(&b, "- **Screen:** %s\n- **Weight:** %s\n- **Battery:** %s\n- **OS:** %s\n", l.Screen, l.Weight, l.Battery, l.OS)
		fmt.Fprintf(&b, "- **Rating:** %.1f/5 (%d reviews)\n", l.Rating, l.ReviewCount)
		fmt.Fprintf(&b, "- **CPU tier:** %s; **Portability:** %s; **Value:** %d/10\n", cpuTier(l.CPU), portability(l.Weight), ValueScore(l))
	}

	b.WriteString("\n## Pros and Cons\n")
	for _, l := range laptops {
		fmt.Fprintf(&b, "\n### %s\n\n**Strengths:**\n", l.Name)
		writeList(&b, pros(l))
		b.WriteString("\n**Considerations:**\n")
		writeList(&b, cons(l))
	}

	minPrice, maxPrice := priceRange(laptops)
	b.WriteString("\n## Verdict\n\n")
	fmt.Fprintf(&b, "**Best value:** %s, for %s.\n", winner.Name, valueProposition(winner))
	fmt.Fprintf(&b, "**Budget range:** %s%.0f - %s%.0f\n", currency(winner), minPrice, currency(winner), maxPrice)
	fmt.Fprintf(&b, "**Tier:** %s\n", tier(laptops))
	return b.String()
}

func reasoning(l *models.LaptopSpec) string {
	var reasons []string
	if l.Rating >= 4.5 {
		reasons = append(reasons, "excellent user ratings")
	}
	if containsAny(l.CPU, "M1", "M2", "M3") {
		reasons = append(reasons, "strong performance per watt")
	}
	if containsAny(l.CPU, "i7", "Ryzen 7") {
		reasons = append(reasons, "a powerful processor")
	}
	if firstInt(l.RAM) >= 16 {
		reasons = append(reasons, "plenty of memory for multitasking")
	}
	if strings.Contains(l.Storage, "SSD") {
		reasons = append(reasons, "fast SSD storage")
	}
	if l.Price < 1200 {
		reasons = append(reasons, "a competitive price")
	}
	if len(reasons) == 0 {
		return fmt.Sprintf("The **%s** has the best balance of specs and price in this comparison.", l.Name)
	}
	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	return fmt.Sprintf("The **%s** stands out with %s.", l.Name, strings.Join(reasons, ", "))
}

func pros(l *models.LaptopSpec) []string {
	var out []string
	if containsAny(l.CPU, "M1", "M2", "M3") {
		out = append(out, "Fast and power-efficient Apple silicon")
	}
	if containsAny(l.CPU, "i7", "i9", "Ryzen 7", "Ryzen 9") {
		out = append(out, "High-performance processor")
	}
	if firstInt(l.RAM) >= 16 {
		out = append(out, "Generous RAM")
	}
	if containsAny(l.Storage, "512GB", "1TB", "2TB") {
		out = append(out, "Ample storage")
	}
	if l.Rating >= 4.5 {
		out = append(out, fmt.Sprintf("Rated %.1f/5 by users", l.Rating))
	}
	if containsAny(l.Screen, "OLED", "Retina") {
		out = append(out, "Premium display")
	}
	if weightLbs(l.Weight) < 3 {
		out = append(out, "Light and portable")
	}
	if l.Price < 1200 {
		out = append(out, "Competitive price for the specs")
	}
	return truncate(out, maxPros)
}

func cons(l *models.LaptopSpec) []string {
	var out []string
	if ram := firstInt(l.RAM); ram > 0 && ram < 16 {
		out = append(out, "Limited RAM for heavy multitasking")
	}
	if strings.Contains(l.Storage, "256GB") {
		out = append(out, "Storage may run short for large files")
	}
	if l.Price > 1800 {
		out = append(out, "Premium price")
	}
	if l.Brand == "Apple" {
		out = append(out, "No upgrade path and tied to macOS")
	}
	if !strings.Contains(l.Storage, "SSD") {
		out = append(out, "Storage type not confirmed as SSD")
	}
	if weightLbs(l.Weight) > 4 {
		out = append(out, "Heavier than ultraportables")
	}
	if l.Rating > 0 && l.Rating < 4.3 {
		out = append(out, "Mixed user reviews")
	}
	return truncate(out, maxCons)
}

func cpuTier(cpu string) string {
	switch {
	case containsAny(cpu, "M1", "M2", "M3"):
		return "Excellent"
	case containsAny(cpu, "i7", "i9", "Ryzen 7", "Ryzen 9"):
		return "Very Good"
	case containsAny(cpu, "i5", "Ryzen 5"):
		return "Good"
	default:
		return "Fair"
	}
}

func portability(weight string) string {
	switch w := weightLbs(weight); {
	case w < 2.5:
		return "Excellent"
	case w < 3.5:
		return "Very Good"
	case w < 4.5:
		return "Good"
	default:
		return "Fair"
	}
}

func valueProposition(l *models.LaptopSpec) string {
	switch {
	case l.Price < 1000:
		return "performance per dollar"
	case containsAny(l.CPU, "M1", "M2", "M3"):
		return "efficiency and performance"
	case l.Rating >= 4.7:
		return "user satisfaction and reliability"
	default:
		return "balanced features and pricing"
	}
}

func tier(laptops []*models.LaptopSpec) string {
	var sum float64
	for _, l := range laptops {
		sum += l.Price
	}
	switch avg := sum / float64(len(laptops)); {
	case avg > 1800:
		return "Premium"
	case avg > 1200:
		return "Mid-to-High Range"
	case avg > 800:
		return "Mid-Range"
	default:
		return "Budget"
	}
}

func priceRange(laptops []*models.LaptopSpec) (float64, float64) {
	minPrice, maxPrice := laptops[0].Price, laptops[0].Price
	for _, l := range laptops[1:] {
		if l.Price < minPrice {
			minPrice = l.Price
		}
		if l.Price > maxPrice {
			maxPrice = l.Price
		}
	}
	return minPrice, maxPrice
}

func price(l *models.LaptopSpec) string {
	return fmt.Sprintf("%s%.0f", currency(l), l.Price)
}

func currency(l *models.LaptopSpec) string {
	return orDefault(l.Currency, "$")
}

func writeList(b *strings.Builder, items []string) {
	if len(items) == 0 {
		b.WriteString("- Nothing notable\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

func truncate(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func firstInt(s string) int {
	return int(ranking.ParseFirstInt(s, 0))
}

// weightLbs reads the first number of a weight string, assumed to be pounds.
func weightLbs(s string) float64 {
	return ranking.ParseFirstDecimal(s, defaultWeightLbs)
}
