package llm

import (
	"fmt"
	"strings"

	"github.com/hyperjump/lapwise/internal/models"
)

// SystemPrompt frames every conversation.
const SystemPrompt = `You are a helpful laptop shopping assistant. You give expert advice on:
- laptop specifications and their real-world impact
- brand comparisons and reliability
- budget recommendations for different use cases
- performance expectations for various tasks
- current market trends and good deals

Keep responses conversational, helpful and specific. Include practical advice and real product recommendations when possible. Use markdown sections when they help.`

// ComparisonPrompt asks for a side-by-side verdict on laptops for persona.
// persona may be empty.
func ComparisonPrompt(laptops []*models.LaptopSpec, persona string) string {
	var b strings.Builder
	b.WriteString("Compare the following laptops")
	if persona != "" {
		fmt.Fprintf(&b, " for a %s user", strings.ToLower(persona))
	}
	b.WriteString(". Name the best pick, explain the trade-offs and who each laptop suits.\n\n")
	for i, l := range laptops {
		if l == nil {
			continue
		}
		fmt.Fprintf(&b, "%d. %s (%s) - %s%.0f\n", i+1, l.Name, l.Brand, l.Currency, l.Price)
		fmt.Fprintf(&b, "   CPU: %s; RAM: %s; Storage: %s\n", l.CPU, l.RAM, l.Storage)
		fmt.Fprintf(&b, "   Screen: %s; Battery: %s; Weight: %s; OS: %s\n", l.Screen, l.Battery, l.Weight, l.OS)
		if l.GPU != "" {
			fmt.Fprintf(&b, "   GPU: %s\n", l.GPU)
		}
	}
	return b.String()
}
