package advisor

import (
	"regexp"
	"strings"

	"github.com/hyperjump/lapwise/internal/extract"
	"github.com/hyperjump/lapwise/internal/match"
)

// InputKind is how a free-form user message is handled.
type InputKind int

const (
	// InputChat is conversation for the chat assistant.
	InputChat InputKind = iota
	// InputURLs is one or more product page URLs to compare.
	InputURLs
	// InputBrandIntent asks to find laptops from a brand.
	InputBrandIntent
	// InputQueries is one or more product names to compare.
	InputQueries
)

// String returns the wire name of the input kind.
func (k InputKind) String() string {
	switch k {
	case InputChat:
		return "chat"
	case InputURLs:
		return "urls"
	case InputBrandIntent:
		return "brand_intent"
	case InputQueries:
		return "queries"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k InputKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

var (
	urlRe       = regexp.MustCompile(`https?://[^\s,<>"]+`)
	separatorRe = regexp.MustCompile(`(?i)\s*(?:,|\n|\bvs\.?\s|\bversus\b)\s*`)
	intentRe    = regexp.MustCompile(`(?i)\b(find|show|search|discover|browse|list|shop|buy|latest|new|top|best|recommend|suggest|looking for|deals?)\b`)
	questionRe  = regexp.MustCompile(`(?i)\?|^\s*(what|which|how|why|should|can|is|are|do|does|tell)\b`)
)

// modelWordRes matches each known model keyword as a whole word.
var modelWordRes = func() map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp)
	for _, m := range match.Models() {
		res[m] = regexp.MustCompile(`\b` + regexp.QuoteMeta(m) + `\b`)
	}
	return res
}()

const maxProductNameWords = 8

// Classify decides how message should be handled. URLs win over everything,
// then separated product lists, then a brand with a shopping intent, then a
// single product name. Anything else is chat.
func Classify(message string) InputKind {
	message = strings.TrimSpace(message)
	if message == "" {
		return InputChat
	}
	if len(URLs(message)) > 0 {
		return InputURLs
	}
	if len(SplitQueries(message)) > 1 {
		return InputQueries
	}
	if _, ok := BrandIntent(message); ok {
		return InputBrandIntent
	}
	if looksLikeProduct(message) {
		return InputQueries
	}
	return InputChat
}

// URLs returns the http(s) URLs in message, in order, without trailing punctuation.
func URLs(message string) []string {
	var urls []string
	for _, u := range urlRe.FindAllString(message, -1) {
		u = strings.TrimRight(u, ".;:!?)")
		if extract.IsURL(u) {
			urls = append(urls, u)
		}
	}
	return urls
}

// SplitQueries splits message on commas, newlines and "vs", dropping blanks.
func SplitQueries(message string) []string {
	var out []string
	for _, part := range separatorRe.Split(message, -1) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// BrandIntent returns the canonical brand of a message that names a known
// brand together with a shopping word, such as "show me the latest Dell laptops".
func BrandIntent(message string) (string, bool) {
	if !intentRe.MatchString(message) {
		return "", false
	}
	brand := extract.BrandFromContent(message)
	if brand == "" {
		return "", false
	}
	return brand, true
}

func looksLikeProduct(message string) bool {
	if questionRe.MatchString(message) || len(strings.Fields(message)) > maxProductNameWords {
		return false
	}
	if extract.BrandFromContent(message) != "" {
		return true
	}
	q := match.ParseQuery(message)
	if q.Model == "" {
		return false
	}
	return modelWordRes[q.Model].MatchString(q.Normalized)
}
