package match

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hyperjump/lapwise/internal/extract"
)

// Spec tokens detected in free-text queries.
const (
	TokenIntel            = "intel"
	TokenAMD              = "amd"
	TokenAppleSilicon     = "apple-silicon"
	TokenSSD              = "ssd"
	TokenStorageSpecified = "storage-specified"
	TokenGaming           = "gaming"
	TokenBusiness         = "business"
	TokenStudent          = "student"
	TokenCreative         = "creative"

	ramTokenSuffix = "gb-ram"
)

var queryBrands = []string{"apple", "dell", "hp", "lenovo", "asus", "acer", "msi", "microsoft", "samsung"}

var queryModels = []string{
	"macbook", "air", "pro", "xps", "inspiron", "latitude",
	"thinkpad", "ideapad", "yoga", "zenbook", "vivobook",
	"pavilion", "envy", "spectre", "surface", "galaxy",
}

var (
	intelRe        = regexp.MustCompile(`i[3579]`)
	ryzenRe        = regexp.MustCompile(`ryzen`)
	appleSiliconRe = regexp.MustCompile(`m[123]`) // M3 included, the CPU tiers score it
	ramAmountRe    = regexp.MustCompile(`(\d+)\s*gb`)
	ssdRe          = regexp.MustCompile(`ssd`)
	capacityRe     = regexp.MustCompile(`\d+\s*(gb|tb)`)
	gamingRe       = regexp.MustCompile(`gaming`)
	businessRe     = regexp.MustCompile(`business|work`)
	studentRe      = regexp.MustCompile(`student`)
	creativeRe     = regexp.MustCompile(`creative|design`)
)

// Query is a parsed free-text laptop query.
type Query struct {
	Original   string `json:"original"`
	Normalized string `json:"normalized"`
	IsURL      bool   `json:"is_url"`
	// Brand and Model are the first known keywords found, or "".
	Brand string   `json:"brand,omitempty"`
	Model string   `json:"model,omitempty"`
	Specs []string `json:"specs,omitempty"`
}

// ParseQuery lowercases and trims q and, unless it is a laptop URL, detects
// brand, model and spec tokens.
func ParseQuery(q string) *Query {
	normalized := strings.ToLower(strings.TrimSpace(q))
	query := &Query{
		Original:   q,
		Normalized: normalized,
		IsURL:      extract.ValidateLaptopURL(strings.TrimSpace(q)),
	}
	if query.IsURL {
		return query
	}
	query.Brand = firstContained(normalized, queryBrands)
	query.Model = firstContained(normalized, queryModels)
	query.Specs = ExtractSpecTokens(normalized)
	return query
}

// ExtractSpecTokens returns spec tokens for a lowercased query, in a fixed order.
func ExtractSpecTokens(q string) []string {
	var specs []string
	if intelRe.MatchString(q) {
		specs = append(specs, TokenIntel)
	}
	if ryzenRe.MatchString(q) {
		specs = append(specs, TokenAMD)
	}
	if appleSiliconRe.MatchString(q) {
		specs = append(specs, TokenAppleSilicon)
	}
	if m := ramAmountRe.FindStringSubmatch(q); m != nil {
		specs = append(specs, m[1]+ramTokenSuffix)
	}
	if ssdRe.MatchString(q) {
		specs = append(specs, TokenSSD)
	}
	if capacityRe.MatchString(q) {
		specs = append(specs, TokenStorageSpecified)
	}
	if gamingRe.MatchString(q) {
		specs = append(specs, TokenGaming)
	}
	if businessRe.MatchString(q) {
		specs = append(specs, TokenBusiness)
	}
	if studentRe.MatchString(q) {
		specs = append(specs, TokenStudent)
	}
	if creativeRe.MatchString(q) {
		specs = append(specs, TokenCreative)
	}
	return specs
}

// Models returns the model keywords ParseQuery recognises, in lookup order.
func Models() []string {
	return append([]string(nil), queryModels...)
}

// RAMToken returns the spec token for a RAM amount in GB, e.g. "16gb-ram".
func RAMToken(gb int) string {
	return fmt.Sprintf("%d%s", gb, ramTokenSuffix)
}

func firstContained(s string, candidates []string) string {
	for _, c := range candidates {
		if strings.Contains(s, c) {
			return c
		}
	}
	return ""
}
