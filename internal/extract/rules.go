package extract

import (
	"regexp"
	"strings"
)

// Rule is a named pattern for one field. Rules for a field are tried in order
// and the first non-empty value wins.
type Rule struct {
	ID      string
	Field   Field
	Pattern *regexp.Regexp
	// Group selects the submatch used as the value; 0 is the whole match.
	Group int
	// OnText runs the pattern against tag-stripped text instead of the raw content.
	OnText bool
	// Format builds the value from the submatches when set.
	Format func(groups []string) string
}

func (r Rule) apply(input string) (string, bool) {
	groups := r.Pattern.FindStringSubmatch(input)
	if groups == nil || r.Group >= len(groups) {
		return "", false
	}
	var value string
	if r.Format != nil {
		value = r.Format(groups)
	} else {
		value = CleanText(groups[r.Group])
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func rule(id string, field Field, pattern string, group int) Rule {
	return Rule{ID: id, Field: field, Pattern: regexp.MustCompile(pattern), Group: group}
}

func textRule(id string, field Field, pattern string, group int) Rule {
	r := rule(id, field, pattern, group)
	r.OnText = true
	return r
}

// Retailer is a host-specific rule set tried before the generic rules.
type Retailer struct {
	ID   string
	Host string
	// Brand is assigned outright when the retailer only sells its own machines.
	Brand string
	Rules []Rule
}

const amazonTitleSuffix = " - Amazon.com"

func defaultRetailers() []Retailer {
	amazonPageTitle := rule("amazon.title.page", FieldName, `(?i)<title>([^<]*laptop[^<]*)</title>`, 1)
	amazonPageTitle.Format = func(groups []string) string {
		return strings.TrimSuffix(CleanText(groups[1]), amazonTitleSuffix)
	}

	return []Retailer{
		{
			ID:   "amazon",
			Host: "amazon.",
			Rules: []Rule{
				rule("amazon.title.product", FieldName, `productTitle[^>]*>([^<]+)`, 1),
				amazonPageTitle,
				rule("amazon.price.dollar", FieldPrice, `\$[\d,]+\.?\d*`, 0),
				textRule("amazon.rating.out-of-5", FieldRating, `(?i)(\d+\.?\d*)\s*out of 5`, 1),
			},
		},
		{
			ID:   "bestbuy",
			Host: "bestbuy.",
			Rules: []Rule{
				rule("bestbuy.title.h1", FieldName, `(?i)<h1[^>]*>([^<]*laptop[^<]*)</h1>`, 1),
				rule("bestbuy.title.product", FieldName, `(?i)productTitle[^>]*>([^<]+)`, 1),
				rule("bestbuy.price.current", FieldPrice, `(?i)current price[^$]*(\$[0-9,]+\.?\d*)`, 1),
				rule("bestbuy.price.dollar", FieldPrice, `\$[0-9,]+\.?\d*`, 0),
			},
		},
		{
			ID:   "newegg",
			Host: "newegg.",
			Rules: []Rule{
				rule("newegg.title.h1", FieldName, `(?i)<h1[^>]*>([^<]+)</h1>`, 1),
			},
		},
		{
			ID:    "apple",
			Host:  "apple.com",
			Brand: "Apple",
			Rules: []Rule{
				rule("apple.title.macbook", FieldName, `MacBook[^<\n]*`, 0),
				rule("apple.price.from", FieldPrice, `(?i)from (\$[0-9,]+)`, 1),
				rule("apple.price.dollar", FieldPrice, `\$[0-9,]+`, 0),
			},
		},
		{
			ID:    "dell",
			Host:  "dell.com",
			Brand: "Dell",
			Rules: []Rule{
				rule("dell.title.h1", FieldName, `(?i)<h1[^>]*>([^<]+)</h1>`, 1),
			},
		},
	}
}

func genericRules() []Rule {
	screen := textRule("generic.screen.inches", FieldScreen,
		`(?i)\b(\d{2}(?:\.\d)?)\s*(?:"|-?\s*inch(?:es)?\b|in\b)(?:[^,;\n]{0,40}?(\d{3,4}\s*x\s*\d{3,4}))?`, 1)
	screen.Format = func(groups []string) string {
		if groups[2] != "" {
			return groups[1] + `" (` + strings.ReplaceAll(groups[2], " ", "") + ")"
		}
		return groups[1] + `"`
	}

	return []Rule{
		rule("generic.title.page", FieldName, `(?i)<title>([^<]*laptop[^<]*)</title>`, 1),
		rule("generic.title.h1", FieldName, `(?i)<h1[^>]*>([^<]*laptop[^<]*)</h1>`, 1),
		rule("generic.title.product", FieldName, `(?i)product[_-]?title[^>]*>([^<]+)`, 1),

		rule("generic.price.current", FieldPrice, `"currentPrice"\s*:\s*"?\$?([\d,]+\.?\d*)`, 1),
		rule("generic.price.dollar", FieldPrice, `\$[0-9,]+(?:\.\d{2})?`, 0),

		textRule("generic.cpu.intel-core", FieldCPU, `(?i)intel\s+core\s+i[3579][- ]?\d*[a-z]*`, 0),
		textRule("generic.cpu.amd-ryzen", FieldCPU, `(?i)amd\s+ryzen\s+[3579](?:\s+\d{4}[a-z]*)?`, 0),
		textRule("generic.cpu.apple-silicon", FieldCPU, `(?i)apple\s+m[123](?:[- ]?(?:max|pro|ultra)\b)?`, 0),
		textRule("generic.cpu.intel-budget", FieldCPU, `(?i)intel\s+(?:celeron|pentium)[^,\n]{0,20}`, 0),

		textRule("generic.ram.gb", FieldRAM, `(?i)(\d+)\s*gb\s+(?:unified\s+memory|ram|memory|lpddr\d*x?|ddr\d*)`, 0),

		textRule("generic.storage.ssd", FieldStorage, `(?i)(\d+)\s*(?:gb|tb)\s*(?:ssd|nvme|pcie|solid\s+state)`, 0),
		textRule("generic.storage.generic", FieldStorage, `(?i)(\d+)\s*(?:gb|tb)\s+storage`, 0),
		textRule("generic.storage.hdd", FieldStorage, `(?i)(\d+)\s*(?:gb|tb)\s+hard\s+drive`, 0),

		screen,

		textRule("generic.rating.out-of-5", FieldRating, `(?i)(\d+\.?\d*)\s*out of 5`, 1),
	}
}
