// Package extract pulls laptop specifications out of product page text with ordered, named rules.
package extract

import (
	"strconv"
	"strings"
)

// Field names a LaptopSpec attribute an extraction rule can fill.
type Field string

const (
	FieldName    Field = "name"
	FieldBrand   Field = "brand"
	FieldPrice   Field = "price"
	FieldCPU     Field = "cpu"
	FieldRAM     Field = "ram"
	FieldStorage Field = "storage"
	FieldScreen  Field = "screen"
	FieldRating  Field = "rating"
)

// fieldOrder is the order in which fields are extracted and reported.
var fieldOrder = []Field{
	FieldName, FieldBrand, FieldPrice, FieldCPU, FieldRAM, FieldStorage, FieldScreen, FieldRating,
}

// FieldMatch records which rule produced a field value.
type FieldMatch struct {
	Field  Field  `json:"field"`
	Value  string `json:"value"`
	RuleID string `json:"rule_id"`
}

// Result is a partial laptop spec. Fields without a match are left zero.
type Result struct {
	Name     string  `json:"name,omitempty"`
	Brand    string  `json:"brand,omitempty"`
	Price    float64 `json:"price,omitempty"`
	Currency string  `json:"currency,omitempty"`
	CPU      string  `json:"cpu,omitempty"`
	RAM      string  `json:"ram,omitempty"`
	Storage  string  `json:"storage,omitempty"`
	Screen   string  `json:"screen,omitempty"`
	Rating   float64 `json:"rating,omitempty"`

	Matches []FieldMatch `json:"matches"`
}

// Empty reports whether no field was extracted.
func (r *Result) Empty() bool {
	return len(r.Matches) == 0
}

// FieldCount returns the number of extracted fields.
func (r *Result) FieldCount() int {
	return len(r.Matches)
}

// Has reports whether f was extracted.
func (r *Result) Has(f Field) bool {
	return r.Match(f) != nil
}

// Match returns the match for f, or nil.
func (r *Result) Match(f Field) *FieldMatch {
	for i := range r.Matches {
		if r.Matches[i].Field == f {
			return &r.Matches[i]
		}
	}
	return nil
}

// Valid reports whether the extraction carries a name, cpu and ram.
func (r *Result) Valid() bool {
	return r.Name != "" && r.CPU != "" && r.RAM != ""
}

func (r *Result) set(m FieldMatch) bool {
	switch m.Field {
	case FieldName:
		r.Name = m.Value
	case FieldBrand:
		r.Brand = m.Value
	case FieldPrice:
		price, ok := ParsePrice(m.Value)
		if !ok {
			return false
		}
		r.Price = price
		r.Currency = "$"
	case FieldCPU:
		r.CPU = m.Value
	case FieldRAM:
		r.RAM = m.Value
	case FieldStorage:
		r.Storage = m.Value
	case FieldScreen:
		r.Screen = m.Value
	case FieldRating:
		rating, err := strconv.ParseFloat(m.Value, 64)
		if err != nil || rating < 0 || rating > 5 {
			return false
		}
		r.Rating = rating
	default:
		return false
	}
	r.Matches = append(r.Matches, m)
	return true
}

// Extractor applies retailer rules and then the generic rule set. It is stateless.
type Extractor struct {
	retailers []Retailer
	generic   []Rule
}

// NewExtractor returns an extractor with the built-in retailer table and generic rules.
func NewExtractor() *Extractor {
	return &Extractor{
		retailers: defaultRetailers(),
		generic:   genericRules(),
	}
}

// Extract scans content for every field. sourceURL selects retailer rules and
// feeds brand inference; it may be empty. Extract never fails: a miss just
// leaves the field absent.
func (e *Extractor) Extract(content, sourceURL string) *Result {
	result := &Result{}
	text := CleanText(content)

	rules := e.generic
	retailer := e.RetailerFor(sourceURL)
	if retailer != nil {
		rules = append(append([]Rule(nil), retailer.Rules...), e.generic...)
	}

	for _, field := range fieldOrder {
		if field == FieldBrand {
			if m, ok := e.brandMatch(retailer, content, sourceURL); ok {
				result.set(m)
			}
			continue
		}
		for _, rule := range rules {
			if rule.Field != field {
				continue
			}
			input := content
			if rule.OnText {
				input = text
			}
			value, ok := rule.apply(input)
			if !ok {
				continue
			}
			if result.set(FieldMatch{Field: field, Value: value, RuleID: rule.ID}) {
				break
			}
		}
	}
	return result
}

// RetailerFor returns the retailer whose host substring appears in sourceURL's host, or nil.
func (e *Extractor) RetailerFor(sourceURL string) *Retailer {
	host := hostname(sourceURL)
	if host == "" {
		return nil
	}
	for i := range e.retailers {
		if strings.Contains(host, e.retailers[i].Host) {
			return &e.retailers[i]
		}
	}
	return nil
}

func (e *Extractor) brandMatch(retailer *Retailer, content, sourceURL string) (FieldMatch, bool) {
	if retailer != nil && retailer.Brand != "" {
		return FieldMatch{Field: FieldBrand, Value: retailer.Brand, RuleID: retailer.ID + ".brand"}, true
	}
	if brand := BrandFromURL(sourceURL); brand != "" {
		return FieldMatch{Field: FieldBrand, Value: brand, RuleID: "brand.url"}, true
	}
	if brand := BrandFromContent(content); brand != "" {
		return FieldMatch{Field: FieldBrand, Value: brand, RuleID: "brand.content"}, true
	}
	return FieldMatch{}, false
}

// ParsePrice parses a price such as "$1,299.00" or "899". It reports false for
// values that are not positive numbers.
func ParsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, ".")
	price, err := strconv.ParseFloat(s, 64)
	if err != nil || price <= 0 {
		return 0, false
	}
	return price, true
}

var defaultExtractor = NewExtractor()

// Extract runs the default extractor.
func Extract(content, sourceURL string) *Result {
	return defaultExtractor.Extract(content, sourceURL)
}
