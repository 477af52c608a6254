package extract

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	entityRe     = regexp.MustCompile(`&[a-zA-Z0-9#]+;`)
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9]`)
)

// CleanText drops HTML entities and tags and collapses whitespace.
func CleanText(s string) string {
	s = entityRe.ReplaceAllString(s, "")
	s = tagRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

type brandDomain struct {
	domain string
	brand  string
}

// brandDomains maps a manufacturer domain to its brand name.
var brandDomains = []brandDomain{
	{"apple.com", "Apple"},
	{"dell.com", "Dell"},
	{"hp.com", "HP"},
	{"lenovo.com", "Lenovo"},
	{"asus.com", "ASUS"},
	{"acer.com", "Acer"},
	{"msi.com", "MSI"},
	{"samsung.com", "Samsung"},
	{"microsoft.com", "Microsoft"},
}

type brandPattern struct {
	re    *regexp.Regexp
	brand string
}

var brandPatterns = func() []brandPattern {
	out := make([]brandPattern, 0, len(brandDomains))
	for _, bd := range brandDomains {
		out = append(out, brandPattern{
			re:    regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(bd.brand) + `\b`),
			brand: bd.brand,
		})
	}
	return out
}()

// Brands returns the known brand names in lookup order.
func Brands() []string {
	brands := make([]string, len(brandDomains))
	for i, bd := range brandDomains {
		brands[i] = bd.brand
	}
	return brands
}

// BrandFromURL returns the brand whose domain the URL's host belongs to, or "".
func BrandFromURL(rawURL string) string {
	host := hostname(rawURL)
	if host == "" {
		return ""
	}
	for _, bd := range brandDomains {
		if host == bd.domain || strings.HasSuffix(host, "."+bd.domain) {
			return bd.brand
		}
	}
	return ""
}

// BrandFromContent returns the first known brand named in content, in lookup order.
func BrandFromContent(content string) string {
	for _, b := range brandPatterns {
		if b.re.MatchString(content) {
			return b.brand
		}
	}
	return ""
}

// modelFamilies maps product-line names to the brand that makes them.
var modelFamilies = []brandPattern{
	{regexp.MustCompile(`(?i)\bmacbook\b`), "Apple"},
	{regexp.MustCompile(`(?i)\b(xps|inspiron|latitude|alienware|precision)\b`), "Dell"},
	{regexp.MustCompile(`(?i)\b(spectre|envy|pavilion|omen|elitebook)\b`), "HP"},
	{regexp.MustCompile(`(?i)\b(thinkpad|ideapad|yoga|legion)\b`), "Lenovo"},
	{regexp.MustCompile(`(?i)\b(zenbook|vivobook|rog)\b`), "ASUS"},
	{regexp.MustCompile(`(?i)\b(aspire|swift|nitro|predator)\b`), "Acer"},
	{regexp.MustCompile(`(?i)\bsurface\b`), "Microsoft"},
	{regexp.MustCompile(`(?i)\bgalaxy book`), "Samsung"},
}

// BrandFromName returns the brand a product name names outright or implies
// through its product line, e.g. "MacBook Air" is Apple. It returns "" when
// neither is recognised.
func BrandFromName(name string) string {
	if brand := BrandFromContent(name); brand != "" {
		return brand
	}
	for _, f := range modelFamilies {
		if f.re.MatchString(name) {
			return f.brand
		}
	}
	return ""
}

// NormalizeBrand maps a brand in any casing to its canonical name.
// Unknown brands are returned trimmed.
func NormalizeBrand(brand string) string {
	brand = strings.TrimSpace(brand)
	for _, bd := range brandDomains {
		if strings.EqualFold(bd.brand, brand) {
			return bd.brand
		}
	}
	return brand
}

var sellers = []brandDomain{
	{"amazon.", "Amazon"},
	{"bestbuy.", "Best Buy"},
	{"newegg.", "Newegg"},
	{"apple.com", "Apple Store"},
	{"dell.com", "Dell"},
	{"hp.com", "HP"},
	{"lenovo.com", "Lenovo"},
}

// SellerFromURL names the store behind rawURL. Unknown hosts yield their first
// label without "www.", and unparseable input yields "Online Retailer".
func SellerFromURL(rawURL string) string {
	host := hostname(rawURL)
	if host == "" {
		return "Online Retailer"
	}
	for _, s := range sellers {
		if strings.Contains(host, s.domain) {
			return s.brand
		}
	}
	label, _, _ := strings.Cut(strings.TrimPrefix(host, "www."), ".")
	return label
}

// IDFromURL derives an identifier from the last path segment of rawURL,
// lowercased with non-alphanumerics replaced by "-". It returns "" when the
// URL has no usable segment.
func IDFromURL(rawURL string) string {
	s := strings.TrimSpace(rawURL)
	if u, err := url.Parse(s); err == nil && u.Host != "" {
		s = strings.TrimSuffix(u.Path, "/")
	} else {
		s, _, _ = strings.Cut(s, "?")
	}
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return nonAlnumRe.ReplaceAllString(strings.ToLower(s), "-")
}

// InferOS returns macOS for Apple or a MacBook name, otherwise Windows 11.
func InferOS(brand, name string) string {
	if strings.EqualFold(brand, "apple") || strings.Contains(strings.ToLower(name), "macbook") {
		return "macOS"
	}
	return "Windows 11"
}

func hostname(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
