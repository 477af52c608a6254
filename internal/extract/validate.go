package extract

import (
	"net/url"
	"strings"
)

var knownRetailers = []string{
	"amazon.com", "amazon.co.uk", "amazon.ca", "amazon.de", "amazon.fr",
	"bestbuy.com", "newegg.com", "apple.com", "dell.com", "hp.com",
	"lenovo.com", "asus.com", "acer.com", "microsoft.com",
	"costco.com", "walmart.com", "target.com", "microcenter.com",
}

var laptopKeywords = []string{
	"laptop", "notebook", "macbook", "thinkpad", "inspiron",
	"pavilion", "envy", "zenbook", "vivobook", "ideapad",
	"surface", "chromebook", "ultrabook",
}

// Validation is the outcome of ValidateURL.
type Validation struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
}

// ValidateLaptopURL reports whether rawURL is an absolute URL from a known
// retailer or one whose path or query names a laptop.
func ValidateLaptopURL(rawURL string) bool {
	u, ok := parseAbsolute(rawURL)
	if !ok {
		return false
	}
	return isKnownRetailer(u) || hasLaptopKeyword(u)
}

// ValidateURL checks that rawURL looks like a single laptop product page.
func ValidateURL(rawURL string) *Validation {
	v := &Validation{Errors: []string{}}
	u, ok := parseAbsolute(rawURL)
	if !ok {
		v.Errors = append(v.Errors, "invalid URL format")
		v.Warnings = append(v.Warnings, "check that the URL starts with http:// or https://")
		return v
	}

	path := strings.ToLower(u.Path)
	query := strings.ToLower(u.RawQuery)

	if u.Scheme != "http" && u.Scheme != "https" {
		v.Errors = append(v.Errors, "URL must use HTTP or HTTPS protocol")
	}
	if !isKnownRetailer(u) && !hasLaptopKeyword(u) {
		v.Errors = append(v.Errors, "URL does not appear to be from a laptop retailer or contain laptop-related content")
	}
	if strings.Contains(path, "/reviews/") || strings.Contains(path, "/forum/") {
		v.Errors = append(v.Errors, "URL appears to be a review or forum page, not a product page")
		v.Warnings = append(v.Warnings, "use the main product page URL instead")
	}
	if strings.Contains(query, "search") || strings.Contains(path, "/search/") {
		v.Errors = append(v.Errors, "URL appears to be a search results page, not a specific product")
	}
	if strings.Contains(path, "/s/") {
		v.Warnings = append(v.Warnings, "this looks like a search URL; find the specific laptop product page instead")
	}

	v.Valid = len(v.Errors) == 0
	return v
}

func parseAbsolute(rawURL string) (*url.URL, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, false
	}
	return u, true
}

func isKnownRetailer(u *url.URL) bool {
	host := strings.ToLower(u.Hostname())
	for _, r := range knownRetailers {
		if strings.Contains(host, r) {
			return true
		}
	}
	return false
}

func hasLaptopKeyword(u *url.URL) bool {
	path := strings.ToLower(u.Path)
	query := strings.ToLower(u.RawQuery)
	for _, k := range laptopKeywords {
		if strings.Contains(path, k) || strings.Contains(query, k) {
			return true
		}
	}
	return false
}

// IsURL reports whether s parses as an absolute http(s) URL.
func IsURL(s string) bool {
	u, ok := parseAbsolute(s)
	return ok && (u.Scheme == "http" || u.Scheme == "https")
}
