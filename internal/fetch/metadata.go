package fetch

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/hyperjump/lapwise/internal/models"
)

const maxImages = 10

var productImageRe = regexp.MustCompile(`(?i)(\.(png|jpe?g|webp|avif)|/images?/|content/dam|product)`)

// MetadataExtractor scrapes title, description and product images from a page.
type MetadataExtractor struct {
	fetcher Fetcher
	logger  *zap.Logger
}

// NewMetadataExtractor creates an extractor that reads pages through fetcher.
func NewMetadataExtractor(fetcher Fetcher, logger *zap.Logger) *MetadataExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MetadataExtractor{fetcher: fetcher, logger: logger}
}

// PageMetadata fetches pageURL and parses its metadata. Any failure yields
// empty metadata.
func (m *MetadataExtractor) PageMetadata(ctx context.Context, pageURL string) *models.PageMetadata {
	html, err := m.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		m.logger.Debug("metadata fetch failed", zap.String("url", pageURL), zap.Error(err))
		return &models.PageMetadata{Images: []string{}}
	}
	return ParseMetadata(html, pageURL)
}

// ParseMetadata reads og/twitter tags, the description and product-looking
// <img> sources from html. Relative image URLs are resolved against baseURL.
func ParseMetadata(html, baseURL string) *models.PageMetadata {
	meta := &models.PageMetadata{Images: []string{}}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return meta
	}
	base, _ := url.Parse(baseURL)

	seen := make(map[string]bool)
	addImage := func(src string) {
		if len(meta.Images) >= maxImages {
			return
		}
		src = strings.TrimSpace(src)
		if src == "" || strings.HasPrefix(src, "data:") {
			return
		}
		resolved := resolve(base, src)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true
		meta.Images = append(meta.Images, resolved)
	}

	addImage(metaContent(doc, `meta[property="og:image"]`))
	addImage(metaContent(doc, `meta[name="twitter:image"], meta[property="twitter:image"]`))
	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		src := s.AttrOr("src", "")
		if productImageRe.MatchString(src) {
			addImage(src)
		}
	})

	meta.Description = metaContent(doc, `meta[property="og:description"]`)
	if meta.Description == "" {
		meta.Description = metaContent(doc, `meta[name="description"]`)
	}
	meta.Title = metaContent(doc, `meta[property="og:title"]`)
	if meta.Title == "" {
		meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	return meta
}

func metaContent(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().AttrOr("content", ""))
}

func resolve(base *url.URL, src string) string {
	ref, err := url.Parse(src)
	if err != nil {
		return ""
	}
	if base == nil || base.Host == "" {
		if ref.IsAbs() {
			return ref.String()
		}
		return ""
	}
	return base.ResolveReference(ref).String()
}
