// Package mock fabricates brand-consistent laptop specs when real data is unavailable.
package mock

import (
	"math"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hyperjump/lapwise/internal/extract"
	"github.com/hyperjump/lapwise/internal/models"
)

// Generator draws mock laptops from brand profiles. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithSeed seeds the random source; generators with the same seed produce the same output.
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.rng = rand.New(rand.NewSource(seed)) }
}

// NewGenerator creates a generator seeded from the clock unless an option overrides it.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FromURL generates a laptop for the brand behind rawURL. URLs without a
// known brand domain get the fallback profile.
func (g *Generator) FromURL(rawURL string) *models.LaptopSpec {
	return g.generate(extract.BrandFromURL(rawURL), rawURL)
}

// FromBrand generates a laptop for brand. Unknown brands get the fallback profile.
func (g *Generator) FromBrand(brand string) *models.LaptopSpec {
	return g.generate(extract.NormalizeBrand(brand), "")
}

// Complete turns a partial extraction into a full spec. Extracted fields win;
// the rest come from a mock of the extracted brand, the brand implied by the
// extracted name, or the URL's brand, in that order.
func (g *Generator) Complete(r *extract.Result, sourceURL string) *models.LaptopSpec {
	if r == nil {
		return g.FromURL(sourceURL)
	}
	brand := r.Brand
	if brand == "" {
		brand = extract.BrandFromName(r.Name)
	}
	if brand == "" {
		brand = extract.BrandFromURL(sourceURL)
	}
	spec := g.generate(brand, sourceURL)

	if r.Brand != "" && spec.Brand != r.Brand {
		// No profile for this brand: keep it, and do not borrow another brand's model name.
		spec.Brand = r.Brand
		spec.Name = r.Brand + " Laptop"
	}
	if r.Name != "" {
		spec.Name = r.Name
	}
	if r.Price > 0 {
		spec.Price = r.Price
		spec.Currency = r.Currency
	}
	if r.CPU != "" {
		spec.CPU = r.CPU
	}
	if r.RAM != "" {
		spec.RAM = r.RAM
	}
	if r.Storage != "" {
		spec.Storage = r.Storage
	}
	if r.Screen != "" {
		spec.Screen = r.Screen
	}
	if r.Rating > 0 {
		spec.Rating = r.Rating
	}
	spec.OS = extract.InferOS(spec.Brand, spec.Name)
	return spec
}

// Fill completes a record that lacks some of its fields, such as a sparse
// catalog entry, from a mock of its brand. Present fields are kept and the
// input is not modified.
func (g *Generator) Fill(l *models.LaptopSpec) *models.LaptopSpec {
	if l == nil {
		return g.FromBrand("")
	}
	out := l.Clone()
	brand := extract.NormalizeBrand(l.Brand)
	if brand == "" {
		brand = extract.BrandFromName(l.Name)
	}
	m := g.generate(brand, l.URL)
	out.Name = orDefault(out.Name, m.Name)
	out.Brand = orDefault(out.Brand, m.Brand)
	out.CPU = orDefault(out.CPU, m.CPU)
	out.RAM = orDefault(out.RAM, m.RAM)
	out.Storage = orDefault(out.Storage, m.Storage)
	out.Screen = orDefault(out.Screen, m.Screen)
	out.Battery = orDefault(out.Battery, m.Battery)
	out.Weight = orDefault(out.Weight, m.Weight)
	out.Currency = orDefault(out.Currency, m.Currency)
	out.OS = orDefault(out.OS, extract.InferOS(out.Brand, out.Name))
	if out.Price <= 0 {
		out.Price = m.Price
	}
	return out
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func (g *Generator) generate(brand, rawURL string) *models.LaptopSpec {
	p, _ := ProfileFor(brand)

	g.mu.Lock()
	cpu := pick(g.rng, p.CPUs)
	ram := pick(g.rng, p.RAMs)
	storage := pick(g.rng, storages)
	model := pick(g.rng, p.Models)
	price := p.MinPrice + g.rng.Intn(p.MaxPrice-p.MinPrice)
	rating := math.Floor((4.0+g.rng.Float64())*10) / 10
	reviews := 100 + g.rng.Intn(500)
	g.mu.Unlock()

	name := p.Brand + " " + model
	return &models.LaptopSpec{
		ID:           mockID(rawURL, name),
		URL:          rawURL,
		Name:         name,
		Brand:        p.Brand,
		Price:        float64(price),
		Currency:     "$",
		Image:        p.Image,
		CPU:          cpu,
		RAM:          ram,
		Storage:      storage,
		Screen:       p.Screen,
		Battery:      p.Battery,
		Weight:       p.Weight,
		OS:           p.OS,
		Rating:       rating,
		ReviewCount:  reviews,
		Seller:       extract.SellerFromURL(rawURL),
		Availability: "Available Online",
	}
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

func mockID(rawURL, name string) string {
	if id := extract.IDFromURL(rawURL); id != "" {
		return id
	}
	slug := strings.Trim(slugRe.ReplaceAllString(strings.ToLower(name), "-"), "-")
	return slug + "-" + uuid.NewString()[:8]
}
