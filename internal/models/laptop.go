// Package models defines core data structures for laptops, chat messages, and API requests.
package models

import "time"

// LaptopSpec is the canonical laptop record. Raw spec strings are kept as
// human-readable text; numeric shadow fields are optional and nil when absent.
type LaptopSpec struct {
	ID           string `json:"id" yaml:"id"`
	URL          string `json:"url" yaml:"url"`
	Name         string `json:"name" yaml:"name"`
	Brand        string `json:"brand" yaml:"brand"`
	Seller       string `json:"seller,omitempty" yaml:"seller"`
	Availability string `json:"availability,omitempty" yaml:"availability"`
	OS           string `json:"os" yaml:"os"`

	Price    float64 `json:"price" yaml:"price"`
	Currency string  `json:"currency" yaml:"currency"`

	CPU     string `json:"cpu" yaml:"cpu"`
	GPU     string `json:"gpu,omitempty" yaml:"gpu"`
	RAM     string `json:"ram" yaml:"ram"`
	Storage string `json:"storage" yaml:"storage"`
	Screen  string `json:"screen" yaml:"screen"`
	Battery string `json:"battery" yaml:"battery"`
	Weight  string `json:"weight" yaml:"weight"`

	RAMGB        *float64 `json:"ram_gb,omitempty" yaml:"ram_gb"`
	StorageGB    *float64 `json:"storage_gb,omitempty" yaml:"storage_gb"`
	BatteryHours *float64 `json:"battery_hours,omitempty" yaml:"battery_hours"`
	WeightKG     *float64 `json:"weight_kg,omitempty" yaml:"weight_kg"`
	ScreenIn     *float64 `json:"screen_in,omitempty" yaml:"screen_in"`

	Rating      float64 `json:"rating" yaml:"rating"`
	ReviewCount int     `json:"review_count" yaml:"review_count"`

	Image  string   `json:"image,omitempty" yaml:"image"`
	Images []string `json:"images,omitempty" yaml:"images"`
}

// HasRequiredFields reports whether name, brand, cpu and ram are all non-empty.
func (l *LaptopSpec) HasRequiredFields() bool {
	return l != nil && l.Name != "" && l.Brand != "" && l.CPU != "" && l.RAM != ""
}

// Clone returns a shallow copy with its own Images slice.
func (l *LaptopSpec) Clone() *LaptopSpec {
	if l == nil {
		return nil
	}
	c := *l
	if l.Images != nil {
		c.Images = append([]string(nil), l.Images...)
	}
	return &c
}

// Float returns a pointer to v, for populating numeric shadow fields.
func Float(v float64) *float64 {
	return &v
}

// PageMetadata is opportunistic enrichment scraped from a product page.
type PageMetadata struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images"`
}

// SearchHit is a single result from a web search provider.
type SearchHit struct {
	Title   string   `json:"title"`
	URL     string   `json:"url"`
	Content string   `json:"content,omitempty"`
	Score   float64  `json:"score,omitempty"`
	Images  []string `json:"images,omitempty"`
}

// SavedComparison is a persisted snapshot of a comparison.
type SavedComparison struct {
	ID        string        `json:"id" db:"id"`
	Title     string        `json:"title" db:"title"`
	Persona   string        `json:"persona,omitempty" db:"persona"`
	Laptops   []*LaptopSpec `json:"laptops" db:"laptops"`
	Summary   string        `json:"summary,omitempty" db:"summary"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}
