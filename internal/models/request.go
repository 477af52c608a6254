package models

import (
	"fmt"
	"strings"
)

const (
	defaultDiscoverLimit = 3
	maxDiscoverLimit     = 10
	maxCompareQueries    = 10
)

// CompareRequest asks for each query to be resolved to a laptop, optionally
// ranked for a persona and summarized.
type CompareRequest struct {
	Queries   []string `json:"queries"`
	Persona   string   `json:"persona,omitempty"`
	Summarize bool     `json:"summarize,omitempty"`
	// RequireAI makes a missing LLM key an error instead of falling back to the heuristic report.
	RequireAI bool `json:"require_ai,omitempty"`
}

// Validate trims queries, drops empty ones, and caps the count.
func (r *CompareRequest) Validate() error {
	queries := make([]string, 0, len(r.Queries))
	for _, q := range r.Queries {
		if q = strings.TrimSpace(q); q != "" {
			queries = append(queries, q)
		}
	}
	if len(queries) == 0 {
		return fmt.Errorf("queries cannot be empty")
	}
	if len(queries) > maxCompareQueries {
		queries = queries[:maxCompareQueries]
	}
	r.Queries = queries
	r.Persona = strings.TrimSpace(r.Persona)
	return nil
}

// RankRequest ranks the given laptops for a persona.
type RankRequest struct {
	Laptops   []*LaptopSpec `json:"laptops"`
	Persona   string        `json:"persona"`
	Breakdown bool          `json:"breakdown,omitempty"`
}

// Validate requires a persona and drops nil laptops.
func (r *RankRequest) Validate() error {
	if strings.TrimSpace(r.Persona) == "" {
		return fmt.Errorf("persona cannot be empty")
	}
	laptops := r.Laptops[:0]
	for _, l := range r.Laptops {
		if l != nil {
			laptops = append(laptops, l)
		}
	}
	r.Laptops = laptops
	return nil
}

// MatchRequest matches a free-text query against the catalog.
type MatchRequest struct {
	Query string `json:"query"`
}

// Validate requires a non-empty query.
func (r *MatchRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return fmt.Errorf("query cannot be empty")
	}
	return nil
}

// ExtractRequest runs the text extractor over content from url.
type ExtractRequest struct {
	Content string `json:"content"`
	URL     string `json:"url"`
}

// Validate requires content or a url to fetch.
func (r *ExtractRequest) Validate() error {
	if r.Content == "" && r.URL == "" {
		return fmt.Errorf("content or url is required")
	}
	return nil
}

// ChatRequest is a conversation to continue.
type ChatRequest struct {
	Messages []Message `json:"messages"`
	Persona  string    `json:"persona,omitempty"`
}

// Validate requires at least one user message.
func (r *ChatRequest) Validate() error {
	if LastUserMessage(r.Messages) == "" {
		return fmt.Errorf("messages must include a user message")
	}
	return nil
}

// DiscoverRequest finds product pages for a brand.
type DiscoverRequest struct {
	Brand   string `json:"brand"`
	Limit   int    `json:"limit,omitempty"`
	Persona string `json:"persona,omitempty"`
}

// Validate requires a brand and applies the default and maximum limit.
func (r *DiscoverRequest) Validate() error {
	r.Brand = strings.TrimSpace(r.Brand)
	if r.Brand == "" {
		return fmt.Errorf("brand cannot be empty")
	}
	if r.Limit <= 0 {
		r.Limit = defaultDiscoverLimit
	}
	if r.Limit > maxDiscoverLimit {
		r.Limit = maxDiscoverLimit
	}
	return nil
}

// AssistRequest is a single free-form user message to classify and dispatch.
type AssistRequest struct {
	Message string    `json:"message"`
	History []Message `json:"history,omitempty"`
	Persona string    `json:"persona,omitempty"`
}

// Validate requires a non-empty message.
func (r *AssistRequest) Validate() error {
	r.Message = strings.TrimSpace(r.Message)
	if r.Message == "" {
		return fmt.Errorf("message cannot be empty")
	}
	return nil
}
