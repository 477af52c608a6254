package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func newTavilyServer(t *testing.T, results []map[string]interface{}, got *tavilyRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got != nil {
			if err := json.NewDecoder(r.Body).Decode(got); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"results": results})
	}))
}

func TestTavilyClient_Search(t *testing.T) {
	var req tavilyRequest
	srv := newTavilyServer(t, []map[string]interface{}{
		{"title": "Dell XPS 13", "url": "https://www.dell.com/xps-13", "content": "16GB", "score": 0.9},
	}, &req)
	defer srv.Close()

	c := NewTavilyClient("tvly-test", WithBaseURL(srv.URL))
	hits, err := c.Search(context.Background(), "dell xps", 25, []string{"dell.com"})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 || hits[0].URL != "https://www.dell.com/xps-13" || hits[0].Score != 0.9 {
		t.Errorf("hits = %+v", hits)
	}
	want := tavilyRequest{
		APIKey:         "tvly-test",
		Query:          "dell xps",
		SearchDepth:    "basic",
		MaxResults:     10,
		IncludeDomains: []string{"dell.com"},
	}
	if !reflect.DeepEqual(req, want) {
		t.Errorf("request = %+v, want %+v", req, want)
	}
}

func TestTavilyClient_SearchErrors(t *testing.T) {
	if _, err := NewTavilyClient("").Search(context.Background(), "q", 1, nil); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()
	if _, err := NewTavilyClient("k", WithBaseURL(srv.URL)).Search(context.Background(), "q", 1, nil); err == nil {
		t.Error("expected error on 429")
	}
}

func TestTavilyClient_BrandProductURLs(t *testing.T) {
	var req tavilyRequest
	srv := newTavilyServer(t, []map[string]interface{}{
		{"title": "a", "url": "https://www.dell.com/en-us/shop/laptops/xps-13#specs"},
		{"title": "b", "url": "https://www.dell.com/en-us/shop/laptops/xps-13"},
		{"title": "c", "url": "https://www.dell.com/support/home"},
		{"title": "d", "url": "https://www.amazon.com/dell-laptop"},
		{"title": "e", "url": "https://www.dell.com/en-us/shop/inspiron-laptop"},
		{"title": "f", "url": "https://www.dell.com/en-us/shop/xps-notebook"},
	}, &req)
	defer srv.Close()

	c := NewTavilyClient("k", WithBaseURL(srv.URL))
	urls, err := c.BrandProductURLs(context.Background(), "Dell", 2)
	if err != nil {
		t.Fatalf("BrandProductURLs: %v", err)
	}
	want := []string{
		"https://www.dell.com/en-us/shop/laptops/xps-13",
		"https://www.dell.com/en-us/shop/inspiron-laptop",
	}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("urls = %v, want %v", urls, want)
	}
	if req.MaxResults != 4 || !reflect.DeepEqual(req.IncludeDomains, []string{"dell.com"}) {
		t.Errorf("request = %+v", req)
	}
}

func TestBrandDomain(t *testing.T) {
	tests := map[string]string{
		"Apple":     "apple.com",
		" HP ":      "hp.com",
		"Framework": "framework.com",
		"Razer Inc": "razerinc.com",
	}
	for brand, want := range tests {
		if got := BrandDomain(brand); got != want {
			t.Errorf("BrandDomain(%q) = %q, want %q", brand, got, want)
		}
	}
}

func TestClampLimit(t *testing.T) {
	for in, want := range map[int]int{-3: 1, 0: 1, 5: 5, 10: 10, 11: 10} {
		if got := clampLimit(in); got != want {
			t.Errorf("clampLimit(%d) = %d, want %d", in, got, want)
		}
	}
}
