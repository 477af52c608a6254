package fetch

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// CachedFetcher wraps a Fetcher with an LRU cache of successful pages keyed
// by URL. Errors are never cached.
type CachedFetcher struct {
	next     Fetcher
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	pages map[string]*list.Element
	lru   *list.List
}

type cacheEntry struct {
	url     string
	html    string
	expires time.Time
}

// NewCachedFetcher caches up to capacity pages from next for ttl. A zero ttl
// keeps pages until they are evicted. A non-positive capacity disables caching.
func NewCachedFetcher(next Fetcher, capacity int, ttl time.Duration) *CachedFetcher {
	return &CachedFetcher{
		next:     next,
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		pages:    make(map[string]*list.Element),
		lru:      list.New(),
	}
}

// Fetch implements Fetcher.
func (c *CachedFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	if html, ok := c.get(pageURL); ok {
		return html, nil
	}
	html, err := c.next.Fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}
	c.set(pageURL, html)
	return html, nil
}

// Len returns the number of cached pages.
func (c *CachedFetcher) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *CachedFetcher) get(pageURL string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.pages[pageURL]
	if !ok {
		return "", false
	}
	entry := elem.Value.(*cacheEntry)
	if c.ttl > 0 && c.now().After(entry.expires) {
		c.lru.Remove(elem)
		delete(c.pages, pageURL)
		return "", false
	}
	c.lru.MoveToFront(elem)
	return entry.html, true
}

func (c *CachedFetcher) set(pageURL, html string) {
	if c.capacity <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	expires := c.now().Add(c.ttl)
	if elem, ok := c.pages[pageURL]; ok {
		c.lru.MoveToFront(elem)
		entry := elem.Value.(*cacheEntry)
		entry.html, entry.expires = html, expires
		return
	}

	c.pages[pageURL] = c.lru.PushFront(&cacheEntry{url: pageURL, html: html, expires: expires})
	if c.lru.Len() > c.capacity {
		if oldest := c.lru.Back(); oldest != nil {
			c.lru.Remove(oldest)
			delete(c.pages, oldest.Value.(*cacheEntry).url)
		}
	}
}
