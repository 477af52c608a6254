// Package catalog holds the in-memory reference laptops used for free-text matching.
package catalog

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/hyperjump/lapwise/internal/models"
)

// Catalog is a small, swappable set of reference laptops. It is safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	laptops []*models.LaptopSpec
	path    string
	logger  *zap.Logger
}

// New creates a catalog over laptops.
func New(laptops []*models.LaptopSpec) *Catalog {
	return &Catalog{laptops: laptops, logger: zap.NewNop()}
}

// NewBuiltin creates a catalog holding the built-in reference laptops.
func NewBuiltin() *Catalog {
	return New(Builtin())
}

// Open loads the catalog file at path. An empty path yields the built-in catalog.
func Open(path string, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path == "" {
		c := NewBuiltin()
		c.logger = logger
		return c, nil
	}
	laptops, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	c := New(laptops)
	c.path = path
	c.logger = logger
	logger.Info("catalog loaded", zap.String("path", path), zap.Int("laptops", len(laptops)))
	return c, nil
}

// Laptops returns the current entries. The slice is a snapshot; callers
// should Clone an entry before modifying it.
func (c *Catalog) Laptops() []*models.LaptopSpec {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*models.LaptopSpec(nil), c.laptops...)
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.laptops)
}

// Get returns a copy of the entry with the given ID.
func (c *Catalog) Get(id string) (*models.LaptopSpec, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, l := range c.laptops {
		if strings.EqualFold(l.ID, id) {
			return l.Clone(), true
		}
	}
	return nil, false
}

// Path returns the backing file, or "" for an in-memory catalog.
func (c *Catalog) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.path
}

// Replace swaps in a new set of entries.
func (c *Catalog) Replace(laptops []*models.LaptopSpec) {
	c.mu.Lock()
	c.laptops = laptops
	c.mu.Unlock()
}

// Reload re-reads the backing file. On failure the current entries are kept.
func (c *Catalog) Reload() error {
	path := c.Path()
	if path == "" {
		return fmt.Errorf("catalog has no backing file")
	}
	laptops, err := LoadFile(path)
	if err != nil {
		c.logger.Warn("catalog reload failed, keeping previous entries", zap.String("path", path), zap.Error(err))
		return err
	}
	c.Replace(laptops)
	c.logger.Info("catalog reloaded", zap.String("path", path), zap.Int("laptops", len(laptops)))
	return nil
}
