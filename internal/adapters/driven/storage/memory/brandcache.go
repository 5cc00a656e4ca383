package memory

import (
	"sync"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driven"
)

// Ensure BrandCache implements the interface.
var _ driven.BrandCache = (*BrandCache)(nil)

// BrandCache holds the fetched brand directory for the session.
type BrandCache struct {
	mu     sync.RWMutex
	brands []domain.Brand
	bySlug map[string]int
	byURL  map[string]int
}

// NewBrandCache creates an empty brand cache.
func NewBrandCache() *BrandCache {
	return &BrandCache{
		bySlug: make(map[string]int),
		byURL:  make(map[string]int),
	}
}

// SetBrands replaces the cached directory.
func (c *BrandCache) SetBrands(brands []domain.Brand) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.brands = make([]domain.Brand, len(brands))
	copy(c.brands, brands)
	c.bySlug = make(map[string]int, len(brands))
	c.byURL = make(map[string]int, len(brands))
	for i, b := range c.brands {
		c.bySlug[b.Slug] = i
		c.byURL[b.Key()] = i
	}
}

// Brands returns the cached directory, newest first.
func (c *BrandCache) Brands() []domain.Brand {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]domain.Brand, len(c.brands))
	copy(result, c.brands)
	return result
}

// BrandBySlug returns a cached brand, or nil.
func (c *BrandCache) BrandBySlug(slug string) *domain.Brand {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.bySlug[slug]
	if !ok {
		return nil
	}
	brand := c.brands[i]
	return &brand
}

// BrandByURL returns the cached brand with a matching normalized URL,
// or nil.
func (c *BrandCache) BrandByURL(url string) *domain.Brand {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byURL[domain.NormalizeURL(url)]
	if !ok {
		return nil
	}
	brand := c.brands[i]
	return &brand
}
