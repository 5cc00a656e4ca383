package memory

import (
	"sync"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driven"
)

// Ensure IdeaCache implements the interface.
var _ driven.IdeaCache = (*IdeaCache)(nil)

// IdeaCache holds fetched idea histories keyed by brand slug.
type IdeaCache struct {
	mu    sync.RWMutex
	ideas map[string]*domain.IdeaSet
}

// NewIdeaCache creates an empty idea cache.
func NewIdeaCache() *IdeaCache {
	return &IdeaCache{ideas: make(map[string]*domain.IdeaSet)}
}

// PutIdeas caches the idea history for a brand.
func (c *IdeaCache) PutIdeas(slug string, ideas *domain.IdeaSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ideas[slug] = ideas
}

// GetIdeas returns the cached history, or nil.
func (c *IdeaCache) GetIdeas(slug string) *domain.IdeaSet {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ideas[slug]
}
