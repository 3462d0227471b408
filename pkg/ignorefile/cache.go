package ignorefile

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/orbit-deploy/orbitignore/pkg/ignore"
)

// DefaultCacheSize is the maximum number of compiled specs kept per
// Cache. Bounds memory in long-running processes that package many
// roots.
const DefaultCacheSize = 128

// Cache holds compiled ignore specs keyed by deployment root.
// Compiled specs are immutable, so cached entries are shared safely
// across concurrent match evaluations.
type Cache struct {
	specs *lru.Cache[string, *ignore.Spec]
	mu    sync.RWMutex
	opts  Options
}

// NewCache creates a Cache with the given capacity.
// A size <= 0 uses DefaultCacheSize.
func NewCache(size int) (*Cache, error) {
	return NewCacheWithOptions(size, Options{})
}

// NewCacheWithOptions creates a Cache whose loads use the given options.
func NewCacheWithOptions(size int, opts Options) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	specs, err := lru.New[string, *ignore.Spec](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create spec cache: %w", err)
	}
	return &Cache{specs: specs, opts: opts}, nil
}

// Load returns the compiled spec for root, loading and caching it on the
// first call. Roots without an ignore file are not cached, so a file
// created later is picked up on the next load.
func (c *Cache) Load(root string) (*ignore.Spec, error) {
	c.mu.RLock()
	spec, ok := c.specs.Get(root)
	c.mu.RUnlock()
	if ok {
		return spec, nil
	}

	spec, err := LoadWithOptions(root, c.opts)
	if err != nil {
		return nil, err
	}
	if spec == nil {
		return nil, nil
	}

	c.mu.Lock()
	c.specs.Add(root, spec)
	c.mu.Unlock()
	return spec, nil
}

// Invalidate drops every cached spec. Call after ignore files change so
// subsequent loads see fresh rules.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.specs.Purge()
}

// InvalidateRoot drops the cached spec for one root.
func (c *Cache) InvalidateRoot(root string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.specs.Remove(root)
}

// Len returns the number of cached specs.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.specs.Len()
}
