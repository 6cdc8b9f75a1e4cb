package texture

import (
	"fmt"
	"sync"

	"softraster/internal/logx"
	"softraster/internal/raster"
)

// Resolver resolves a texture name to a decoded buffer.
type Resolver interface {
	Resolve(name string) (*raster.FrameBuffer, error)
}

// Cache is a concurrency-safe texture cache. Textures are read-only once
// loaded, so the same buffer may be sampled from many renderers at once.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
}

type cacheEntry struct {
	fb  *raster.FrameBuffer
	err error // failed loads are remembered too
}

// NewCache creates a cache backed by the given index.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
	}
}

// Resolve loads and caches a texture by name.
func (c *Cache) Resolve(name string) (*raster.FrameBuffer, error) {
	path, ok := c.index.ResolvePath(name)
	if !ok {
		return nil, fmt.Errorf("texture: %q not in index", name)
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.fb, entry.err
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	fb, err := Load(path)
	if err != nil {
		logx.Logger().Warn("texture load failed", "name", name, "path", path, "err", err)
	} else {
		logx.Logger().Debug("texture loaded", "name", name, "path", path, "w", fb.Width, "h", fb.Height)
	}

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[path]; exists {
		return entry.fb, entry.err
	}
	c.items[path] = &cacheEntry{fb: fb, err: err}
	return fb, err
}

// Len returns the number of cached entries, failures included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
