// internal/domain/catalog/cache.go
package catalog

import (
	"sort"
	"strings"
	"sync"
)

// Cache is the process-wide read cache behind search and autocomplete.
// Update is an additive upsert: ids absent from a newer reconciliation are
// not evicted. That staleness is a deliberate trade-off, not a bug.
type Cache struct {
	mu    sync.RWMutex
	items map[int]Item
}

// NewCache creates an empty catalog read cache.
func NewCache() *Cache {
	return &Cache{items: make(map[int]Item)}
}

// Update upserts every item of the list into the cache.
func (c *Cache) Update(items []Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range items {
		c.items[item.ID] = item
	}
}

// Get returns the cached item for an id.
func (c *Cache) Get(id int) (Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

// All returns a snapshot of every cached item, ordered by id.
func (c *Cache) All() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]Item, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// Search returns cached items whose name contains the query,
// case-insensitively, ordered by id.
func (c *Cache) Search(query string) []Item {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}
	var matches []Item
	for _, item := range c.All() {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			matches = append(matches, item)
		}
	}
	return matches
}

// Clear empties the cache. Only used by tests.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[int]Item)
}
