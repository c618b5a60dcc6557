package layout

import (
	"fmt"
	"strings"
	"sync"
)

// Cache memoizes Split results so a render loop does not recompute the
// same division every frame. It is safe for concurrent use. AutoGrid
// itself never consults a cache; callers that want memoized grids wrap
// the Layouts they build themselves.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]Rect
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string][]Rect)}
}

// Split computes l.Split(area), serving repeated calls with the same
// layout and area from memory. The returned slice is always a copy, so
// callers may mutate it freely.
func (c *Cache) Split(l *Layout, area Rect) []Rect {
	key := splitKey(l, area)

	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return copyRects(cached)
	}

	rects := l.Split(area)

	c.mu.Lock()
	c.entries[key] = copyRects(rects)
	c.mu.Unlock()
	return rects
}

// Invalidate drops every cached entry. Call on terminal resize.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string][]Rect)
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// splitKey builds a deterministic key covering every input that affects
// the result of a Split call.
func splitKey(l *Layout, area Rect) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|%d|%d|%d|%d,%d,%d,%d", l.dir, l.flex, l.spacing, l.margin,
		area.X, area.Y, area.Width, area.Height)
	for _, c := range l.constraints {
		b.WriteByte('|')
		b.WriteString(c.String())
	}
	return b.String()
}

func copyRects(rects []Rect) []Rect {
	cp := make([]Rect, len(rects))
	copy(cp, rects)
	return cp
}
