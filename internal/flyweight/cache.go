package flyweight

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrCacheFull is returned when a capacity is configured and a request
// for an unseen key would exceed it.
var ErrCacheFull = errors.New("figure cache full")

// Cache hands out shared Figure instances keyed by style. Entries are
// never evicted: with capacity 0 the cache grows one entry per
// distinct key for the process lifetime. Setting cache.capacity in the
// config turns that growth into an explicit error instead.
type Cache struct {
	mu       sync.Mutex
	figures  map[string]Figure
	out      io.Writer
	capacity int
}

func NewCache(out io.Writer, capacity int) *Cache {
	return &Cache{
		figures:  make(map[string]Figure),
		out:      out,
		capacity: capacity,
	}
}

// Get returns the shared figure for key, creating it on first use.
// Keys containing "Color" get the colored variant, everything else the
// black and white one; the choice is permanent for the key. Safe for
// concurrent use, with at most one insertion per key.
func (c *Cache) Get(key string) (Figure, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if fig, ok := c.figures[key]; ok {
		return fig, nil
	}
	if c.capacity > 0 && len(c.figures) >= c.capacity {
		return nil, fmt.Errorf("%w: %d styles cached, cannot add %q", ErrCacheFull, len(c.figures), key)
	}

	var fig Figure
	if strings.Contains(key, "Color") {
		fig = &Colored{key: key, out: c.out}
	} else {
		fig = &BW{key: key, out: c.out}
	}
	c.figures[key] = fig
	return fig, nil
}

// Len reports how many distinct keys have been cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.figures)
}
