package flyweight

import (
	"fmt"
	"io"

	"github.com/msalah0e/easel/internal/observer"
)

// Factory creates figure handles backed by the shared cache.
type Factory struct {
	cache *Cache
	out   io.Writer
}

func NewFactory(out io.Writer, capacity int) *Factory {
	return &Factory{
		cache: NewCache(out, capacity),
		out:   out,
	}
}

// Create fetches the shared figure for key, attaches sub, records the
// coordinate observation, and draws once. The returned handle is the
// cached instance, shared with every earlier request for the same key.
func (f *Factory) Create(key, coord string, sub observer.Subscriber) (Figure, error) {
	fig, err := f.cache.Get(key)
	if err != nil {
		return nil, err
	}
	fig.Attach(sub)
	fmt.Fprintf(f.out, "Coordinates: %s\n", coord)
	fig.Draw()
	return fig, nil
}

// CacheLen reports how many distinct figure styles are cached.
func (f *Factory) CacheLen() int {
	return f.cache.Len()
}
