package flyweight

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestCacheIdentity(t *testing.T) {
	c := NewCache(&bytes.Buffer{}, 0)

	first, err := c.Get("CircleColor")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	second, err := c.Get("CircleColor")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if first != second {
		t.Error("same key must return the identical instance")
	}

	other, err := c.Get("SquareColor")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if other == first {
		t.Error("distinct keys must return distinct instances")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCachePartition(t *testing.T) {
	tests := []struct {
		key     string
		colored bool
	}{
		{"CircleColor", true},
		{"SquareColor", true},
		{"ColorWheel", true},
		{"SquareBW", false},
		{"Triangle", false},
		{"circlecolor", false}, // rule is case sensitive
	}

	c := NewCache(&bytes.Buffer{}, 0)
	for _, tt := range tests {
		fig, err := c.Get(tt.key)
		if err != nil {
			t.Fatalf("Get(%q): %v", tt.key, err)
		}
		_, isColored := fig.(*Colored)
		if isColored != tt.colored {
			t.Errorf("Get(%q): colored = %v, want %v", tt.key, isColored, tt.colored)
		}
		if fig.Key() != tt.key {
			t.Errorf("Get(%q): Key() = %q", tt.key, fig.Key())
		}
	}
}

func TestCachePartitionIsPermanent(t *testing.T) {
	c := NewCache(&bytes.Buffer{}, 0)
	first, _ := c.Get("CircleColor")
	for i := 0; i < 5; i++ {
		again, _ := c.Get("CircleColor")
		if again != first {
			t.Fatal("partition changed for a cached key")
		}
	}
}

func TestCacheCapacity(t *testing.T) {
	c := NewCache(&bytes.Buffer{}, 2)

	if _, err := c.Get("One"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, err := c.Get("Two"); err != nil {
		t.Fatalf("Get: %v", err)
	}

	// Full: unseen keys error, seen keys still resolve.
	if _, err := c.Get("Three"); !errors.Is(err, ErrCacheFull) {
		t.Errorf("expected ErrCacheFull, got %v", err)
	}
	if _, err := c.Get("One"); err != nil {
		t.Errorf("cached key must survive a full cache: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCacheConcurrentGet(t *testing.T) {
	c := NewCache(&bytes.Buffer{}, 0)

	const workers = 16
	figures := make([]Figure, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			fig, err := c.Get("CircleColor")
			if err != nil {
				t.Errorf("Get: %v", err)
				return
			}
			figures[i] = fig
		}(i)
	}
	wg.Wait()

	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (at most one insertion per key)", c.Len())
	}
	for i := 1; i < workers; i++ {
		if figures[i] != figures[0] {
			t.Fatal("concurrent gets returned different instances")
		}
	}
}

func TestFigureDrawOutput(t *testing.T) {
	var buf bytes.Buffer
	c := NewCache(&buf, 0)

	colored, _ := c.Get("CircleColor")
	colored.Draw()
	if !strings.Contains(buf.String(), "[Colored Flyweight] Drawing colored figure of type: CircleColor") {
		t.Errorf("colored draw output %q", buf.String())
	}

	buf.Reset()
	bw, _ := c.Get("SquareBW")
	bw.Draw()
	if !strings.Contains(buf.String(), "[B/W Flyweight] Drawing black and white figure of type: SquareBW") {
		t.Errorf("bw draw output %q", buf.String())
	}
}
