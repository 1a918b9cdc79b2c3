// Package flyweight caches shared figure instances by style key so
// repeated requests for the same key reuse one object.
package flyweight

import (
	"fmt"
	"io"

	"github.com/msalah0e/easel/internal/observer"
)

// Figure is a shared figure instance. The same handle is returned for
// every request with the same key, so attached subscribers accumulate
// across requests.
type Figure interface {
	Key() string
	Draw()
	Attach(observer.Subscriber)
}

// Colored renders figures whose key contains "Color".
type Colored struct {
	key  string
	out  io.Writer
	subs observer.List
}

func (f *Colored) Key() string { return f.key }

func (f *Colored) Draw() {
	fmt.Fprintf(f.out, "[Colored Flyweight] Drawing colored figure of type: %s\n", f.key)
	f.subs.Broadcast("Colored Figure drawn")
}

func (f *Colored) Attach(sub observer.Subscriber) {
	f.subs.Attach(sub)
}

// BW renders every figure that is not colored.
type BW struct {
	key  string
	out  io.Writer
	subs observer.List
}

func (f *BW) Key() string { return f.key }

func (f *BW) Draw() {
	fmt.Fprintf(f.out, "[B/W Flyweight] Drawing black and white figure of type: %s\n", f.key)
	f.subs.Broadcast("B/W Figure drawn")
}

func (f *BW) Attach(sub observer.Subscriber) {
	f.subs.Attach(sub)
}
