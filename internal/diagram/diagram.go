// Package diagram holds the drawable diagram variants. Every
// state-changing operation writes its textual action and then
// broadcasts one message per attached subscriber, in attachment order.
package diagram

import (
	"fmt"
	"io"

	"github.com/msalah0e/easel/internal/observer"
)

// Diagram is a drawable element.
type Diagram interface {
	Calc()
	Draw()
	Drag()
	Attach(observer.Subscriber)
}

// Graph is the graph diagram variant.
type Graph struct {
	out  io.Writer
	subs observer.List
}

func NewGraph(out io.Writer) *Graph {
	return &Graph{out: out}
}

func (g *Graph) Calc() {
	fmt.Fprintln(g.out, "Calculating Graph")
	g.subs.Broadcast("Graph calculated")
}

func (g *Graph) Draw() {
	fmt.Fprintln(g.out, "[Graph] Drawing graphical representation.")
	g.subs.Broadcast("Graph drawn")
}

func (g *Graph) Drag() {
	fmt.Fprintln(g.out, "Dragging Graph")
	g.subs.Broadcast("Graph dragged")
}

func (g *Graph) Attach(sub observer.Subscriber) {
	g.subs.Attach(sub)
}

// Figure is the figure diagram variant. Its drawing is a textual stub;
// shared, cached figures live in the flyweight package.
type Figure struct {
	out  io.Writer
	subs observer.List
}

func NewFigure(out io.Writer) *Figure {
	return &Figure{out: out}
}

func (f *Figure) Calc() {
	fmt.Fprintln(f.out, "Calculating Figure")
	f.subs.Broadcast("Figure calculated")
}

func (f *Figure) Draw() {
	fmt.Fprintln(f.out, "[Figure Stub] Drawing textual stub.")
	f.subs.Broadcast("Figure drawn")
}

func (f *Figure) Drag() {
	fmt.Fprintln(f.out, "Dragging Figure")
	f.subs.Broadcast("Figure dragged")
}

func (f *Figure) Attach(sub observer.Subscriber) {
	f.subs.Attach(sub)
}
