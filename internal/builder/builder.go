// Package builder assembles graphs through a fixed four-step director
// sequence. Builders are created per request; nothing is shared
// between constructions, so two requests for the same style can never
// clobber each other's coordinate.
package builder

import (
	"fmt"
	"io"

	"github.com/msalah0e/easel/internal/diagram"
)

// Builder is one graph construction in progress.
type Builder interface {
	SetCoord(coord string)
	Calc()
	Draw()
	Drag()
}

// Bar builds bar graphs.
type Bar struct {
	coord string
	out   io.Writer
	proxy *diagram.DrawProxy
}

func NewBar(out io.Writer) *Bar {
	return &Bar{out: out, proxy: diagram.NewDrawProxy(out)}
}

func (b *Bar) SetCoord(coord string) { b.coord = coord }

func (b *Bar) Calc() {
	fmt.Fprintf(b.out, "Bar calc at %s\n", b.coord)
}

func (b *Bar) Draw() {
	b.proxy.Draw()
}

func (b *Bar) Drag() {
	fmt.Fprintf(b.out, "Drag Bar at %s\n", b.coord)
}

// Line builds line graphs.
type Line struct {
	coord string
	out   io.Writer
	proxy *diagram.DrawProxy
}

func NewLine(out io.Writer) *Line {
	return &Line{out: out, proxy: diagram.NewDrawProxy(out)}
}

func (l *Line) SetCoord(coord string) { l.coord = coord }

func (l *Line) Calc() {
	fmt.Fprintf(l.out, "Line calc at %s\n", l.coord)
}

func (l *Line) Draw() {
	l.proxy.Draw()
}

func (l *Line) Drag() {
	fmt.Fprintf(l.out, "Drag Line at %s\n", l.coord)
}
