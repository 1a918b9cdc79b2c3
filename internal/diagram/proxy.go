package diagram

import (
	"fmt"
	"io"
)

// DrawProxy fronts the real graph drawing action, combining the
// graphical and the textual representation behind a single call.
// Builders draw through it rather than touching either directly.
type DrawProxy struct {
	out io.Writer
}

func NewDrawProxy(out io.Writer) *DrawProxy {
	return &DrawProxy{out: out}
}

func (p *DrawProxy) Draw() {
	fmt.Fprintln(p.out, "[Graph Proxy] Drawing graphical + textual stub")
}
