// Package export writes a variant-specific export for each diagram
// kind. Dispatch is a plain type switch on the concrete variant rather
// than accept/visit indirection; the diagram never branches on its own
// type. The export itself is a textual stub, not a real file.
package export

import (
	"fmt"
	"io"

	"github.com/msalah0e/easel/internal/diagram"
	"github.com/msalah0e/easel/internal/flyweight"
)

// Drawable is the part of a diagram the exporter needs. Both diagram
// variants and shared flyweight figures satisfy it.
type Drawable interface {
	Draw()
}

// Exporter performs the export side effect. It holds no state.
type Exporter struct {
	Out io.Writer
}

func (e *Exporter) Export(d Drawable) error {
	switch d.(type) {
	case *diagram.Graph:
		fmt.Fprintln(e.Out, "Exporting Graph as PNG...")
	case *diagram.Figure:
		fmt.Fprintln(e.Out, "Exporting Figure as JPG...")
	case flyweight.Figure:
		fmt.Fprintln(e.Out, "Exporting Figure as JPG...")
	default:
		return fmt.Errorf("no exporter for %T", d)
	}
	return nil
}
