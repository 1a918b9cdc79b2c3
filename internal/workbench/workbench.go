// Package workbench is the single entry point of easel: it routes
// creation requests to the graph or figure path, keeps the session's
// undo/redo history, and exports diagrams.
package workbench

import (
	"errors"
	"fmt"
	"io"

	"github.com/msalah0e/easel/internal/builder"
	"github.com/msalah0e/easel/internal/export"
	"github.com/msalah0e/easel/internal/flyweight"
	"github.com/msalah0e/easel/internal/history"
	"github.com/msalah0e/easel/internal/observer"
)

// Diagram elements the workbench can create.
const (
	ElementGraph  = "Graph"
	ElementFigure = "Figure"
)

// ErrUnknownElement is returned when a request names neither element.
var ErrUnknownElement = errors.New("unknown element")

// Options tunes a workbench. Zero values mean an unbounded figure
// cache and unlimited history.
type Options struct {
	CacheCapacity int
	HistoryLimit  int
}

// Workbench routes requests and owns the session state. All side
// effects are written to one writer.
type Workbench struct {
	out      io.Writer
	graphs   *builder.Factory
	figures  *flyweight.Factory
	history  *history.History
	exporter *export.Exporter

	regular  observer.Subscriber
	contrast observer.Subscriber
}

func New(out io.Writer, opts Options) *Workbench {
	return &Workbench{
		out:      out,
		graphs:   builder.NewFactory(out),
		figures:  flyweight.NewFactory(out, opts.CacheCapacity),
		history:  history.New(opts.HistoryLimit),
		exporter: &export.Exporter{Out: out},
		regular:  &observer.Regular{Out: out},
		contrast: &observer.Contrast{Out: out},
	}
}

// CreateDiagram routes a creation request by element. Unknown elements
// and unknown graph styles return an error; nothing is dropped
// silently.
func (w *Workbench) CreateDiagram(element, typ, coord string) error {
	switch element {
	case ElementGraph:
		return w.CreateGraph(typ, coord)
	case ElementFigure:
		_, err := w.CreateFigure(typ, coord)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownElement, element)
	}
}

// CreateGraph wraps the request in a command, executes it, and records
// it in history. Recording cuts any redoable branch.
func (w *Workbench) CreateGraph(style, coord string) error {
	cmd := history.NewCreateGraph(w.out, w.graphs, style, coord)
	if err := cmd.Execute(); err != nil {
		return err
	}
	w.history.Push(cmd)
	return nil
}

// CreateFigure returns the shared flyweight handle with the default
// and contrast subscribers attached. Figures are not commands and do
// not enter the undo history.
func (w *Workbench) CreateFigure(key, coord string) (flyweight.Figure, error) {
	fig, err := w.figures.Create(key, coord, w.regular)
	if err != nil {
		return nil, err
	}
	fig.Attach(w.contrast)
	return fig, nil
}

// Undo reverses the most recent graph command. It acknowledges the
// retraction only; the drawn graph is not reconstructed or removed.
// Returns false on an empty history.
func (w *Workbench) Undo() (history.Command, bool) {
	return w.history.Undo()
}

// Redo re-runs the most recently undone command in full, including
// re-drawing and re-notifying. Returns false on an empty redo stack.
func (w *Workbench) Redo() (history.Command, bool) {
	return w.history.Redo()
}

// Export performs the variant-specific export side effect for d.
func (w *Workbench) Export(d export.Drawable) error {
	return w.exporter.Export(d)
}

// History exposes the session history for listings.
func (w *Workbench) History() *history.History {
	return w.history
}

// CachedFigures reports how many distinct figure styles are cached.
func (w *Workbench) CachedFigures() int {
	return w.figures.CacheLen()
}
