package history

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/msalah0e/easel/internal/builder"
)

// Command is a reified request that can be executed and undone.
type Command interface {
	// ID uniquely identifies the command in history listings.
	ID() string
	// Label is a short description, e.g. "Graph/Bar".
	Label() string
	Execute() error
	Undo()
}

// CreateGraph reifies one graph-creation request against a factory.
type CreateGraph struct {
	id      string
	style   string
	coord   string
	factory *builder.Factory
	out     io.Writer
}

func NewCreateGraph(out io.Writer, f *builder.Factory, style, coord string) *CreateGraph {
	return &CreateGraph{
		id:      uuid.NewString(),
		style:   style,
		coord:   coord,
		factory: f,
		out:     out,
	}
}

func (c *CreateGraph) ID() string { return c.id }

func (c *CreateGraph) Label() string { return "Graph/" + c.style }

// Execute runs the full construction sequence. Re-executing (redo)
// re-runs it in full, including re-drawing and re-notifying.
func (c *CreateGraph) Execute() error {
	return c.factory.Create(c.style, c.coord)
}

// Undo acknowledges the retraction. The graph built by Execute was a
// side effect; nothing is removed from memory or any registry.
func (c *CreateGraph) Undo() {
	fmt.Fprintf(c.out, "Undo creation of graph: %s\n", c.style)
}
