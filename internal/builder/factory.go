package builder

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnknownStyle is returned for a graph style no builder exists for.
var ErrUnknownStyle = errors.New("unknown graph style")

// Factory selects the builder for a graph style and runs the director
// sequence on it.
type Factory struct {
	out io.Writer
}

func NewFactory(out io.Writer) *Factory {
	return &Factory{out: out}
}

// Create builds a graph of the given style at coord. Style names match
// exactly. A fresh builder is used per call.
func (f *Factory) Create(style, coord string) error {
	b, err := f.builderFor(style)
	if err != nil {
		return err
	}
	var d Director
	d.Construct(b, coord)
	return nil
}

func (f *Factory) builderFor(style string) (Builder, error) {
	switch style {
	case "Bar":
		return NewBar(f.out), nil
	case "Line":
		return NewLine(f.out), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
}
