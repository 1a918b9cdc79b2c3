package builder

// Director drives a builder through the fixed construction sequence:
// setCoord, calc, draw, drag. No branching, no retry; each step runs
// its side effect and returns.
type Director struct{}

func (Director) Construct(b Builder, coord string) {
	b.SetCoord(coord)
	b.Calc()
	b.Draw()
	b.Drag()
}
