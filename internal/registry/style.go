package registry

// Style kinds.
const (
	KindGraph  = "graph"
	KindFigure = "figure"
)

// Style describes one registered diagram style.
type Style struct {
	Name        string `toml:"name"`
	Kind        string `toml:"kind"`    // "graph" or "figure"
	Builder     string `toml:"builder"` // graph styles: "bar" or "line"
	Palette     string `toml:"palette"` // figure styles: "color" or "bw"
	DisplayName string `toml:"display_name"`
	Description string `toml:"description"`
}

// styleFile is the on-disk shape of a registry TOML file.
type styleFile struct {
	Styles []Style `toml:"styles"`
}
