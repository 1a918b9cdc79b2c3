// Package registry holds the known diagram styles, loaded from the
// embedded TOML files plus any plugin files in the config directory.
package registry

// Registry holds all known diagram styles.
type Registry struct {
	styles []Style
	byName map[string]*Style
}

// New creates a registry from a list of styles.
func New(styles []Style) *Registry {
	r := &Registry{
		styles: styles,
		byName: make(map[string]*Style, len(styles)),
	}
	for i := range r.styles {
		r.byName[r.styles[i].Name] = &r.styles[i]
	}
	return r
}

// All returns all styles in the registry.
func (r *Registry) All() []Style {
	return r.styles
}

// Get returns a style by name, or nil if not found.
func (r *Registry) Get(name string) *Style {
	return r.byName[name]
}

// ByKind returns styles filtered by kind ("graph" or "figure").
func (r *Registry) ByKind(kind string) []Style {
	var results []Style
	for _, s := range r.styles {
		if s.Kind == kind {
			results = append(results, s)
		}
	}
	return results
}

// GraphStyles returns the names of all registered graph styles.
func (r *Registry) GraphStyles() []string {
	var names []string
	for _, s := range r.ByKind(KindGraph) {
		names = append(names, s.Name)
	}
	return names
}
