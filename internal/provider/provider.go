// Package provider holds the registry of launch-configuration providers.
//
// A provider knows three things: how to produce its launch.json entry, how to
// recognize its ecosystem from a file path, and optionally how to recognize
// it from the content of a well-known manifest file.
package provider

type Provider interface {
	// Name returns the stable identifier used on the command line and in
	// detection output.
	Name() string

	// Config returns the launch.json configuration entry. param carries the
	// value after the colon of a kind:parameter request; providers that take
	// no parameter ignore it, and parameterized providers fall back to a
	// documented default when it is empty.
	Config(param string) map[string]any

	// MatchesFile reports whether the file at path is evidence of this
	// ecosystem. Implementations that need to look inside the file treat a
	// failed read as no match.
	MatchesFile(path string) bool

	// MatchesContent reports whether the content of a remembered manifest
	// file is evidence of this ecosystem.
	MatchesContent(filename, content string) bool
}

// noContentMatch is embedded by providers that are never detected from
// manifest content.
type noContentMatch struct{}

func (noContentMatch) MatchesContent(string, string) bool { return false }

// Registry is the fixed set of known providers. It is built once at startup
// and read-only afterwards.
type Registry struct {
	providers []Provider
	byName    map[string]Provider
}

func NewRegistry() *Registry {
	return newRegistry([]Provider{
		&pythonProvider{},
		&pythonModuleProvider{},
		&flaskProvider{},
		&fastAPIProvider{},
		&javaScriptProvider{},
		&nodeProvider{},
		&typeScriptProvider{},
		&rustProvider{},
		&rustLibProvider{},
		&rustTestProvider{},
		&rustAllProvider{},
		&cppGdbProvider{},
		&cppLldbProvider{},
	})
}

func newRegistry(providers []Provider) *Registry {
	byName := make(map[string]Provider, len(providers))
	for _, p := range providers {
		if _, ok := byName[p.Name()]; ok {
			panic("provider: duplicate name " + p.Name())
		}
		byName[p.Name()] = p
	}

	return &Registry{providers: providers, byName: byName}
}

// Lookup returns the provider registered under name.
func (r *Registry) Lookup(name string) (Provider, bool) {
	p, ok := r.byName[name]
	return p, ok
}

// All returns every provider in registration order.
func (r *Registry) All() []Provider {
	return r.providers
}

// Names returns every provider name in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for _, p := range r.providers {
		names = append(names, p.Name())
	}

	return names
}
