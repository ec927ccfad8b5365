package schema

import (
	"maps"
	"slices"

	"github.com/shashibeit/ui-theme-material/pkg/validator"
)

// Registry resolves predicate names used by custom rule entries.
type Registry map[string]validator.Predicate

// Register adds fn under name and returns the registry for chaining.
// Panics on a nil predicate.
func (r Registry) Register(name string, fn validator.Predicate) Registry {
	if fn == nil {
		panic("schema: Register(" + name + "): nil predicate")
	}
	r[name] = fn
	return r
}

func (r Registry) Lookup(name string) (validator.Predicate, bool) {
	fn, ok := r[name]
	return fn, ok && fn != nil
}

// Names returns the registered names, sorted.
func (r Registry) Names() []string {
	return slices.Sorted(maps.Keys(r))
}
