package setupparam

import (
	"sort"
	"time"
)

// Inputs carries everything one calculation consumes: the upstream request
// record keyed by its documented external names, the operator-supplied values
// keyed by internal field keys, and an injectable clock for the one field
// that embeds the current date.
type Inputs struct {
	Request  map[string]any
	Operator map[string]any
	Now      func() time.Time // nil means time.Now
}

// Clock resolves the injected time source.
func (in Inputs) Clock() func() time.Time {
	if in.Now == nil {
		return time.Now
	}
	return in.Now
}

// CalcFunc is the entry point of one SP variant's calculation engine. It is
// deterministic apart from the injected clock and produces a finalized Result
// covering every catalog field.
type CalcFunc func(in Inputs) (*Result, error)

// Definition pairs an SP variant's catalog with its calculation entry point
// and the group headings its documentation renders with.
type Definition struct {
	Catalog     *Catalog
	Calculate   CalcFunc
	GroupTitles map[string]string
}

// TypeRegistry dispatches among SP type variants by name. Adding a variant
// means registering a new (catalog, calculate) pair; the engine itself never
// changes. Names can also be declared without an implementation, so callers
// see a stable "not yet supported" state for planned variants.
type TypeRegistry struct {
	defs     map[string]Definition
	declared map[string]bool
}

// NewTypeRegistry creates an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		defs:     make(map[string]Definition),
		declared: make(map[string]bool),
	}
}

// Register adds a concrete SP variant. Re-registering a name is a programming
// error reported as *CatalogError.
func (r *TypeRegistry) Register(name string, def Definition) error {
	if _, dup := r.defs[name]; dup {
		return &CatalogError{Catalog: name, Reason: "SP type registered twice"}
	}
	r.defs[name] = def
	return nil
}

// MustRegister is Register that panics on error, for static wiring at startup.
func (r *TypeRegistry) MustRegister(name string, def Definition) {
	if err := r.Register(name, def); err != nil {
		panic(err)
	}
}

// Declare names an SP variant that is planned but has no implementation yet.
// Resolving it yields *UnsupportedTypeError rather than an unknown-name error.
func (r *TypeRegistry) Declare(name string) {
	r.declared[name] = true
}

// Resolve returns the definition for an SP type name, or
// *UnsupportedTypeError when the name has no concrete implementation.
func (r *TypeRegistry) Resolve(name string) (Definition, error) {
	def, ok := r.defs[name]
	if !ok {
		return Definition{}, &UnsupportedTypeError{Type: name}
	}
	return def, nil
}

// Supported reports whether name resolves to a concrete implementation.
func (r *TypeRegistry) Supported(name string) bool {
	_, ok := r.defs[name]
	return ok
}

// Types lists every registered and declared name, sorted.
func (r *TypeRegistry) Types() []string {
	seen := make(map[string]bool, len(r.defs)+len(r.declared))
	var out []string
	for name := range r.defs {
		seen[name] = true
		out = append(out, name)
	}
	for name := range r.declared {
		if !seen[name] {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
