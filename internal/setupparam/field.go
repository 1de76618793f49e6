// Package setupparam implements the Setup Parameter (SP) calculation core:
// a declarative field catalog, nil-propagating numeric helpers, an immutable
// per-invocation result snapshot, a one-level dependency explainer, and a
// registry dispatching among SP type variants.
//
// The package performs no I/O and holds no mutable shared state. Catalogs are
// validated once at construction and are safe for unsynchronized concurrent
// reads; every calculation produces an independently owned Result.
package setupparam

import (
	"sort"
	"strings"
)

// DataType describes the value type a field carries in a Result.
type DataType string

const (
	TypeFloat         DataType = "float"
	TypeOptionalFloat DataType = "optional_float"
	TypeString        DataType = "string"
	TypeEnum          DataType = "enum"
	TypeBool          DataType = "bool"
)

// Source tags where a field's value comes from. It is provenance metadata,
// not a computation rule.
type Source string

const (
	SourceRequest   Source = "request"    // carried from the upstream request record
	SourceUserInput Source = "user_input" // entered by the operator
	SourceDerived   Source = "derived"    // computed from other fields
	SourceFixed     Source = "fixed"      // protocol constant
)

// FieldMeta is the static descriptor for a single SP field.
type FieldMeta struct {
	Key         string   // unique within a catalog
	DisplayName string   // human-readable name shown by the UI collaborator
	Unit        string   // display unit, e.g. "mL", "mg/mL", "°C"
	DataType    DataType
	Source      Source
	Group       string   // display/organization bucket
	Important   bool     // display-emphasis flag, no computational role
	Description string
	DependsOn   []string // keys of direct upstream fields, same catalog
	FormulaText string   // human-readable formula, no computational role
}

// Catalog is a validated, read-only collection of field descriptors for one
// SP type. Construction fails with *CatalogError on duplicate keys, dangling
// DependsOn references, or dependency cycles.
type Catalog struct {
	name   string
	fields []FieldMeta
	byKey  map[string]int
}

// NewCatalog validates the descriptor list and builds a catalog. The input
// slice is copied; the catalog never mutates after construction.
func NewCatalog(name string, fields []FieldMeta) (*Catalog, error) {
	c := &Catalog{
		name:   name,
		fields: append([]FieldMeta(nil), fields...),
		byKey:  make(map[string]int, len(fields)),
	}

	for i, f := range c.fields {
		if f.Key == "" {
			return nil, &CatalogError{Catalog: name, Reason: "field with empty key"}
		}
		if _, dup := c.byKey[f.Key]; dup {
			return nil, &CatalogError{Catalog: name, Reason: "duplicate key " + f.Key}
		}
		c.byKey[f.Key] = i
	}

	for _, f := range c.fields {
		for _, dep := range f.DependsOn {
			if _, ok := c.byKey[dep]; !ok {
				return nil, &CatalogError{
					Catalog: name,
					Reason:  "field " + f.Key + " depends on unknown key " + dep,
				}
			}
		}
	}

	if key, cyclic := c.findCycle(); cyclic {
		return nil, &CatalogError{Catalog: name, Reason: "dependency cycle through " + key}
	}
	return c, nil
}

// MustCatalog is NewCatalog that panics on error. Catalogs are static
// literals, so a validation failure is a programming error caught at startup.
func MustCatalog(name string, fields []FieldMeta) *Catalog {
	c, err := NewCatalog(name, fields)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the catalog's SP type name.
func (c *Catalog) Name() string { return c.name }

// Len returns the number of descriptors in the catalog.
func (c *Catalog) Len() int { return len(c.fields) }

// Has reports whether key is declared in the catalog.
func (c *Catalog) Has(key string) bool {
	_, ok := c.byKey[key]
	return ok
}

// Describe returns the descriptor for key, or *UnknownFieldError.
func (c *Catalog) Describe(key string) (*FieldMeta, error) {
	i, ok := c.byKey[key]
	if !ok {
		return nil, &UnknownFieldError{Catalog: c.name, Key: key}
	}
	return &c.fields[i], nil
}

// Fields returns all descriptors ordered by group, then display name. The
// ordering is stable across calls; the returned slice is a copy.
func (c *Catalog) Fields() []FieldMeta {
	out := append([]FieldMeta(nil), c.fields...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Group != out[j].Group {
			return out[i].Group < out[j].Group
		}
		return strings.ToLower(out[i].DisplayName) < strings.ToLower(out[j].DisplayName)
	})
	return out
}

// ListByGroup returns the descriptors of one group ordered by display name.
func (c *Catalog) ListByGroup(group string) []FieldMeta {
	var out []FieldMeta
	for _, f := range c.Fields() {
		if f.Group == group {
			out = append(out, f)
		}
	}
	return out
}

// declared returns descriptors in declaration order, used by Result.Items to
// keep the catalog literal's layout for display.
func (c *Catalog) declared() []FieldMeta { return c.fields }

// findCycle walks the DependsOn graph and returns a key on a cycle, if any.
func (c *Catalog) findCycle() (string, bool) {
	const (
		white = 0 // unvisited
		gray  = 1 // on the current path
		black = 2 // done
	)
	state := make(map[string]int, len(c.fields))

	var visit func(key string) (string, bool)
	visit = func(key string) (string, bool) {
		switch state[key] {
		case gray:
			return key, true
		case black:
			return "", false
		}
		state[key] = gray
		meta := c.fields[c.byKey[key]]
		for _, dep := range meta.DependsOn {
			if k, cyclic := visit(dep); cyclic {
				return k, true
			}
		}
		state[key] = black
		return "", false
	}

	for _, f := range c.fields {
		if k, cyclic := visit(f.Key); cyclic {
			return k, true
		}
	}
	return "", false
}
