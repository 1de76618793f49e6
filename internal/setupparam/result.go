package setupparam

import "strconv"

// displayDigits is the fixed decimal precision for numeric display values.
const displayDigits = 3

// ValueKind discriminates the typed payload of a Value.
type ValueKind int

const (
	KindNumber ValueKind = iota // float and optional-float fields
	KindString                  // string and enum fields
	KindBool
)

// Value is one computed field value. Numeric values carry an optional float;
// an absent number renders as the "N/A" sentinel.
type Value struct {
	kind ValueKind
	num  *float64
	str  string
	b    bool
}

// Number wraps an optional float, preserving absence.
func Number(v *float64) Value { return Value{kind: KindNumber, num: v} }

// Num wraps a present float literal.
func Num(v float64) Value { return Value{kind: KindNumber, num: Float(v)} }

// Str wraps a string or enum value.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Bool wraps a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind returns the value's type discriminator.
func (v Value) Kind() ValueKind { return v.kind }

// Float returns the numeric payload, nil for absent or non-numeric values.
func (v Value) Float() *float64 {
	if v.kind != KindNumber {
		return nil
	}
	return v.num
}

// Absent reports whether a numeric value carries no number.
func (v Value) Absent() bool { return v.kind == KindNumber && v.num == nil }

// Native returns the payload as a plain Go value for serialization: float64
// or nil for numbers, string for strings and enums, bool for booleans.
func (v Value) Native() any {
	switch v.kind {
	case KindNumber:
		if v.num == nil {
			return nil
		}
		return *v.num
	case KindBool:
		return v.b
	default:
		return v.str
	}
}

// Format renders the value for display: numbers at fixed precision with the
// "N/A" sentinel for absence, other types in their natural string form.
func (v Value) Format() string {
	switch v.kind {
	case KindNumber:
		return FormatNumber(v.num, displayDigits)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.str
	}
}

// Result is the snapshot of one calculation: a value for every descriptor in
// the active catalog. It is built by a CalcFunc, sealed with Finalize, and
// read-only afterward; each invocation produces an independent Result.
type Result struct {
	catalog *Catalog
	values  map[string]Value
}

// NewResult creates an empty result bound to catalog.
func NewResult(catalog *Catalog) *Result {
	return &Result{
		catalog: catalog,
		values:  make(map[string]Value, catalog.Len()),
	}
}

// Catalog returns the catalog this result was computed against.
func (r *Result) Catalog() *Catalog { return r.catalog }

// Set stores the value for key. Keys outside the catalog are rejected with
// *UnknownFieldError.
func (r *Result) Set(key string, v Value) error {
	if !r.catalog.Has(key) {
		return &UnknownFieldError{Catalog: r.catalog.Name(), Key: key}
	}
	r.values[key] = v
	return nil
}

// Finalize verifies the result covers every catalog descriptor exactly once.
// A CalcFunc calls it before returning; a failure means the calculation left
// a declared field unset.
func (r *Result) Finalize() error {
	for _, f := range r.catalog.declared() {
		if _, ok := r.values[f.Key]; !ok {
			return &CatalogError{
				Catalog: r.catalog.Name(),
				Reason:  "calculation left field " + f.Key + " unset",
			}
		}
	}
	return nil
}

// Value returns the typed value for key, or *UnknownFieldError.
func (r *Result) Value(key string) (Value, error) {
	if !r.catalog.Has(key) {
		return Value{}, &UnknownFieldError{Catalog: r.catalog.Name(), Key: key}
	}
	return r.values[key], nil
}

// Float returns the numeric payload for key, nil when absent or non-numeric.
func (r *Result) Float(key string) *float64 {
	return r.values[key].Float()
}

// Display returns the formatted value for key, the "N/A" sentinel included.
func (r *Result) Display(key string) string {
	v, err := r.Value(key)
	if err != nil {
		return ""
	}
	return v.Format()
}

// Item pairs a descriptor with its computed value for display iteration.
type Item struct {
	Meta  FieldMeta
	Value Value
}

// Items returns every field with its value in catalog declaration order.
func (r *Result) Items() []Item {
	out := make([]Item, 0, r.catalog.Len())
	for _, f := range r.catalog.declared() {
		out = append(out, Item{Meta: f, Value: r.values[f.Key]})
	}
	return out
}
