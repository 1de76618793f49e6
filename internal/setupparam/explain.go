package setupparam

import (
	"fmt"
	"strings"
)

// Dependency is one direct upstream field of an explained field, with its
// current value from the same result snapshot.
type Dependency struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
	Unit        string `json:"unit,omitempty"`
	Value       string `json:"value"`
}

// Explanation describes how one field got its value: metadata, the formula
// text, and exactly one level of direct dependencies. Transitive chains are
// deliberately not expanded; the caller explains the next hop on demand.
type Explanation struct {
	Key          string       `json:"key"`
	DisplayName  string       `json:"display_name"`
	Unit         string       `json:"unit,omitempty"`
	Value        string       `json:"value"`
	Source       Source       `json:"source"`
	Description  string       `json:"description,omitempty"`
	FormulaText  string       `json:"formula,omitempty"`
	Dependencies []Dependency `json:"dependencies,omitempty"`
}

// Explain builds the explanation for key against a computed result. Unknown
// keys yield *UnknownFieldError.
func Explain(res *Result, key string) (*Explanation, error) {
	catalog := res.Catalog()
	meta, err := catalog.Describe(key)
	if err != nil {
		return nil, err
	}

	value, err := res.Value(key)
	if err != nil {
		return nil, err
	}

	exp := &Explanation{
		Key:         meta.Key,
		DisplayName: meta.DisplayName,
		Unit:        meta.Unit,
		Value:       value.Format(),
		Source:      meta.Source,
		Description: meta.Description,
		FormulaText: meta.FormulaText,
	}

	for _, depKey := range meta.DependsOn {
		depMeta, err := catalog.Describe(depKey)
		if err != nil {
			// validated at catalog construction, so this cannot happen
			return nil, err
		}
		depValue, err := res.Value(depKey)
		if err != nil {
			return nil, err
		}
		exp.Dependencies = append(exp.Dependencies, Dependency{
			Key:         depMeta.Key,
			DisplayName: depMeta.DisplayName,
			Unit:        depMeta.Unit,
			Value:       depValue.Format(),
		})
	}
	return exp, nil
}

// Render produces the multi-line text block shown by the UI collaborator.
func (e *Explanation) Render() string {
	var b strings.Builder

	name := e.DisplayName
	if e.Unit != "" {
		name = fmt.Sprintf("%s (%s)", name, e.Unit)
	}
	fmt.Fprintf(&b, "%s\n", name)
	fmt.Fprintf(&b, "  Value:  %s\n", e.Value)
	fmt.Fprintf(&b, "  Source: %s\n", e.Source)
	if e.Description != "" {
		fmt.Fprintf(&b, "  About:  %s\n", e.Description)
	}
	if e.FormulaText != "" {
		fmt.Fprintf(&b, "  Formula: %s\n", e.FormulaText)
	}

	if len(e.Dependencies) == 0 {
		b.WriteString("  Depends on: nothing (raw input or fixed constant)\n")
		return b.String()
	}

	b.WriteString("  Depends on:\n")
	for _, d := range e.Dependencies {
		if d.Unit != "" {
			fmt.Fprintf(&b, "    - %s (%s) = %s\n", d.DisplayName, d.Unit, d.Value)
		} else {
			fmt.Fprintf(&b, "    - %s = %s\n", d.DisplayName, d.Value)
		}
	}
	return b.String()
}
