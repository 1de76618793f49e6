package setupparam

import (
	"fmt"
	"strings"
)

// RenderCatalogMarkdown renders a catalog as grouped markdown reference
// documentation: one section per group, fields sorted by display name, each
// with key, unit, type, source, description, dependency list, and formula.
// groupTitles maps group identifiers to section headings; groups without a
// title fall back to the raw identifier.
func RenderCatalogMarkdown(c *Catalog, groupTitles map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s setup parameters\n", c.Name())

	currentGroup := ""
	first := true
	for _, f := range c.Fields() {
		if f.Group != currentGroup || first {
			currentGroup = f.Group
			first = false
			title := groupTitles[currentGroup]
			if title == "" {
				title = currentGroup
			}
			fmt.Fprintf(&b, "\n## %s\n\n", title)
		}

		fmt.Fprintf(&b, "- **%s**\n", f.DisplayName)
		fmt.Fprintf(&b, "  - key: `%s`\n", f.Key)
		if f.Unit != "" {
			fmt.Fprintf(&b, "  - unit: %s\n", f.Unit)
		}
		fmt.Fprintf(&b, "  - type: %s\n", f.DataType)
		fmt.Fprintf(&b, "  - source: %s\n", f.Source)
		if f.Important {
			b.WriteString("  - operator attention: high\n")
		}
		if f.Description != "" {
			fmt.Fprintf(&b, "  - description: %s\n", f.Description)
		}
		if len(f.DependsOn) == 0 {
			b.WriteString("  - depends on: none (raw input or fixed value)\n")
		} else {
			deps := make([]string, len(f.DependsOn))
			for i, d := range f.DependsOn {
				deps[i] = "`" + d + "`"
			}
			fmt.Fprintf(&b, "  - depends on: %s\n", strings.Join(deps, ", "))
		}
		if f.FormulaText != "" {
			fmt.Fprintf(&b, "  - formula: %s\n", f.FormulaText)
		}
	}
	return b.String()
}
