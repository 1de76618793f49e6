package setupparam

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCatalogMarkdown(t *testing.T) {
	c := MustCatalog("test", testFields())
	doc := RenderCatalogMarkdown(c, map[string]string{
		"input":  "Inputs",
		"output": "Outputs",
	})

	assert.True(t, strings.HasPrefix(doc, "# test setup parameters\n"))
	assert.Contains(t, doc, "## Inputs")
	assert.Contains(t, doc, "## Outputs")

	// inputs section comes before outputs (group sort order)
	require.Less(t, strings.Index(doc, "## Inputs"), strings.Index(doc, "## Outputs"))

	assert.Contains(t, doc, "- **Volume**")
	assert.Contains(t, doc, "  - key: `volume`")
	assert.Contains(t, doc, "  - depends on: `scale`, `conc`")
	assert.Contains(t, doc, "  - formula: Volume = Scale / Concentration.")

	// leaf fields state the no-dependency case explicitly
	assert.Contains(t, doc, "  - depends on: none (raw input or fixed value)")
}

func TestRenderCatalogMarkdown_FallsBackToGroupID(t *testing.T) {
	c := MustCatalog("test", testFields())
	doc := RenderCatalogMarkdown(c, nil)
	assert.Contains(t, doc, "## input")
	assert.Contains(t, doc, "## output")
}
