package setupparam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testFields builds a small valid catalog literal for registry-level tests.
func testFields() []FieldMeta {
	return []FieldMeta{
		{Key: "scale", DisplayName: "Scale", Unit: "mg", DataType: TypeFloat, Source: SourceRequest, Group: "input"},
		{Key: "conc", DisplayName: "Concentration", Unit: "mg/mL", DataType: TypeFloat, Source: SourceRequest, Group: "input"},
		{
			Key: "volume", DisplayName: "Volume", Unit: "mL", DataType: TypeFloat,
			Source: SourceDerived, Group: "output",
			DependsOn:   []string{"scale", "conc"},
			FormulaText: "Volume = Scale / Concentration.",
			Description: "Stock volume to add.",
		},
		{Key: "temp", DisplayName: "Temperature", Unit: "°C", DataType: TypeFloat, Source: SourceFixed, Group: "output"},
	}
}

func TestNewCatalog_Valid(t *testing.T) {
	c, err := NewCatalog("test", testFields())
	require.NoError(t, err)
	assert.Equal(t, "test", c.Name())
	assert.Equal(t, 4, c.Len())
	assert.True(t, c.Has("volume"))
	assert.False(t, c.Has("missing"))
}

func TestNewCatalog_DuplicateKey(t *testing.T) {
	fields := append(testFields(), FieldMeta{Key: "scale", DisplayName: "Scale again"})
	_, err := NewCatalog("test", fields)

	var catErr *CatalogError
	require.ErrorAs(t, err, &catErr)
	assert.Contains(t, catErr.Reason, "duplicate key scale")
}

func TestNewCatalog_DanglingDependency(t *testing.T) {
	fields := testFields()
	fields[2].DependsOn = []string{"scale", "ghost"}
	_, err := NewCatalog("test", fields)

	var catErr *CatalogError
	require.ErrorAs(t, err, &catErr)
	assert.Contains(t, catErr.Reason, "unknown key ghost")
}

func TestNewCatalog_Cycle(t *testing.T) {
	fields := []FieldMeta{
		{Key: "a", DisplayName: "A", DependsOn: []string{"b"}},
		{Key: "b", DisplayName: "B", DependsOn: []string{"c"}},
		{Key: "c", DisplayName: "C", DependsOn: []string{"a"}},
	}
	_, err := NewCatalog("test", fields)

	var catErr *CatalogError
	require.ErrorAs(t, err, &catErr)
	assert.Contains(t, catErr.Reason, "cycle")
}

func TestCatalog_Describe(t *testing.T) {
	c := MustCatalog("test", testFields())

	meta, err := c.Describe("volume")
	require.NoError(t, err)
	assert.Equal(t, "Volume", meta.DisplayName)
	assert.Equal(t, []string{"scale", "conc"}, meta.DependsOn)

	_, err = c.Describe("missing")
	var unknown *UnknownFieldError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "missing", unknown.Key)
	assert.Equal(t, "test", unknown.Catalog)
}

func TestCatalog_Ordering(t *testing.T) {
	c := MustCatalog("test", testFields())

	// Fields sorts by group, then display name; "input" sorts before "output".
	all := c.Fields()
	keys := make([]string, len(all))
	for i, f := range all {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{"conc", "scale", "temp", "volume"}, keys)

	outputs := c.ListByGroup("output")
	require.Len(t, outputs, 2)
	assert.Equal(t, "temp", outputs[0].Key)
	assert.Equal(t, "volume", outputs[1].Key)

	assert.Empty(t, c.ListByGroup("nonexistent"))
}
