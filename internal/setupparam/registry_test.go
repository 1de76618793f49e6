package setupparam

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefinition(t *testing.T) Definition {
	t.Helper()
	c := MustCatalog("test", testFields())
	return Definition{
		Catalog: c,
		Calculate: func(in Inputs) (*Result, error) {
			res := NewResult(c)
			for _, f := range c.Fields() {
				require.NoError(t, res.Set(f.Key, Number(nil)))
			}
			return res, res.Finalize()
		},
	}
}

func TestTypeRegistry_Resolve(t *testing.T) {
	reg := NewTypeRegistry()
	reg.MustRegister("test", testDefinition(t))
	reg.Declare("planned")

	def, err := reg.Resolve("test")
	require.NoError(t, err)
	assert.NotNil(t, def.Calculate)
	assert.Equal(t, "test", def.Catalog.Name())
}

func TestTypeRegistry_UnsupportedType(t *testing.T) {
	reg := NewTypeRegistry()
	reg.MustRegister("test", testDefinition(t))
	reg.Declare("planned")

	// declared placeholder and a completely unknown name both surface the
	// typed unsupported error, and no partial result
	for _, name := range []string{"planned", "DAR4"} {
		def, err := reg.Resolve(name)
		var unsupported *UnsupportedTypeError
		require.ErrorAs(t, err, &unsupported, name)
		assert.Equal(t, name, unsupported.Type)
		assert.Nil(t, def.Calculate)
		assert.Nil(t, def.Catalog)
	}
}

func TestTypeRegistry_DuplicateRegistration(t *testing.T) {
	reg := NewTypeRegistry()
	def := testDefinition(t)
	require.NoError(t, reg.Register("test", def))

	err := reg.Register("test", def)
	var catErr *CatalogError
	assert.ErrorAs(t, err, &catErr)
}

func TestTypeRegistry_Types(t *testing.T) {
	reg := NewTypeRegistry()
	reg.MustRegister("test", testDefinition(t))
	reg.Declare("planned")
	reg.Declare("another")

	assert.Equal(t, []string{"another", "planned", "test"}, reg.Types())
	assert.True(t, reg.Supported("test"))
	assert.False(t, reg.Supported("planned"))
}

func TestInputs_Clock(t *testing.T) {
	fixed := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	in := Inputs{Now: func() time.Time { return fixed }}
	assert.Equal(t, fixed, in.Clock()())

	// nil falls back to the wall clock
	assert.WithinDuration(t, time.Now(), Inputs{}.Clock()(), time.Minute)
}
