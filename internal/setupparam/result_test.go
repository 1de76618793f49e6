package setupparam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullResult(t *testing.T) *Result {
	t.Helper()
	c := MustCatalog("test", testFields())
	res := NewResult(c)
	require.NoError(t, res.Set("scale", Num(100)))
	require.NoError(t, res.Set("conc", Num(20)))
	require.NoError(t, res.Set("volume", Number(SafeDiv(Float(100), Float(20)))))
	require.NoError(t, res.Set("temp", Num(22)))
	require.NoError(t, res.Finalize())
	return res
}

func TestResult_SetUnknownKey(t *testing.T) {
	c := MustCatalog("test", testFields())
	res := NewResult(c)

	err := res.Set("ghost", Num(1))
	var unknown *UnknownFieldError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ghost", unknown.Key)
}

func TestResult_FinalizeRequiresFullCoverage(t *testing.T) {
	c := MustCatalog("test", testFields())
	res := NewResult(c)
	require.NoError(t, res.Set("scale", Num(100)))

	err := res.Finalize()
	var catErr *CatalogError
	require.ErrorAs(t, err, &catErr)
	assert.Contains(t, catErr.Reason, "unset")
}

func TestResult_Accessors(t *testing.T) {
	res := fullResult(t)

	v, err := res.Value("volume")
	require.NoError(t, err)
	require.NotNil(t, v.Float())
	assert.InDelta(t, 5.0, *v.Float(), 1e-9)
	assert.Equal(t, "5", v.Format())

	_, err = res.Value("ghost")
	var unknown *UnknownFieldError
	assert.ErrorAs(t, err, &unknown)

	items := res.Items()
	require.Len(t, items, res.Catalog().Len())
	assert.Equal(t, "scale", items[0].Meta.Key)
}

func TestValue_AbsentNumberDisplaysSentinel(t *testing.T) {
	v := Number(nil)
	assert.True(t, v.Absent())
	assert.Equal(t, "N/A", v.Format())
	assert.Nil(t, v.Native())
}

func TestValue_Kinds(t *testing.T) {
	assert.Equal(t, "clear", Str("clear").Format())
	assert.Equal(t, "clear", Str("clear").Native())
	assert.Equal(t, "true", Bool(true).Format())
	assert.Equal(t, true, Bool(true).Native())
	assert.Nil(t, Str("x").Float())
	assert.Equal(t, 2.5, Num(2.5).Native())
}
