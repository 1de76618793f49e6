package setupparam

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplain_DerivedField(t *testing.T) {
	res := fullResult(t)

	exp, err := Explain(res, "volume")
	require.NoError(t, err)

	assert.Equal(t, "Volume", exp.DisplayName)
	assert.Equal(t, "mL", exp.Unit)
	assert.Equal(t, "5", exp.Value)
	assert.Equal(t, SourceDerived, exp.Source)
	assert.Equal(t, "Volume = Scale / Concentration.", exp.FormulaText)

	// exactly the declared direct dependencies, in declared order, no more
	require.Len(t, exp.Dependencies, 2)
	assert.Equal(t, "scale", exp.Dependencies[0].Key)
	assert.Equal(t, "100", exp.Dependencies[0].Value)
	assert.Equal(t, "conc", exp.Dependencies[1].Key)
	assert.Equal(t, "20", exp.Dependencies[1].Value)
}

func TestExplain_InputFieldHasNoDependencies(t *testing.T) {
	res := fullResult(t)

	exp, err := Explain(res, "scale")
	require.NoError(t, err)
	assert.Empty(t, exp.Dependencies)

	text := exp.Render()
	assert.Contains(t, text, "raw input or fixed constant")
}

func TestExplain_UnknownKey(t *testing.T) {
	res := fullResult(t)

	_, err := Explain(res, "ghost")
	var unknown *UnknownFieldError
	require.ErrorAs(t, err, &unknown)
}

func TestExplanation_Render(t *testing.T) {
	res := fullResult(t)

	exp, err := Explain(res, "volume")
	require.NoError(t, err)
	text := exp.Render()

	assert.True(t, strings.HasPrefix(text, "Volume (mL)"))
	assert.Contains(t, text, "Value:  5")
	assert.Contains(t, text, "Source: derived")
	assert.Contains(t, text, "Formula: Volume = Scale / Concentration.")
	assert.Contains(t, text, "- Scale (mg) = 100")
	assert.Contains(t, text, "- Concentration (mg/mL) = 20")
	// one level only: nothing about transitive upstreams of the deps
	assert.Equal(t, 2, strings.Count(text, "    - "))
}
