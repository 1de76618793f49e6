package setupparam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLeadingNumber(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  *float64
	}{
		{"int with unit", "10 mM", Float(10.0)},
		{"no leading digits", "mM", nil},
		{"decimal glued to unit", "7.5mg/mL", Float(7.5)},
		{"leading sign", "-2.5 mL", Float(-2.5)},
		{"plus sign", "+3 eq", Float(3.0)},
		{"whitespace padding", "  8.5mg/mL ", Float(8.5)},
		{"empty string", "", nil},
		{"nil", nil, nil},
		{"sentinel", "N/A", nil},
		{"native float", 12.25, Float(12.25)},
		{"native int", 4, Float(4.0)},
		{"second dot stops the scan", "1.2.3", Float(1.2)},
		{"sign only", "-", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLeadingNumber(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestEnsureFloat(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  *float64
	}{
		{"float64", 1.5, Float(1.5)},
		{"int", 7, Float(7.0)},
		{"numeric string", "42", Float(42.0)},
		{"padded numeric string", "  3.25  ", Float(3.25)},
		{"unparseable string", "abc", nil},
		{"string with unit is rejected", "10 mM", nil},
		{"nil", nil, nil},
		{"bool", true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnsureFloat(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestSafeDiv(t *testing.T) {
	tests := []struct {
		name string
		num  *float64
		den  *float64
		want *float64
	}{
		{"normal division", Float(10), Float(4), Float(2.5)},
		{"absent numerator", nil, Float(4), nil},
		{"absent denominator", Float(10), nil, nil},
		{"zero denominator", Float(10), Float(0), nil},
		{"zero numerator", Float(0), Float(4), Float(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeDiv(tt.num, tt.den)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestSafeSum(t *testing.T) {
	got := SafeSum(Float(1), Float(2), Float(3.5))
	require.NotNil(t, got)
	assert.InDelta(t, 6.5, *got, 1e-9)

	assert.Nil(t, SafeSum(Float(1), nil, Float(3)))
	assert.Nil(t, SafeMul(nil, Float(2)))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name   string
		value  *float64
		digits int
		want   string
	}{
		{"absent renders sentinel", nil, 3, "N/A"},
		{"trailing zeros stripped", Float(5.0), 3, "5"},
		{"precision applied", Float(0.66666), 3, "0.667"},
		{"partial trailing zeros", Float(4.25), 3, "4.25"},
		{"negative", Float(-1.5), 2, "-1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.value, tt.digits))
		})
	}
}
