package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberOr(t *testing.T) {
	tests := []struct {
		raw    string
		def    float64
		expect float64
	}{
		{"10", 0, 10},
		{" 12.5 ", 0, 12.5},
		{"12.5 m2", 0, 12.5},
		{".5", 0, 0.5},
		{"-3", 0, -3},
		{"", 7, 7},
		{"abc", 7, 7},
		{"0", 7, 7},
		{"0.0", 7, 7},
		{"NaN", 7, 7},
		{"Inf", 7, 7},
		{"1e400", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expect, ParseNumberOr(tt.raw, tt.def))
		})
	}
}

func TestParseOptionalNumber(t *testing.T) {
	assert.Nil(t, ParseOptionalNumber(""))
	assert.Nil(t, ParseOptionalNumber("x"))
	assert.Nil(t, ParseOptionalNumber("0"))

	v := ParseOptionalNumber("2.3")
	require.NotNil(t, v)
	assert.Equal(t, 2.3, *v)
}

func TestParseIntOr(t *testing.T) {
	assert.Equal(t, 500, ParseIntOr("500", 400))
	assert.Equal(t, 400, ParseIntOr("400.9", 1))
	assert.Equal(t, 400, ParseIntOr("", 400))
	assert.Equal(t, 400, ParseIntOr("pallet", 400))
	assert.Equal(t, 400, ParseIntOr("0", 400))
	assert.Equal(t, -5, ParseIntOr("-5", 400))
}

func TestParseIntOr_OutOfRangeSaturates(t *testing.T) {
	assert.Equal(t, math.MaxInt, ParseIntOr("99999999999999999999", 400))
	assert.Equal(t, math.MaxInt, ParseIntOr("99999999999999999999.5 piezas", 400))
	assert.Equal(t, math.MinInt, ParseIntOr("-99999999999999999999", 400))
}
