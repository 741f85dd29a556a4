package calculator

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanchez-brick/models"
)

func ptr(v float64) *float64 { return &v }

func TestGeometricYield(t *testing.T) {
	tests := []struct {
		name                  string
		length, height, joint float64
		expect                float64
	}{
		{"standard brick", 240, 71, 10, 48},
		{"paver", 200, 50, 8, 4 * 17},
		{"zero pitch", 0, 0, 0, 0},
		{"negative pitch", -20, 71, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, GeometricYield(tt.length, tt.height, tt.joint))
		})
	}
}

func TestResolveYield(t *testing.T) {
	tests := []struct {
		name   string
		in     models.CalculatorInput
		yield  float64
		source models.YieldSource
	}{
		{
			name:   "override wins over geometry",
			in:     models.CalculatorInput{Joint: 10, PieceLength: ptr(240), PieceHeight: ptr(71), YieldOverride: ptr(52)},
			yield:  52,
			source: models.YieldFromOverride,
		},
		{
			name:   "zero override falls through to geometry",
			in:     models.CalculatorInput{Joint: 10, PieceLength: ptr(240), PieceHeight: ptr(71), YieldOverride: ptr(0)},
			yield:  48,
			source: models.YieldFromGeometry,
		},
		{
			name:   "geometry needs a joint",
			in:     models.CalculatorInput{PieceLength: ptr(240), PieceHeight: ptr(71)},
			source: models.YieldNone,
		},
		{
			name:   "geometry needs a height",
			in:     models.CalculatorInput{Joint: 10, PieceLength: ptr(240)},
			source: models.YieldNone,
		},
		{
			name:   "nothing supplied",
			in:     models.CalculatorInput{},
			source: models.YieldNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yield, source := ResolveYield(tt.in)
			assert.Equal(t, tt.yield, yield)
			assert.Equal(t, tt.source, source)
		})
	}
}

func TestCalculate_GeometryScenario(t *testing.T) {
	e := NewEngine(0)
	out := e.Calculate(models.CalculatorInput{
		Area:           10,
		WastePercent:   10,
		Joint:          10,
		PalletCapacity: 400,
		PieceLength:    ptr(240),
		PieceHeight:    ptr(71),
	})

	require.True(t, out.Valid)
	assert.Equal(t, float64(48), out.Yield)
	assert.Equal(t, int64(528), out.TotalPieces)
	assert.Equal(t, int64(2), out.Pallets)
	assert.Nil(t, out.TotalWeight)
	assert.Nil(t, out.TotalCost)
}

func TestCalculate_OverrideScenario(t *testing.T) {
	e := NewEngine(0)
	out := e.Calculate(models.CalculatorInput{
		Area:          10,
		WastePercent:  10,
		Joint:         10,
		PieceLength:   ptr(240),
		PieceHeight:   ptr(71),
		YieldOverride: ptr(52),
	})

	require.True(t, out.Valid)
	assert.Equal(t, models.YieldFromOverride, out.YieldSource)
	assert.Equal(t, int64(572), out.TotalPieces)
	assert.Equal(t, int64(2), out.Pallets)
}

func TestCalculate_WeightAndCost(t *testing.T) {
	e := NewEngine(0)
	price := decimal.RequireFromString("12.5")
	out := e.Calculate(models.CalculatorInput{
		Area:          10,
		WastePercent:  10,
		YieldOverride: ptr(48),
		UnitWeight:    ptr(2.3),
		UnitPrice:     &price,
	})

	require.True(t, out.Valid)
	require.NotNil(t, out.TotalWeight)
	require.NotNil(t, out.TotalCost)
	assert.Equal(t, "1214.4", out.TotalWeight.String())
	assert.Equal(t, "6600.00", out.TotalCost.StringFixed(2))
}

func TestCalculate_ZeroWasteIsNoOp(t *testing.T) {
	e := NewEngine(0)
	out := e.Calculate(models.CalculatorInput{Area: 12.5, YieldOverride: ptr(52)})

	require.True(t, out.Valid)
	assert.Equal(t, int64(650), out.TotalPieces)
	assert.Equal(t, int64(2), out.Pallets)
}

func TestCalculate_RoundsPiecesUp(t *testing.T) {
	e := NewEngine(0)
	out := e.Calculate(models.CalculatorInput{Area: 1.01, YieldOverride: ptr(52), WastePercent: 5})

	require.True(t, out.Valid)
	// 1.01 * 52 = 52.52, * 1.05 = 55.146
	assert.Equal(t, int64(56), out.TotalPieces)
	assert.Equal(t, int64(1), out.Pallets)
}

func TestCalculate_NoYieldIsInvalid(t *testing.T) {
	e := NewEngine(0)
	price := decimal.NewFromInt(10)
	out := e.Calculate(models.CalculatorInput{UnitPrice: &price, UnitWeight: ptr(2)})

	assert.False(t, out.Valid)
	assert.Nil(t, out.TotalCost)
	assert.Nil(t, out.TotalWeight)

	view := FormatResult(out)
	assert.Equal(t, "-", view.Pieces)
	assert.Equal(t, "-", view.Pallets)
	assert.Equal(t, "—", view.Weight)
	assert.Equal(t, "—", view.Cost)
}

func TestCalculate_DefaultPalletCapacity(t *testing.T) {
	e := NewEngine(0)
	require.Equal(t, models.DefaultPalletCapacity, e.DefaultPalletCapacity())

	out := e.Calculate(models.CalculatorInput{Area: 10, YieldOverride: ptr(81), PalletCapacity: 0})
	assert.Equal(t, int64(810), out.TotalPieces)
	assert.Equal(t, int64(3), out.Pallets)

	custom := NewEngine(500)
	out = custom.Calculate(models.CalculatorInput{Area: 10, YieldOverride: ptr(81)})
	assert.Equal(t, int64(2), out.Pallets)
}

func TestCalculate_Idempotent(t *testing.T) {
	e := NewEngine(0)
	price := decimal.RequireFromString("9.99")
	in := models.CalculatorInput{
		Area:         33.3,
		WastePercent: 7,
		Joint:        8,
		PieceLength:  ptr(200),
		PieceHeight:  ptr(50),
		UnitPrice:    &price,
		UnitWeight:   ptr(2.8),
	}

	first := e.Calculate(in)
	second := e.Calculate(in)
	assert.Equal(t, first, second)
	assert.Equal(t, FormatResult(first), FormatResult(second))
}

func TestParseForm(t *testing.T) {
	e := NewEngine(0)
	in := e.ParseForm(models.CalculatorForm{
		Area:           "10",
		WastePercent:   "diez",
		Joint:          " 10 ",
		UnitPrice:      "",
		PalletCapacity: "abc",
		PieceLength:    "240mm",
		PieceHeight:    "71",
		YieldOverride:  "0",
		UnitWeight:     "2.3",
	})

	assert.Equal(t, float64(10), in.Area)
	assert.Equal(t, float64(0), in.WastePercent)
	assert.Equal(t, float64(10), in.Joint)
	assert.Nil(t, in.UnitPrice)
	assert.Equal(t, 400, in.PalletCapacity)
	require.NotNil(t, in.PieceLength)
	assert.Equal(t, float64(240), *in.PieceLength)
	assert.Nil(t, in.YieldOverride)
	require.NotNil(t, in.UnitWeight)
	assert.Equal(t, 2.3, *in.UnitWeight)
}

func TestParseForm_NegativePalletUsesDefault(t *testing.T) {
	e := NewEngine(0)
	in := e.ParseForm(models.CalculatorForm{PalletCapacity: "-5", UnitPrice: "12.50"})

	assert.Equal(t, 400, in.PalletCapacity)
	require.NotNil(t, in.UnitPrice)
	assert.Equal(t, "12.5", in.UnitPrice.String())
}

func TestParseForm_HugePalletCapacitySaturates(t *testing.T) {
	e := NewEngine(0)
	in := e.ParseForm(models.CalculatorForm{
		Area:           "10",
		WastePercent:   "10",
		YieldOverride:  "48",
		PalletCapacity: "99999999999999999999",
	})

	assert.Equal(t, math.MaxInt, in.PalletCapacity)
	out := e.Calculate(in)
	assert.Equal(t, int64(528), out.TotalPieces)
	assert.Equal(t, int64(1), out.Pallets)
}

func TestFormatResult(t *testing.T) {
	e := NewEngine(0)
	in := e.ParseForm(models.CalculatorForm{
		Area:          "10",
		WastePercent:  "10",
		YieldOverride: "48",
		UnitWeight:    "2.3",
		UnitPrice:     "12.5",
	})

	view := FormatResult(e.Calculate(in))
	assert.Equal(t, models.CalculatorResultView{
		Pieces:  "528",
		Pallets: "2",
		Weight:  "1214.4 kg",
		Cost:    "$6600.00",
	}, view)
}

func TestFormatResult_PriceAbsent(t *testing.T) {
	e := NewEngine(0)
	view := FormatResult(e.Calculate(e.ParseForm(models.CalculatorForm{Area: "10", YieldOverride: "52"})))

	assert.Equal(t, "520", view.Pieces)
	assert.Equal(t, "—", view.Cost)
	assert.NotContains(t, view.Cost, "$")
}

func TestPrefill(t *testing.T) {
	product := &models.Product{
		Slug:       "cara-vista-arena-premium",
		Dimensions: models.Dimensions{L: 240, A: 115, H: 71},
		Yield:      52,
		UnitWeight: 2.3,
	}

	form := Prefill(models.CalculatorForm{UnitWeight: "3"}, product)
	assert.Equal(t, "52", form.YieldOverride)
	assert.Equal(t, "3", form.UnitWeight)
	assert.Equal(t, "240", form.PieceLength)
	assert.Equal(t, "71", form.PieceHeight)

	empty := Prefill(models.CalculatorForm{}, nil)
	assert.Equal(t, models.CalculatorForm{}, empty)
}
