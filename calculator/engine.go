// Package calculator turns a covered area into piece, pallet, weight and cost estimates.
package calculator

import (
	"math"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"sanchez-brick/models"
	"sanchez-brick/utils"
)

// millimetersPerMeter is the side of the square meter the yield is packed into
const millimetersPerMeter = 1000.0

// maxPieces bounds the piece count so it always fits an int64
const maxPieces = 1_000_000_000_000_000

// Engine runs calculator estimates
type Engine struct {
	defaultPalletCapacity int
}

// NewEngine creates an Engine. A non-positive palletCapacity uses models.DefaultPalletCapacity.
func NewEngine(palletCapacity int) *Engine {
	if palletCapacity <= 0 {
		palletCapacity = models.DefaultPalletCapacity
	}
	return &Engine{defaultPalletCapacity: palletCapacity}
}

// DefaultPalletCapacity returns the capacity used when the form leaves it blank
func (e *Engine) DefaultPalletCapacity() int {
	return e.defaultPalletCapacity
}

// GeometricYield estimates pieces per square meter from piece length, height and joint width.
// Each row and column is rounded down to whole pieces before multiplying.
// Returns 0 when the geometry cannot hold a piece.
func GeometricYield(length, height, joint float64) float64 {
	rowPitch := height + joint
	colPitch := length + joint
	if rowPitch <= 0 || colPitch <= 0 {
		return 0
	}
	rows := math.Floor(millimetersPerMeter / rowPitch)
	cols := math.Floor(millimetersPerMeter / colPitch)
	return math.Floor(rows * cols)
}

// ResolveYield picks the yield to use: a non-zero override first, then the piece
// geometry when length, height and joint are all given, otherwise none.
func ResolveYield(in models.CalculatorInput) (float64, models.YieldSource) {
	if in.YieldOverride != nil && *in.YieldOverride != 0 {
		return *in.YieldOverride, models.YieldFromOverride
	}
	if in.PieceLength != nil && in.PieceHeight != nil && in.Joint != 0 {
		if y := GeometricYield(*in.PieceLength, *in.PieceHeight, in.Joint); y > 0 {
			return y, models.YieldFromGeometry
		}
	}
	return 0, models.YieldNone
}

// Calculate derives pieces, pallets, weight and cost. It is a pure function of in.
func (e *Engine) Calculate(in models.CalculatorInput) models.CalculatorOutput {
	yield, source := ResolveYield(in)
	out := models.CalculatorOutput{
		Yield:       yield,
		YieldSource: source,
	}

	if yield == 0 || !finite(in.Area, in.WastePercent, yield) {
		return out
	}

	grossPieces := decimal.NewFromFloat(in.Area).Mul(decimal.NewFromFloat(yield))
	wasteFactor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(in.WastePercent).Div(decimal.NewFromInt(100)))
	totalPieces := grossPieces.Mul(wasteFactor).Ceil()
	if totalPieces.Abs().GreaterThan(decimal.NewFromInt(maxPieces)) {
		return out
	}

	capacity := in.PalletCapacity
	if capacity <= 0 {
		capacity = e.defaultPalletCapacity
	}

	out.Valid = true
	out.TotalPieces = totalPieces.IntPart()
	out.Pallets = totalPieces.Div(decimal.NewFromInt(int64(capacity))).Ceil().IntPart()

	pieces := decimal.NewFromInt(out.TotalPieces)
	if in.UnitWeight != nil {
		weight := pieces.Mul(decimal.NewFromFloat(*in.UnitWeight)).Round(1)
		out.TotalWeight = &weight
	}
	if in.UnitPrice != nil {
		cost := pieces.Mul(*in.UnitPrice).Round(2)
		out.TotalCost = &cost
	}
	return out
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ParseForm coerces the raw form text into calculator input.
// Nothing here fails: unparseable values take the field's default.
func (e *Engine) ParseForm(form models.CalculatorForm) models.CalculatorInput {
	in := models.CalculatorInput{
		Area:           utils.ParseNumberOr(form.Area, 0),
		WastePercent:   utils.ParseNumberOr(form.WastePercent, 0),
		Joint:          utils.ParseNumberOr(form.Joint, 0),
		PalletCapacity: utils.ParseIntOr(form.PalletCapacity, e.defaultPalletCapacity),
		PieceLength:    utils.ParseOptionalNumber(form.PieceLength),
		PieceHeight:    utils.ParseOptionalNumber(form.PieceHeight),
		YieldOverride:  utils.ParseOptionalNumber(form.YieldOverride),
		UnitWeight:     utils.ParseOptionalNumber(form.UnitWeight),
	}
	if in.PalletCapacity <= 0 {
		log.Debug().Msgf("⚠️  Calculator: pallet capacity %q is not positive, using %d", form.PalletCapacity, e.defaultPalletCapacity)
		in.PalletCapacity = e.defaultPalletCapacity
	}
	if price := utils.ParseOptionalNumber(form.UnitPrice); price != nil {
		p := decimal.NewFromFloat(*price)
		in.UnitPrice = &p
	}
	return in
}

// Prefill fills the blank yield, unit weight, length and height fields from the product.
// Fields the user already typed are kept.
func Prefill(form models.CalculatorForm, product *models.Product) models.CalculatorForm {
	if product == nil {
		return form
	}
	if strings.TrimSpace(form.YieldOverride) == "" {
		form.YieldOverride = models.FormatNumber(product.Yield)
	}
	if strings.TrimSpace(form.UnitWeight) == "" {
		form.UnitWeight = models.FormatNumber(product.UnitWeight)
	}
	if strings.TrimSpace(form.PieceLength) == "" {
		form.PieceLength = models.FormatNumber(product.Dimensions.L)
	}
	if strings.TrimSpace(form.PieceHeight) == "" {
		form.PieceHeight = models.FormatNumber(product.Dimensions.H)
	}
	return form
}

// FormatResult renders the output into the four result slots.
// Pieces and pallets show "-" when invalid; weight and cost show "—" when absent.
func FormatResult(out models.CalculatorOutput) models.CalculatorResultView {
	view := models.CalculatorResultView{
		Pieces:  utils.PlaceholderCount,
		Pallets: utils.PlaceholderCount,
		Weight:  utils.FormatOptionalWeight(out.TotalWeight),
		Cost:    utils.FormatOptionalPrice(out.TotalCost),
	}
	if out.Valid {
		view.Pieces = decimal.NewFromInt(out.TotalPieces).String()
		view.Pallets = decimal.NewFromInt(out.Pallets).String()
	}
	return view
}
