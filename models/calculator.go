package models

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// DefaultPalletCapacity is used when the pallet capacity field is blank or invalid
const DefaultPalletCapacity = 400

// YieldSource tells where the resolved yield came from
type YieldSource string

const (
	YieldFromOverride YieldSource = "override"
	YieldFromGeometry YieldSource = "geometry"
	YieldNone         YieldSource = "none"
)

// CalculatorInput holds the parsed calculator form.
// Optional fields are nil when the user left them blank.
type CalculatorInput struct {
	Area           float64          `json:"area"`
	WastePercent   float64          `json:"merma"`
	Joint          float64          `json:"junta"`
	UnitPrice      *decimal.Decimal `json:"precio,omitempty"`
	PalletCapacity int              `json:"pallet"`
	PieceLength    *float64         `json:"largo,omitempty"`
	PieceHeight    *float64         `json:"alto,omitempty"`
	YieldOverride  *float64         `json:"rendimiento,omitempty"`
	UnitWeight     *float64         `json:"peso,omitempty"`
}

// CalculatorOutput holds the calculator results.
// Valid is false when no meaningful piece count could be computed.
type CalculatorOutput struct {
	Yield       float64          `json:"yield"`
	YieldSource YieldSource      `json:"yieldSource"`
	TotalPieces int64            `json:"totalPieces"`
	Pallets     int64            `json:"pallets"`
	Valid       bool             `json:"valid"`
	TotalWeight *decimal.Decimal `json:"totalWeight,omitempty"`
	TotalCost   *decimal.Decimal `json:"totalCost,omitempty"`
}

// CalculatorForm holds the raw text of every calculator field, as typed
type CalculatorForm struct {
	Area           string `json:"area"`
	WastePercent   string `json:"merma"`
	Joint          string `json:"junta"`
	UnitPrice      string `json:"precio"`
	PalletCapacity string `json:"pallet"`
	PieceLength    string `json:"largo"`
	PieceHeight    string `json:"alto"`
	YieldOverride  string `json:"rendimiento"`
	UnitWeight     string `json:"peso"`
}

// CalculatorResultView holds the display strings for the result slots
type CalculatorResultView struct {
	Pieces  string `json:"piezas"`
	Pallets string `json:"pallets"`
	Weight  string `json:"peso"`
	Cost    string `json:"costo"`
}

// CalculatorResponse is returned by the calculator API
type CalculatorResponse struct {
	Input   CalculatorInput      `json:"input"`
	Output  CalculatorOutput     `json:"output"`
	Display CalculatorResultView `json:"display"`
}

// FormValue is a calculator field as sent by an API client: a JSON string or number.
// Anything else (null, bool, arrays) decodes to "" so the field takes its default.
type FormValue string

// UnmarshalJSON implements json.Unmarshaler
func (v *FormValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case string:
		*v = FormValue(t)
	case json.Number:
		*v = FormValue(t.String())
	default:
		*v = ""
	}
	return nil
}

// UnmarshalJSON accepts every field as a string or a number
func (f *CalculatorForm) UnmarshalJSON(data []byte) error {
	var wire struct {
		Area           FormValue `json:"area"`
		WastePercent   FormValue `json:"merma"`
		Joint          FormValue `json:"junta"`
		UnitPrice      FormValue `json:"precio"`
		PalletCapacity FormValue `json:"pallet"`
		PieceLength    FormValue `json:"largo"`
		PieceHeight    FormValue `json:"alto"`
		YieldOverride  FormValue `json:"rendimiento"`
		UnitWeight     FormValue `json:"peso"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*f = CalculatorForm{
		Area:           string(wire.Area),
		WastePercent:   string(wire.WastePercent),
		Joint:          string(wire.Joint),
		UnitPrice:      string(wire.UnitPrice),
		PalletCapacity: string(wire.PalletCapacity),
		PieceLength:    string(wire.PieceLength),
		PieceHeight:    string(wire.PieceHeight),
		YieldOverride:  string(wire.YieldOverride),
		UnitWeight:     string(wire.UnitWeight),
	}
	return nil
}
