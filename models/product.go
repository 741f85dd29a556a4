package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category codes of the catalogue
const (
	CategoryCaraVista   = "cara-vista"
	CategoryEstructural = "estructural"
	CategoryAdoquin     = "adoquin"
	CategoryThinBrick   = "thin-brick"
	CategoryRefractario = "refractario"
)

// Availability values shown on cards and spec sheets
const (
	AvailabilityImmediate = "Inmediata"
	AvailabilityOnOrder   = "Bajo pedido"
)

// Dimensions of a single piece in millimeters (largo, ancho, alto)
type Dimensions struct {
	L float64 `json:"L"`
	A float64 `json:"A"`
	H float64 `json:"H"`
}

// String formats the dimensions as "L × A × H"
func (d Dimensions) String() string {
	return fmt.Sprintf("%s × %s × %s", FormatNumber(d.L), FormatNumber(d.A), FormatNumber(d.H))
}

// Product represents a single catalogue product
type Product struct {
	Slug         string          `json:"slug"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Usage        string          `json:"usos"`
	Colors       []string        `json:"colores"`
	Textures     []string        `json:"texturas"`
	Dimensions   Dimensions      `json:"medidas"`
	Joint        float64         `json:"junta"`       // Recommended joint width (mm)
	Yield        float64         `json:"rendimiento"` // Pieces per square meter
	Mass         float64         `json:"masa"`        // kg
	Absorption   string          `json:"absorcion"`
	Strength     string          `json:"resistencia"`
	StrengthMPa  float64         `json:"mpa"`
	Density      string          `json:"densidad"`
	Availability string          `json:"disponibilidad"`
	UnitWeight   float64         `json:"peso_por_pieza"` // kg, same value as Mass
	Price        decimal.Decimal `json:"price"`
	Image        string          `json:"image"`
	Description  string          `json:"description"`
}

// HasColor reports whether the product is offered in the given color (case-insensitive)
func (p Product) HasColor(color string) bool {
	return containsFold(p.Colors, color)
}

// HasTexture reports whether the product is offered with the given texture (case-insensitive)
func (p Product) HasTexture(texture string) bool {
	return containsFold(p.Textures, texture)
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

// FormatNumber prints a float without trailing zeros (240 -> "240", 2.3 -> "2.3")
func FormatNumber(v float64) string {
	return decimal.NewFromFloat(v).String()
}
