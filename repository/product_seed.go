package repository

import (
	"github.com/shopspring/decimal"

	"sanchez-brick/models"
)

const placeholderImage = "assets/product-placeholder.png"

// SeedProducts returns the built-in catalogue
func SeedProducts() []models.Product {
	return []models.Product{
		{
			Slug:         "cara-vista-arena-premium",
			Name:         "Cara Vista Arena Premium",
			Category:     models.CategoryCaraVista,
			Usage:        "Fachadas exteriores e interiores",
			Colors:       []string{"Arena", "Tierra", "Canela"},
			Textures:     []string{"Liso", "Semirústico"},
			Dimensions:   models.Dimensions{L: 240, A: 115, H: 71},
			Joint:        10,
			Yield:        52,
			Mass:         2.3,
			Absorption:   "≤ 12",
			Strength:     "≥ 22",
			StrengthMPa:  22,
			Density:      "—",
			Availability: models.AvailabilityImmediate,
			UnitWeight:   2.3,
			Price:        decimal.RequireFromString("12.50"),
			Image:        placeholderImage,
			Description:  "Ladrillo cara vista de alta calidad con acabado liso o semirústico.",
		},
		{
			Slug:         "estructural-clasico",
			Name:         "Estructural Clásico",
			Category:     models.CategoryEstructural,
			Usage:        "Construcción de muros portantes",
			Colors:       []string{"Rojo"},
			Textures:     []string{"Rústico"},
			Dimensions:   models.Dimensions{L: 200, A: 100, H: 60},
			Joint:        12,
			Yield:        60,
			Mass:         3.1,
			Absorption:   "≤ 14",
			Strength:     "≥ 25",
			StrengthMPa:  25,
			Density:      "—",
			Availability: models.AvailabilityOnOrder,
			UnitWeight:   3.1,
			Price:        decimal.RequireFromString("10.00"),
			Image:        placeholderImage,
			Description:  "Ladrillo estructural robusto para muros resistentes.",
		},
		{
			Slug:         "adoquin-rustico",
			Name:         "Adoquín Rústico",
			Category:     models.CategoryAdoquin,
			Usage:        "Pavimentos exteriores, plazas y caminos",
			Colors:       []string{"Rojo", "Gris"},
			Textures:     []string{"Rústico"},
			Dimensions:   models.Dimensions{L: 200, A: 100, H: 50},
			Joint:        8,
			Yield:        45,
			Mass:         2.8,
			Absorption:   "≤ 10",
			Strength:     "≥ 18",
			StrengthMPa:  18,
			Density:      "—",
			Availability: models.AvailabilityImmediate,
			UnitWeight:   2.8,
			Price:        decimal.RequireFromString("8.50"),
			Image:        placeholderImage,
			Description:  "Adoquín de superficie rústica para caminos de alto tránsito.",
		},
		{
			Slug:         "thin-brick-toscano",
			Name:         "Thin Brick Toscano",
			Category:     models.CategoryThinBrick,
			Usage:        "Revestimientos ligeros en interiores y exteriores",
			Colors:       []string{"Terracota", "Café"},
			Textures:     []string{"Liso"},
			Dimensions:   models.Dimensions{L: 240, A: 70, H: 20},
			Joint:        8,
			Yield:        55,
			Mass:         1.2,
			Absorption:   "≤ 15",
			Strength:     "≥ 15",
			StrengthMPa:  15,
			Density:      "—",
			Availability: models.AvailabilityImmediate,
			UnitWeight:   1.2,
			Price:        decimal.RequireFromString("9.00"),
			Image:        placeholderImage,
			Description:  "Pieza delgada ideal para revestimientos ligeros y decorativos.",
		},
		{
			Slug:         "refractario-alta-temperatura",
			Name:         "Refractario Alta Temperatura",
			Category:     models.CategoryRefractario,
			Usage:        "Hornos, chimeneas y aplicaciones industriales",
			Colors:       []string{"Natural"},
			Textures:     []string{"Liso"},
			Dimensions:   models.Dimensions{L: 230, A: 114, H: 64},
			Joint:        5,
			Yield:        50,
			Mass:         3.5,
			Absorption:   "≤ 6",
			Strength:     "≥ 30",
			StrengthMPa:  30,
			Density:      "—",
			Availability: models.AvailabilityOnOrder,
			UnitWeight:   3.5,
			Price:        decimal.RequireFromString("15.00"),
			Image:        placeholderImage,
			Description:  "Ladrillo refractario resistente a temperaturas extremas.",
		},
	}
}
