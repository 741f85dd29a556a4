package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"sanchez-brick/models"
)

// listSeparator joins color and texture arrays in the query so they scan into one string
const listSeparator = "|"

// LoadProductsFromDB reads the catalogue from the products table, ordered by position.
// The result is meant to be frozen with NewProductRepository.
func LoadProductsFromDB(ctx context.Context, conn *sql.DB) ([]models.Product, error) {
	log.Info().Msg("🔍 LoadProductsFromDB: Fetching catalogue from database")

	query := `
		SELECT
			slug,
			name,
			category,
			COALESCE(usos, '') as usos,
			array_to_string(colores, '` + listSeparator + `') as colores,
			array_to_string(texturas, '` + listSeparator + `') as texturas,
			largo_mm,
			ancho_mm,
			alto_mm,
			junta_mm,
			rendimiento,
			masa_kg,
			COALESCE(absorcion, '') as absorcion,
			COALESCE(resistencia, '') as resistencia,
			COALESCE(mpa, 0) as mpa,
			COALESCE(densidad, '—') as densidad,
			disponibilidad,
			peso_por_pieza_kg,
			price,
			COALESCE(image, '') as image,
			COALESCE(description, '') as description
		FROM products
		WHERE is_active = true
		ORDER BY position ASC, slug ASC
	`

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("❌ Error querying products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		var colors, textures string

		err := rows.Scan(
			&p.Slug,
			&p.Name,
			&p.Category,
			&p.Usage,
			&colors,
			&textures,
			&p.Dimensions.L,
			&p.Dimensions.A,
			&p.Dimensions.H,
			&p.Joint,
			&p.Yield,
			&p.Mass,
			&p.Absorption,
			&p.Strength,
			&p.StrengthMPa,
			&p.Density,
			&p.Availability,
			&p.UnitWeight,
			&p.Price,
			&p.Image,
			&p.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		p.Colors = splitList(colors)
		p.Textures = splitList(textures)
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		log.Error().Err(err).Msg("❌ Error iterating products")
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	log.Info().Msgf("✓ Successfully fetched %d products", len(products))
	return products, nil
}

func splitList(joined string) []string {
	var out []string
	for _, part := range strings.Split(joined, listSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
