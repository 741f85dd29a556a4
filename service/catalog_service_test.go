package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sanchez-brick/models"
)

func TestFilterProducts(t *testing.T) {
	repo := newSeedRepo(t)
	all := repo.List()

	tests := []struct {
		name   string
		filter models.CatalogFilter
		expect []string
	}{
		{
			name:   "no filters keeps store order",
			filter: models.CatalogFilter{},
			expect: []string{"cara-vista-arena-premium", "estructural-clasico", "adoquin-rustico", "thin-brick-toscano", "refractario-alta-temperatura"},
		},
		{
			name:   "category exact match",
			filter: models.CatalogFilter{Category: "adoquin"},
			expect: []string{"adoquin-rustico"},
		},
		{
			name:   "category is case-sensitive",
			filter: models.CatalogFilter{Category: "ADOQUIN"},
			expect: []string{},
		},
		{
			name:   "color ignores case",
			filter: models.CatalogFilter{Color: "rojo"},
			expect: []string{"estructural-clasico", "adoquin-rustico"},
		},
		{
			name:   "texture ignores case",
			filter: models.CatalogFilter{Texture: "LISO"},
			expect: []string{"cara-vista-arena-premium", "thin-brick-toscano", "refractario-alta-temperatura"},
		},
		{
			name:   "filters combine with AND",
			filter: models.CatalogFilter{Color: "Rojo", Texture: "Rústico", Category: "estructural"},
			expect: []string{"estructural-clasico"},
		},
		{
			name:   "no matches",
			filter: models.CatalogFilter{Color: "Azul"},
			expect: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, productSlugs(FilterProducts(all, tt.filter)))
		})
	}
}

func TestFilterProducts_OrderIndependent(t *testing.T) {
	repo := newSeedRepo(t)
	all := repo.List()

	combined := FilterProducts(all, models.CatalogFilter{Category: "adoquin", Color: "gris", Texture: "rústico"})

	byCategory := FilterProducts(all, models.CatalogFilter{Category: "adoquin"})
	thenColor := FilterProducts(byCategory, models.CatalogFilter{Color: "gris"})
	thenTexture := FilterProducts(thenColor, models.CatalogFilter{Texture: "rústico"})

	byTexture := FilterProducts(all, models.CatalogFilter{Texture: "rústico"})
	thenCategory := FilterProducts(byTexture, models.CatalogFilter{Category: "adoquin"})
	lastColor := FilterProducts(thenCategory, models.CatalogFilter{Color: "gris"})

	assert.Equal(t, productSlugs(combined), productSlugs(thenTexture))
	assert.Equal(t, productSlugs(combined), productSlugs(lastColor))
	assert.Equal(t, []string{"adoquin-rustico"}, productSlugs(combined))
}

func TestCatalogService_Facets(t *testing.T) {
	svc := NewCatalogService(newSeedRepo(t))

	options := svc.Facets()
	assert.Len(t, options, 5)
	assert.Equal(t, FacetOption{Value: "adoquin", Label: "Adoquín"}, options[2])
}
