package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanchez-brick/models"
)

func TestSeedProducts_FormAValidStore(t *testing.T) {
	repo, err := NewProductRepository(SeedProducts())
	require.NoError(t, err)

	list := repo.List()
	require.Len(t, list, 5)
	assert.Equal(t, "cara-vista-arena-premium", list[0].Slug)
	assert.Equal(t, "refractario-alta-temperatura", list[4].Slug)
}

func TestFindBySlug(t *testing.T) {
	repo, err := NewProductRepository(SeedProducts())
	require.NoError(t, err)

	p, ok := repo.FindBySlug("adoquin-rustico")
	require.True(t, ok)
	assert.Equal(t, "Adoquín Rústico", p.Name)
	assert.Equal(t, []string{"Rojo", "Gris"}, p.Colors)

	_, ok = repo.FindBySlug("no-existe")
	assert.False(t, ok)

	_, ok = repo.FindBySlug("")
	assert.False(t, ok)
}

func TestStoreIsImmutable(t *testing.T) {
	products := SeedProducts()
	repo, err := NewProductRepository(products)
	require.NoError(t, err)

	products[0].Name = "changed"
	products[0].Colors[0] = "changed"

	list := repo.List()
	list[1].Colors[0] = "changed"

	p, ok := repo.FindBySlug("cara-vista-arena-premium")
	require.True(t, ok)
	p.Textures[0] = "changed"

	again := repo.List()
	assert.Equal(t, "Cara Vista Arena Premium", again[0].Name)
	assert.Equal(t, "Arena", again[0].Colors[0])
	assert.Equal(t, "Rojo", again[1].Colors[0])
	assert.Equal(t, "Liso", again[0].Textures[0])
}

func TestNewProductRepository_RejectsDuplicates(t *testing.T) {
	products := SeedProducts()
	products[2].Slug = products[0].Slug

	_, err := NewProductRepository(products)
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestNewProductRepository_RejectsIncompleteProducts(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
	}{
		{"empty slug", models.Product{Name: "x", Colors: []string{"a"}, Textures: []string{"b"}}},
		{"no colors", models.Product{Slug: "x", Textures: []string{"b"}}},
		{"no textures", models.Product{Slug: "x", Colors: []string{"a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProductRepository([]models.Product{tt.product})
			assert.ErrorIs(t, err, ErrInvalidProduct)
		})
	}
}

func TestFacets(t *testing.T) {
	repo, err := NewProductRepository(SeedProducts())
	require.NoError(t, err)

	facets := repo.Facets()
	assert.Equal(t, []string{"cara-vista", "estructural", "adoquin", "thin-brick", "refractario"}, facets.Categories)
	assert.Equal(t, []string{"Arena", "Tierra", "Canela", "Rojo", "Gris", "Terracota", "Café", "Natural"}, facets.Colors)
	assert.Equal(t, []string{"Liso", "Semirústico", "Rústico"}, facets.Textures)
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name   string
		joined string
		expect []string
	}{
		{"single value", "Rojo", []string{"Rojo"}},
		{"trims each value", " Rojo | Gris ", []string{"Rojo", "Gris"}},
		{"drops trailing separator", "Rojo| Gris |", []string{"Rojo", "Gris"}},
		{"drops empty segments", "|Rojo||Gris|", []string{"Rojo", "Gris"}},
		{"blank segments only", " | | ", nil},
		{"empty string", "", nil},
		{"keeps inner spaces", "Gris Oscuro|Café", []string{"Gris Oscuro", "Café"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, splitList(tt.joined))
		})
	}
}
