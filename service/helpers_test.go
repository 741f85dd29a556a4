package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sanchez-brick/models"
	"sanchez-brick/repository"
)

func newSeedRepo(t *testing.T) *repository.ProductRepository {
	t.Helper()
	repo, err := repository.NewProductRepository(repository.SeedProducts())
	require.NoError(t, err)
	return repo
}

func productSlugs(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Slug
	}
	return out
}
