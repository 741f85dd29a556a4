package repository

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"sanchez-brick/models"
)

var (
	// ErrDuplicateSlug is returned when two products share a slug
	ErrDuplicateSlug = errors.New("duplicate product slug")
	// ErrInvalidProduct is returned when a product record is incomplete
	ErrInvalidProduct = errors.New("invalid product")
)

// ProductRepository is the immutable in-memory product store.
// It is safe for concurrent reads since nothing mutates it after construction.
type ProductRepository struct {
	products []models.Product
	bySlug   map[string]int
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

// NewProductRepository freezes products into a store, keeping their order
func NewProductRepository(products []models.Product) (*ProductRepository, error) {
	r := &ProductRepository{
		products: make([]models.Product, 0, len(products)),
		bySlug:   make(map[string]int, len(products)),
	}

	for _, p := range products {
		slug := strings.TrimSpace(p.Slug)
		if slug == "" {
			return nil, fmt.Errorf("%w: empty slug for %q", ErrInvalidProduct, p.Name)
		}
		if len(p.Colors) == 0 || len(p.Textures) == 0 {
			return nil, fmt.Errorf("%w: %s needs at least one color and one texture", ErrInvalidProduct, slug)
		}
		if _, exists := r.bySlug[slug]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlug, slug)
		}
		p.Slug = slug
		r.bySlug[slug] = len(r.products)
		r.products = append(r.products, cloneProduct(p))
	}

	log.Info().Msgf("✓ Product store ready with %d products", len(r.products))
	return r, nil
}

// FindBySlug looks up a product. ok is false when there is no such product.
func (r *ProductRepository) FindBySlug(slug string) (*models.Product, bool) {
	idx, exists := r.bySlug[strings.TrimSpace(slug)]
	if !exists {
		return nil, false
	}
	p := cloneProduct(r.products[idx])
	return &p, true
}

// List returns every product in store order
func (r *ProductRepository) List() []models.Product {
	out := make([]models.Product, len(r.products))
	for i, p := range r.products {
		out[i] = cloneProduct(p)
	}
	return out
}

// Facets returns the distinct categories, colors and textures in store order
func (r *ProductRepository) Facets() models.Facets {
	var facets models.Facets
	for _, p := range r.products {
		facets.Categories = appendUnique(facets.Categories, p.Category)
		for _, c := range p.Colors {
			facets.Colors = appendUnique(facets.Colors, c)
		}
		for _, t := range p.Textures {
			facets.Textures = appendUnique(facets.Textures, t)
		}
	}
	return facets
}

func appendUnique(values []string, v string) []string {
	for _, existing := range values {
		if strings.EqualFold(existing, v) {
			return values
		}
	}
	return append(values, v)
}

func cloneProduct(p models.Product) models.Product {
	p.Colors = slices.Clone(p.Colors)
	p.Textures = slices.Clone(p.Textures)
	return p
}
