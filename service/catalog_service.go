package service

import (
	"github.com/rs/zerolog/log"

	"sanchez-brick/models"
	"sanchez-brick/repository"
	"sanchez-brick/utils"
)

// EmptyResultsMessage is rendered instead of an empty list
const EmptyResultsMessage = "No hay productos con esos filtros. Prueba limpiar filtros o contáctanos."

// CatalogService handles product listing and filtering
type CatalogService struct {
	repository repository.ProductRepositoryInterface
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(repo repository.ProductRepositoryInterface) *CatalogService {
	return &CatalogService{repository: repo}
}

// FilterProducts keeps the products matching every set filter, in their original order.
// Category is an exact match, color and texture match any listed value ignoring case.
func FilterProducts(products []models.Product, filter models.CatalogFilter) []models.Product {
	filter = filter.Normalize()
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Color != "" && !p.HasColor(filter.Color) {
			continue
		}
		if filter.Texture != "" && !p.HasTexture(filter.Texture) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// List returns the store products matching filter
func (s *CatalogService) List(filter models.CatalogFilter) []models.Product {
	products := FilterProducts(s.repository.List(), filter)
	log.Debug().Msgf("🔍 CatalogService.List: category=%q color=%q texture=%q -> %d products",
		filter.Category, filter.Color, filter.Texture, len(products))
	return products
}

// Facets returns the filter options with display labels for categories
func (s *CatalogService) Facets() []FacetOption {
	facets := s.repository.Facets()
	options := make([]FacetOption, 0, len(facets.Categories))
	for _, code := range facets.Categories {
		options = append(options, FacetOption{Value: code, Label: utils.MapCategoryToLabel(code)})
	}
	return options
}

// FacetValues returns the raw facets from the store
func (s *CatalogService) FacetValues() models.Facets {
	return s.repository.Facets()
}

// FacetOption is a select option of the category filter
type FacetOption struct {
	Value string
	Label string
}
