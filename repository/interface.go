package repository

import (
	"sanchez-brick/models"
)

// ProductRepositoryInterface defines the read-only contract of the product store
type ProductRepositoryInterface interface {
	FindBySlug(slug string) (*models.Product, bool)
	List() []models.Product
	Facets() models.Facets
}
