package models

import "strings"

// CatalogFilter holds the active list filters. Empty fields are not applied.
type CatalogFilter struct {
	Category string `json:"category"`
	Color    string `json:"color"`
	Texture  string `json:"texture"`
}

// IsEmpty reports whether no filter is set
func (f CatalogFilter) IsEmpty() bool {
	return f.Category == "" && f.Color == "" && f.Texture == ""
}

// Normalize trims whitespace from every filter value
func (f CatalogFilter) Normalize() CatalogFilter {
	return CatalogFilter{
		Category: strings.TrimSpace(f.Category),
		Color:    strings.TrimSpace(f.Color),
		Texture:  strings.TrimSpace(f.Texture),
	}
}

// Facets lists the distinct filter values present in the store, in store order
type Facets struct {
	Categories []string `json:"categories"`
	Colors     []string `json:"colors"`
	Textures   []string `json:"textures"`
}

// ProductListResponse is returned by the product list API
type ProductListResponse struct {
	Products []Product     `json:"products"`
	Total    int           `json:"total"`
	Filter   CatalogFilter `json:"filter"`
	Message  string        `json:"message,omitempty"`
}
