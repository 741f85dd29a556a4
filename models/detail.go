package models

// ProductNotFoundMessage is rendered when the slug has no matching product
const ProductNotFoundMessage = "Producto no encontrado."

// SpecRow is one label/value row of the detail spec table
type SpecRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProductDetail is the populated detail view of a product
type ProductDetail struct {
	Slug     string    `json:"slug"`
	Name     string    `json:"name"`
	Usage    string    `json:"usos"`
	Image    string    `json:"image"`
	Specs    []SpecRow `json:"specs"`
	QuoteURL string    `json:"quoteUrl"`
	CalcURL  string    `json:"calcUrl"`
	Summary  string    `json:"description"`
}

// DetailView is what the detail page renders.
// Requested is false when no slug was given, in which case the static page stays as is.
type DetailView struct {
	Requested bool           `json:"requested"`
	NotFound  string         `json:"notFound,omitempty"`
	Product   *ProductDetail `json:"product,omitempty"`
}
