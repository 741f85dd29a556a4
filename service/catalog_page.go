package service

import (
	"net/url"

	"sanchez-brick/models"
)

// ProductsPath is the path of the catalogue page
const ProductsPath = "/productos"

// CompareExportPath is the path of the comparison spreadsheet
const CompareExportPath = "/productos/comparar.xlsx"

// BuildCatalogPage assembles the products page for the browse state.
// It is a pure function of the state and the store, so re-rendering never accumulates.
func BuildCatalogPage(catalog *CatalogService, compare *CompareService, state *models.BrowseState) CatalogPageData {
	products := catalog.List(state.Filter)
	facets := catalog.FacetValues()

	data := CatalogPageData{
		Title:           "Productos",
		Nav:             NewNavView(state, ProductsPath),
		Notice:          state.Notice,
		CompareParam:    state.Selection.String(),
		ClearFiltersURL: state.ClearFiltersURL(ProductsPath),
		Empty:           len(products) == 0,
		BarVisible:      state.Selection.BarVisible(),
		Bar:             compare.Bar(state.Selection),
		OpenModalURL:    state.OpenModalURL(ProductsPath),
		ModalOpen:       state.ModalOpen,
		CloseModalURL:   state.URL(ProductsPath),
	}
	if data.Empty {
		data.EmptyMessage = EmptyResultsMessage
	}

	for _, option := range catalog.Facets() {
		data.Categories = append(data.Categories, SelectOption{
			Value:    option.Value,
			Label:    option.Label,
			Selected: state.IsSelectedFilter(models.ParamCategory, option.Value),
		})
	}
	for _, color := range facets.Colors {
		data.Colors = append(data.Colors, SelectOption{
			Value:    color,
			Label:    color,
			Selected: state.IsSelectedFilter(models.ParamColor, color),
		})
	}
	for _, texture := range facets.Textures {
		data.Textures = append(data.Textures, SelectOption{
			Value:    texture,
			Label:    texture,
			Selected: state.IsSelectedFilter(models.ParamTexture, texture),
		})
	}

	for _, p := range products {
		data.Cards = append(data.Cards, ProductCard{
			Slug:      p.Slug,
			Name:      p.Name,
			Usage:     p.Usage,
			Yield:     models.FormatNumber(p.Yield),
			Colors:    p.Colors,
			ImageURL:  ImageURL(p.Slug, ImageSizeThumb),
			DetailURL: DetailURL(p.Slug),
			QuoteURL:  QuoteURL(p.Slug),
			ToggleURL: state.ToggleURL(ProductsPath, p.Slug),
			Selected:  state.Selection.Contains(p.Slug),
		})
	}

	if state.ModalOpen {
		data.Table = compare.BuildComparison(state.Selection)
		if data.Table.HasTable() {
			data.ExportURL = CompareExportPath + "?" + url.Values{models.ParamCompare: {state.Selection.String()}}.Encode()
		}
	}

	return data
}
