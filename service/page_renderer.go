package service

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"sanchez-brick/models"
	"sanchez-brick/templates"
)

// Page template names
const (
	PageProducts   = "productos.html"
	PageProduct    = "producto.html"
	PageCalculator = "calculadora.html"
	PageContact    = "contacto.html"
)

// PageRenderer renders the site pages, each wrapped in the shared layout
type PageRenderer struct {
	pages map[string]*template.Template
}

// NewPageRenderer parses every page together with the layout
func NewPageRenderer() (*PageRenderer, error) {
	r := &PageRenderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{PageProducts, PageProduct, PageCalculator, PageContact} {
		tmpl, err := template.ParseFS(templates.FS, "layout.html", page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// Render executes a page into w. The page is buffered so a template error never
// leaves a half-written response.
func (r *PageRenderer) Render(w io.Writer, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %s", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// NavView is the navigation panel state of the layout
type NavView struct {
	Open      bool
	ToggleURL string
}

// NewNavView builds the nav view for a page path. extra query pairs, such as the
// product slug, survive the menu toggle.
func NewNavView(state *models.BrowseState, path string, extra ...string) NavView {
	return NavView{Open: state.Nav.Open, ToggleURL: state.MenuToggleURL(path, extra...)}
}

// SelectOption is a filter select option
type SelectOption struct {
	Value    string
	Label    string
	Selected bool
}

// ProductCard is one product of the list
type ProductCard struct {
	Slug      string
	Name      string
	Usage     string
	Yield     string
	Colors    []string
	ImageURL  string
	DetailURL string
	QuoteURL  string
	ToggleURL string
	Selected  bool
}

// CatalogPageData is the data of the products page
type CatalogPageData struct {
	Title           string
	Nav             NavView
	Notice          string
	CompareParam    string
	Categories      []SelectOption
	Colors          []SelectOption
	Textures        []SelectOption
	ClearFiltersURL string
	Cards           []ProductCard
	Empty           bool
	EmptyMessage    string
	BarVisible      bool
	Bar             []models.CompareBarItem
	OpenModalURL    string
	ModalOpen       bool
	CloseModalURL   string
	Table           models.ComparisonTable
	ExportURL       string
}

// DetailPageData is the data of the product detail page
type DetailPageData struct {
	Title string
	Nav   NavView
	View  models.DetailView
}

// CalculatorPageData is the data of the calculator page
type CalculatorPageData struct {
	Title         string
	Nav           NavView
	Slug          string
	ProductName   string
	Form          models.CalculatorForm
	DefaultPallet int
	Result        *models.CalculatorResultView
}

// ContactPageData is the data of the contact and quote pages
type ContactPageData struct {
	Title       string
	Nav         NavView
	Product     string
	ProductName string
	Form        models.ContactRequest
	Ack         *models.ContactResponse
}
