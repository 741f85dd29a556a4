package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"sanchez-brick/models"
	"sanchez-brick/repository"
	"sanchez-brick/service"
)

// ProductSheetPrinter prints the spec sheet of a product
type ProductSheetPrinter interface {
	ProductSheetPDF(ctx context.Context, slug string) ([]byte, error)
}

// ProductImageSource serves resized product images
type ProductImageSource interface {
	ProductImage(ctx context.Context, slug string, size string) ([]byte, error)
}

// ProductController handles HTTP requests for the product detail
type ProductController struct {
	detailService *service.DetailService
	renderer      *service.PageRenderer
	sheets        ProductSheetPrinter
	images        ProductImageSource
}

// NewProductController creates a new ProductController. sheets may be nil when
// Chrome is not available.
func NewProductController(
	repo repository.ProductRepositoryInterface,
	renderer *service.PageRenderer,
	sheets ProductSheetPrinter,
	images ProductImageSource,
) *ProductController {
	return &ProductController{
		detailService: service.NewDetailService(repo),
		renderer:      renderer,
		sheets:        sheets,
		images:        images,
	}
}

// ProductPage handles GET /producto?slug=
func (c *ProductController) ProductPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Warn().Msgf("❌ ProductPage: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	slug := r.URL.Query().Get(models.ParamSlug)
	state := models.ParseBrowseState(r.URL.Query())
	view := c.detailService.Detail(slug)

	data := service.DetailPageData{
		Title: "Ficha de producto",
		Nav:   service.NewNavView(state, r.URL.Path, models.ParamSlug, slug),
		View:  view,
	}
	status := http.StatusOK
	if view.NotFound != "" {
		status = http.StatusNotFound
	}
	if view.Product != nil {
		data.Title = view.Product.Name
	}
	renderPage(w, c.renderer, status, service.PageProduct, data, "ProductPage")
}

// ProductAPI handles GET /api/producto?slug=
func (c *ProductController) ProductAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Warn().Msgf("❌ ProductAPI: Method not allowed: %s", r.Method)
		writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed", "ProductAPI")
		return
	}

	view := c.detailService.Detail(r.URL.Query().Get(models.ParamSlug))
	switch {
	case !view.Requested:
		writeJSONError(w, http.StatusBadRequest, "slug parameter is required", "ProductAPI")
	case view.NotFound != "":
		writeJSONError(w, http.StatusNotFound, view.NotFound, "ProductAPI")
	default:
		writeJSON(w, http.StatusOK, view.Product, "ProductAPI")
	}
}

// ProductSheetPDF handles GET /producto/ficha.pdf?slug=
func (c *ProductController) ProductSheetPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Warn().Msgf("❌ ProductSheetPDF: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	view := c.detailService.Detail(r.URL.Query().Get(models.ParamSlug))
	if !view.Requested {
		http.Error(w, "slug parameter is required", http.StatusBadRequest)
		return
	}
	if view.Product == nil {
		http.Error(w, view.NotFound, http.StatusNotFound)
		return
	}
	if c.sheets == nil {
		log.Warn().Msg("⚠️  ProductSheetPDF: PDF rendering is not configured")
		http.Error(w, "PDF rendering is not available", http.StatusServiceUnavailable)
		return
	}

	slug := view.Product.Slug
	log.Info().Msgf("📄 ProductSheetPDF: Printing spec sheet for %s", slug)
	pdf, err := c.sheets.ProductSheetPDF(r.Context(), slug)
	if err != nil {
		log.Error().Err(err).Msgf("❌ ProductSheetPDF: Error printing %s", slug)
		http.Error(w, fmt.Sprintf("Failed to generate PDF: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="ficha-%s.pdf"`, slug))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Error().Err(err).Msg("❌ ProductSheetPDF: Error writing response")
	}
}

// ProductImage handles GET /producto/imagen?slug=&size=thumb|medium
func (c *ProductController) ProductImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Warn().Msgf("❌ ProductImage: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	slug := strings.TrimSpace(r.URL.Query().Get(models.ParamSlug))
	if slug == "" {
		http.Error(w, "slug parameter is required", http.StatusBadRequest)
		return
	}
	size := service.NormalizeImageSize(r.URL.Query().Get("size"))

	data, err := c.images.ProductImage(r.Context(), slug, size)
	if err != nil {
		if errors.Is(err, service.ErrUnknownProduct) || errors.Is(err, service.ErrImageSourceUnavailable) {
			log.Warn().Err(err).Msgf("⚠️  ProductImage: No image for %s", slug)
			http.Error(w, "Image not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Msgf("❌ ProductImage: Error loading image for %s", slug)
		http.Error(w, fmt.Sprintf("Failed to load image: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Error().Err(err).Msg("❌ ProductImage: Error writing response")
	}
}
