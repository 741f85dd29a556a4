package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"sanchez-brick/models"
	"sanchez-brick/repository"
	"sanchez-brick/service"
)

// xlsxContentType is the media type of the comparison spreadsheet
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// CatalogController handles HTTP requests for the product list and comparison
type CatalogController struct {
	catalogService *service.CatalogService
	compareService *service.CompareService
	renderer       *service.PageRenderer
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(repo repository.ProductRepositoryInterface, renderer *service.PageRenderer) *CatalogController {
	return &CatalogController{
		catalogService: service.NewCatalogService(repo),
		compareService: service.NewCompareService(repo),
		renderer:       renderer,
	}
}

// ListProductsPage handles GET /productos?category=&color=&texture=&compare=&toggle=&modal=&menu=
// A toggle that changes the selection redirects to the clean URL so reloading never toggles twice.
func (c *CatalogController) ListProductsPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Warn().Msgf("❌ ListProductsPage: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	state := models.ParseBrowseState(query)

	if toggle := strings.TrimSpace(query.Get(models.ParamToggle)); toggle != "" {
		notice, err := c.compareService.Toggle(state.Selection, toggle)
		switch {
		case errors.Is(err, service.ErrUnknownProduct):
			log.Warn().Msgf("⚠️  ListProductsPage: ignoring toggle of unknown product %q", toggle)
		case err != nil:
			log.Error().Err(err).Msg("❌ ListProductsPage: Error toggling comparison")
			http.Error(w, fmt.Sprintf("Failed to update comparison: %v", err), http.StatusInternalServerError)
			return
		case notice == "":
			target := state.URL(service.ProductsPath)
			if state.ModalOpen {
				target = state.OpenModalURL(service.ProductsPath)
			}
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}
		state.Notice = notice
	}

	data := service.BuildCatalogPage(c.catalogService, c.compareService, state)
	log.Debug().Msgf("📋 ListProductsPage: %d cards, %d selected, modal=%t", len(data.Cards), state.Selection.Len(), state.ModalOpen)
	renderPage(w, c.renderer, http.StatusOK, service.PageProducts, data, "ListProductsPage")
}

// ListProductsAPI handles GET /api/productos?category=&color=&texture=
func (c *CatalogController) ListProductsAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Warn().Msgf("❌ ListProductsAPI: Method not allowed: %s", r.Method)
		writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed", "ListProductsAPI")
		return
	}

	filter := models.ParseBrowseState(r.URL.Query()).Filter
	products := c.catalogService.List(filter)

	response := models.ProductListResponse{
		Products: products,
		Total:    len(products),
		Filter:   filter,
	}
	if len(products) == 0 {
		response.Message = service.EmptyResultsMessage
	}
	writeJSON(w, http.StatusOK, response, "ListProductsAPI")
}

// ToggleCompare handles POST /api/comparar
// Body: {"selection": ["slug", ...], "toggle": "slug"}
func (c *CatalogController) ToggleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Warn().Msgf("❌ ToggleCompare: Method not allowed: %s", r.Method)
		writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed", "ToggleCompare")
		return
	}

	var req models.CompareToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("❌ ToggleCompare: Failed to decode request body")
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err), "ToggleCompare")
		return
	}

	response, err := c.compareService.ApplyToggle(req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownProduct) {
			writeJSONError(w, http.StatusNotFound, models.ProductNotFoundMessage, "ToggleCompare")
			return
		}
		log.Error().Err(err).Msg("❌ ToggleCompare: Error applying toggle")
		writeJSONError(w, http.StatusInternalServerError, "Failed to update comparison", "ToggleCompare")
		return
	}

	log.Info().Msgf("✅ ToggleCompare: selection=%v notice=%q", response.Selection, response.Notice)
	writeJSON(w, http.StatusOK, response, "ToggleCompare")
}

// ExportComparison handles GET /productos/comparar.xlsx?compare=a,b[,c]
func (c *CatalogController) ExportComparison(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Warn().Msgf("❌ ExportComparison: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	selection := models.ParseSelection(r.URL.Query().Get(models.ParamCompare))
	table := c.compareService.BuildComparison(selection)

	data, err := service.GenerateComparisonExcel(table)
	if err != nil {
		if errors.Is(err, service.ErrNotEnoughSelected) {
			http.Error(w, models.CompareMinMessage, http.StatusBadRequest)
			return
		}
		log.Error().Err(err).Msg("❌ ExportComparison: Error generating spreadsheet")
		http.Error(w, fmt.Sprintf("Failed to generate spreadsheet: %v", err), http.StatusInternalServerError)
		return
	}

	log.Info().Msgf("✅ ExportComparison: %d products, %d bytes", selection.Len(), len(data))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="comparativa.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Error().Err(err).Msg("❌ ExportComparison: Error writing response")
	}
}
