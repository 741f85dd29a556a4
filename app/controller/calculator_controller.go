package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"sanchez-brick/calculator"
	"sanchez-brick/models"
	"sanchez-brick/repository"
	"sanchez-brick/service"
)

// CalculatorController handles HTTP requests for the material calculator
type CalculatorController struct {
	repository repository.ProductRepositoryInterface
	engine     *calculator.Engine
	renderer   *service.PageRenderer
}

// NewCalculatorController creates a new CalculatorController
func NewCalculatorController(
	repo repository.ProductRepositoryInterface,
	engine *calculator.Engine,
	renderer *service.PageRenderer,
) *CalculatorController {
	return &CalculatorController{
		repository: repo,
		engine:     engine,
		renderer:   renderer,
	}
}

// formFromRequest reads the calculator fields of a posted form
func formFromRequest(r *http.Request) models.CalculatorForm {
	return models.CalculatorForm{
		Area:           r.PostFormValue("area"),
		WastePercent:   r.PostFormValue("merma"),
		Joint:          r.PostFormValue("junta"),
		UnitPrice:      r.PostFormValue("precio"),
		PalletCapacity: r.PostFormValue("pallet"),
		PieceLength:    r.PostFormValue("largo"),
		PieceHeight:    r.PostFormValue("alto"),
		YieldOverride:  r.PostFormValue("rendimiento"),
		UnitWeight:     r.PostFormValue("peso"),
	}
}

// CalculatorPage handles GET /calculadora?slug= and POST /calculadora
// GET shows the form, prefilled from the product when slug is known.
// POST computes the results and shows them under the submitted form.
func (c *CalculatorController) CalculatorPage(w http.ResponseWriter, r *http.Request) {
	state := models.ParseBrowseState(r.URL.Query())

	switch r.Method {
	case http.MethodGet:
		slug := strings.TrimSpace(r.URL.Query().Get(models.ParamSlug))
		data := c.pageData(state, r.URL.Path, slug)
		if p, ok := c.lookup(slug); ok {
			data.Form = calculator.Prefill(data.Form, p)
			log.Debug().Msgf("🧮 CalculatorPage: Prefilled from %s", p.Slug)
		}
		renderPage(w, c.renderer, http.StatusOK, service.PageCalculator, data, "CalculatorPage")

	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			log.Warn().Err(err).Msg("❌ CalculatorPage: Failed to parse form")
			http.Error(w, fmt.Sprintf("Invalid form: %v", err), http.StatusBadRequest)
			return
		}

		data := c.pageData(state, r.URL.Path, strings.TrimSpace(r.PostFormValue(models.ParamSlug)))
		data.Form = formFromRequest(r)
		out := c.engine.Calculate(c.engine.ParseForm(data.Form))
		result := calculator.FormatResult(out)
		data.Result = &result

		log.Info().Msgf("🧮 CalculatorPage: yield=%v (%s) pieces=%s pallets=%s", out.Yield, out.YieldSource, result.Pieces, result.Pallets)
		renderPage(w, c.renderer, http.StatusOK, service.PageCalculator, data, "CalculatorPage")

	default:
		log.Warn().Msgf("❌ CalculatorPage: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// CalculateAPI handles POST /api/calculadora
// Body: the raw calculator fields as strings, e.g. {"area": "10", "merma": "10", ...}
func (c *CalculatorController) CalculateAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Warn().Msgf("❌ CalculateAPI: Method not allowed: %s", r.Method)
		writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed", "CalculateAPI")
		return
	}

	var form models.CalculatorForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Warn().Err(err).Msg("❌ CalculateAPI: Failed to decode request body")
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err), "CalculateAPI")
		return
	}

	in := c.engine.ParseForm(form)
	out := c.engine.Calculate(in)
	writeJSON(w, http.StatusOK, models.CalculatorResponse{
		Input:   in,
		Output:  out,
		Display: calculator.FormatResult(out),
	}, "CalculateAPI")
}

func (c *CalculatorController) pageData(state *models.BrowseState, path, slug string) service.CalculatorPageData {
	data := service.CalculatorPageData{
		Title:         "Calculadora",
		Nav:           service.NewNavView(state, path, models.ParamSlug, slug),
		DefaultPallet: c.engine.DefaultPalletCapacity(),
	}
	if p, ok := c.lookup(slug); ok {
		data.Slug = p.Slug
		data.ProductName = p.Name
	}
	return data
}

func (c *CalculatorController) lookup(slug string) (*models.Product, bool) {
	if slug == "" {
		return nil, false
	}
	return c.repository.FindBySlug(slug)
}
