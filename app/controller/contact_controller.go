package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"sanchez-brick/models"
	"sanchez-brick/repository"
	"sanchez-brick/service"
)

// quoteParam names the product on the quote page
const quoteParam = "producto"

// ContactController handles the contact and quote forms
type ContactController struct {
	repository     repository.ProductRepositoryInterface
	contactService *service.ContactService
	renderer       *service.PageRenderer
}

// NewContactController creates a new ContactController
func NewContactController(repo repository.ProductRepositoryInterface, renderer *service.PageRenderer) *ContactController {
	return &ContactController{
		repository:     repo,
		contactService: service.NewContactService(),
		renderer:       renderer,
	}
}

// ContactPage handles GET/POST /contacto and GET /cotizar?producto=
// A POST is acknowledged and the form is shown cleared. Nothing is sent anywhere.
func (c *ContactController) ContactPage(w http.ResponseWriter, r *http.Request) {
	state := models.ParseBrowseState(r.URL.Query())
	product := strings.TrimSpace(r.URL.Query().Get(quoteParam))

	data := service.ContactPageData{
		Title: "Contacto",
		Nav:   service.NewNavView(state, r.URL.Path, quoteParam, product),
	}

	switch r.Method {
	case http.MethodGet:
		if p, ok := c.lookup(product); ok {
			data.Title = "Cotizar"
			data.Product = p.Slug
			data.ProductName = p.Name
			data.Form.Product = p.Slug
		}

	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			log.Warn().Err(err).Msg("❌ ContactPage: Failed to parse form")
			http.Error(w, fmt.Sprintf("Invalid form: %v", err), http.StatusBadRequest)
			return
		}
		ack := c.contactService.Submit(models.ContactRequest{
			Name:    r.PostFormValue("nombre"),
			Email:   r.PostFormValue("email"),
			Phone:   r.PostFormValue("telefono"),
			Product: r.PostFormValue("producto"),
			Message: r.PostFormValue("mensaje"),
		})
		data.Ack = &ack

	default:
		log.Warn().Msgf("❌ ContactPage: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	renderPage(w, c.renderer, http.StatusOK, service.PageContact, data, "ContactPage")
}

// ContactAPI handles POST /api/contacto
func (c *ContactController) ContactAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Warn().Msgf("❌ ContactAPI: Method not allowed: %s", r.Method)
		writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed", "ContactAPI")
		return
	}

	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("❌ ContactAPI: Failed to decode request body")
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err), "ContactAPI")
		return
	}

	writeJSON(w, http.StatusOK, c.contactService.Submit(req), "ContactAPI")
}

func (c *ContactController) lookup(slug string) (*models.Product, bool) {
	if slug == "" {
		return nil, false
	}
	return c.repository.FindBySlug(slug)
}
