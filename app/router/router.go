package router

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"sanchez-brick/app/controller"
	"sanchez-brick/service"
)

type Controllers struct {
	Catalog    *controller.CatalogController
	Product    *controller.ProductController
	Calculator *controller.CalculatorController
	Contact    *controller.ContactController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes registers every route on mux. assetsDir is served under /static/.
func SetupRoutes(mux *http.ServeMux, controllers *Controllers, assetsDir string) {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Static files (styles, local product images)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(assetsDir))))

	// Home goes to the catalogue; anything else unmatched is a 404
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, service.ProductsPath, http.StatusFound)
	})

	// Catalogue and comparison
	mux.HandleFunc(service.ProductsPath, controllers.Catalog.ListProductsPage)
	mux.HandleFunc(service.CompareExportPath, controllers.Catalog.ExportComparison)
	mux.HandleFunc("/api/productos", controllers.Catalog.ListProductsAPI)
	mux.HandleFunc("/api/comparar", controllers.Catalog.ToggleCompare)

	// Product detail
	mux.HandleFunc("/producto", controllers.Product.ProductPage)
	mux.HandleFunc("/producto/ficha.pdf", controllers.Product.ProductSheetPDF)
	mux.HandleFunc("/producto/imagen", controllers.Product.ProductImage)
	mux.HandleFunc("/api/producto", controllers.Product.ProductAPI)

	// Calculator
	mux.HandleFunc("/calculadora", controllers.Calculator.CalculatorPage)
	mux.HandleFunc("/api/calculadora", controllers.Calculator.CalculateAPI)

	// Contact and quote requests
	mux.HandleFunc("/contacto", controllers.Contact.ContactPage)
	mux.HandleFunc("/cotizar", controllers.Contact.ContactPage)
	mux.HandleFunc("/api/contacto", controllers.Contact.ContactAPI)
}

// statusRecorder keeps the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LogRequests logs one line per request with its status and duration
func LogRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		event := log.Info()
		if rec.status >= http.StatusInternalServerError {
			event = log.Error()
		} else if rec.status >= http.StatusBadRequest {
			event = log.Warn()
		}
		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("📥 request")
	})
}
