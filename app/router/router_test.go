package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanchez-brick/app/controller"
	"sanchez-brick/calculator"
	"sanchez-brick/repository"
	"sanchez-brick/service"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	repo, err := repository.NewProductRepository(repository.SeedProducts())
	require.NoError(t, err)
	renderer, err := service.NewPageRenderer()
	require.NoError(t, err)

	assets := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(assets, "styles.css"), []byte("body{}"), 0644))

	images := service.NewProductImageService(repo, nil, service.NewImageOptimizer(t.TempDir()), assets)
	controllers := &Controllers{
		Catalog:    controller.NewCatalogController(repo, renderer),
		Product:    controller.NewProductController(repo, renderer, nil, images),
		Calculator: controller.NewCalculatorController(repo, calculator.NewEngine(0), renderer),
		Contact:    controller.NewContactController(repo, renderer),
	}

	mux := http.NewServeMux()
	SetupRoutes(mux, controllers, assets)
	return LogRequests(mux)
}

func TestRoutes(t *testing.T) {
	handler := newTestHandler(t)

	tests := []struct {
		method string
		target string
		status int
	}{
		{http.MethodGet, "/ping", http.StatusOK},
		{http.MethodPost, "/ping", http.StatusMethodNotAllowed},
		{http.MethodGet, "/", http.StatusFound},
		{http.MethodGet, "/nope", http.StatusNotFound},
		{http.MethodGet, "/static/styles.css", http.StatusOK},
		{http.MethodGet, "/productos", http.StatusOK},
		{http.MethodGet, "/api/productos", http.StatusOK},
		{http.MethodGet, "/productos/comparar.xlsx?compare=adoquin-rustico,thin-brick-toscano", http.StatusOK},
		{http.MethodGet, "/producto?slug=adoquin-rustico", http.StatusOK},
		{http.MethodGet, "/api/producto?slug=no-existe", http.StatusNotFound},
		{http.MethodGet, "/producto/ficha.pdf?slug=adoquin-rustico", http.StatusServiceUnavailable},
		{http.MethodGet, "/producto/imagen?slug=adoquin-rustico", http.StatusNotFound},
		{http.MethodGet, "/calculadora", http.StatusOK},
		{http.MethodGet, "/contacto", http.StatusOK},
		{http.MethodGet, "/cotizar?producto=adoquin-rustico", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestPing(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
