package controller

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sanchez-brick/repository"
	"sanchez-brick/service"
)

func newTestRepo(t *testing.T) *repository.ProductRepository {
	t.Helper()
	repo, err := repository.NewProductRepository(repository.SeedProducts())
	require.NoError(t, err)
	return repo
}

func newTestRenderer(t *testing.T) *service.PageRenderer {
	t.Helper()
	renderer, err := service.NewPageRenderer()
	require.NoError(t, err)
	return renderer
}

func serve(handler http.HandlerFunc, method, target, body, contentType string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

type fakePrinter struct {
	pdf   []byte
	err   error
	slugs []string
}

func (p *fakePrinter) ProductSheetPDF(_ context.Context, slug string) ([]byte, error) {
	p.slugs = append(p.slugs, slug)
	return p.pdf, p.err
}

type fakeImages struct {
	data []byte
	err  error
}

func (f *fakeImages) ProductImage(_ context.Context, slug string, size string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	if slug == "no-existe" {
		return nil, fmt.Errorf("%w: %s", service.ErrUnknownProduct, slug)
	}
	return f.data, nil
}
