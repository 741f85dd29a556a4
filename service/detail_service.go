package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"sanchez-brick/models"
	"sanchez-brick/repository"
)

// DetailService populates the product detail page
type DetailService struct {
	repository repository.ProductRepositoryInterface
}

// NewDetailService creates a new DetailService
func NewDetailService(repo repository.ProductRepositoryInterface) *DetailService {
	return &DetailService{repository: repo}
}

// QuoteURL is the quote request link for a product
func QuoteURL(slug string) string {
	return "/cotizar?producto=" + url.QueryEscape(slug)
}

// CalculatorURL is the calculator link prefilled for a product
func CalculatorURL(slug string) string {
	return "/calculadora?slug=" + url.QueryEscape(slug)
}

// DetailURL is the detail page of a product
func DetailURL(slug string) string {
	return "/producto?slug=" + url.QueryEscape(slug)
}

// ImageURL is the resized image of a product
func ImageURL(slug, size string) string {
	return fmt.Sprintf("/producto/imagen?slug=%s&size=%s", url.QueryEscape(slug), url.QueryEscape(size))
}

// Detail resolves the detail view for a slug taken from the query string.
// A blank slug is not requested; an unknown slug yields only the not-found message.
func (s *DetailService) Detail(slug string) models.DetailView {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return models.DetailView{}
	}

	p, ok := s.repository.FindBySlug(slug)
	if !ok {
		log.Info().Msgf("⚠️  DetailService.Detail: product not found slug=%s", slug)
		return models.DetailView{Requested: true, NotFound: models.ProductNotFoundMessage}
	}

	return models.DetailView{Requested: true, Product: BuildProductDetail(p)}
}

// BuildProductDetail fills every detail field from the product
func BuildProductDetail(p *models.Product) *models.ProductDetail {
	return &models.ProductDetail{
		Slug:  p.Slug,
		Name:  p.Name,
		Usage: p.Usage,
		Image: ImageURL(p.Slug, "medium"),
		Specs: []models.SpecRow{
			{Label: "Medidas (L × A × H, mm)", Value: p.Dimensions.String()},
			{Label: "Junta recomendada (mm)", Value: models.FormatNumber(p.Joint)},
			{Label: "Rendimiento (pzas/m²)", Value: models.FormatNumber(p.Yield)},
			{Label: "Masa / peso por pieza (kg)", Value: models.FormatNumber(p.Mass)},
			{Label: "Absorción (%)", Value: p.Absorption},
			{Label: "Resistencia a compresión (MPa)", Value: p.Strength},
			{Label: "Densidad aparente (kg/m³)", Value: p.Density},
			{Label: "Acabados / Texturas", Value: strings.Join(p.Textures, ", ")},
			{Label: "Colores", Value: strings.Join(p.Colors, ", ")},
			{Label: "Disponibilidad", Value: p.Availability},
		},
		QuoteURL: QuoteURL(p.Slug),
		CalcURL:  CalculatorURL(p.Slug),
		Summary:  p.Description,
	}
}
