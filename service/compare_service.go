package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"sanchez-brick/models"
	"sanchez-brick/repository"
)

// ErrNotEnoughSelected is returned by exports that need a comparison table
var ErrNotEnoughSelected = errors.New("at least two products must be selected")

// ErrUnknownProduct is returned when toggling a slug that is not in the store
var ErrUnknownProduct = errors.New("unknown product")

// comparisonAttribute is one fixed row of the comparison table
type comparisonAttribute struct {
	label string
	value func(p *models.Product) string
}

// comparisonAttributes are the table rows, in display order
var comparisonAttributes = []comparisonAttribute{
	{"Medidas (mm)", func(p *models.Product) string { return p.Dimensions.String() }},
	{"Junta (mm)", func(p *models.Product) string { return models.FormatNumber(p.Joint) }},
	{"Rendimiento (pzas/m²)", func(p *models.Product) string { return models.FormatNumber(p.Yield) }},
	{"Peso (kg)", func(p *models.Product) string { return models.FormatNumber(p.Mass) }},
	{"Absorción (%)", func(p *models.Product) string { return p.Absorption }},
	{"Resistencia (MPa)", func(p *models.Product) string { return p.Strength }},
	{"Disponibilidad", func(p *models.Product) string { return p.Availability }},
}

// CompareService manages the comparison selection against the product store
type CompareService struct {
	repository repository.ProductRepositoryInterface
}

// NewCompareService creates a new CompareService
func NewCompareService(repo repository.ProductRepositoryInterface) *CompareService {
	return &CompareService{repository: repo}
}

// Toggle adds or removes slug from the selection.
// It returns the user-facing notice when the selection is full; the selection is then unchanged.
func (s *CompareService) Toggle(selection *models.Selection, slug string) (string, error) {
	if !selection.Contains(slug) {
		if _, ok := s.repository.FindBySlug(slug); !ok {
			log.Warn().Msgf("⚠️  CompareService.Toggle: unknown product %q", slug)
			return "", fmt.Errorf("%w: %s", ErrUnknownProduct, slug)
		}
	}

	if err := selection.Toggle(slug); err != nil {
		if errors.Is(err, models.ErrSelectionFull) {
			log.Info().Msgf("⚠️  CompareService.Toggle: selection full, rejected %s", slug)
			return models.SelectionFullNotice, nil
		}
		return "", err
	}
	return "", nil
}

// Bar returns the pills of the comparison bar, skipping unknown slugs
func (s *CompareService) Bar(selection *models.Selection) []models.CompareBarItem {
	items := make([]models.CompareBarItem, 0, selection.Len())
	for _, slug := range selection.Slugs() {
		p, ok := s.repository.FindBySlug(slug)
		if !ok {
			continue
		}
		items = append(items, models.CompareBarItem{Slug: p.Slug, Name: p.Name})
	}
	return items
}

// BuildComparison builds the comparison table, one column per selected product in
// selection order. Fewer than two selected products yields the instruction message.
func (s *CompareService) BuildComparison(selection *models.Selection) models.ComparisonTable {
	if selection.Len() < 2 {
		return models.ComparisonTable{Message: models.CompareMinMessage}
	}

	slugs := selection.Slugs()
	products := make([]*models.Product, len(slugs))
	headers := make([]string, len(slugs))
	for i, slug := range slugs {
		if p, ok := s.repository.FindBySlug(slug); ok {
			products[i] = p
			headers[i] = p.Name
		}
	}

	rows := make([]models.ComparisonRow, 0, len(comparisonAttributes))
	for _, attr := range comparisonAttributes {
		row := models.ComparisonRow{Label: attr.label, Values: make([]string, len(products))}
		for i, p := range products {
			if p != nil {
				row.Values[i] = attr.value(p)
			}
		}
		rows = append(rows, row)
	}

	return models.ComparisonTable{Headers: headers, Rows: rows}
}

// ApplyToggle runs a toggle request and returns the full resulting state
func (s *CompareService) ApplyToggle(req models.CompareToggleRequest) (models.CompareToggleResponse, error) {
	selection := models.NewSelection(req.Selection...)
	var notice string
	if req.Toggle != "" {
		var err error
		notice, err = s.Toggle(selection, req.Toggle)
		if err != nil {
			return models.CompareToggleResponse{}, err
		}
	}

	return models.CompareToggleResponse{
		Selection:  selection.Slugs(),
		Notice:     notice,
		BarVisible: selection.BarVisible(),
		Bar:        s.Bar(selection),
		Table:      s.BuildComparison(selection),
	}, nil
}
