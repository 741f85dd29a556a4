package models

import (
	"net/url"
	"strings"
)

// Query parameter names shared by the catalogue pages
const (
	ParamCategory = "category"
	ParamColor    = "color"
	ParamTexture  = "texture"
	ParamCompare  = "compare"
	ParamToggle   = "toggle"
	ParamModal    = "modal"
	ParamMenu     = "menu"
	ParamSlug     = "slug"

	ModalCompare = "compare"
)

// BrowseState is the per-request state of the catalogue page.
// It is rebuilt from the query string on every request and carried forward in links.
type BrowseState struct {
	Filter    CatalogFilter
	Selection *Selection
	ModalOpen bool
	Nav       NavState
	Notice    string
}

// ParseBrowseState reads the browse state from query values
func ParseBrowseState(q url.Values) *BrowseState {
	return &BrowseState{
		Filter: CatalogFilter{
			Category: q.Get(ParamCategory),
			Color:    q.Get(ParamColor),
			Texture:  q.Get(ParamTexture),
		}.Normalize(),
		Selection: ParseSelection(q.Get(ParamCompare)),
		ModalOpen: q.Get(ParamModal) == ModalCompare,
		Nav:       NavState{Open: q.Get(ParamMenu) == "1"},
	}
}

// Values encodes the state that survives navigation within the catalogue.
// The modal is never carried over.
func (s *BrowseState) Values() url.Values {
	v := url.Values{}
	if s.Filter.Category != "" {
		v.Set(ParamCategory, s.Filter.Category)
	}
	if s.Filter.Color != "" {
		v.Set(ParamColor, s.Filter.Color)
	}
	if s.Filter.Texture != "" {
		v.Set(ParamTexture, s.Filter.Texture)
	}
	if s.Selection != nil && s.Selection.Len() > 0 {
		v.Set(ParamCompare, s.Selection.String())
	}
	if s.Nav.Open {
		v.Set(ParamMenu, "1")
	}
	return v
}

// URL builds a link to path with the current state plus extra key/value pairs
func (s *BrowseState) URL(path string, extra ...string) string {
	v := s.Values()
	for i := 0; i+1 < len(extra); i += 2 {
		if extra[i+1] == "" {
			v.Del(extra[i])
			continue
		}
		v.Set(extra[i], extra[i+1])
	}
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}

// ToggleURL links to the list with slug toggled in the comparison
func (s *BrowseState) ToggleURL(path, slug string) string {
	return s.URL(path, ParamToggle, slug)
}

// OpenModalURL links to the list with the comparison modal open
func (s *BrowseState) OpenModalURL(path string) string {
	return s.URL(path, ParamModal, ModalCompare)
}

// MenuToggleURL links to path with the navigation panel flipped.
// extra key/value pairs are kept in the link, as in URL.
func (s *BrowseState) MenuToggleURL(path string, extra ...string) string {
	menu := "1"
	if s.Nav.Open {
		menu = ""
	}
	return s.URL(path, append(extra, ParamMenu, menu)...)
}

// ClearFiltersURL keeps the comparison but drops every filter
func (s *BrowseState) ClearFiltersURL(path string) string {
	return s.URL(path, ParamCategory, "", ParamColor, "", ParamTexture, "")
}

// IsSelectedFilter reports whether value is the active filter for field, for select options
func (s *BrowseState) IsSelectedFilter(field, value string) bool {
	switch field {
	case ParamCategory:
		return s.Filter.Category == value
	case ParamColor:
		return strings.EqualFold(s.Filter.Color, value)
	case ParamTexture:
		return strings.EqualFold(s.Filter.Texture, value)
	}
	return false
}
