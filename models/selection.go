package models

import (
	"errors"
	"strings"
)

// MaxCompare is the maximum number of products that can be compared at once
const MaxCompare = 3

// SelectionFullNotice is shown when a fourth product is toggled
const SelectionFullNotice = "Puedes comparar hasta 3 productos a la vez."

// ErrSelectionFull is returned by Toggle when the selection is at capacity
var ErrSelectionFull = errors.New("selection is full")

// Selection is the ordered set of product slugs chosen for comparison
type Selection struct {
	slugs []string
}

// NewSelection builds a selection from slugs, applying toggle semantics in order.
// Repeated slugs are ignored and anything beyond capacity is dropped.
func NewSelection(slugs ...string) *Selection {
	s := &Selection{}
	for _, slug := range slugs {
		slug = strings.TrimSpace(slug)
		if slug == "" || s.Contains(slug) {
			continue
		}
		_ = s.Toggle(slug)
	}
	return s
}

// ParseSelection parses the comma-separated "compare" query value
func ParseSelection(raw string) *Selection {
	if strings.TrimSpace(raw) == "" {
		return NewSelection()
	}
	return NewSelection(strings.Split(raw, ",")...)
}

// Toggle removes slug if selected, otherwise appends it.
// Returns ErrSelectionFull and leaves the selection unchanged when at capacity.
func (s *Selection) Toggle(slug string) error {
	for i, existing := range s.slugs {
		if existing == slug {
			s.slugs = append(s.slugs[:i:i], s.slugs[i+1:]...)
			return nil
		}
	}
	if len(s.slugs) >= MaxCompare {
		return ErrSelectionFull
	}
	s.slugs = append(s.slugs, slug)
	return nil
}

// Contains reports whether slug is selected
func (s *Selection) Contains(slug string) bool {
	for _, existing := range s.slugs {
		if existing == slug {
			return true
		}
	}
	return false
}

// Slugs returns a copy of the selected slugs in selection order
func (s *Selection) Slugs() []string {
	out := make([]string, len(s.slugs))
	copy(out, s.slugs)
	return out
}

// Len returns the number of selected products
func (s *Selection) Len() int {
	return len(s.slugs)
}

// BarVisible reports whether the comparison bar should be shown
func (s *Selection) BarVisible() bool {
	return len(s.slugs) > 0
}

// String encodes the selection for the "compare" query parameter
func (s *Selection) String() string {
	return strings.Join(s.slugs, ",")
}
