package models

// Comparison messages
const (
	CompareMinMessage = "Seleccione al menos dos productos para comparar."
)

// ComparisonRow is one attribute row of the comparison table
type ComparisonRow struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// ComparisonTable is the side-by-side view of the selected products.
// When fewer than two products are selected, Message is set and Rows is empty.
type ComparisonTable struct {
	Headers []string        `json:"headers,omitempty"`
	Rows    []ComparisonRow `json:"rows,omitempty"`
	Message string          `json:"message,omitempty"`
}

// HasTable reports whether the table was built
func (t ComparisonTable) HasTable() bool {
	return t.Message == "" && len(t.Headers) > 0
}

// CompareBarItem is a pill in the comparison bar
type CompareBarItem struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// CompareToggleRequest is the body of POST /api/comparar
type CompareToggleRequest struct {
	Selection []string `json:"selection"`
	Toggle    string   `json:"toggle"`
}

// CompareToggleResponse is the result of a toggle
type CompareToggleResponse struct {
	Selection  []string         `json:"selection"`
	Notice     string           `json:"notice,omitempty"`
	BarVisible bool             `json:"barVisible"`
	Bar        []CompareBarItem `json:"bar"`
	Table      ComparisonTable  `json:"table"`
}
