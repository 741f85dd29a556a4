package utils

import (
	"strings"
)

// categoryLabels maps category codes to their display names
var categoryLabels = map[string]string{
	"cara-vista":  "Cara vista",
	"estructural": "Estructural",
	"adoquin":     "Adoquín",
	"thin-brick":  "Thin brick",
	"refractario": "Refractario",
}

// MapCategoryToLabel maps a category code to its display name.
// Unknown codes are returned capitalized.
func MapCategoryToLabel(code string) string {
	codeLower := strings.ToLower(strings.TrimSpace(code))
	if label, exists := categoryLabels[codeLower]; exists {
		return label
	}
	return CapitalizeWords(strings.ReplaceAll(codeLower, "-", " "))
}

// IsKnownCategory reports whether code is one of the catalogue categories
func IsKnownCategory(code string) bool {
	_, exists := categoryLabels[strings.ToLower(strings.TrimSpace(code))]
	return exists
}

// CapitalizeWords capitalizes the first letter of each word
func CapitalizeWords(s string) string {
	if s == "" {
		return s
	}
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		if len(runes) > 0 {
			words[i] = strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
		}
	}
	return strings.Join(words, " ")
}
