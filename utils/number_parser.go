package utils

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// leadingFloat matches the numeric prefix of a form value ("12.5 m2" -> "12.5")
var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// leadingInt matches the integer prefix of a form value ("400.7" -> "400")
var leadingInt = regexp.MustCompile(`^[+-]?\d+`)

// parseFloatPrefix parses the numeric prefix of raw. ok is false when there is none.
func parseFloatPrefix(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	}
	prefix := leadingFloat.FindString(s)
	if prefix == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseNumberOr parses a numeric form value.
// Blank, unparseable and zero values all fall back to def.
func ParseNumberOr(raw string, def float64) float64 {
	v, ok := parseFloatPrefix(raw)
	if !ok || v == 0 {
		return def
	}
	return v
}

// ParseOptionalNumber parses an optional numeric form value.
// Returns nil for blank, unparseable and zero values.
func ParseOptionalNumber(raw string) *float64 {
	v, ok := parseFloatPrefix(raw)
	if !ok || v == 0 {
		return nil
	}
	return &v
}

// ParseIntOr parses the integer prefix of a form value.
// Blank, unparseable and zero values fall back to def; values beyond the int range saturate.
func ParseIntOr(raw string, def int) int {
	prefix := leadingInt.FindString(strings.TrimSpace(raw))
	if prefix == "" {
		return def
	}
	v, err := strconv.Atoi(prefix)
	if errors.Is(err, strconv.ErrRange) {
		// Out of range values saturate instead of being discarded
		if strings.HasPrefix(prefix, "-") {
			return math.MinInt
		}
		return math.MaxInt
	}
	if err != nil || v == 0 {
		return def
	}
	return v
}
