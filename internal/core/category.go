package core

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// OtherCategory is the fallback for anything outside the fixed set.
const OtherCategory = "Otros"

var categories = []string{
	"Comida",
	"Transporte",
	"Hogar",
	"Servicios",
	"Entretenimiento",
	"Salud",
	OtherCategory,
}

// maxSuggestDistance bounds how far a typed name may be from a known category.
const maxSuggestDistance = 3

// Categories returns the fixed category set in menu order.
func Categories() []string {
	return slices.Clone(categories)
}

// CategoryAt resolves a 1-based menu index.
func CategoryAt(index int) (string, bool) {
	if index < 1 || index > len(categories) {
		return "", false
	}
	return categories[index-1], true
}

// IsCategory reports whether name is one of the fixed categories (case-insensitive).
func IsCategory(name string) bool {
	_, ok := lookupCategory(name)
	return ok
}

// NormalizeCategory returns the canonical spelling of name, or OtherCategory
// when name is not in the fixed set.
func NormalizeCategory(name string) string {
	if c, ok := lookupCategory(name); ok {
		return c
	}
	return OtherCategory
}

// SuggestCategory finds the closest known category to a mistyped name.
// It reports false for exact matches and for names too far from any category.
func SuggestCategory(name string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" || IsCategory(needle) {
		return "", false
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range categories {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(c))
		if dist < bestDist {
			best, bestDist = c, dist
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}

func lookupCategory(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, c := range categories {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}
