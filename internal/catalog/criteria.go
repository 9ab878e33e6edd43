// Package catalog filters movie and event listings by free-text search and
// drop-down criteria. Everything here is pure: the same inputs always give
// the same output and inputs are never modified.
package catalog

import (
	"strings"
	"unicode"
)

// All is the sentinel value meaning "no constraint on this dimension".
const All = "All"

// Dimension names one independent filterable attribute.
type Dimension string

const (
	DimGenre    Dimension = "genre"
	DimLanguage Dimension = "language"
	DimFormat   Dimension = "format"
	DimPrice    Dimension = "price"
	DimCategory Dimension = "category"
	DimDate     Dimension = "date"
	DimCity     Dimension = "city"
)

// Criteria maps a dimension to the selected value. A missing dimension or
// the value All leaves that dimension unconstrained.
type Criteria map[Dimension]string

// Active returns the selected value for d and whether it constrains results.
func (c Criteria) Active(d Dimension) (string, bool) {
	v, ok := c[d]
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, All) {
		return "", false
	}
	return v, true
}

// NormalizeOptionKey converts a display label into the canonical option key
// used by the filter tables: "Under ₹150" becomes "under-150" and
// "₹500-₹1000" becomes "500-1000". Non-ASCII runes are dropped, so legacy
// mis-encoded currency prefixes normalize to the same key.
func NormalizeOptionKey(label string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		switch {
		case r > unicode.MaxASCII:
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case r == '-' || unicode.IsSpace(r):
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
