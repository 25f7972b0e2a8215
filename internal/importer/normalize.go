package importer

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// --------------------------------------------------
// FIELD COERCION
// --------------------------------------------------

// parsePrice strips every character that is not a digit or '.' (currency
// symbols, thousands separators) and converts the rest to a decimal.
// A post-strip empty string yields 0. Note the documented consequence:
// "12,99" becomes 1299 because the comma is stripped, not treated as a
// decimal separator.
func parsePrice(raw string) (decimal.Decimal, bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return decimal.Zero, true
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// splitList splits on ',' or '|', trims each token and drops empties.
func splitList(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '|'
	})

	out := []string{}
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeAvailability upper-cases the raw value and defaults to
// AVAILABLE. Anything else passes through as-is, the enum is not
// enforced here.
func normalizeAvailability(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return StatusAvailable
	}
	return s
}

// parsePrepTime returns nil for anything that is not a whole number.
func parsePrepTime(raw string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &n
}

// --------------------------------------------------
// ROW VALIDATION (single drop point)
// --------------------------------------------------

// validateRow converts a raw row into a canonical item. A row lacking
// Category, ItemName or a parseable Price is dropped here silently,
// only aggregate counts surface to the caller.
func validateRow(row RawRow) (MenuItem, bool) {
	if strings.TrimSpace(row.Category) == "" ||
		strings.TrimSpace(row.ItemName) == "" ||
		strings.TrimSpace(row.Price) == "" {
		return MenuItem{}, false
	}

	price, ok := parsePrice(row.Price)
	if !ok {
		return MenuItem{}, false
	}

	item := MenuItem{
		Name:               strings.TrimSpace(row.ItemName),
		Description:        strings.TrimSpace(row.Description),
		Price:              price,
		Currency:           DefaultCurrency,
		Tags:               splitList(row.Tags),
		Allergens:          splitList(row.Allergens),
		AvailabilityStatus: normalizeAvailability(row.AvailabilityStatus),
		PreparationTime:    parsePrepTime(row.PreparationTime),
	}

	if url := strings.TrimSpace(row.ImageURL); url != "" {
		item.ImageURL = &url
	}

	return item, true
}

// --------------------------------------------------
// GROUPING
// --------------------------------------------------

// Normalize groups a flat row sequence into the canonical
// category → sub-category → item tree. Insertion order is preserved;
// duplicate names merge. Rows without a sub-category land in "Default".
func Normalize(rows []RawRow) *Result {
	result := &Result{Categories: []Category{}}

	catIndex := map[string]int{}
	subIndex := map[string]map[string]int{}

	for _, row := range rows {
		item, ok := validateRow(row)
		if !ok {
			continue
		}

		catName := strings.TrimSpace(row.Category)
		subName := strings.TrimSpace(row.SubCategory)
		if subName == "" {
			subName = DefaultSubCategory
		}

		ci, seen := catIndex[catName]
		if !seen {
			result.Categories = append(result.Categories, Category{
				Name:          catName,
				SubCategories: []SubCategory{},
			})
			ci = len(result.Categories) - 1
			catIndex[catName] = ci
			subIndex[catName] = map[string]int{}
		}

		si, seen := subIndex[catName][subName]
		if !seen {
			cat := &result.Categories[ci]
			cat.SubCategories = append(cat.SubCategories, SubCategory{
				Name:  subName,
				Items: []MenuItem{},
			})
			si = len(cat.SubCategories) - 1
			subIndex[catName][subName] = si
		}

		sub := &result.Categories[ci].SubCategories[si]
		sub.Items = append(sub.Items, item)
	}

	return result
}
