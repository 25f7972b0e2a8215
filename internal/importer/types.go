package importer

import "github.com/shopspring/decimal"

// Availability statuses used when a file does not say otherwise.
const (
	StatusAvailable  = "AVAILABLE"
	StatusOutOfStock = "OUT_OF_STOCK"
	StatusSeasonal   = "SEASONAL"
)

const DefaultCurrency = "USD"

// DefaultSubCategory is the synthetic bucket for rows/items
// that carry no explicit sub-category.
const DefaultSubCategory = "Default"

// --------------------------------------------------
// RAW ROW (tabular intermediate)
// --------------------------------------------------

// RawRow is one flat row as read from CSV, Excel or an HTML table,
// before any validation. All fields are untrimmed strings.
type RawRow struct {
	Category           string
	SubCategory        string
	ItemName           string
	Description        string
	Price              string
	ImageURL           string
	Tags               string
	Allergens          string
	AvailabilityStatus string
	PreparationTime    string
}

// set assigns a cell value by header name (exact, case-sensitive).
func (r *RawRow) set(column, value string) {
	switch column {
	case "Category":
		r.Category = value
	case "SubCategory":
		r.SubCategory = value
	case "ItemName":
		r.ItemName = value
	case "Description":
		r.Description = value
	case "Price":
		r.Price = value
	case "ImageURL":
		r.ImageURL = value
	case "Tags":
		r.Tags = value
	case "Allergens":
		r.Allergens = value
	case "AvailabilityStatus":
		r.AvailabilityStatus = value
	case "PreparationTime":
		r.PreparationTime = value
	}
}

// --------------------------------------------------
// CANONICAL STRUCTURES
// --------------------------------------------------

// MenuItem is the canonical item every adapter converges on.
type MenuItem struct {
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	Currency           string          `json:"currency"`
	ImageURL           *string         `json:"imageUrl,omitempty"`
	Tags               []string        `json:"tags"`
	Allergens          []string        `json:"allergens"`
	AvailabilityStatus string          `json:"availabilityStatus"`
	PreparationTime    *int            `json:"preparationTime,omitempty"`
}

type SubCategory struct {
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Items       []MenuItem `json:"items"`
}

type Category struct {
	Name          string        `json:"name"`
	Icon          *string       `json:"icon,omitempty"`
	SubCategories []SubCategory `json:"subCategories"`
}

// Result is the sole output contract of every format adapter.
type Result struct {
	Categories []Category `json:"categories"`
}

// --------------------------------------------------
// IMPORT SUMMARY
// --------------------------------------------------

// Summary reports categories and sub-categories touched (created or
// reused) and items created by one import.
type Summary struct {
	Categories    int `json:"categories"`
	SubCategories int `json:"subCategories"`
	Items         int `json:"items"`
}
