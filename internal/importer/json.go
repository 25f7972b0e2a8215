package importer

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// jsonDocument mirrors the accepted upload schema. Anything that does
// not match this nesting fails the whole import, there is no coercion
// of malformed shapes.
type jsonDocument struct {
	Restaurant string         `json:"restaurant"`
	Categories []jsonCategory `json:"categories"`
}

type jsonCategory struct {
	Name          string            `json:"name"`
	Icon          *string           `json:"icon"`
	SubCategories []jsonSubCategory `json:"subCategories"`
}

type jsonSubCategory struct {
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Items       []jsonItem `json:"items"`
}

type jsonItem struct {
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	Currency           string          `json:"currency"`
	ImageURL           *string         `json:"imageUrl"`
	Tags               []string        `json:"tags"`
	Allergens          []string        `json:"allergens"`
	AvailabilityStatus string          `json:"availabilityStatus"`
	PreparationTime    *int            `json:"preparationTime"`
}

// ParseJSON decodes a schema-shaped document and applies the same
// defaulting as the tabular adapters (currency, availability, empty
// tag/allergen lists). Structure passes through untouched.
func ParseJSON(data []byte) (*Result, error) {
	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Format: FormatJSON, Err: err}
	}

	result := &Result{Categories: []Category{}}

	for _, jc := range doc.Categories {
		cat := Category{
			Name:          jc.Name,
			Icon:          jc.Icon,
			SubCategories: []SubCategory{},
		}

		for _, js := range jc.SubCategories {
			sub := SubCategory{
				Name:        js.Name,
				Description: js.Description,
				Items:       []MenuItem{},
			}

			for _, ji := range js.Items {
				item := MenuItem{
					Name:               ji.Name,
					Description:        ji.Description,
					Price:              ji.Price,
					Currency:           ji.Currency,
					ImageURL:           ji.ImageURL,
					Tags:               ji.Tags,
					Allergens:          ji.Allergens,
					AvailabilityStatus: normalizeAvailability(ji.AvailabilityStatus),
					PreparationTime:    ji.PreparationTime,
				}
				if item.Currency == "" {
					item.Currency = DefaultCurrency
				}
				if item.Tags == nil {
					item.Tags = []string{}
				}
				if item.Allergens == nil {
					item.Allergens = []string{}
				}
				sub.Items = append(sub.Items, item)
			}

			cat.SubCategories = append(cat.SubCategories, sub)
		}

		result.Categories = append(result.Categories, cat)
	}

	return result, nil
}
