package importer

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseText handles the tagged plain-text format: a line-oriented
// state machine over CATEGORY:, SUBCATEGORY:, ITEM:, PRICE:,
// DESCRIPTION:, TAGS: and ALLERGENS: prefixes (case-sensitive).
// Lines matching no prefix are ignored. Unlike markdown, free-form
// lines never become descriptions here.
func ParseText(data []byte) (*Result, error) {
	b := newTreeBuilder()

	var item *MenuItem

	flush := func() {
		if item != nil {
			b.addItem(*item)
			item = nil
		}
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "CATEGORY:"):
			flush()
			b.setCategory(strings.TrimSpace(strings.TrimPrefix(line, "CATEGORY:")))

		case strings.HasPrefix(line, "SUBCATEGORY:"):
			flush()
			b.setSubCategory(strings.TrimSpace(strings.TrimPrefix(line, "SUBCATEGORY:")))

		case strings.HasPrefix(line, "ITEM:"):
			flush()
			item = &MenuItem{
				Name:               strings.TrimSpace(strings.TrimPrefix(line, "ITEM:")),
				Price:              decimal.Zero,
				Currency:           DefaultCurrency,
				Tags:               []string{},
				Allergens:          []string{},
				AvailabilityStatus: StatusAvailable,
			}

		case strings.HasPrefix(line, "PRICE:"):
			if item != nil {
				if d, ok := parsePrice(strings.TrimPrefix(line, "PRICE:")); ok {
					item.Price = d
				}
			}

		case strings.HasPrefix(line, "DESCRIPTION:"):
			if item != nil {
				item.Description = strings.TrimSpace(strings.TrimPrefix(line, "DESCRIPTION:"))
			}

		case strings.HasPrefix(line, "TAGS:"):
			if item != nil {
				item.Tags = splitList(strings.TrimPrefix(line, "TAGS:"))
			}

		case strings.HasPrefix(line, "ALLERGENS:"):
			if item != nil {
				item.Allergens = splitList(strings.TrimPrefix(line, "ALLERGENS:"))
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Format: FormatText, Err: err}
	}

	flush()

	return b.result, nil
}
