package importer

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var numberPattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// ParseMarkdown scans a markdown menu in a single pass:
// "##" sets the category, "###" the sub-category, "####" starts an
// item. Within an item block, "**Price:**", "**Tags:**" and
// "**Allergens:**" markers populate fields; the first remaining
// non-empty line becomes the description. The trailing item is
// flushed at end of input.
func ParseMarkdown(data []byte) (*Result, error) {
	b := newTreeBuilder()

	var (
		item     *MenuItem
		haveDesc bool
	)

	flush := func() {
		if item != nil {
			b.addItem(*item)
			item = nil
		}
		haveDesc = false
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "####"):
			flush()
			item = &MenuItem{
				Name:               strings.TrimSpace(strings.TrimPrefix(line, "####")),
				Price:              decimal.Zero,
				Currency:           DefaultCurrency,
				Tags:               []string{},
				Allergens:          []string{},
				AvailabilityStatus: StatusAvailable,
			}

		case strings.HasPrefix(line, "###"):
			flush()
			b.setSubCategory(strings.TrimSpace(strings.TrimPrefix(line, "###")))

		case strings.HasPrefix(line, "##"):
			flush()
			b.setCategory(strings.TrimSpace(strings.TrimPrefix(line, "##")))

		case strings.Contains(line, "**Price:**"):
			if item != nil {
				after := line[strings.Index(line, "**Price:**")+len("**Price:**"):]
				if token := numberPattern.FindString(after); token != "" {
					if d, err := decimal.NewFromString(token); err == nil {
						item.Price = d
					}
				}
			}

		case strings.Contains(line, "**Tags:**"):
			if item != nil {
				after := line[strings.Index(line, "**Tags:**")+len("**Tags:**"):]
				item.Tags = splitList(after)
			}

		case strings.Contains(line, "**Allergens:**"):
			if item != nil {
				after := line[strings.Index(line, "**Allergens:**")+len("**Allergens:**"):]
				item.Allergens = splitList(after)
			}

		default:
			// Only the first free-form line is kept as description.
			if item != nil && !haveDesc {
				item.Description = line
				haveDesc = true
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Format: FormatMarkdown, Err: err}
	}

	flush()

	return b.result, nil
}
