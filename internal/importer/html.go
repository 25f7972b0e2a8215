package importer

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseHTML extracts rows from every <table> in the document. The
// first <tr> of each table defines the column headers; later rows map
// cells to headers by position. Tables with fewer than two rows
// contribute nothing. All tables feed one flat row list, in document
// order, which then goes through the shared normalizer.
func ParseHTML(data []byte) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Format: FormatHTML, Err: err}
	}

	var rows []RawRow

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		trs := table.Find("tr")
		if trs.Length() < 2 {
			return
		}

		var header []string
		trs.First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			header = append(header, strings.TrimSpace(cell.Text()))
		})

		trs.Slice(1, trs.Length()).Each(func(_ int, tr *goquery.Selection) {
			var row RawRow
			tr.Find("th, td").Each(func(i int, cell *goquery.Selection) {
				if i < len(header) {
					row.set(header[i], strings.TrimSpace(cell.Text()))
				}
			})
			rows = append(rows, row)
		})
	})

	return Normalize(rows), nil
}
