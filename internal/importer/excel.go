package importer

import (
	"bytes"
	"errors"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ParseExcel reads an .xlsx or .xls workbook. Only the first worksheet
// is imported; any further sheets are ignored.
func ParseExcel(data []byte) (*Result, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Format: FormatExcel, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ParseError{Format: FormatExcel, Err: errors.New("workbook has no sheets")}
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &ParseError{Format: FormatExcel, Err: err}
	}

	if len(cells) < 2 {
		return &Result{Categories: []Category{}}, nil
	}

	header := cells[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []RawRow
	for _, record := range cells[1:] {
		var row RawRow
		for i, cell := range record {
			if i >= len(header) {
				break
			}
			row.set(header[i], cell)
		}
		rows = append(rows, row)
	}

	return Normalize(rows), nil
}
