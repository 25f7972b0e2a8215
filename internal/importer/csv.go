package importer

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"
)

// ParseCSV reads a header-mapped CSV file into the canonical tree.
// Column order is free; column names are fixed (see RawRow.set).
func ParseCSV(data []byte) (*Result, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return &Result{Categories: []Category{}}, nil
		}
		return nil, &ParseError{Format: FormatCSV, Err: err}
	}

	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []RawRow

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Format: FormatCSV, Err: err}
		}

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
