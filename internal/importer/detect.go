package importer

import (
	"path/filepath"
	"strings"
)

// Format identifies the parsing strategy for an uploaded menu file.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatExcel    Format = "excel"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatText     Format = "text"
)

// Detect picks a format by lowercase file extension. The extension is
// authoritative, there is no content sniffing fallback.
func Detect(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".xlsx", ".xls":
		return FormatExcel, nil
	case ".md":
		return FormatMarkdown, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".txt":
		return FormatText, nil
	default:
		return "", &UnsupportedFormatError{Ext: ext}
	}
}
