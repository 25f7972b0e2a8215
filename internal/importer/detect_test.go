package importer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectKnownExtensions(t *testing.T) {
	cases := map[string]Format{
		"menu.csv":      FormatCSV,
		"menu.CSV":      FormatCSV,
		"menu.json":     FormatJSON,
		"menu.xlsx":     FormatExcel,
		"menu.xls":      FormatExcel,
		"menu.md":       FormatMarkdown,
		"menu.html":     FormatHTML,
		"menu.HTM":      FormatHTML,
		"menu.txt":      FormatText,
		"dir/menu.json": FormatJSON,
	}

	for filename, want := range cases {
		got, err := Detect(filename)
		require.NoError(t, err, filename)
		assert.Equal(t, want, got, filename)
	}
}

func TestDetectUnsupportedExtension(t *testing.T) {
	_, err := Detect("menu.pdf")
	require.Error(t, err)

	var unsupported *UnsupportedFormatError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, ".pdf", unsupported.Ext)
	assert.Contains(t, err.Error(), ".pdf")
}

func TestDetectMissingExtension(t *testing.T) {
	_, err := Detect("menu")

	var unsupported *UnsupportedFormatError
	require.True(t, errors.As(err, &unsupported))
}
