package importer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHTMLTable(t *testing.T) {
	input := `<html><body>
	<table>
		<tr><th>Category</th><th>SubCategory</th><th>ItemName</th><th>Price</th></tr>
		<tr><td>Food</td><td>Starters</td><td>Soup</td><td>5.00</td></tr>
		<tr><td>Food</td><td>Starters</td><td>Salad</td><td>7.50</td></tr>
	</table>
	</body></html>`

	result, err := ParseHTML([]byte(input))
	require.NoError(t, err)

	require.Len(t, result.Categories, 1)
	sub := result.Categories[0].SubCategories[0]
	assert.Equal(t, "Starters", sub.Name)
	require.Len(t, sub.Items, 2)
	assert.True(t, sub.Items[1].Price.Equal(decimal.RequireFromString("7.5")))
}

func TestParseHTMLMultipleTablesShareOneRowList(t *testing.T) {
	input := `
	<table>
		<tr><th>Category</th><th>ItemName</th><th>Price</th></tr>
		<tr><td>Food</td><td>Soup</td><td>5</td></tr>
	</table>
	<table>
		<tr><th>Category</th><th>ItemName</th><th>Price</th></tr>
		<tr><td>Drinks</td><td>Cola</td><td>3</td></tr>
	</table>`

	result, err := ParseHTML([]byte(input))
	require.NoError(t, err)

	require.Len(t, result.Categories, 2)
	// First table's rows come first.
	assert.Equal(t, "Food", result.Categories[0].Name)
	assert.Equal(t, "Drinks", result.Categories[1].Name)
}

func TestParseHTMLHeaderOnlyTableContributesNothing(t *testing.T) {
	input := `
	<table>
		<tr><th>Category</th><th>ItemName</th><th>Price</th></tr>
	</table>`

	result, err := ParseHTML([]byte(input))
	require.NoError(t, err)
	assert.Empty(t, result.Categories)
}

func TestParseHTMLNoTables(t *testing.T) {
	result, err := ParseHTML([]byte("<p>just a menu photo caption</p>"))
	require.NoError(t, err)
	assert.Empty(t, result.Categories)
}

func TestParseHTMLCellTextTrimmed(t *testing.T) {
	input := `
	<table>
		<tr><th> Category </th><th> ItemName </th><th> Price </th></tr>
		<tr><td> Food </td><td> Soup </td><td> 5 </td></tr>
	</table>`

	result, err := ParseHTML([]byte(input))
	require.NoError(t, err)

	require.Len(t, result.Categories, 1)
	assert.Equal(t, "Food", result.Categories[0].Name)
	assert.Equal(t, "Soup", result.Categories[0].SubCategories[0].Items[0].Name)
}
