package importer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSVBasic(t *testing.T) {
	input := "Category,SubCategory,ItemName,Description,Price\n" +
		"Food,Starters,Caesar Salad,Fresh romaine,12.99\n"

	result, err := ParseCSV([]byte(input))
	require.NoError(t, err)

	require.Len(t, result.Categories, 1)
	require.Len(t, result.Categories[0].SubCategories, 1)
	require.Len(t, result.Categories[0].SubCategories[0].Items, 1)

	item := result.Categories[0].SubCategories[0].Items[0]
	assert.Equal(t, "Caesar Salad", item.Name)
	assert.Equal(t, "Fresh romaine", item.Description)
	assert.Equal(t, "USD", item.Currency)
	assert.Equal(t, "AVAILABLE", item.AvailabilityStatus)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("12.99")))
}

func TestParseCSVColumnOrderInsensitive(t *testing.T) {
	input := "Price,ItemName,Category,Tags\n" +
		"9.50,Lemonade,Drinks,cold|fresh\n"

	result, err := ParseCSV([]byte(input))
	require.NoError(t, err)

	require.Len(t, result.Categories, 1)
	item := result.Categories[0].SubCategories[0].Items[0]
	assert.Equal(t, "Lemonade", item.Name)
	assert.Equal(t, []string{"cold", "fresh"}, item.Tags)
}

func TestParseCSVSkipsRowsMissingRequiredFields(t *testing.T) {
	input := "Category,SubCategory,ItemName,Description,Price\n" +
		"Food,Starters,Soup,Warm,5.00\n" +
		",Starters,Orphan,No category,4.00\n" +
		"Food,Starters,,No name,4.00\n" +
		"Food,Starters,NoPrice,Missing price,\n"

	result, err := ParseCSV([]byte(input))
	require.NoError(t, err)

	require.Len(t, result.Categories, 1)
	assert.Len(t, result.Categories[0].SubCategories[0].Items, 1)
}

func TestParseCSVOnlyInvalidRowsGivesEmptyResult(t *testing.T) {
	input := "Category,SubCategory,ItemName,Description,Price\n" +
		"Food,Starters,NoPrice,Missing price,\n"

	result, err := ParseCSV([]byte(input))
	require.NoError(t, err)
	assert.Empty(t, result.Categories)
}

func TestParseCSVCurrencySymbolStripped(t *testing.T) {
	input := "Category,ItemName,Price\n" +
		"Food,Burger,$8.25\n"

	result, err := ParseCSV([]byte(input))
	require.NoError(t, err)

	item := result.Categories[0].SubCategories[0].Items[0]
	assert.True(t, item.Price.Equal(decimal.RequireFromString("8.25")))
}

func TestParseCSVFullColumnSet(t *testing.T) {
	input := "Category,SubCategory,ItemName,Description,Price,ImageURL,Tags,Allergens,AvailabilityStatus,PreparationTime\n" +
		"Food,Mains,Pasta,Homemade,14.00,https://img.example/pasta.png,\"vegetarian, classic\",gluten|dairy,seasonal,20\n"

	result, err := ParseCSV([]byte(input))
	require.NoError(t, err)

	item := result.Categories[0].SubCategories[0].Items[0]
	require.NotNil(t, item.ImageURL)
	assert.Equal(t, "https://img.example/pasta.png", *item.ImageURL)
	assert.Equal(t, []string{"vegetarian", "classic"}, item.Tags)
	assert.Equal(t, []string{"gluten", "dairy"}, item.Allergens)
	assert.Equal(t, "SEASONAL", item.AvailabilityStatus)
	require.NotNil(t, item.PreparationTime)
	assert.Equal(t, 20, *item.PreparationTime)
}

func TestParseCSVEmptyInput(t *testing.T) {
	result, err := ParseCSV([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, result.Categories)
}
