package importer

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONRoundTrip(t *testing.T) {
	input := `{
		"restaurant": "Trattoria",
		"categories": [
			{
				"name": "Food",
				"icon": "🍝",
				"subCategories": [
					{
						"name": "Mains",
						"description": "Hearty plates",
						"items": [
							{
								"name": "Lasagna",
								"description": "Oven baked",
								"price": 16.5,
								"currency": "EUR",
								"tags": ["classic"],
								"allergens": ["gluten", "dairy"],
								"availabilityStatus": "available",
								"preparationTime": 25
							}
						]
					}
				]
			}
		]
	}`

	result, err := ParseJSON([]byte(input))
	require.NoError(t, err)

	require.Len(t, result.Categories, 1)
	cat := result.Categories[0]
	assert.Equal(t, "Food", cat.Name)
	require.NotNil(t, cat.Icon)
	assert.Equal(t, "🍝", *cat.Icon)

	require.Len(t, cat.SubCategories, 1)
	sub := cat.SubCategories[0]
	assert.Equal(t, "Mains", sub.Name)
	require.NotNil(t, sub.Description)
	assert.Equal(t, "Hearty plates", *sub.Description)

	require.Len(t, sub.Items, 1)
	item := sub.Items[0]
	assert.Equal(t, "Lasagna", item.Name)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("16.5")))
	assert.Equal(t, "EUR", item.Currency)
	assert.Equal(t, []string{"classic"}, item.Tags)
	assert.Equal(t, []string{"gluten", "dairy"}, item.Allergens)
	assert.Equal(t, "AVAILABLE", item.AvailabilityStatus)
	require.NotNil(t, item.PreparationTime)
	assert.Equal(t, 25, *item.PreparationTime)
}

func TestParseJSONDefaults(t *testing.T) {
	input := `{
		"restaurant": "Diner",
		"categories": [
			{
				"name": "Drinks",
				"subCategories": [
					{
						"name": "Cold",
						"items": [
							{"name": "Cola", "price": 3}
						]
					}
				]
			}
		]
	}`

	result, err := ParseJSON([]byte(input))
	require.NoError(t, err)

	item := result.Categories[0].SubCategories[0].Items[0]
	assert.Equal(t, "USD", item.Currency)
	assert.Equal(t, "AVAILABLE", item.AvailabilityStatus)
	assert.Equal(t, []string{}, item.Tags)
	assert.Equal(t, []string{}, item.Allergens)
	assert.Nil(t, item.ImageURL)
	assert.Nil(t, item.PreparationTime)
}

func TestParseJSONMalformedDocumentFailsWhole(t *testing.T) {
	// Wrong nesting: categories is an object, not an array. Unlike the
	// tabular adapters there is no silent row dropping here.
	input := `{"restaurant": "X", "categories": {"name": "Food"}}`

	_, err := ParseJSON([]byte(input))
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, FormatJSON, parseErr.Format)
}

func TestParseJSONInvalidSyntax(t *testing.T) {
	_, err := ParseJSON([]byte("{not json"))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
}

func TestParseJSONNoCategories(t *testing.T) {
	result, err := ParseJSON([]byte(`{"restaurant": "Empty", "categories": []}`))
	require.NoError(t, err)
	assert.Empty(t, result.Categories)
}
