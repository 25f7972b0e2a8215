package importer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTextStateMachine(t *testing.T) {
	input := `CATEGORY: Food
SUBCATEGORY: Starters
ITEM: Caesar Salad
PRICE: $12.99
DESCRIPTION: Fresh romaine
TAGS: classic, salad
ALLERGENS: dairy
ITEM: Garlic Bread
PRICE: 4.50
`

	result, err := ParseText([]byte(input))
	require.NoError(t, err)

	require.Len(t, result.Categories, 1)
	assert.Equal(t, "Food", result.Categories[0].Name)

	sub := result.Categories[0].SubCategories[0]
	assert.Equal(t, "Starters", sub.Name)
	require.Len(t, sub.Items, 2)

	salad := sub.Items[0]
	assert.Equal(t, "Caesar Salad", salad.Name)
	assert.Equal(t, "Fresh romaine", salad.Description)
	assert.True(t, salad.Price.Equal(decimal.RequireFromString("12.99")))
	assert.Equal(t, []string{"classic", "salad"}, salad.Tags)
	assert.Equal(t, []string{"dairy"}, salad.Allergens)

	bread := sub.Items[1]
	assert.Equal(t, "Garlic Bread", bread.Name)
	assert.Equal(t, "", bread.Description)
}

func TestParseTextFinalItemFlushedAtEOF(t *testing.T) {
	input := "CATEGORY: Drinks\nITEM: Cola\nPRICE: 3"

	result, err := ParseText([]byte(input))
	require.NoError(t, err)

	require.Len(t, result.Categories, 1)
	sub := result.Categories[0].SubCategories[0]
	assert.Equal(t, "Default", sub.Name)
	require.Len(t, sub.Items, 1)
	assert.Equal(t, "Cola", sub.Items[0].Name)
}

func TestParseTextIgnoresUnmatchedLines(t *testing.T) {
	// Free-form lines never accumulate into descriptions here,
	// unlike the markdown adapter.
	input := `CATEGORY: Food
some stray commentary
ITEM: Soup
this line is ignored
PRICE: 5

DESCRIPTION: Warm
`

	result, err := ParseText([]byte(input))
	require.NoError(t, err)

	item := result.Categories[0].SubCategories[0].Items[0]
	assert.Equal(t, "Warm", item.Description)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("5")))
}

func TestParseTextPrefixesAreCaseSensitive(t *testing.T) {
	input := "category: Food\nCATEGORY: Real\nITEM: Soup\nPRICE: 5\n"

	result, err := ParseText([]byte(input))
	require.NoError(t, err)

	require.Len(t, result.Categories, 1)
	assert.Equal(t, "Real", result.Categories[0].Name)
}

func TestParseTextDuplicateSubCategoriesMerge(t *testing.T) {
	input := `CATEGORY: Food
SUBCATEGORY: Starters
ITEM: Soup
PRICE: 5
SUBCATEGORY: Starters
ITEM: Salad
PRICE: 7
`

	result, err := ParseText([]byte(input))
	require.NoError(t, err)

	require.Len(t, result.Categories[0].SubCategories, 1)
	assert.Len(t, result.Categories[0].SubCategories[0].Items, 2)
}
