package ai

import (
	"context"
	"encoding/json"
	"errors"
)

type ExtractedOffer struct {
	Title         string  `json:"title"`
	Type          string  `json:"type"` // PERCENTAGE | FLAT | COMBO
	DiscountValue float64 `json:"discount_value"`
	Category      *string `json:"category"`
}

type extractedOffers struct {
	Offers []ExtractedOffer `json:"offers"`
}

// ExtractOffers turns free-form promotion text ("20% off drinks this
// weekend!") into structured offer candidates.
func ExtractOffers(
	ctx context.Context,
	client Client,
	text string,
) ([]ExtractedOffer, error) {

	rawJSON, err := client.Complete(ctx, BuildOfferExtractionPrompt(text))
	if err != nil {
		return nil, err
	}

	var parsed extractedOffers
	if err := json.Unmarshal([]byte(rawJSON), &parsed); err != nil {
		return nil, errors.New("invalid LLM JSON output")
	}

	return parsed.Offers, nil
}

type Nutrition struct {
	Calories   float64 `json:"calories"`
	ProteinG   float64 `json:"protein_g"`
	CarbsG     float64 `json:"carbs_g"`
	FatG       float64 `json:"fat_g"`
	Confidence float64 `json:"confidence"`
}

func EstimateNutrition(
	ctx context.Context,
	client Client,
	itemName, description string,
) (*Nutrition, error) {

	rawJSON, err := client.Complete(ctx, BuildNutritionPrompt(itemName, description))
	if err != nil {
		return nil, err
	}

	var n Nutrition
	if err := json.Unmarshal([]byte(rawJSON), &n); err != nil {
		return nil, errors.New("invalid LLM JSON output")
	}

	return &n, nil
}
