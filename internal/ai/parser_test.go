package ai

import (
	"context"
	"errors"
	"testing"
)

type mockClient struct {
	response string
	err      error
	prompts  []string
}

func (m *mockClient) Complete(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func TestExtractOffers_Success(t *testing.T) {
	client := &mockClient{
		response: `{
			"offers": [
				{"title": "Weekend Drinks", "type": "PERCENTAGE", "discount_value": 20, "category": "Drinks"},
				{"title": "Lunch Combo", "type": "COMBO", "discount_value": 0, "category": null}
			]
		}`,
	}

	offers, err := ExtractOffers(context.Background(), client, "20% off drinks this weekend! Lunch combo deal too.")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(offers) != 2 {
		t.Fatalf("expected 2 offers, got %d", len(offers))
	}
	if offers[0].Type != "PERCENTAGE" || offers[0].DiscountValue != 20 {
		t.Errorf("unexpected first offer: %+v", offers[0])
	}
	if offers[0].Category == nil || *offers[0].Category != "Drinks" {
		t.Errorf("expected Drinks category, got %v", offers[0].Category)
	}
	if offers[1].Category != nil {
		t.Errorf("expected nil category, got %v", *offers[1].Category)
	}
}

func TestExtractOffers_InvalidJSON(t *testing.T) {
	client := &mockClient{response: `Sure! Here are the offers: ...`}

	_, err := ExtractOffers(context.Background(), client, "anything")
	if err == nil {
		t.Fatal("expected error for non-JSON output")
	}
}

func TestExtractOffers_ClientError(t *testing.T) {
	wantErr := errors.New("gemini api error")
	client := &mockClient{err: wantErr}

	_, err := ExtractOffers(context.Background(), client, "anything")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected client error passthrough, got %v", err)
	}
}

func TestEstimateNutrition(t *testing.T) {
	client := &mockClient{
		response: `{"calories": 540, "protein_g": 22, "carbs_g": 60, "fat_g": 24, "confidence": 0.7}`,
	}

	n, err := EstimateNutrition(context.Background(), client, "Margherita Pizza", "Tomato, mozzarella, basil")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if n.Calories != 540 || n.Confidence != 0.7 {
		t.Errorf("unexpected nutrition: %+v", n)
	}
}
