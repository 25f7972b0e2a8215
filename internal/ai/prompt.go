package ai

func BuildOfferExtractionPrompt(text string) string {
	return `
You are a data extraction engine.

Your task:
- Convert the promotion text into STRICT JSON.
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO comments.
- NO extra text.

If you cannot extract data, return this exact JSON:
{
  "offers": []
}

Required JSON schema:
{
  "offers": [
    {
      "title": "string",
      "type": "PERCENTAGE | FLAT | COMBO",
      "discount_value": number,
      "category": "string or null"
    }
  ]
}

PROMOTION TEXT:
` + text
}

func BuildNutritionPrompt(itemName, description string) string {
	return `
You are a nutrition estimation engine.

Your task:
- Estimate nutrition for the dish below as STRICT JSON.
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.

Required JSON schema:
{
  "calories": number,
  "protein_g": number,
  "carbs_g": number,
  "fat_g": number,
  "confidence": number
}

DISH NAME:
` + itemName + `

DISH DESCRIPTION:
` + description
}
